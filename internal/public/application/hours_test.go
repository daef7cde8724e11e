package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOperatingHours(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "normal range", text: "11:00-22:00", want: 11},
		{name: "overnight wraps past midnight", text: "22:00-02:00", want: 4},
		{name: "single digit hours", text: "9:30-14:00", want: 5},
		{name: "embedded in free text", text: "営業時間 10:00-20:00（L.O. 19:30）", want: 10},
		{name: "same open and close counts full day", text: "10:00-10:00", want: 24},
		{name: "garbage falls back to default", text: "garbage", want: 11},
		{name: "empty falls back to default", text: "", want: 11},
		{name: "missing minutes falls back to default", text: "11-22", want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOperatingHours(tt.text))
		})
	}
}
