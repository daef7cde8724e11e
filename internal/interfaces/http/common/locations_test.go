package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalLocationCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical code passes through", input: "station", want: "station"},
		{name: "upper case code", input: "STATION", want: "station"},
		{name: "english alias", input: "ekimae", want: "station"},
		{name: "business alias", input: "business", want: "office"},
		{name: "mall alias", input: "mall", want: "shopping"},
		{name: "japanese label", input: "駅前・駅近", want: "station"},
		{name: "japanese short label", input: "駅前", want: "station"},
		{name: "japanese office label", input: "オフィス街", want: "office"},
		{name: "japanese shopping label", input: "商業施設内", want: "shopping"},
		{name: "unknown passes through trimmed", input: "  moon-base  ", want: "moon-base"},
		{name: "empty stays empty", input: "", want: ""},
		{name: "whitespace only", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalLocationCode(tt.input))
		})
	}
}
