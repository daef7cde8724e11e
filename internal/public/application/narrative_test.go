package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
)

func TestMarketingTipsPerLocation(t *testing.T) {
	locations := []string{"station", "office", "residential", "shopping", "roadside"}
	require.Len(t, marketingTips, len(locations))

	for _, location := range locations {
		strategy := buildStrategy(domain.BasicInfo{Seats: 10, UnitPrice: 1000}, location)
		assert.Len(t, strategy.Marketing, 3, "marketing tips for %s", location)
	}
}

func TestOperationTipsSeatBoundary(t *testing.T) {
	tests := []struct {
		name  string
		seats int
		want  int
	}{
		{name: "at threshold stays baseline", seats: 30, want: 3},
		{name: "above threshold adds scale tips", seats: 31, want: 5},
		{name: "small store", seats: 8, want: 3},
		{name: "large store", seats: 120, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := buildStrategy(domain.BasicInfo{Seats: tt.seats, UnitPrice: 1000}, "station")
			assert.Len(t, strategy.Operation, tt.want)
		})
	}
}

func TestMenuRecommendationsSignaturePrice(t *testing.T) {
	strategy := buildStrategy(domain.BasicInfo{Seats: 20, UnitPrice: 1500}, "station")

	require.Len(t, strategy.MenuRecommendations, 3)
	// 看板メニュー価格は客単価の8割を丸めた値。
	assert.Equal(t, "看板メニュー（客単価1,200円）の開発", strategy.MenuRecommendations[0])
}

func TestBuildConceptLocationLed(t *testing.T) {
	info := domain.BasicInfo{Seats: 20, UnitPrice: 1500}
	concept := buildConcept("和食 定食屋", info, "teishoku", "station")

	assert.Equal(t, "お店・○○（仮）", concept.StoreName)
	assert.Equal(t, "駅前で展開する和食 定食屋店。20席のアットホームな空間で、本格的な味をお手頃価格で提供します。", concept.Concept)
	assert.Equal(t, "地域に愛される、何度も来たくなるお店を目指します。", concept.TargetMessage)
	assert.Equal(t, []string{
		"客単価1,500円のコストパフォーマンス",
		"駅前という好立地",
		"20席で目の届くサービス",
	}, concept.UniquePoints)
}

func TestBuildConceptFeatureLed(t *testing.T) {
	info := domain.BasicInfo{
		Seats:          12,
		UnitPrice:      4500,
		TargetCustomer: "仕事帰りの会社員",
		SpecialFeature: "産直の魚介",
	}
	concept := buildConcept("和食 寿司", info, "sushi", "office")

	assert.Equal(t, "鮨処・○○（仮）", concept.StoreName)
	assert.Equal(t, "産直の魚介を活かした和食 寿司店。オフィス街の立地を活かし、仕事帰りの会社員に愛される店づくりを目指します。", concept.Concept)
	assert.Equal(t, "仕事帰りの会社員に向けて、くつろげる空間と満足のいく料理を提供します。", concept.TargetMessage)

	// こだわりがある場合は差別化ポイントの先頭に入る。
	require.Len(t, concept.UniquePoints, 4)
	assert.Equal(t, "産直の魚介", concept.UniquePoints[0])
}

func TestNarrativeIsDeterministic(t *testing.T) {
	info := domain.BasicInfo{
		Seats:          35,
		UnitPrice:      980,
		TargetCustomer: "近隣のファミリー層",
		SpecialFeature: "自家製麺",
	}

	first := buildConcept("和食 ラーメン", info, "ramen", "residential")
	second := buildConcept("和食 ラーメン", info, "ramen", "residential")
	assert.Equal(t, first, second)

	firstStrategy := buildStrategy(info, "residential")
	secondStrategy := buildStrategy(info, "residential")
	assert.Equal(t, firstStrategy, secondStrategy)
}

func TestFormatYen(t *testing.T) {
	tests := []struct {
		amount int
		want   string
	}{
		{amount: 0, want: "0"},
		{amount: 800, want: "800"},
		{amount: 1500, want: "1,500"},
		{amount: 100000, want: "100,000"},
		{amount: 3150000, want: "3,150,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatYen(tt.amount))
	}
}
