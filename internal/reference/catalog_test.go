package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogInvariants(t *testing.T) {
	catalog := Default()

	keys := catalog.SubCategoryKeys()
	require.NotEmpty(t, keys)

	for _, key := range keys {
		params := catalog.ResolveCategoryParams(key)
		assert.GreaterOrEqual(t, params.FoodCostRatio, 0.0, "foodCostRatio %s", key)
		assert.LessOrEqual(t, params.FoodCostRatio, 1.0, "foodCostRatio %s", key)
		assert.GreaterOrEqual(t, params.LaborCostRatio, 0.0, "laborCostRatio %s", key)
		assert.LessOrEqual(t, params.LaborCostRatio, 1.0, "laborCostRatio %s", key)
		assert.GreaterOrEqual(t, params.RentRatio, 0.0, "rentRatio %s", key)
		assert.LessOrEqual(t, params.RentRatio, 1.0, "rentRatio %s", key)
		assert.Greater(t, params.TurnoverRate, 0.0, "turnoverRate %s", key)
		assert.Greater(t, params.InitialInvestmentPerSeat, 0, "initialInvestmentPerSeat %s", key)
	}

	for _, key := range catalog.LocationKeys() {
		multiplier := catalog.ResolveLocationMultiplier(key)
		assert.GreaterOrEqual(t, multiplier.Rent, 0.0, "rent %s", key)
		assert.GreaterOrEqual(t, multiplier.Customer, 0.0, "customer %s", key)
	}
}

func TestDefaultCatalogTaxonomyHasParams(t *testing.T) {
	catalog := Default()

	// ピッカーに出る業態は必ずパラメータ行を持つ。
	for _, genre := range catalog.Genres() {
		for _, sub := range genre.SubCategories {
			assert.Equal(t, sub.ID, catalog.ResolveSubCategory(sub.ID), "subcategory %s should resolve to itself", sub.ID)
		}
	}
}

func TestResolveFallbacks(t *testing.T) {
	catalog := Default()

	assert.Equal(t, DefaultSubCategory, catalog.ResolveSubCategory("zeppelin-diner"))
	assert.Equal(t, catalog.ResolveCategoryParams("teishoku"), catalog.ResolveCategoryParams("zeppelin-diner"))

	assert.Equal(t, DefaultLocation, catalog.ResolveLocation("moon-base"))
	assert.Equal(t, catalog.ResolveLocationMultiplier("station"), catalog.ResolveLocationMultiplier("moon-base"))
}

func TestGenreDisplayName(t *testing.T) {
	catalog := Default()

	tests := []struct {
		name         string
		mainCategory string
		subCategory  string
		want         string
	}{
		{name: "both resolved", mainCategory: "japanese", subCategory: "teishoku", want: "和食 定食屋"},
		{name: "sub not under main", mainCategory: "bar", subCategory: "teishoku", want: "バー・居酒屋"},
		{name: "unknown main", mainCategory: "space-food", subCategory: "teishoku", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.GenreDisplayName(tt.mainCategory, tt.subCategory))
		})
	}
}

func TestStoreSnapshotSwap(t *testing.T) {
	first := Default()
	store := NewStore(first)
	require.Same(t, first, store.Current())

	second := NewCatalog(DefaultData(), "mongo")
	store.Replace(second)
	assert.Same(t, second, store.Current())
	assert.Equal(t, "mongo", store.Current().Source())
}
