package reference

import (
	"sort"
	"strings"
	"time"
)

// DefaultSubCategory は未知の業態キーに対するフォールバック先。
// 「一般的な飲食店」のベースラインとして定食屋のパラメータを使う。
const DefaultSubCategory = "teishoku"

// DefaultLocation は未知の立地キーに対するフォールバック先。
const DefaultLocation = "station"

// CategoryParams holds the per-subcategory planning ratios.
// 比率はすべて売上に対する割合 [0,1]、TurnoverRate は1席あたりの1日の回転数。
type CategoryParams struct {
	FoodCostRatio            float64
	LaborCostRatio           float64
	RentRatio                float64
	TurnoverRate             float64
	InitialInvestmentPerSeat int
}

// LocationMultiplier scales rent and customer footfall against the baseline.
type LocationMultiplier struct {
	Rent     float64
	Customer float64
}

// SubCategory is a selectable restaurant subcategory.
type SubCategory struct {
	ID   string
	Name string
	Icon string
}

// MainCategory groups subcategories for the genre picker.
type MainCategory struct {
	ID            string
	Name          string
	Icon          string
	SubCategories []SubCategory
}

// LocationOption describes one of the five location profiles.
type LocationOption struct {
	Value       string
	Label       string
	Description string
}

// CatalogData is the raw dataset a Catalog is built from.
// 組み込みデフォルト（defaults.go）と Mongo ロードの双方がこの形で渡す。
type CatalogData struct {
	Genres      []MainCategory
	Params      map[string]CategoryParams
	Multipliers map[string]LocationMultiplier
	Locations   []LocationOption
}

// Catalog is an immutable snapshot of the reference dataset.
// 一度構築したら変更しない。リロードは新しいスナップショットへの差し替えで行う。
type Catalog struct {
	genres      []MainCategory
	params      map[string]CategoryParams
	multipliers map[string]LocationMultiplier
	locations   []LocationOption
	source      string
	loadedAt    time.Time
}

// NewCatalog copies data into an immutable snapshot tagged with its source.
func NewCatalog(data CatalogData, source string) *Catalog {
	params := make(map[string]CategoryParams, len(data.Params))
	for key, p := range data.Params {
		params[strings.TrimSpace(key)] = p
	}
	multipliers := make(map[string]LocationMultiplier, len(data.Multipliers))
	for key, m := range data.Multipliers {
		multipliers[strings.TrimSpace(key)] = m
	}

	return &Catalog{
		genres:      append([]MainCategory(nil), data.Genres...),
		params:      params,
		multipliers: multipliers,
		locations:   append([]LocationOption(nil), data.Locations...),
		source:      source,
		loadedAt:    time.Now(),
	}
}

// Default returns a catalog built from the embedded dataset.
func Default() *Catalog {
	return NewCatalog(DefaultData(), "embedded")
}

// ResolveSubCategory は業態キーを正規化する。未知のキーはデフォルト業態に丸める。
func (c *Catalog) ResolveSubCategory(subCategory string) string {
	key := strings.TrimSpace(subCategory)
	if _, ok := c.params[key]; ok {
		return key
	}
	return DefaultSubCategory
}

// ResolveCategoryParams looks up planning params for a subcategory.
// 未知のキーはデフォルト業態へフォールバックするため、失敗しない。
func (c *Catalog) ResolveCategoryParams(subCategory string) CategoryParams {
	return c.params[c.ResolveSubCategory(subCategory)]
}

// ResolveLocation は立地キーを正規化する。未知のキーはデフォルト立地に丸める。
func (c *Catalog) ResolveLocation(location string) string {
	key := strings.TrimSpace(location)
	if _, ok := c.multipliers[key]; ok {
		return key
	}
	return DefaultLocation
}

// ResolveLocationMultiplier looks up rent/customer multipliers for a location.
func (c *Catalog) ResolveLocationMultiplier(location string) LocationMultiplier {
	return c.multipliers[c.ResolveLocation(location)]
}

// GenreDisplayName は「メインジャンル名 サブジャンル名」の表示名を返す。
// どちらかが見つからない場合は見つかった側だけを返す。
func (c *Catalog) GenreDisplayName(mainCategory, subCategory string) string {
	var mainName, subName string
	for _, genre := range c.genres {
		if genre.ID != strings.TrimSpace(mainCategory) {
			continue
		}
		mainName = genre.Name
		for _, sub := range genre.SubCategories {
			if sub.ID == strings.TrimSpace(subCategory) {
				subName = sub.Name
				break
			}
		}
		break
	}
	return strings.TrimSpace(mainName + " " + subName)
}

// Genres returns the genre taxonomy for picker rendering.
func (c *Catalog) Genres() []MainCategory {
	return append([]MainCategory(nil), c.genres...)
}

// Locations returns the location options for picker rendering.
func (c *Catalog) Locations() []LocationOption {
	return append([]LocationOption(nil), c.locations...)
}

// SubCategoryKeys returns the parameter table keys in sorted order.
func (c *Catalog) SubCategoryKeys() []string {
	keys := make([]string, 0, len(c.params))
	for key := range c.params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LocationKeys returns the multiplier table keys in sorted order.
func (c *Catalog) LocationKeys() []string {
	keys := make([]string, 0, len(c.multipliers))
	for key := range c.multipliers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Source reports where this snapshot was loaded from ("embedded" or "mongo").
func (c *Catalog) Source() string {
	return c.source
}

// LoadedAt reports when this snapshot was built.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}
