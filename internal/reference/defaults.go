package reference

// defaultParams は業態別の基本パラメータ。実在店舗の公開指標をもとにした計画値。
var defaultParams = map[string]CategoryParams{
	// 和食
	"sushi":    {FoodCostRatio: 0.35, LaborCostRatio: 0.30, RentRatio: 0.10, TurnoverRate: 2.0, InitialInvestmentPerSeat: 80000},
	"tempura":  {FoodCostRatio: 0.32, LaborCostRatio: 0.28, RentRatio: 0.10, TurnoverRate: 2.5, InitialInvestmentPerSeat: 70000},
	"ramen":    {FoodCostRatio: 0.30, LaborCostRatio: 0.25, RentRatio: 0.12, TurnoverRate: 4.0, InitialInvestmentPerSeat: 50000},
	"udon":     {FoodCostRatio: 0.28, LaborCostRatio: 0.25, RentRatio: 0.12, TurnoverRate: 3.5, InitialInvestmentPerSeat: 45000},
	"izakaya":  {FoodCostRatio: 0.30, LaborCostRatio: 0.28, RentRatio: 0.10, TurnoverRate: 1.5, InitialInvestmentPerSeat: 60000},
	"yakitori": {FoodCostRatio: 0.28, LaborCostRatio: 0.28, RentRatio: 0.10, TurnoverRate: 2.0, InitialInvestmentPerSeat: 55000},
	"tonkatsu": {FoodCostRatio: 0.32, LaborCostRatio: 0.26, RentRatio: 0.10, TurnoverRate: 3.0, InitialInvestmentPerSeat: 50000},
	"teishoku": {FoodCostRatio: 0.30, LaborCostRatio: 0.26, RentRatio: 0.12, TurnoverRate: 3.5, InitialInvestmentPerSeat: 45000},
	// 洋食
	"italian": {FoodCostRatio: 0.32, LaborCostRatio: 0.28, RentRatio: 0.10, TurnoverRate: 2.0, InitialInvestmentPerSeat: 70000},
	"french":  {FoodCostRatio: 0.35, LaborCostRatio: 0.30, RentRatio: 0.08, TurnoverRate: 1.5, InitialInvestmentPerSeat: 100000},
	"steak":   {FoodCostRatio: 0.38, LaborCostRatio: 0.25, RentRatio: 0.10, TurnoverRate: 2.0, InitialInvestmentPerSeat: 80000},
	"hamburg": {FoodCostRatio: 0.32, LaborCostRatio: 0.26, RentRatio: 0.12, TurnoverRate: 3.0, InitialInvestmentPerSeat: 50000},
	"yoshoku": {FoodCostRatio: 0.30, LaborCostRatio: 0.26, RentRatio: 0.12, TurnoverRate: 3.0, InitialInvestmentPerSeat: 50000},
	// カフェ
	"coffee": {FoodCostRatio: 0.25, LaborCostRatio: 0.30, RentRatio: 0.12, TurnoverRate: 3.0, InitialInvestmentPerSeat: 60000},
	"sweets": {FoodCostRatio: 0.28, LaborCostRatio: 0.28, RentRatio: 0.12, TurnoverRate: 2.5, InitialInvestmentPerSeat: 65000},
	"lunch":  {FoodCostRatio: 0.30, LaborCostRatio: 0.28, RentRatio: 0.12, TurnoverRate: 2.5, InitialInvestmentPerSeat: 55000},
	"night":  {FoodCostRatio: 0.28, LaborCostRatio: 0.30, RentRatio: 0.10, TurnoverRate: 1.5, InitialInvestmentPerSeat: 70000},
	// アジア料理
	"chinese":    {FoodCostRatio: 0.30, LaborCostRatio: 0.26, RentRatio: 0.10, TurnoverRate: 3.0, InitialInvestmentPerSeat: 55000},
	"korean":     {FoodCostRatio: 0.32, LaborCostRatio: 0.26, RentRatio: 0.10, TurnoverRate: 2.5, InitialInvestmentPerSeat: 55000},
	"thai":       {FoodCostRatio: 0.28, LaborCostRatio: 0.26, RentRatio: 0.10, TurnoverRate: 2.5, InitialInvestmentPerSeat: 50000},
	"vietnamese": {FoodCostRatio: 0.28, LaborCostRatio: 0.26, RentRatio: 0.10, TurnoverRate: 2.5, InitialInvestmentPerSeat: 50000},
	"indian":     {FoodCostRatio: 0.28, LaborCostRatio: 0.26, RentRatio: 0.10, TurnoverRate: 2.5, InitialInvestmentPerSeat: 55000},
	// ファストフード
	"burger":  {FoodCostRatio: 0.30, LaborCostRatio: 0.28, RentRatio: 0.12, TurnoverRate: 4.0, InitialInvestmentPerSeat: 50000},
	"pizza":   {FoodCostRatio: 0.28, LaborCostRatio: 0.26, RentRatio: 0.12, TurnoverRate: 3.0, InitialInvestmentPerSeat: 55000},
	"chicken": {FoodCostRatio: 0.32, LaborCostRatio: 0.26, RentRatio: 0.12, TurnoverRate: 4.0, InitialInvestmentPerSeat: 45000},
	"bento":   {FoodCostRatio: 0.35, LaborCostRatio: 0.24, RentRatio: 0.12, TurnoverRate: 5.0, InitialInvestmentPerSeat: 35000},
	// バー
	"bar":        {FoodCostRatio: 0.22, LaborCostRatio: 0.30, RentRatio: 0.10, TurnoverRate: 1.5, InitialInvestmentPerSeat: 80000},
	"wine":       {FoodCostRatio: 0.35, LaborCostRatio: 0.28, RentRatio: 0.10, TurnoverRate: 1.5, InitialInvestmentPerSeat: 85000},
	"craft-beer": {FoodCostRatio: 0.30, LaborCostRatio: 0.28, RentRatio: 0.10, TurnoverRate: 2.0, InitialInvestmentPerSeat: 75000},
	"standing":   {FoodCostRatio: 0.28, LaborCostRatio: 0.26, RentRatio: 0.10, TurnoverRate: 3.0, InitialInvestmentPerSeat: 40000},
}

// defaultMultipliers は立地による家賃・集客の補正係数。
var defaultMultipliers = map[string]LocationMultiplier{
	"station":     {Rent: 1.3, Customer: 1.2},
	"office":      {Rent: 1.2, Customer: 1.1},
	"residential": {Rent: 0.8, Customer: 0.9},
	"shopping":    {Rent: 1.5, Customer: 1.3},
	"roadside":    {Rent: 0.7, Customer: 1.0},
}

var defaultGenres = []MainCategory{
	{
		ID:   "japanese",
		Name: "和食",
		Icon: "🍣",
		SubCategories: []SubCategory{
			{ID: "sushi", Name: "寿司", Icon: "🍣"},
			{ID: "tempura", Name: "天ぷら", Icon: "🍤"},
			{ID: "ramen", Name: "ラーメン", Icon: "🍜"},
			{ID: "udon", Name: "うどん・そば", Icon: "🥢"},
			{ID: "izakaya", Name: "居酒屋", Icon: "🍶"},
			{ID: "yakitori", Name: "焼鳥", Icon: "🍢"},
			{ID: "tonkatsu", Name: "とんかつ", Icon: "🥩"},
			{ID: "teishoku", Name: "定食屋", Icon: "🍱"},
		},
	},
	{
		ID:   "western",
		Name: "洋食",
		Icon: "🍝",
		SubCategories: []SubCategory{
			{ID: "italian", Name: "イタリアン", Icon: "🍝"},
			{ID: "french", Name: "フレンチ", Icon: "🥐"},
			{ID: "steak", Name: "ステーキ", Icon: "🥩"},
			{ID: "hamburg", Name: "ハンバーグ", Icon: "🍔"},
			{ID: "yoshoku", Name: "洋食屋", Icon: "🍽️"},
		},
	},
	{
		ID:   "cafe",
		Name: "カフェ",
		Icon: "☕",
		SubCategories: []SubCategory{
			{ID: "coffee", Name: "コーヒー専門店", Icon: "☕"},
			{ID: "sweets", Name: "スイーツカフェ", Icon: "🍰"},
			{ID: "lunch", Name: "ランチカフェ", Icon: "🥪"},
			{ID: "night", Name: "ナイトカフェ", Icon: "🌙"},
		},
	},
	{
		ID:   "asian",
		Name: "アジア料理",
		Icon: "🥟",
		SubCategories: []SubCategory{
			{ID: "chinese", Name: "中華料理", Icon: "🥟"},
			{ID: "korean", Name: "韓国料理", Icon: "🥘"},
			{ID: "thai", Name: "タイ料理", Icon: "🍛"},
			{ID: "vietnamese", Name: "ベトナム料理", Icon: "🍜"},
			{ID: "indian", Name: "インド料理", Icon: "🫓"},
		},
	},
	{
		ID:   "fastfood",
		Name: "ファストフード",
		Icon: "🍔",
		SubCategories: []SubCategory{
			{ID: "burger", Name: "ハンバーガー", Icon: "🍔"},
			{ID: "pizza", Name: "ピザ", Icon: "🍕"},
			{ID: "chicken", Name: "チキン", Icon: "🍗"},
			{ID: "bento", Name: "弁当・惣菜", Icon: "🍱"},
		},
	},
	{
		ID:   "bar",
		Name: "バー・居酒屋",
		Icon: "🍸",
		SubCategories: []SubCategory{
			{ID: "bar", Name: "バー", Icon: "🍸"},
			{ID: "wine", Name: "ワインバー", Icon: "🍷"},
			{ID: "craft-beer", Name: "クラフトビール", Icon: "🍺"},
			{ID: "standing", Name: "立ち飲み", Icon: "🥂"},
		},
	},
}

var defaultLocations = []LocationOption{
	{Value: "station", Label: "駅前・駅近", Description: "通勤客や買い物客が多い"},
	{Value: "office", Label: "オフィス街", Description: "ランチ需要が高い"},
	{Value: "residential", Label: "住宅街", Description: "リピーター獲得しやすい"},
	{Value: "shopping", Label: "商業施設内", Description: "集客力が高い"},
	{Value: "roadside", Label: "ロードサイド", Description: "駐車場確保で車客狙い"},
}

// DefaultData returns the embedded reference dataset.
// cmd/seed が Mongo への初期投入にも使う。
func DefaultData() CatalogData {
	return CatalogData{
		Genres:      defaultGenres,
		Params:      defaultParams,
		Multipliers: defaultMultipliers,
		Locations:   defaultLocations,
	}
}
