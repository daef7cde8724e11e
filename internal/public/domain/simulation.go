package domain

// BasicInfo は入力フォームで収集する店舗の基本条件。
// 数値レンジの検証は呼び出し側（HTTP層）の責務で、ドメインでは再検証しない。
type BasicInfo struct {
	Seats          int
	UnitPrice      int
	OpeningHours   string
	Location       string
	TargetCustomer string
	SpecialFeature string
}

// SimulationInput is one validated simulation request.
type SimulationInput struct {
	MainCategory string
	SubCategory  string
	BasicInfo    BasicInfo
}

// Concept is the generated store concept narrative.
type Concept struct {
	StoreName     string
	Concept       string
	TargetMessage string
	UniquePoints  []string
}

// KPI aggregates the derived operating indicators.
// RentRatio のみ立地補正済みの実効値で、FoodCostRatio/LaborCostRatio は
// 業態テーブルの生値（いずれもパーセント表記）。
type KPI struct {
	MonthlyRevenue  int
	DailyCustomers  int
	TurnoverRate    float64
	AverageSpending int
	LaborCostRatio  float64
	FoodCostRatio   float64
	RentRatio       float64
}

// Strategy is the generated marketing/operation/menu recommendation set.
type Strategy struct {
	Marketing           []string
	Operation           []string
	MenuRecommendations []string
}

// FinancialForecast is the monthly/yearly financial outlook.
// BreakEvenMonths は利益が出ない場合に番兵値 999 を取る。
type FinancialForecast struct {
	InitialInvestment   int
	MonthlyFixedCost    int
	MonthlyVariableCost int
	BreakEvenMonths     int
	YearlyProfit        int
}

// SimulationResult groups every section of one simulation response.
// 1リクエストの間だけ存在し、構築後は変更しない。
type SimulationResult struct {
	Concept           Concept
	KPI               KPI
	Strategy          Strategy
	FinancialForecast FinancialForecast
}
