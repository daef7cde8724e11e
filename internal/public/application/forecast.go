package application

import (
	"math"

	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

const (
	// otherCostRatio は水道光熱費・消耗品等のその他経費率（売上比）。
	otherCostRatio = 0.08
	// 人件費は 70/30、その他経費は 50/50 で固定費と変動費に按分する。
	// シフトの一部柔軟性と固定的な間接費を表すモデル上の取り決め。
	laborFixedShare    = 0.7
	laborVariableShare = 0.3
	otherFixedShare    = 0.5
	otherVariableShare = 0.5
	// breakEvenNotReachable は黒字化しない場合の番兵値。
	// 100以上は「実用的な期間では回収不能」を意味し、月数として扱わない。
	breakEvenNotReachable = 999
)

// buildForecast derives the cost breakdown, initial investment and break-even
// horizon from the unrounded monthly revenue.
// 金額の丸めは応答境界のここでのみ行い、中間計算は浮動小数のまま進める。
func buildForecast(seats int, monthlyRevenue float64, params reference.CategoryParams, multiplier reference.LocationMultiplier) domain.FinancialForecast {
	monthlyFoodCost := monthlyRevenue * params.FoodCostRatio
	monthlyLaborCost := monthlyRevenue * params.LaborCostRatio
	monthlyRent := monthlyRevenue * params.RentRatio * multiplier.Rent
	monthlyOtherCost := monthlyRevenue * otherCostRatio

	// 固定費と変動費の合計は総コストと一致しない。原価は全額変動費、
	// 家賃は全額固定費に寄せる取り決めのため。
	monthlyFixedCost := monthlyRent + monthlyLaborCost*laborFixedShare + monthlyOtherCost*otherFixedShare
	monthlyVariableCost := monthlyFoodCost + monthlyLaborCost*laborVariableShare + monthlyOtherCost*otherVariableShare

	initialInvestment := float64(seats) * float64(params.InitialInvestmentPerSeat)

	monthlyProfit := monthlyRevenue - monthlyFoodCost - monthlyLaborCost - monthlyRent - monthlyOtherCost
	yearlyProfit := monthlyProfit * 12

	breakEvenMonths := breakEvenNotReachable
	if monthlyProfit > 0 {
		breakEvenMonths = int(math.Ceil(initialInvestment / monthlyProfit))
	}

	return domain.FinancialForecast{
		InitialInvestment:   int(math.Round(initialInvestment)),
		MonthlyFixedCost:    int(math.Round(monthlyFixedCost)),
		MonthlyVariableCost: int(math.Round(monthlyVariableCost)),
		BreakEvenMonths:     breakEvenMonths,
		YearlyProfit:        int(math.Round(yearlyProfit)),
	}
}
