package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

func TestBuildForecastTeishokuAtStation(t *testing.T) {
	params := reference.CategoryParams{
		FoodCostRatio:            0.30,
		LaborCostRatio:           0.26,
		RentRatio:                0.12,
		TurnoverRate:             3.5,
		InitialInvestmentPerSeat: 45000,
	}
	multiplier := reference.LocationMultiplier{Rent: 1.3, Customer: 1.2}

	forecast := buildForecast(20, 3150000, params, multiplier)

	// 原価945,000 人件費819,000 家賃491,400 その他252,000 → 月次利益642,600。
	assert.Equal(t, 900000, forecast.InitialInvestment)
	assert.Equal(t, 1190700, forecast.MonthlyFixedCost)
	assert.Equal(t, 1316700, forecast.MonthlyVariableCost)
	assert.Equal(t, 7711200, forecast.YearlyProfit)
	assert.Equal(t, 2, forecast.BreakEvenMonths)
}

func TestBuildForecastNotProfitable(t *testing.T) {
	// 比率合計が1を超える構成では黒字化せず、番兵値を返す。
	params := reference.CategoryParams{
		FoodCostRatio:            0.50,
		LaborCostRatio:           0.40,
		RentRatio:                0.20,
		TurnoverRate:             2.0,
		InitialInvestmentPerSeat: 50000,
	}
	multiplier := reference.LocationMultiplier{Rent: 1.0, Customer: 1.0}

	forecast := buildForecast(10, 1000000, params, multiplier)

	assert.Equal(t, 999, forecast.BreakEvenMonths)
	assert.Negative(t, forecast.YearlyProfit)
}

func TestBuildForecastZeroRevenue(t *testing.T) {
	params := reference.CategoryParams{
		FoodCostRatio:            0.30,
		LaborCostRatio:           0.26,
		RentRatio:                0.12,
		TurnoverRate:             3.5,
		InitialInvestmentPerSeat: 45000,
	}
	multiplier := reference.LocationMultiplier{Rent: 1.3, Customer: 1.2}

	forecast := buildForecast(20, 0, params, multiplier)

	// 利益0は「黒字」ではないため回収不能扱い。
	assert.Equal(t, 999, forecast.BreakEvenMonths)
	assert.Equal(t, 900000, forecast.InitialInvestment)
	assert.Zero(t, forecast.MonthlyFixedCost)
	assert.Zero(t, forecast.MonthlyVariableCost)
	assert.Zero(t, forecast.YearlyProfit)
}
