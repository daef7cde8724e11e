package application

import (
	"math"

	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

// operatingDaysPerMonth は月あたりの営業日数の固定前提。
// 営業時間やカレンダーからは導出しない。
const operatingDaysPerMonth = 25

// computeDailyCustomers = round(席数 × 回転率 × 立地集客係数)。
func computeDailyCustomers(seats int, turnoverRate, customerMultiplier float64) int {
	return int(math.Round(float64(seats) * turnoverRate * customerMultiplier))
}

// buildKPI derives the KPI record and returns the unrounded monthly revenue
// for downstream cost calculation.
// RentRatio だけは立地補正済みの実効値を載せる。FoodCostRatio/LaborCostRatio は
// 業態テーブルの生値のまま（いずれもパーセント表記）。
func buildKPI(info domain.BasicInfo, params reference.CategoryParams, multiplier reference.LocationMultiplier) (domain.KPI, float64) {
	dailyCustomers := computeDailyCustomers(info.Seats, params.TurnoverRate, multiplier.Customer)
	monthlyRevenue := float64(dailyCustomers) * float64(info.UnitPrice) * operatingDaysPerMonth

	kpi := domain.KPI{
		MonthlyRevenue:  int(math.Round(monthlyRevenue)),
		DailyCustomers:  dailyCustomers,
		TurnoverRate:    params.TurnoverRate,
		AverageSpending: info.UnitPrice,
		LaborCostRatio:  params.LaborCostRatio * 100,
		FoodCostRatio:   params.FoodCostRatio * 100,
		RentRatio:       params.RentRatio * multiplier.Rent * 100,
	}
	return kpi, monthlyRevenue
}
