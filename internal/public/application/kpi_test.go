package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

func TestComputeDailyCustomers(t *testing.T) {
	tests := []struct {
		name               string
		seats              int
		turnoverRate       float64
		customerMultiplier float64
		want               int
	}{
		{name: "teishoku at station", seats: 20, turnoverRate: 3.5, customerMultiplier: 1.2, want: 84},
		{name: "rounds to nearest", seats: 7, turnoverRate: 1.5, customerMultiplier: 0.9, want: 9},
		{name: "small bar", seats: 1, turnoverRate: 1.5, customerMultiplier: 0.9, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeDailyCustomers(tt.seats, tt.turnoverRate, tt.customerMultiplier))
		})
	}
}

func TestBuildKPI(t *testing.T) {
	params := reference.CategoryParams{
		FoodCostRatio:            0.30,
		LaborCostRatio:           0.26,
		RentRatio:                0.12,
		TurnoverRate:             3.5,
		InitialInvestmentPerSeat: 45000,
	}
	multiplier := reference.LocationMultiplier{Rent: 1.3, Customer: 1.2}
	info := domain.BasicInfo{Seats: 20, UnitPrice: 1500}

	kpi, monthlyRevenue := buildKPI(info, params, multiplier)

	assert.Equal(t, 84, kpi.DailyCustomers)
	assert.Equal(t, 3150000, kpi.MonthlyRevenue)
	assert.InDelta(t, 3150000, monthlyRevenue, 1e-6)
	assert.Equal(t, 3.5, kpi.TurnoverRate)
	assert.Equal(t, 1500, kpi.AverageSpending)
	assert.InDelta(t, 26.0, kpi.LaborCostRatio, 1e-9)
	assert.InDelta(t, 30.0, kpi.FoodCostRatio, 1e-9)
	// 家賃比率のみ立地補正済みの実効値。
	assert.InDelta(t, 15.6, kpi.RentRatio, 1e-9)
}
