package public

import (
	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

// basicInfoPayload は入力フォームが送る店舗基本条件。
type basicInfoPayload struct {
	Seats          int    `json:"seats"`
	UnitPrice      int    `json:"unitPrice"`
	OpeningHours   string `json:"openingHours"`
	Location       string `json:"location"`
	TargetCustomer string `json:"targetCustomer"`
	SpecialFeature string `json:"specialFeature"`
}

type simulateRequest struct {
	MainCategory string           `json:"mainCategory"`
	SubCategory  string           `json:"subCategory"`
	BasicInfo    basicInfoPayload `json:"basicInfo"`
}

type conceptPayload struct {
	StoreName     string   `json:"storeName"`
	Concept       string   `json:"concept"`
	TargetMessage string   `json:"targetMessage"`
	UniquePoints  []string `json:"uniquePoints"`
}

type kpiPayload struct {
	MonthlyRevenue  int     `json:"monthlyRevenue"`
	DailyCustomers  int     `json:"dailyCustomers"`
	TurnoverRate    float64 `json:"turnoverRate"`
	AverageSpending int     `json:"averageSpending"`
	LaborCostRatio  float64 `json:"laborCostRatio"`
	FoodCostRatio   float64 `json:"foodCostRatio"`
	RentRatio       float64 `json:"rentRatio"`
}

type strategyPayload struct {
	Marketing           []string `json:"marketing"`
	Operation           []string `json:"operation"`
	MenuRecommendations []string `json:"menuRecommendations"`
}

type financialForecastPayload struct {
	InitialInvestment   int `json:"initialInvestment"`
	MonthlyFixedCost    int `json:"monthlyFixedCost"`
	MonthlyVariableCost int `json:"monthlyVariableCost"`
	BreakEvenMonths     int `json:"breakEvenMonths"`
	YearlyProfit        int `json:"yearlyProfit"`
}

type simulationResultPayload struct {
	Concept           conceptPayload           `json:"concept"`
	KPI               kpiPayload               `json:"kpi"`
	Strategy          strategyPayload          `json:"strategy"`
	FinancialForecast financialForecastPayload `json:"financialForecast"`
}

type simulationMetaPayload struct {
	SimulationID string `json:"simulationId"`
	DurationMs   int64  `json:"durationMs"`
}

// simulateResponse は成功時に data、失敗時に error のみを載せる応答封筒。
type simulateResponse struct {
	Success bool                     `json:"success"`
	Data    *simulationResultPayload `json:"data,omitempty"`
	Error   string                   `json:"error,omitempty"`
	Meta    *simulationMetaPayload   `json:"meta,omitempty"`
}

type subCategoryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type genrePayload struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Icon          string               `json:"icon"`
	SubCategories []subCategoryPayload `json:"subCategories"`
}

type genreListResponse struct {
	Items []genrePayload `json:"items"`
}

type locationOptionPayload struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type locationListResponse struct {
	Items []locationOptionPayload `json:"items"`
}

// buildSimulationResultPayload は SimulationResult ドメインモデルを応答 DTO に変換する。
func buildSimulationResultPayload(result domain.SimulationResult) simulationResultPayload {
	return simulationResultPayload{
		Concept: conceptPayload{
			StoreName:     result.Concept.StoreName,
			Concept:       result.Concept.Concept,
			TargetMessage: result.Concept.TargetMessage,
			UniquePoints:  append([]string{}, result.Concept.UniquePoints...),
		},
		KPI: kpiPayload{
			MonthlyRevenue:  result.KPI.MonthlyRevenue,
			DailyCustomers:  result.KPI.DailyCustomers,
			TurnoverRate:    result.KPI.TurnoverRate,
			AverageSpending: result.KPI.AverageSpending,
			LaborCostRatio:  result.KPI.LaborCostRatio,
			FoodCostRatio:   result.KPI.FoodCostRatio,
			RentRatio:       result.KPI.RentRatio,
		},
		Strategy: strategyPayload{
			Marketing:           append([]string{}, result.Strategy.Marketing...),
			Operation:           append([]string{}, result.Strategy.Operation...),
			MenuRecommendations: append([]string{}, result.Strategy.MenuRecommendations...),
		},
		FinancialForecast: financialForecastPayload{
			InitialInvestment:   result.FinancialForecast.InitialInvestment,
			MonthlyFixedCost:    result.FinancialForecast.MonthlyFixedCost,
			MonthlyVariableCost: result.FinancialForecast.MonthlyVariableCost,
			BreakEvenMonths:     result.FinancialForecast.BreakEvenMonths,
			YearlyProfit:        result.FinancialForecast.YearlyProfit,
		},
	}
}

// buildGenrePayloads はジャンル分類をピッカー表示用 DTO に変換する。
func buildGenrePayloads(genres []reference.MainCategory) []genrePayload {
	items := make([]genrePayload, 0, len(genres))
	for _, genre := range genres {
		subCategories := make([]subCategoryPayload, 0, len(genre.SubCategories))
		for _, sub := range genre.SubCategories {
			subCategories = append(subCategories, subCategoryPayload{
				ID:   sub.ID,
				Name: sub.Name,
				Icon: sub.Icon,
			})
		}
		items = append(items, genrePayload{
			ID:            genre.ID,
			Name:          genre.Name,
			Icon:          genre.Icon,
			SubCategories: subCategories,
		})
	}
	return items
}

func buildLocationPayloads(locations []reference.LocationOption) []locationOptionPayload {
	items := make([]locationOptionPayload, 0, len(locations))
	for _, loc := range locations {
		items = append(items, locationOptionPayload{
			Value:       loc.Value,
			Label:       loc.Label,
			Description: loc.Description,
		})
	}
	return items
}
