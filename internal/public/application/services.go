package application

import (
	"context"
	"errors"

	"github.com/omise-ai/omise-ai-services/api/internal/public/domain"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

// CatalogSource は現在のリファレンスカタログスナップショットを提供するポート。
type CatalogSource interface {
	Current() *reference.Catalog
}

// SimulationService describes the simulation use-case.
// SimulationService は出店シミュレーションを1リクエスト分計算するユースケース。
type SimulationService interface {
	Simulate(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error)
}

// NewSimulationService creates the simulation service backed by a catalog source.
func NewSimulationService(catalogs CatalogSource) SimulationService {
	return &simulationService{catalogs: catalogs}
}

type simulationService struct {
	catalogs CatalogSource
}

// Simulate resolves reference parameters, derives KPI / financial forecast and
// generates the concept/strategy narrative for one input.
// 未知の業態・立地はデフォルト行へフォールバックするため、構文的に妥当な
// 入力に対しては失敗しない。
func (s *simulationService) Simulate(ctx context.Context, input domain.SimulationInput) (*domain.SimulationResult, error) {
	catalog := s.catalogs.Current()
	if catalog == nil {
		return nil, errors.New("リファレンスカタログが初期化されていません")
	}

	subCategory := catalog.ResolveSubCategory(input.SubCategory)
	location := catalog.ResolveLocation(input.BasicInfo.Location)
	params := catalog.ResolveCategoryParams(subCategory)
	multiplier := catalog.ResolveLocationMultiplier(location)

	// 営業時間は解析契約を維持するが、売上モデルは月25営業日の固定前提で
	// 営業時間数を参照しない。
	_ = parseOperatingHours(input.BasicInfo.OpeningHours)

	genreName := catalog.GenreDisplayName(input.MainCategory, subCategory)

	kpi, monthlyRevenue := buildKPI(input.BasicInfo, params, multiplier)
	forecast := buildForecast(input.BasicInfo.Seats, monthlyRevenue, params, multiplier)
	concept := buildConcept(genreName, input.BasicInfo, subCategory, location)
	strategy := buildStrategy(input.BasicInfo, location)

	return &domain.SimulationResult{
		Concept:           concept,
		KPI:               kpi,
		Strategy:          strategy,
		FinancialForecast: forecast,
	}, nil
}
