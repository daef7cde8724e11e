package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

// ReferenceRepository loads the reference catalog from MongoDB.
// ReferenceRepository はシミュレーションが参照する業態パラメータ・立地係数・
// ジャンル分類を Mongo から読み込むアダプタ。シミュレーション結果自体は
// 永続化しない。
type ReferenceRepository struct {
	params      *mongo.Collection
	multipliers *mongo.Collection
	genres      *mongo.Collection
	locations   *mongo.Collection
}

// Collections names the four reference collections.
type Collections struct {
	Params      string
	Multipliers string
	Genres      string
	Locations   string
}

// NewReferenceRepository creates a Mongo-backed reference catalog source.
func NewReferenceRepository(db *mongo.Database, names Collections) *ReferenceRepository {
	return &ReferenceRepository{
		params:      db.Collection(names.Params),
		multipliers: db.Collection(names.Multipliers),
		genres:      db.Collection(names.Genres),
		locations:   db.Collection(names.Locations),
	}
}

// LoadCatalog reads every reference collection and builds an immutable snapshot.
// いずれかのコレクションが空の場合はシード漏れとみなしエラーを返す。
func (r *ReferenceRepository) LoadCatalog(ctx context.Context) (*reference.Catalog, error) {
	params, err := r.loadParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("業態パラメータの読み込みに失敗: %w", err)
	}
	multipliers, err := r.loadMultipliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("立地係数の読み込みに失敗: %w", err)
	}
	genres, err := r.loadGenres(ctx)
	if err != nil {
		return nil, fmt.Errorf("ジャンル分類の読み込みに失敗: %w", err)
	}
	locations, err := r.loadLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("立地オプションの読み込みに失敗: %w", err)
	}

	data := reference.CatalogData{
		Genres:      genres,
		Params:      params,
		Multipliers: multipliers,
		Locations:   locations,
	}
	return reference.NewCatalog(data, "mongo"), nil
}

func (r *ReferenceRepository) loadParams(ctx context.Context) (map[string]reference.CategoryParams, error) {
	cursor, err := r.params.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	params := make(map[string]reference.CategoryParams)
	for cursor.Next(ctx) {
		var doc categoryParamsDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		params[doc.Key] = reference.CategoryParams{
			FoodCostRatio:            doc.FoodCostRatio,
			LaborCostRatio:           doc.LaborCostRatio,
			RentRatio:                doc.RentRatio,
			TurnoverRate:             doc.TurnoverRate,
			InitialInvestmentPerSeat: doc.InitialInvestmentPerSeat,
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if len(params) == 0 {
		return nil, fmt.Errorf("業態パラメータがシードされていません")
	}
	return params, nil
}

func (r *ReferenceRepository) loadMultipliers(ctx context.Context) (map[string]reference.LocationMultiplier, error) {
	cursor, err := r.multipliers.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	multipliers := make(map[string]reference.LocationMultiplier)
	for cursor.Next(ctx) {
		var doc locationMultiplierDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		multipliers[doc.Key] = reference.LocationMultiplier{
			Rent:     doc.Rent,
			Customer: doc.Customer,
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if len(multipliers) == 0 {
		return nil, fmt.Errorf("立地係数がシードされていません")
	}
	return multipliers, nil
}

func (r *ReferenceRepository) loadGenres(ctx context.Context) ([]reference.MainCategory, error) {
	cursor, err := r.genres.Find(ctx, bson.D{}, findSortedByOrder())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var genres []reference.MainCategory
	for cursor.Next(ctx) {
		var doc genreDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		genres = append(genres, mapGenreDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if len(genres) == 0 {
		return nil, fmt.Errorf("ジャンル分類がシードされていません")
	}
	return genres, nil
}

func (r *ReferenceRepository) loadLocations(ctx context.Context) ([]reference.LocationOption, error) {
	cursor, err := r.locations.Find(ctx, bson.D{}, findSortedByOrder())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []reference.LocationOption
	for cursor.Next(ctx) {
		var doc locationOptionDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		locations = append(locations, reference.LocationOption{
			Value:       doc.Value,
			Label:       doc.Label,
			Description: doc.Description,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	if len(locations) == 0 {
		return nil, fmt.Errorf("立地オプションがシードされていません")
	}
	return locations, nil
}

func mapGenreDocument(doc genreDocument) reference.MainCategory {
	subCategories := make([]reference.SubCategory, 0, len(doc.SubCategories))
	for _, sub := range doc.SubCategories {
		subCategories = append(subCategories, reference.SubCategory{
			ID:   sub.ID,
			Name: sub.Name,
			Icon: sub.Icon,
		})
	}
	return reference.MainCategory{
		ID:            doc.GenreID,
		Name:          doc.Name,
		Icon:          doc.Icon,
		SubCategories: subCategories,
	}
}
