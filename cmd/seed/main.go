package main

import (
	"context"
	"flag"
	"log"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/omise-ai/omise-ai-services/api/internal/config"
	"github.com/omise-ai/omise-ai-services/api/internal/reference"
)

// seed は組み込みのリファレンスデータセットを Mongo へ投入する。
// API はこのデータを起動時に読み込み、シミュレーション結果は一切書き込まない。
func main() {
	drop := flag.Bool("drop", false, "既存のリファレンスコレクションを削除してから投入する")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stdout, "[omise-ai-seed] ", log.LstdFlags)

	cfg := config.Load()
	if !cfg.MongoConfigured() {
		logger.Fatal("MONGO_URI を設定してください")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		logger.Fatalf("MongoDB 接続に失敗しました: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Printf("MongoDB 切断時にエラー: %v", err)
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	data := reference.DefaultData()

	collectionNames := []string{
		cfg.ParamsCollection,
		cfg.MultiplierCollection,
		cfg.GenreCollection,
		cfg.LocationCollection,
	}
	if *drop {
		for _, name := range collectionNames {
			if err := db.Collection(name).Drop(ctx); err != nil {
				logger.Fatalf("コレクション %s の削除に失敗: %v", name, err)
			}
		}
		logger.Printf("既存のリファレンスコレクションを削除しました")
	}

	if err := seedParams(ctx, db.Collection(cfg.ParamsCollection), data.Params); err != nil {
		logger.Fatalf("業態パラメータの投入に失敗: %v", err)
	}
	if err := seedMultipliers(ctx, db.Collection(cfg.MultiplierCollection), data.Multipliers); err != nil {
		logger.Fatalf("立地係数の投入に失敗: %v", err)
	}
	if err := seedGenres(ctx, db.Collection(cfg.GenreCollection), data.Genres); err != nil {
		logger.Fatalf("ジャンル分類の投入に失敗: %v", err)
	}
	if err := seedLocations(ctx, db.Collection(cfg.LocationCollection), data.Locations); err != nil {
		logger.Fatalf("立地オプションの投入に失敗: %v", err)
	}

	logger.Printf("投入完了: 業態=%d 立地=%d ジャンル=%d 立地オプション=%d",
		len(data.Params), len(data.Multipliers), len(data.Genres), len(data.Locations))
}

func seedParams(ctx context.Context, collection *mongo.Collection, params map[string]reference.CategoryParams) error {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	docs := make([]any, 0, len(keys))
	for _, key := range keys {
		p := params[key]
		docs = append(docs, bson.M{
			"key":                      key,
			"foodCostRatio":            p.FoodCostRatio,
			"laborCostRatio":           p.LaborCostRatio,
			"rentRatio":                p.RentRatio,
			"turnoverRate":             p.TurnoverRate,
			"initialInvestmentPerSeat": p.InitialInvestmentPerSeat,
		})
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}

func seedMultipliers(ctx context.Context, collection *mongo.Collection, multipliers map[string]reference.LocationMultiplier) error {
	keys := make([]string, 0, len(multipliers))
	for key := range multipliers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	docs := make([]any, 0, len(keys))
	for _, key := range keys {
		m := multipliers[key]
		docs = append(docs, bson.M{
			"key":      key,
			"rent":     m.Rent,
			"customer": m.Customer,
		})
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}

func seedGenres(ctx context.Context, collection *mongo.Collection, genres []reference.MainCategory) error {
	docs := make([]any, 0, len(genres))
	for i, genre := range genres {
		subCategories := make([]bson.M, 0, len(genre.SubCategories))
		for _, sub := range genre.SubCategories {
			subCategories = append(subCategories, bson.M{
				"id":   sub.ID,
				"name": sub.Name,
				"icon": sub.Icon,
			})
		}
		docs = append(docs, bson.M{
			"genreId":       genre.ID,
			"name":          genre.Name,
			"icon":          genre.Icon,
			"order":         i,
			"subCategories": subCategories,
		})
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}

func seedLocations(ctx context.Context, collection *mongo.Collection, locations []reference.LocationOption) error {
	docs := make([]any, 0, len(locations))
	for i, loc := range locations {
		docs = append(docs, bson.M{
			"value":       loc.Value,
			"label":       loc.Label,
			"description": loc.Description,
			"order":       i,
		})
	}
	_, err := collection.InsertMany(ctx, docs)
	return err
}
