package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// categoryParamsDocument は業態別パラメータの MongoDB スキーマ表現。
type categoryParamsDocument struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty"`
	Key                      string             `bson:"key"`
	FoodCostRatio            float64            `bson:"foodCostRatio"`
	LaborCostRatio           float64            `bson:"laborCostRatio"`
	RentRatio                float64            `bson:"rentRatio"`
	TurnoverRate             float64            `bson:"turnoverRate"`
	InitialInvestmentPerSeat int                `bson:"initialInvestmentPerSeat"`
}

// locationMultiplierDocument は立地補正係数の MongoDB スキーマ表現。
type locationMultiplierDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Key      string             `bson:"key"`
	Rent     float64            `bson:"rent"`
	Customer float64            `bson:"customer"`
}

// genreDocument はジャンル分類の MongoDB スキーマ表現。order で表示順を保つ。
type genreDocument struct {
	ID            primitive.ObjectID    `bson:"_id,omitempty"`
	GenreID       string                `bson:"genreId"`
	Name          string                `bson:"name"`
	Icon          string                `bson:"icon"`
	Order         int                   `bson:"order"`
	SubCategories []subCategoryDocument `bson:"subCategories"`
}

type subCategoryDocument struct {
	ID   string `bson:"id"`
	Name string `bson:"name"`
	Icon string `bson:"icon"`
}

// locationOptionDocument は立地オプションの MongoDB スキーマ表現。
type locationOptionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Value       string             `bson:"value"`
	Label       string             `bson:"label"`
	Description string             `bson:"description"`
	Order       int                `bson:"order"`
}

func findSortedByOrder() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
}
