package db

import (
	"context"
	"fmt"
	"os"
	"time"

	model "github.com/pharmakart/loyalty/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Справочник уровней и настроек программы, только чтение
type ReferenceDB struct {
	mgo    *mongo.Client
	tiers  *mongo.Collection
	config *mongo.Collection
}

func NewReferenceDB() (*ReferenceDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("LOYALTY_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env LOYALTY_MONGO is not set")
	}

	opts := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("loyaltyDB")

	return &ReferenceDB{client, db.Collection("tiers"), db.Collection("config")}, nil
}

// Таблица уровней по возрастанию порога
func (r *ReferenceDB) GetTiers(ctx context.Context) ([]model.Tier, error) {
	var tiers []model.Tier
	opts := options.Find().SetSort(bson.M{"minpoints": 1})
	result, err := r.tiers.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	for result.Next(ctx) {
		var tier model.Tier
		err := result.Decode(&tier)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}

func (r *ReferenceDB) GetConfig(ctx context.Context) (model.ProgramConfig, error) {
	var cfg model.ProgramConfig
	err := r.config.FindOne(ctx, bson.M{}).Decode(&cfg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return model.ProgramConfig{}, fmt.Errorf("loyalty program config: %w", model.ErrConfiguration)
		}
		return model.ProgramConfig{}, err
	}
	return cfg, nil
}
