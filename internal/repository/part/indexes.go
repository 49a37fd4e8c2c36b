package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the indexes the catalog filters and sorts rely on.
// Sort indexes end in _id to match the keyset tie-breaker.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldStockStatus, Value: 1}, {Key: fieldCreatedAt, Value: -1}, {Key: fieldID, Value: -1}}},
		{Keys: bson.D{{Key: fieldCategory, Value: 1}}},
		{Keys: bson.D{{Key: fieldVehicleMake, Value: 1}}},
		{Keys: bson.D{{Key: fieldVehicleYear, Value: 1}, {Key: fieldID, Value: 1}}},
		{Keys: bson.D{{Key: fieldCreatedAt, Value: -1}, {Key: fieldID, Value: -1}}},
		{Keys: bson.D{{Key: fieldPriceCents, Value: 1}, {Key: fieldID, Value: 1}}},
	}, options.CreateIndexes())

	return err
}
