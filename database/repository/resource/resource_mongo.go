// File: database/repository/resource/resource_mongo.go
package resourceRepo

import (
	"context"
	"fmt"
	"time"

	"xoadvisor/database"
	"xoadvisor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoResourceRepo implements ResourceRepository using MongoDB.
type MongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo creates a ResourceRepository backed by db.
func NewMongoResourceRepo(db *mongo.Database) *MongoResourceRepo {
	return &MongoResourceRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoResourceRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "category", Value: 1}, {Key: "title", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create resource indexes: %w", err)
	}
	return nil
}

func (r *MongoResourceRepo) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Resource, error) {
	ctx, cancel := database.NewContext(ctx, database.ListTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve resources: %w", err)
	}
	defer cursor.Close(ctx)

	resources := []models.Resource{}
	for cursor.Next(ctx) {
		var res models.Resource
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("failed to decode resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resources: %w", err)
	}
	return resources, nil
}

func (r *MongoResourceRepo) ListActive(ctx context.Context) ([]models.Resource, error) {
	return r.find(ctx,
		bson.M{"is_active": true},
		bson.D{{Key: "category", Value: 1}, {Key: "title", Value: 1}},
	)
}

func (r *MongoResourceRepo) ListAll(ctx context.Context) ([]models.Resource, error) {
	return r.find(ctx, bson.M{}, bson.D{{Key: "created_at", Value: -1}})
}

func (r *MongoResourceRepo) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	var res models.Resource
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&res); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("resource %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch resource with id %s: %w", id, err)
	}
	return &res, nil
}

func (r *MongoResourceRepo) Create(ctx context.Context, resource *models.Resource) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, resource); err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}
	return nil
}

func (r *MongoResourceRepo) Update(ctx context.Context, id string, fields database.Fields) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	set := bson.M{}
	for col, v := range fields {
		if !updatable[col] {
			return fmt.Errorf("column %q cannot be updated on resources", col)
		}
		set[col] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update resource with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoResourceRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete resource with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("resource %s: %w", id, database.ErrNotFound)
	}
	return nil
}
