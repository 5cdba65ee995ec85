// File: database/repository/profile/profile_mongo.go
package profileRepo

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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

func NewMongoProfileRepo(db *mongo.Database) *MongoProfileRepo {
	return &MongoProfileRepo{coll: db.Collection(collectionName)}
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoProfileRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}
	return nil
}

func (r *MongoProfileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	var profile models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("profile %s: %w", id, database.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	if profile.Needs == nil {
		profile.Needs = []string{}
	}
	return &profile, nil
}

func (r *MongoProfileRepo) Create(ctx context.Context, profile *models.Profile) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	if profile.Needs == nil {
		profile.Needs = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("profile %s: %w", profile.ID, database.ErrDuplicate)
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (r *MongoProfileRepo) Update(ctx context.Context, id string, fields database.Fields) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	set := bson.M{}
	for col, v := range fields {
		if !updatable[col] {
			return fmt.Errorf("column %q cannot be updated on profiles", col)
		}
		set[col] = v
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile %s: %w", id, database.ErrNotFound)
	}
	return nil
}

func (r *MongoProfileRepo) ListAll(ctx context.Context) ([]models.Profile, error) {
	ctx, cancel := database.NewContext(ctx, database.ListTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	defer cursor.Close(ctx)

	profiles := []models.Profile{}
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}
