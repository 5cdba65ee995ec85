package roleRepo

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

// MongoRoleRepo implements RoleRepository using MongoDB.
type MongoRoleRepo struct {
	coll *mongo.Collection
}

func NewMongoRoleRepo(db *mongo.Database) *MongoRoleRepo {
	return &MongoRoleRepo{coll: db.Collection(collectionName)}
}

func (r *MongoRoleRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "role", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create role indexes: %w", err)
	}
	return nil
}

func (r *MongoRoleRepo) HasRole(ctx context.Context, userID, role string) (bool, error) {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "role": role}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check role %s for %s: %w", role, userID, err)
	}
	return count > 0, nil
}

func (r *MongoRoleRepo) Grant(ctx context.Context, userID, role string) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "role": role}
	update := bson.M{"$setOnInsert": models.RoleAssignment{UserID: userID, Role: role, CreatedAt: time.Now().UTC()}}
	if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
		return fmt.Errorf("failed to grant role %s to %s: %w", role, userID, err)
	}
	return nil
}

func (r *MongoRoleRepo) Revoke(ctx context.Context, userID, role string) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"user_id": userID, "role": role}); err != nil {
		return fmt.Errorf("failed to revoke role %s from %s: %w", role, userID, err)
	}
	return nil
}
