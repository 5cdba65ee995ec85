package inquiryRepo

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

// MongoInquiryRepo implements InquiryRepository using MongoDB.
type MongoInquiryRepo struct {
	coll *mongo.Collection
}

func NewMongoInquiryRepo(db *mongo.Database) *MongoInquiryRepo {
	return &MongoInquiryRepo{coll: db.Collection(collectionName)}
}

func (r *MongoInquiryRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := database.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create inquiry indexes: %w", err)
	}
	return nil
}

func (r *MongoInquiryRepo) Create(ctx context.Context, inquiry *models.Inquiry) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

func (r *MongoInquiryRepo) find(ctx context.Context, filter bson.M) ([]models.Inquiry, error) {
	ctx, cancel := database.NewContext(ctx, database.ListTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode inquiries: %w", err)
	}
	return inquiries, nil
}

func (r *MongoInquiryRepo) ListByUser(ctx context.Context, userID string) ([]models.Inquiry, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *MongoInquiryRepo) ListAll(ctx context.Context) ([]models.Inquiry, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoInquiryRepo) UpdateStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	ctx, cancel := database.NewContext(ctx, database.SingleRowTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update inquiry %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inquiry %s: %w", id, database.ErrNotFound)
	}
	return nil
}
