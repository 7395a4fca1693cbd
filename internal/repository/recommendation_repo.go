package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trademate/internal/model"
)

// RecommendationRepo handles MongoDB operations for the recommendation
// feed. Rows are keyed on (userId, recommendationId); writing the same
// key twice replaces the row.
type RecommendationRepo interface {
	Upsert(ctx context.Context, rec *model.Recommendation) error
	GetByUserID(ctx context.Context, userID string) ([]*model.Recommendation, error)
	GetByStream(ctx context.Context, userID string, stream model.Stream) ([]*model.Recommendation, error)
	DeleteOtherBatches(ctx context.Context, userID, batchID string) error
}

type recommendationRepo struct {
	collection *mongo.Collection
}

// NewRecommendationRepo creates a new recommendation repository
func NewRecommendationRepo(db *mongo.Database) RecommendationRepo {
	return &recommendationRepo{
		collection: db.Collection("recommendations"),
	}
}

func (r *recommendationRepo) Upsert(ctx context.Context, rec *model.Recommendation) error {
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"userId": rec.UserID, "recommendationId": rec.ID}
	_, err := r.collection.ReplaceOne(ctx, filter, rec, opts)
	return err
}

func (r *recommendationRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Recommendation, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *recommendationRepo) GetByStream(ctx context.Context, userID string, stream model.Stream) ([]*model.Recommendation, error) {
	return r.find(ctx, bson.M{"userId": userID, "streamType": stream})
}

func (r *recommendationRepo) find(ctx context.Context, filter bson.M) ([]*model.Recommendation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rank", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recs []*model.Recommendation
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteOtherBatches removes rows left over from earlier generation
// runs, so the stored feed is always exactly the latest batch.
func (r *recommendationRepo) DeleteOtherBatches(ctx context.Context, userID, batchID string) error {
	filter := bson.M{"userId": userID, "batchId": bson.M{"$ne": batchID}}
	_, err := r.collection.DeleteMany(ctx, filter)
	return err
}
