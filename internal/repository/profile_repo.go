package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trademate/internal/model"
)

// ProfileRepo handles MongoDB operations for user profiles
type ProfileRepo interface {
	Create(ctx context.Context, profile *model.UserProfile) error
	GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error)
	SaveChaosResult(ctx context.Context, userID string, result *model.ChaosResult) error
}

type profileRepo struct {
	collection *mongo.Collection
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *mongo.Database) ProfileRepo {
	return &profileRepo{
		collection: db.Collection("user_profiles"),
	}
}

func (r *profileRepo) Create(ctx context.Context, profile *model.UserProfile) error {
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, profile)
	return err
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepo) SaveChaosResult(ctx context.Context, userID string, result *model.ChaosResult) error {
	opts := options.Update().SetUpsert(true)
	update := bson.M{
		"$set": bson.M{
			"chaosResult": result,
			"updatedAt":   time.Now(),
		},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update, opts)
	return err
}
