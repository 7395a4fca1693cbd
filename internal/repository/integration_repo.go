package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trademate/internal/model"
)

// IntegrationRepo handles MongoDB operations for connected integrations
type IntegrationRepo interface {
	GetByUserID(ctx context.Context, userID string) ([]*model.Integration, error)
	Upsert(ctx context.Context, integration *model.Integration) error
	Deactivate(ctx context.Context, userID, provider string) error
}

type integrationRepo struct {
	collection *mongo.Collection
}

// NewIntegrationRepo creates a new integration repository
func NewIntegrationRepo(db *mongo.Database) IntegrationRepo {
	return &integrationRepo{
		collection: db.Collection("integrations"),
	}
}

func (r *integrationRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Integration, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var integrations []*model.Integration
	if err := cursor.All(ctx, &integrations); err != nil {
		return nil, err
	}
	return integrations, nil
}

func (r *integrationRepo) Upsert(ctx context.Context, integration *model.Integration) error {
	integration.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"userId": integration.UserID, "provider": integration.Provider}
	_, err := r.collection.ReplaceOne(ctx, filter, integration, opts)
	return err
}

func (r *integrationRepo) Deactivate(ctx context.Context, userID, provider string) error {
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	_, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID, "provider": provider}, update)
	return err
}
