package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trademate/internal/model"
)

// SettingsRepo handles MongoDB operations for business settings
type SettingsRepo interface {
	GetByUserID(ctx context.Context, userID string) (*model.BusinessSettings, error)
	Upsert(ctx context.Context, settings *model.BusinessSettings) error
}

type settingsRepo struct {
	collection *mongo.Collection
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *mongo.Database) SettingsRepo {
	return &settingsRepo{
		collection: db.Collection("business_settings"),
	}
}

func (r *settingsRepo) GetByUserID(ctx context.Context, userID string) (*model.BusinessSettings, error) {
	var settings model.BusinessSettings
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, settings *model.BusinessSettings) error {
	settings.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"userId": settings.UserID}, settings, opts)
	return err
}
