package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trademate/internal/model"
)

// InteractionRepo handles MongoDB operations for recommendation interactions
type InteractionRepo interface {
	Create(ctx context.Context, interaction *model.Interaction) error
	GetByUserID(ctx context.Context, userID string) ([]*model.Interaction, error)
}

type interactionRepo struct {
	collection *mongo.Collection
}

// NewInteractionRepo creates a new interaction repository
func NewInteractionRepo(db *mongo.Database) InteractionRepo {
	return &interactionRepo{
		collection: db.Collection("interactions"),
	}
}

func (r *interactionRepo) Create(ctx context.Context, interaction *model.Interaction) error {
	if interaction.OccurredAt.IsZero() {
		interaction.OccurredAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, interaction)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		interaction.ID = oid.Hex()
	}
	return nil
}

func (r *interactionRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Interaction, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var interactions []*model.Interaction
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, err
	}
	return interactions, nil
}
