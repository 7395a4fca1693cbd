package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trademate/internal/model"
)

// ContactRepo handles MongoDB operations for native contacts
type ContactRepo interface {
	Create(ctx context.Context, contact *model.Contact) error
	GetByUserID(ctx context.Context, userID string) ([]*model.Contact, error)
}

type contactRepo struct {
	collection *mongo.Collection
}

// NewContactRepo creates a new contact repository
func NewContactRepo(db *mongo.Database) ContactRepo {
	return &contactRepo{
		collection: db.Collection("contacts"),
	}
}

func (r *contactRepo) Create(ctx context.Context, contact *model.Contact) error {
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, contact)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		contact.ID = oid.Hex()
	}
	return nil
}

func (r *contactRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Contact, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var contacts []*model.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}
