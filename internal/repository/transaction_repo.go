package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trademate/internal/model"
)

// TransactionRepo handles MongoDB operations for native transactions
type TransactionRepo interface {
	Create(ctx context.Context, tx *model.Transaction) error
	GetByUserID(ctx context.Context, userID string) ([]*model.Transaction, error)
}

type transactionRepo struct {
	collection *mongo.Collection
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(db *mongo.Database) TransactionRepo {
	return &transactionRepo{
		collection: db.Collection("transactions"),
	}
}

func (r *transactionRepo) Create(ctx context.Context, tx *model.Transaction) error {
	if tx.OccurredAt.IsZero() {
		tx.OccurredAt = time.Now()
	}
	result, err := r.collection.InsertOne(ctx, tx)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		tx.ID = oid.Hex()
	}
	return nil
}

func (r *transactionRepo) GetByUserID(ctx context.Context, userID string) ([]*model.Transaction, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transactions []*model.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}
