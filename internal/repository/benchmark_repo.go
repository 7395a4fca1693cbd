package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trademate/internal/model"
)

// BenchmarkRepo handles MongoDB operations for industry benchmarks
type BenchmarkRepo interface {
	GetByIndustry(ctx context.Context, industry string) (*model.IndustryBenchmarks, error)
	Upsert(ctx context.Context, benchmarks *model.IndustryBenchmarks) error
}

type benchmarkRepo struct {
	collection *mongo.Collection
}

// NewBenchmarkRepo creates a new benchmark repository
func NewBenchmarkRepo(db *mongo.Database) BenchmarkRepo {
	return &benchmarkRepo{
		collection: db.Collection("industry_benchmarks"),
	}
}

func (r *benchmarkRepo) GetByIndustry(ctx context.Context, industry string) (*model.IndustryBenchmarks, error) {
	var benchmarks model.IndustryBenchmarks
	err := r.collection.FindOne(ctx, bson.M{"industry": industry}).Decode(&benchmarks)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &benchmarks, nil
}

func (r *benchmarkRepo) Upsert(ctx context.Context, benchmarks *model.IndustryBenchmarks) error {
	benchmarks.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"industry": benchmarks.Industry}, benchmarks, opts)
	return err
}
