package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trademate/internal/model"
)

// FeedCache handles Redis operations for the ranked recommendation feed
// and the trending ZSET
type FeedCache interface {
	GetFeed(ctx context.Context, userID string) ([]*model.Recommendation, error)
	SetFeed(ctx context.Context, userID string, recs []*model.Recommendation) error

	// Trending tracks composite scores across the latest batch so the
	// dashboard can show a score-ordered slice without a Mongo round trip.
	UpdateTrending(ctx context.Context, userID string, rec *model.Recommendation) error
	GetTrending(ctx context.Context, userID string, limit int) ([]string, error)
	ResetTrending(ctx context.Context, userID string) error
}

type feedCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFeedCache creates a new feed cache
func NewFeedCache(client *redis.Client, ttl time.Duration) FeedCache {
	return &feedCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *feedCache) feedKey(userID string) string {
	return fmt.Sprintf("user:%s:feed", userID)
}

func (c *feedCache) trendingKey(userID string) string {
	return fmt.Sprintf("user:%s:trending", userID)
}

func (c *feedCache) GetFeed(ctx context.Context, userID string) ([]*model.Recommendation, error) {
	data, err := c.client.Get(ctx, c.feedKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var recs []*model.Recommendation
	if err := json.Unmarshal([]byte(data), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *feedCache) SetFeed(ctx context.Context, userID string, recs []*model.Recommendation) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.feedKey(userID), data, c.ttl).Err()
}

func (c *feedCache) UpdateTrending(ctx context.Context, userID string, rec *model.Recommendation) error {
	return c.client.ZAdd(ctx, c.trendingKey(userID), redis.Z{
		Score:  rec.CompositeScore(),
		Member: rec.ID,
	}).Err()
}

func (c *feedCache) GetTrending(ctx context.Context, userID string, limit int) ([]string, error) {
	ids, err := c.client.ZRevRange(ctx, c.trendingKey(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *feedCache) ResetTrending(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.trendingKey(userID)).Err()
}
