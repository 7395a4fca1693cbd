package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trademate/internal/model"
)

// ProfileCache holds the transient synthesized profile. The unified
// profile is recomputed on demand; the cache only coalesces repeated
// reads within a single dashboard load.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*model.UnifiedBusinessProfile, error)
	Set(ctx context.Context, userID string, profile *model.UnifiedBusinessProfile) error
	Invalidate(ctx context.Context, userID string) error
}

type profileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache creates a new profile cache
func NewProfileCache(client *redis.Client, ttl time.Duration) ProfileCache {
	return &profileCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *profileCache) key(userID string) string {
	return fmt.Sprintf("user:%s:profile", userID)
}

func (c *profileCache) Get(ctx context.Context, userID string) (*model.UnifiedBusinessProfile, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var profile model.UnifiedBusinessProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *profileCache) Set(ctx context.Context, userID string, profile *model.UnifiedBusinessProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *profileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
