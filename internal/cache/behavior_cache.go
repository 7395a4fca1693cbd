package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// BehaviorCache keeps per-user interaction counters in a Redis hash so
// the behavior summary can be derived without scanning the interaction
// log on every request
type BehaviorCache interface {
	IncrementEvent(ctx context.Context, userID, event string) error
	GetCounts(ctx context.Context, userID string) (map[string]int64, error)
}

type behaviorCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBehaviorCache creates a new behavior cache
func NewBehaviorCache(client *redis.Client) BehaviorCache {
	return &behaviorCache{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
}

func (c *behaviorCache) key(userID string) string {
	return fmt.Sprintf("user:%s:events", userID)
}

func (c *behaviorCache) IncrementEvent(ctx context.Context, userID, event string) error {
	key := c.key(userID)
	if err := c.client.HIncrBy(ctx, key, event, 1).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *behaviorCache) GetCounts(ctx context.Context, userID string) (map[string]int64, error) {
	fields, err := c.client.HGetAll(ctx, c.key(userID)).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(fields))
	for event, raw := range fields {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		counts[event] = n
	}
	return counts, nil
}
