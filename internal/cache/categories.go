package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const categoriesKey = "trivia:categories"

// ErrMiss is returned when the requested entry is not cached
var ErrMiss = errors.New("cache miss")

// Categories caches the category id -> type mapping in Redis
type Categories struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewCategories creates a new category cache
func NewCategories(redis *redis.Client, ttl time.Duration) *Categories {
	return &Categories{redis: redis, ttl: ttl}
}

// GetCategories retrieves the cached mapping
func (c *Categories) GetCategories(ctx context.Context) (map[int]string, error) {
	data, err := c.redis.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	var categories map[int]string
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories: %w", err)
	}

	return categories, nil
}

// StoreCategories caches the mapping until the TTL expires
func (c *Categories) StoreCategories(ctx context.Context, categories map[int]string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	if err := c.redis.Set(ctx, categoriesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store categories: %w", err)
	}
	return nil
}

// Invalidate drops the cached mapping
func (c *Categories) Invalidate(ctx context.Context) error {
	if err := c.redis.Del(ctx, categoriesKey).Err(); err != nil {
		return fmt.Errorf("failed to delete categories from Redis: %w", err)
	}
	return nil
}
