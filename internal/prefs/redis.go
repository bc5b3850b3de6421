package prefs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shipgrid/shipgrid/internal/model"
)

// RedisStore keeps the selection in a Redis hash so it survives restarts
// and is shared across dashboard sessions.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies connectivity.
func NewRedisStore(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	// Connection pool settings
	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Ping checks Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Get returns the stored selection, or the first-use default when none
// was saved yet.
func (s *RedisStore) Get(ctx context.Context) (model.FilterSelection, error) {
	values, err := s.client.HGetAll(ctx, storeName).Result()
	if err != nil {
		return model.FilterSelection{}, fmt.Errorf("redis hgetall failed: %w", err)
	}
	if len(values) == 0 {
		return model.DefaultFilters(time.Now()), nil
	}

	now := time.Now()
	return model.FilterSelection{
		Year:     atoiOr(values["year"], now.Year()),
		Month:    atoiOr(values["month"], int(now.Month())),
		Company:  valueOr(values["company"], model.FilterAll),
		Branch:   valueOr(values["branch"], model.FilterAll),
		Supplier: valueOr(values["manufacturer"], model.FilterAll),
	}, nil
}

// Set persists the selection.
func (s *RedisStore) Set(ctx context.Context, sel model.FilterSelection) error {
	fields := map[string]any{
		"year":         sel.Year,
		"month":        sel.Month,
		"company":      sel.Company,
		"branch":       sel.Branch,
		"manufacturer": sel.Supplier,
	}
	if err := s.client.HSet(ctx, storeName, fields).Err(); err != nil {
		return fmt.Errorf("failed to persist filters: %w", err)
	}
	return nil
}

func atoiOr(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
