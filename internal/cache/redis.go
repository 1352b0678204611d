package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ticket-search-service/internal/domain"
)

// redisCmd is the slice of the redis client the store needs; tests
// substitute a canned implementation.
type redisCmd interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Redis is a Store backed by a shared redis instance. Entries are JSON
// payloads with a native redis TTL, so expiry needs no sweep on our
// side.
type Redis struct {
	client redisCmd
	logger *slog.Logger
}

// NewRedis wraps an existing redis client.
func NewRedis(client *redis.Client, logger *slog.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

// Get fetches and decodes the entry for key. redis.Nil is a miss, any
// other backend failure surfaces as a CacheError.
func (r *Redis) Get(ctx context.Context, key string) ([]domain.Event, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &CacheError{Op: "get", Key: key, Err: err}
	}

	var events []domain.Event
	if err := json.Unmarshal(data, &events); err != nil {
		// A corrupt payload is unreadable; treat it like a backend fault.
		return nil, false, &CacheError{Op: "get", Key: key, Err: err}
	}
	return events, true, nil
}

// Set encodes events and stores them under key with the given TTL.
func (r *Redis) Set(ctx context.Context, key string, events []domain.Event, ttl time.Duration) error {
	data, err := json.Marshal(events)
	if err != nil {
		return &CacheError{Op: "set", Key: key, Err: err}
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		if r.logger != nil {
			r.logger.Error("redis set failed", slog.String("key", key), "error", err)
		}
		return &CacheError{Op: "set", Key: key, Err: err}
	}
	return nil
}
