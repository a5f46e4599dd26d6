package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/retailpos/backend/internal/infrastructure/config"
)

// SaleIdempotencyStore remembers responses to quick-sale requests keyed by
// the client-supplied Idempotency-Key, so a retried request returns the
// original sale instead of recording it twice.
type SaleIdempotencyStore interface {
	// Get returns the stored response body for a key, or ("", false, nil)
	// when the key has not been seen.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores a response body under a key with a TTL. It never
	// overwrites an existing entry.
	Set(ctx context.Context, key string, body string, ttl time.Duration) error
}

// RedisSaleIdempotencyStore implements SaleIdempotencyStore on Redis,
// suitable for deployments with more than one API instance
type RedisSaleIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisClient creates a Redis client from the application configuration
// and verifies the connection
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// NewRedisSaleIdempotencyStore creates a store with an existing Redis client
func NewRedisSaleIdempotencyStore(client *redis.Client) *RedisSaleIdempotencyStore {
	return &RedisSaleIdempotencyStore{
		client:    client,
		keyPrefix: "pos:sale:idempotency:",
	}
}

// Get returns the stored response body for a key
func (s *RedisSaleIdempotencyStore) Get(ctx context.Context, key string) (string, bool, error) {
	body, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read idempotency key: %w", err)
	}
	return body, true, nil
}

// Set stores a response body under a key with a TTL
func (s *RedisSaleIdempotencyStore) Set(ctx context.Context, key string, body string, ttl time.Duration) error {
	if err := s.client.SetNX(ctx, s.keyPrefix+key, body, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idempotency key: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisSaleIdempotencyStore) Close() error {
	return s.client.Close()
}

var _ SaleIdempotencyStore = (*RedisSaleIdempotencyStore)(nil)
