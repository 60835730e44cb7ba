package router

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage adapts a go-redis client to fiber.Storage so the rate
// limiter can share counters across instances.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage creates a Fiber storage backend on top of an existing
// Redis client. All keys are namespaced with the given prefix.
func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (s *RedisStorage) key(k string) string {
	return s.prefix + k
}

// Get retrieves a value by key. A missing key returns nil, nil.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	return s.GetWithContext(context.Background(), key)
}

// GetWithContext retrieves a value by key using the provided context.
func (s *RedisStorage) GetWithContext(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores a value with an expiration. Zero expiration means no TTL.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.SetWithContext(context.Background(), key, val, exp)
}

// SetWithContext stores a value using the provided context.
func (s *RedisStorage) SetWithContext(ctx context.Context, key string, val []byte, exp time.Duration) error {
	return s.client.Set(ctx, s.key(key), val, exp).Err()
}

// Delete removes a key.
func (s *RedisStorage) Delete(key string) error {
	return s.DeleteWithContext(context.Background(), key)
}

// DeleteWithContext removes a key using the provided context.
func (s *RedisStorage) DeleteWithContext(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Reset removes all keys under the storage prefix.
func (s *RedisStorage) Reset() error {
	return s.ResetWithContext(context.Background())
}

// ResetWithContext removes all keys under the storage prefix using the
// provided context.
func (s *RedisStorage) ResetWithContext(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Close is a no-op; the underlying client is owned by the application.
func (s *RedisStorage) Close() error {
	return nil
}
