// Package storage provides Redis persistence for team commentary.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisClient wraps go-redis client. A disabled client accepts every call
// and stores nothing.
type RedisClient struct {
	client  *redis.Client
	enabled bool
}

// NewRedisClient creates a new Redis client using go-redis. An empty URL,
// an unparsable URL or a failed ping yields a disabled client.
func NewRedisClient(ctx context.Context, redisURL string) *RedisClient {
	if redisURL == "" {
		log.Info().Msg("Redis not configured (REDIS_URL missing), using memory only")
		return &RedisClient{}
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse REDIS_URL")
		return &RedisClient{}
	}

	opt.PoolSize = 5
	opt.MinIdleConns = 1
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed, using memory only")
		_ = client.Close()
		return &RedisClient{}
	}

	log.Info().Str("addr", opt.Addr).Msg("Redis connected")
	return &RedisClient{
		client:  client,
		enabled: true,
	}
}

// Enabled reports whether values reach Redis.
func (r *RedisClient) Enabled() bool {
	return r != nil && r.enabled
}

// Get retrieves a value from Redis. A missing key returns "" and no error.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	if !r.Enabled() {
		return "", nil
	}
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

// Set stores a value in Redis. A zero ttl means no expiration.
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis.
func (r *RedisClient) Delete(ctx context.Context, key string) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}

// Close releases the connection pool.
func (r *RedisClient) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}

// Ping checks the connection; a disabled client is always healthy.
func (r *RedisClient) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Ping(ctx).Err()
}
