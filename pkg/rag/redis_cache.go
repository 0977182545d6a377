package rag

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisEmbeddingCache is the L2 embedding cache shared across service
// instances. Cache failures are soft: a miss is returned and the embedding
// is recomputed.
type RedisEmbeddingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// RedisCacheConfig holds Redis connection settings for the embedding cache.
type RedisCacheConfig struct {
	Addr     string        `json:"addr"`
	Password string        `json:"password"`
	DB       int           `json:"db"`
	TTL      time.Duration `json:"ttl"`
}

// NewRedisEmbeddingCache connects to Redis and verifies reachability.
func NewRedisEmbeddingCache(ctx context.Context, config RedisCacheConfig, logger *slog.Logger) (*RedisEmbeddingCache, error) {
	if config.TTL == 0 {
		config.TTL = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisEmbeddingCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With("component", "redis-embedding-cache"),
	}, nil
}

// Get returns a cached vector, or false on miss or cache failure.
func (c *RedisEmbeddingCache) Get(ctx context.Context, key string) ([]float32, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("redis get failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal(raw, &vector); err != nil {
		c.logger.Warn("corrupt cached embedding dropped", slog.String("key", key))
		c.client.Del(ctx, key)
		return nil, false
	}
	return vector, true
}

// Set stores a vector with the configured TTL. Failures are logged only.
func (c *RedisEmbeddingCache) Set(ctx context.Context, key string, vector []float32) {
	raw, err := json.Marshal(vector)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", slog.String("error", err.Error()))
	}
}

// Close releases the Redis connection.
func (c *RedisEmbeddingCache) Close() error {
	return c.client.Close()
}
