package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// geocodeKey normalizes the query so "Lipa " and "lipa" share an entry.
func geocodeKey(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "geocode:" + hex.EncodeToString(sum[:])
}

// StoreGeocode caches a raw geocoder response body for ttl.
func (r *RedisClient) StoreGeocode(ctx context.Context, query string, body []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, geocodeKey(query), body, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store geocode result in Redis: %w", err)
	}
	return nil
}

func (r *RedisClient) GetGeocode(ctx context.Context, query string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, geocodeKey(query)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get geocode result from Redis: %w", err)
	}
	return data, true, nil
}

// GetStatus reports connection pool figures for the health endpoint.
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
