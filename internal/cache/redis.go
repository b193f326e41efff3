package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// ReportCache keeps rendered analytics reports in Redis for a short TTL so
// repeated dashboard pulls don't recompute the same aggregates.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(ttl time.Duration) (*ReportCache, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ReportCache{client: client, ttl: ttl}, nil
}

func (c *ReportCache) Close() error {
	return c.client.Close()
}

// Get looks up a cached report by key and unmarshals it into dest. The second
// return value reports whether the key existed.
func (c *ReportCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, reportKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to read report from Redis: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}
	return true, nil
}

// Set stores a report under key with the cache's TTL.
func (c *ReportCache) Set(ctx context.Context, key string, report interface{}) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := c.client.Set(ctx, reportKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store report in Redis: %w", err)
	}
	return nil
}

// Invalidate drops a cached report, used when underlying records change.
func (c *ReportCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, reportKey(key)).Err()
}

func reportKey(key string) string {
	return fmt.Sprintf("report:%s", key)
}
