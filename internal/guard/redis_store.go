package guard

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "submission-guard:"

// RedisStore is an AttemptStore backed by a shared Redis instance, for
// deployments running more than one replica behind a balancer. Each key is a
// sorted set of attempt timestamps scored by epoch milliseconds.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis from a redis:// URL or a plain host:port.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		return &RedisStore{client: redis.NewClient(opt)}, nil
	}
	return &RedisStore{client: redis.NewClient(&redis.Options{Addr: redisURL})}, nil
}

func (s *RedisStore) RecordAndCount(ctx context.Context, key string, at time.Time, window time.Duration) (int, error) {
	redisKey := redisKeyPrefix + key
	threshold := at.Add(-window).UnixMilli()

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", "("+strconv.FormatInt(threshold, 10))
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(at.UnixMilli()),
		Member: strconv.FormatInt(at.UnixNano(), 10),
	})
	count := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("record attempt: %w", err)
	}
	return int(count.Val()), nil
}

// Close releases the underlying Redis connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
