package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"game_store/internal/pkg/logger"
)

// redisKeyPrefix namespaces client keys inside a shared Redis database.
const redisKeyPrefix = "storefront:"

// Redis stores values as plain Redis strings without expiry.
type Redis struct {
	rdb *redis.Client
	log *logger.Logger
}

// NewRedis connects to addr and pings the server.
func NewRedis(ctx context.Context, addr, password string, l *logger.Logger) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		l.Sugar().Errorf("Redis ping failed: %s", err)
		rdb.Close()
		return nil, err
	}
	return &Redis{rdb: rdb, log: l}, nil
}

// Close closes the Redis connection pool.
func (r *Redis) Close() {
	if r.rdb != nil {
		r.rdb.Close()
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Sugar().Errorf("Failed to get key %s: %s", key, err)
		return nil, fmt.Errorf("storage: get %s: %w", key, err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		r.log.Sugar().Errorf("Failed to set key %s: %s", key, err)
		return fmt.Errorf("storage: set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		r.log.Sugar().Errorf("Failed to delete key %s: %s", key, err)
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}
