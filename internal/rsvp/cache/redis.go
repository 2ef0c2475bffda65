package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/yup/internal/rsvp/domain"
	"github.com/go-redis/redis/v8"
)

const redisKeyPrefix = "yup:flags:"

// Redis is a FlagCache shared between replicas. Values are JSON-encoded
// flags stored with a TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps an existing client. The caller owns the client.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

// DialRedis connects to addr and pings it once.
func DialRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedis(client, ttl), nil
}

func (r *Redis) Get(ctx context.Context, userID string) (domain.UserFlags, bool, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+userID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.UserFlags{}, false, nil
	}
	if err != nil {
		return domain.UserFlags{}, false, fmt.Errorf("redis get flags: %w", err)
	}

	var flags domain.UserFlags
	if err := json.Unmarshal(raw, &flags); err != nil {
		// A value we cannot read is as good as a miss.
		return domain.UserFlags{}, false, nil
	}
	return flags, true, nil
}

func (r *Redis) Set(ctx context.Context, userID string, flags domain.UserFlags) error {
	raw, err := json.Marshal(flags)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+userID, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set flags: %w", err)
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, redisKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("redis del flags: %w", err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
