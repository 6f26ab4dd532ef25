package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistPrefix = "denylist:"

// RedisClient exposes the shared token denylist. Revoked tokens are rejected
// by every process, regardless of the state of their session row.
type RedisClient struct {
	client *redis.Client
}

func GetRedisClient(addr, password string, db int) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisClient{client: client}, nil
}

// Deny marks a token as revoked. The TTL bounds the entry's lifetime; after
// it the session row has expired anyway.
func (r *RedisClient) Deny(ctx context.Context, token string, ttl time.Duration) error {
	return r.client.Set(ctx, denylistPrefix+token, "1", ttl).Err()
}

func (r *RedisClient) Contains(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, denylistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
