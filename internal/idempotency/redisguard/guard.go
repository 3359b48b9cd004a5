// Package redisguard - idempotency guard на Redis SET NX, общий для всех инстансов.
package redisguard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tracking:idem:"

type Guard struct {
	client *redis.Client
}

func New(client *redis.Client) *Guard {
	return &Guard{client: client}
}

func key(orderID, token string) string {
	return keyPrefix + orderID + ":" + token
}

func (g *Guard) TryAcquire(ctx context.Context, orderID, token string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, key(orderID, token), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return ok, nil
}

func (g *Guard) Release(ctx context.Context, orderID, token string) error {
	if err := g.client.Del(ctx, key(orderID, token)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
