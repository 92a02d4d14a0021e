package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"zeneva/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 10 * time.Minute,
	}
}

func (r *RedisCache) Get(ctx context.Context, tenantID, productID string) (*domain.Product, error) {
	data, err := r.client.Get(ctx, cacheKey(tenantID, productID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var p domain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal product: %w", err)
	}
	return &p, nil
}

func (r *RedisCache) Set(ctx context.Context, tenantID string, p *domain.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal product: %w", err)
	}

	// Jitter spreads expiry so a warm storefront doesn't refill every
	// key in the same second.
	ttl := r.baseTTL + time.Duration(rand.Intn(120))*time.Second
	if err := r.client.Set(ctx, cacheKey(tenantID, p.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *RedisCache) Delete(ctx context.Context, tenantID, productID string) error {
	if err := r.client.Del(ctx, cacheKey(tenantID, productID)).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

func cacheKey(tenantID, productID string) string {
	return fmt.Sprintf("product:%s:%s", tenantID, productID)
}
