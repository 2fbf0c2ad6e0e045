package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DioGolang/GoCommerce/internal/domain/entity"
	"github.com/DioGolang/GoCommerce/pkg/logger"
	"github.com/DioGolang/GoCommerce/pkg/metrics"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const productCacheTTL = 5 * time.Minute

// productSnapshot is the cached wire form of a product. The entity keeps its
// fields unexported, so caching goes through an explicit snapshot.
type productSnapshot struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RedisProductCache struct {
	client  *redis.Client
	logger  logger.Logger
	metrics metrics.Metrics
}

func NewRedisProductCache(client *redis.Client, log logger.Logger, m metrics.Metrics) *RedisProductCache {
	return &RedisProductCache{client: client, logger: log, metrics: m}
}

func productCacheKey(id string) string {
	return "product:" + id
}

func (c *RedisProductCache) Get(ctx context.Context, id string) (*entity.Product, error) {
	raw, err := c.client.Get(ctx, productCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.IncCacheMiss("product")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("product cache get: %w", err)
	}

	var snap productSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// a corrupt entry behaves like a miss
		c.logger.Warn(ctx, "dropping unreadable product cache entry",
			logger.String("product_id", id),
			logger.WithError(err),
		)
		c.client.Del(ctx, productCacheKey(id))
		c.metrics.IncCacheMiss("product")
		return nil, nil
	}

	c.metrics.IncCacheHit("product")
	return entity.RestoreProduct(snap.ID, snap.Name, snap.Price, snap.Description,
		snap.Stock, snap.CreatedAt, snap.UpdatedAt), nil
}

func (c *RedisProductCache) Set(ctx context.Context, product *entity.Product) error {
	raw, err := json.Marshal(productSnapshot{
		ID:          product.ID(),
		Name:        product.Name(),
		Price:       product.Price(),
		Description: product.Description(),
		Stock:       product.Stock(),
		CreatedAt:   product.CreatedAt(),
		UpdatedAt:   product.UpdatedAt(),
	})
	if err != nil {
		return fmt.Errorf("product cache marshal: %w", err)
	}

	if err := c.client.Set(ctx, productCacheKey(product.ID()), raw, productCacheTTL).Err(); err != nil {
		return fmt.Errorf("product cache set: %w", err)
	}
	return nil
}

func (c *RedisProductCache) Invalidate(ctx context.Context, id string) error {
	if err := c.client.Del(ctx, productCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("product cache invalidate: %w", err)
	}
	return nil
}
