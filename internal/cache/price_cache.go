package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/logger"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "price_cache"

// PriceCache is a read-through redis cache in front of a StoreReader. Active stores
// and price comparisons are cached; per-store lookups and packages go straight to
// the underlying reader. A nil client disables caching.
type PriceCache struct {
	next  service.StoreReader
	redis *redis.Client
	ttl   time.Duration
}

var _ service.StoreReader = (*PriceCache)(nil)

func NewPriceCache(next service.StoreReader, client *redis.Client, ttl time.Duration) *PriceCache {
	return &PriceCache{
		next:  next,
		redis: client,
		ttl:   ttl,
	}
}

const activeStoresKey = keyPrefix + ":stores:active"

func (c *PriceCache) FindAllActiveStores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	key := activeStoresKey
	if c.get(ctx, key, &stores) {
		return stores, nil
	}

	stores, err := c.next.FindAllActiveStores(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, stores)
	return stores, nil
}

func (c *PriceCache) FindPriceByProductAndStore(ctx context.Context, productID, storeID uuid.UUID, packageID *uuid.UUID) (*models.ProductPrice, error) {
	return c.next.FindPriceByProductAndStore(ctx, productID, storeID, packageID)
}

func (c *PriceCache) FindPackagesByProductID(ctx context.Context, productID uuid.UUID) ([]models.ProductPackage, error) {
	return c.next.FindPackagesByProductID(ctx, productID)
}

func (c *PriceCache) FindPriceComparison(ctx context.Context, productID uuid.UUID, packageID *uuid.UUID) ([]models.ProductPrice, error) {
	var prices []models.ProductPrice
	key := comparisonKey(productID, packageID)
	if c.get(ctx, key, &prices) {
		return prices, nil
	}

	prices, err := c.next.FindPriceComparison(ctx, productID, packageID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, prices)
	return prices, nil
}

// InvalidateProduct drops the cached comparisons of a product after a price change.
func (c *PriceCache) InvalidateProduct(ctx context.Context, productID uuid.UUID) error {
	if c.redis == nil {
		return nil
	}
	pattern := fmt.Sprintf("%s:compare:%s:*", keyPrefix, productID)
	iter := c.redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.redis.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached prices: %w", err)
		}
	}
	return iter.Err()
}

// InvalidateStores drops the cached active store list after stores are added or closed.
func (c *PriceCache) InvalidateStores(ctx context.Context) error {
	if c.redis == nil {
		return nil
	}
	if err := c.redis.Del(ctx, activeStoresKey).Err(); err != nil {
		return fmt.Errorf("failed to delete cached stores: %w", err)
	}
	return nil
}

func comparisonKey(productID uuid.UUID, packageID *uuid.UUID) string {
	pkg := "any"
	if packageID != nil {
		pkg = packageID.String()
	}
	return fmt.Sprintf("%s:compare:%s:%s", keyPrefix, productID, pkg)
}

// get reports a cache hit. Redis failures count as a miss.
func (c *PriceCache) get(ctx context.Context, key string, dest interface{}) bool {
	if c.redis == nil {
		return false
	}
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("price cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("dropping corrupt price cache entry", zap.String("key", key), zap.Error(err))
		_ = c.redis.Del(ctx, key).Err()
		return false
	}
	return true
}

func (c *PriceCache) set(ctx context.Context, key string, value interface{}) {
	if c.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		logger.Warn("failed to encode price cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.Warn("price cache write failed", zap.String("key", key), zap.Error(err))
	}
}
