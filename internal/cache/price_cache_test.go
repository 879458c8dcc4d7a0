package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/cache"
	"github.com/pageza/nutristack/backend/internal/mocks"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPriceCacheWithoutRedis(t *testing.T) {
	stores := new(mocks.MockStoreReader)
	c := cache.NewPriceCache(stores, nil, time.Minute)
	productID := uuid.New()

	stores.On("FindAllActiveStores", mock.Anything).Return([]models.Store{{Name: "Shop"}}, nil).Twice()
	stores.On("FindPriceComparison", mock.Anything, productID, (*uuid.UUID)(nil)).Return([]models.ProductPrice{{Price: 10}}, nil).Twice()

	for i := 0; i < 2; i++ {
		got, err := c.FindAllActiveStores(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 1)

		prices, err := c.FindPriceComparison(context.Background(), productID, nil)
		require.NoError(t, err)
		assert.Len(t, prices, 1)
	}

	assert.NoError(t, c.InvalidateProduct(context.Background(), productID))
	assert.NoError(t, c.InvalidateStores(context.Background()))
	stores.AssertExpectations(t)
}

func TestPriceCachePassesThroughLookups(t *testing.T) {
	stores := new(mocks.MockStoreReader)
	c := cache.NewPriceCache(stores, nil, time.Minute)
	productID, storeID := uuid.New(), uuid.New()

	stores.On("FindPriceByProductAndStore", mock.Anything, productID, storeID, (*uuid.UUID)(nil)).
		Return(&models.ProductPrice{Price: 12}, nil)
	stores.On("FindPackagesByProductID", mock.Anything, productID).Return([]models.ProductPackage{{Name: "1 kg"}}, nil)

	price, err := c.FindPriceByProductAndStore(context.Background(), productID, storeID, nil)
	require.NoError(t, err)
	assert.Equal(t, 12.0, price.Price)

	packages, err := c.FindPackagesByProductID(context.Background(), productID)
	require.NoError(t, err)
	assert.Len(t, packages, 1)
}

func TestPriceCacheReadThrough(t *testing.T) {
	// Skip this test if no Redis is available
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("Skipping Redis-dependent test - REDIS_HOST not set")
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{Addr: os.Getenv("REDIS_HOST") + ":" + port})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	stores := new(mocks.MockStoreReader)
	c := cache.NewPriceCache(stores, client, time.Minute)
	ctx := context.Background()
	productID := uuid.New()
	packageID := uuid.New()
	t.Cleanup(func() { _ = c.InvalidateProduct(context.Background(), productID) })

	stores.On("FindPriceComparison", mock.Anything, productID, &packageID).
		Return([]models.ProductPrice{{ProductID: productID, Price: 42, InStock: true}}, nil).Once()

	first, err := c.FindPriceComparison(ctx, productID, &packageID)
	require.NoError(t, err)
	second, err := c.FindPriceComparison(ctx, productID, &packageID)
	require.NoError(t, err)
	assert.Equal(t, first[0].Price, second[0].Price)
	stores.AssertNumberOfCalls(t, "FindPriceComparison", 1)

	require.NoError(t, c.InvalidateProduct(ctx, productID))
	stores.On("FindPriceComparison", mock.Anything, productID, &packageID).
		Return([]models.ProductPrice{{ProductID: productID, Price: 40, InStock: true}}, nil).Once()
	third, err := c.FindPriceComparison(ctx, productID, &packageID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, third[0].Price)
}

func TestPriceCacheInvalidateStores(t *testing.T) {
	// Skip this test if no Redis is available
	if os.Getenv("REDIS_HOST") == "" {
		t.Skip("Skipping Redis-dependent test - REDIS_HOST not set")
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}
	client := redis.NewClient(&redis.Options{Addr: os.Getenv("REDIS_HOST") + ":" + port})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	stores := new(mocks.MockStoreReader)
	c := cache.NewPriceCache(stores, client, time.Minute)
	ctx := context.Background()
	require.NoError(t, c.InvalidateStores(ctx))
	t.Cleanup(func() { _ = c.InvalidateStores(context.Background()) })

	stores.On("FindAllActiveStores", mock.Anything).Return([]models.Store{{Name: "Budget"}}, nil).Once()
	_, err := c.FindAllActiveStores(ctx)
	require.NoError(t, err)
	_, err = c.FindAllActiveStores(ctx)
	require.NoError(t, err)
	stores.AssertNumberOfCalls(t, "FindAllActiveStores", 1)

	require.NoError(t, c.InvalidateStores(ctx))
	stores.On("FindAllActiveStores", mock.Anything).Return([]models.Store{{Name: "Budget"}, {Name: "Premium"}}, nil).Once()
	got, err := c.FindAllActiveStores(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
