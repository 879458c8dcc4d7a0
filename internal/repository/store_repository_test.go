package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/repository"
	"github.com/pageza/nutristack/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllActiveStores(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	catalog := testhelpers.SeedCatalog(t, db)
	repo := repository.NewStoreRepository(db)

	stores, err := repo.FindAllActiveStores(context.Background())
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, catalog.Budget.ID, stores[0].ID)
	assert.Equal(t, catalog.Premium.ID, stores[1].ID)
	assert.Equal(t, 4.99, stores[0].DeliveryFeeOrZero())
}

func TestFindPriceByProductAndStore(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	catalog := testhelpers.SeedCatalog(t, db)
	repo := repository.NewStoreRepository(db)
	ctx := context.Background()

	t.Run("package scoped", func(t *testing.T) {
		price, err := repo.FindPriceByProductAndStore(ctx, catalog.Whey.ID, catalog.Budget.ID, &catalog.WheyTub.ID)
		require.NoError(t, err)
		require.NotNil(t, price)
		assert.Equal(t, 49.9, price.UnitPrice())
		require.NotNil(t, price.PackageID)
		assert.Equal(t, catalog.WheyTub.ID, *price.PackageID)
	})

	t.Run("unscoped", func(t *testing.T) {
		price, err := repo.FindPriceByProductAndStore(ctx, catalog.Creatine.ID, catalog.Budget.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, price)
		assert.Equal(t, 19.5, price.Price)
		assert.Nil(t, price.PackageID)
	})

	t.Run("out of stock", func(t *testing.T) {
		price, err := repo.FindPriceByProductAndStore(ctx, catalog.Creatine.ID, catalog.Premium.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, price)
	})

	t.Run("package not sold", func(t *testing.T) {
		price, err := repo.FindPriceByProductAndStore(ctx, catalog.Whey.ID, catalog.Premium.ID, &catalog.WheyBag.ID)
		require.NoError(t, err)
		assert.Nil(t, price)
	})
}

func TestFindPriceByProductAndStoreIgnoresOtherPackages(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	catalog := testhelpers.SeedCatalog(t, db)
	repo := repository.NewStoreRepository(db)
	ctx := context.Background()

	shop := models.Store{Name: "Mixed Shop", IsActive: true}
	require.NoError(t, repo.CreateStore(ctx, &shop))
	require.NoError(t, repo.CreatePrice(ctx, &models.ProductPrice{ProductID: catalog.Whey.ID, StoreID: shop.ID, PackageID: &catalog.WheyBag.ID, Price: 10, InStock: true}))

	price, err := repo.FindPriceByProductAndStore(ctx, catalog.Whey.ID, shop.ID, &catalog.WheyTub.ID)
	require.NoError(t, err)
	assert.Nil(t, price)

	price, err = repo.FindPriceByProductAndStore(ctx, catalog.Whey.ID, shop.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, price, "a bag price is not a product price")

	plain := models.ProductPrice{ProductID: catalog.Whey.ID, StoreID: shop.ID, Price: 28, InStock: true}
	require.NoError(t, repo.CreatePrice(ctx, &plain))

	price, err = repo.FindPriceByProductAndStore(ctx, catalog.Whey.ID, shop.ID, nil)
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, plain.ID, price.ID)
	assert.Nil(t, price.PackageID)

	price, err = repo.FindPriceByProductAndStore(ctx, catalog.Whey.ID, shop.ID, &catalog.WheyBag.ID)
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, 10.0, price.Price)
}

func TestFindPackagesByProductID(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	catalog := testhelpers.SeedCatalog(t, db)
	repo := repository.NewStoreRepository(db)

	packages, err := repo.FindPackagesByProductID(context.Background(), catalog.Whey.ID)
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, catalog.WheyBag.ID, packages[0].ID)
	assert.Equal(t, catalog.WheyTub.ID, packages[1].ID)

	packages, err = repo.FindPackagesByProductID(context.Background(), catalog.Creatine.ID)
	require.NoError(t, err)
	assert.Empty(t, packages)
}

func TestFindPriceComparison(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	catalog := testhelpers.SeedCatalog(t, db)
	repo := repository.NewStoreRepository(db)

	prices, err := repo.FindPriceComparison(context.Background(), catalog.Whey.ID, &catalog.WheyTub.ID)
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, catalog.Budget.ID, prices[0].StoreID)
	assert.Equal(t, catalog.Premium.ID, prices[1].StoreID)
	for _, p := range prices {
		require.NotNil(t, p.Store)
		assert.True(t, p.Store.IsActive)
	}

	prices, err = repo.FindPriceComparison(context.Background(), catalog.Whey.ID, nil)
	require.NoError(t, err)
	assert.Len(t, prices, 3)

	prices, err = repo.FindPriceComparison(context.Background(), uuid.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestCreateStoreAndPrice(t *testing.T) {
	db := testhelpers.NewSQLiteDB(t)
	catalog := testhelpers.SeedCatalog(t, db)
	repo := repository.NewStoreRepository(db)
	ctx := context.Background()

	shop := models.Store{Name: "Corner Shop", IsActive: true}
	require.NoError(t, repo.CreateStore(ctx, &shop))
	weight := 250.0
	bag := models.ProductPackage{ProductID: catalog.Creatine.ID, Name: "250 g", WeightGrams: &weight}
	require.NoError(t, repo.CreatePackage(ctx, &bag))
	price := models.ProductPrice{ProductID: catalog.Creatine.ID, StoreID: shop.ID, PackageID: &bag.ID, Price: 9.99, InStock: true}
	require.NoError(t, repo.CreatePrice(ctx, &price))

	found, err := repo.FindPriceByProductAndStore(ctx, catalog.Creatine.ID, shop.ID, &bag.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, price.ID, found.ID)
}
