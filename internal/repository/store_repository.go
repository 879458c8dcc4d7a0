package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/service"
	"gorm.io/gorm"
)

type (
	StoreRepository interface {
		service.StoreReader
		CreateStore(ctx context.Context, store *models.Store) error
		CreatePackage(ctx context.Context, pkg *models.ProductPackage) error
		CreatePrice(ctx context.Context, price *models.ProductPrice) error
	}

	storeRepository struct {
		db *gorm.DB
	}
)

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{
		db: db,
	}
}

func (r *storeRepository) FindAllActiveStores(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FindPriceByProductAndStore returns the freshest in-stock price. Without a package id
// only prices not tied to any package match.
func (r *storeRepository) FindPriceByProductAndStore(ctx context.Context, productID, storeID uuid.UUID, packageID *uuid.UUID) (*models.ProductPrice, error) {
	query := r.db.WithContext(ctx).
		Where("product_id = ? AND store_id = ? AND in_stock = ?", productID, storeID, true)
	if packageID != nil {
		query = query.Where("package_id = ?", *packageID)
	} else {
		query = query.Where("package_id IS NULL")
	}

	var price models.ProductPrice
	if err := query.Order("updated_at DESC").First(&price).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

func (r *storeRepository) FindPackagesByProductID(ctx context.Context, productID uuid.UUID) ([]models.ProductPackage, error) {
	var packages []models.ProductPackage
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("weight_grams").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

// FindPriceComparison returns in-stock prices at active stores with the store loaded.
func (r *storeRepository) FindPriceComparison(ctx context.Context, productID uuid.UUID, packageID *uuid.UUID) ([]models.ProductPrice, error) {
	query := r.db.WithContext(ctx).
		InnerJoins("Store", r.db.Where(&models.Store{IsActive: true})).
		Where("product_prices.product_id = ? AND product_prices.in_stock = ?", productID, true)
	if packageID != nil {
		query = query.Where("product_prices.package_id = ?", *packageID)
	}

	var prices []models.ProductPrice
	if err := query.Order("product_prices.price").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

func (r *storeRepository) CreateStore(ctx context.Context, store *models.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepository) CreatePackage(ctx context.Context, pkg *models.ProductPackage) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *storeRepository) CreatePrice(ctx context.Context, price *models.ProductPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}
