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
	ProductRepository interface {
		service.ProductReader
		service.ContraindicationReader
		CreateBrand(ctx context.Context, brand *models.Brand) error
		CreateContraindication(ctx context.Context, contraindication *models.Contraindication) error
		CreateProduct(ctx context.Context, product *models.Product) error
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{
		db: db,
	}
}

// GetAvailableProducts returns available products, newest first.
func (r *productRepository) GetAvailableProducts(ctx context.Context, filters service.ProductFilters, limit, offset int) ([]models.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Brand").
		Where("is_available = ?", true)

	if len(filters.Types) > 0 {
		query = query.Where("type IN ?", filters.Types)
	}
	if len(filters.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filters.ExcludeIDs)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).
		Preload("Brand").
		Where("id = ?", id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindByProductID(ctx context.Context, productID uuid.UUID) ([]models.Contraindication, error) {
	var contraindications []models.Contraindication
	if err := r.db.WithContext(ctx).
		Joins("JOIN product_contraindications pc ON pc.contraindication_id = contraindications.id").
		Where("pc.product_id = ?", productID).
		Order("contraindications.name").
		Find(&contraindications).Error; err != nil {
		return nil, err
	}
	return contraindications, nil
}

func (r *productRepository) CreateBrand(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *productRepository) CreateContraindication(ctx context.Context, contraindication *models.Contraindication) error {
	return r.db.WithContext(ctx).Create(contraindication).Error
}

// CreateProduct also links the product's contraindications.
func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}
