package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/types"
)

// ProductFilters narrows a product listing.
type ProductFilters struct {
	Types      []models.ProductType
	ExcludeIDs []uuid.UUID
}

// ProfileReader returns (nil, nil) when the user has no health profile.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error)
}

// NutritionPlanReader returns (nil, nil) when no plan has been computed yet.
type NutritionPlanReader interface {
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.NutritionPlan, error)
}

// ProductReader reads the product catalog. GetByID returns (nil, nil) for unknown ids.
type ProductReader interface {
	GetAvailableProducts(ctx context.Context, filters ProductFilters, limit, offset int) ([]models.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type ContraindicationReader interface {
	FindByProductID(ctx context.Context, productID uuid.UUID) ([]models.Contraindication, error)
}

// StoreReader reads stores, packages and in-stock prices.
// FindPriceByProductAndStore returns (nil, nil) when the store has no in-stock price.
// A nil packageID means any price for the product, preferring one not tied to a package.
type StoreReader interface {
	FindAllActiveStores(ctx context.Context) ([]models.Store, error)
	FindPriceByProductAndStore(ctx context.Context, productID, storeID uuid.UUID, packageID *uuid.UUID) (*models.ProductPrice, error)
	FindPackagesByProductID(ctx context.Context, productID uuid.UUID) ([]models.ProductPackage, error)
	FindPriceComparison(ctx context.Context, productID uuid.UUID, packageID *uuid.UUID) ([]models.ProductPrice, error)
}

// IRecommendationService defines the interface for supplement recommendations
type IRecommendationService interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, opts types.RecommendationOptions) ([]types.ProductRecommendation, error)
	CheckCompatibility(ctx context.Context, productID, userID uuid.UUID) (*types.CompatibilityResult, error)
}

// IDosageService defines the interface for dosage calculations
type IDosageService interface {
	CalculateDosage(ctx context.Context, product *models.Product, needs types.NutritionalNeeds, profile *models.HealthProfile, durationDays int) (*types.DosageCalculation, error)
	CalculateRequiredPackages(packages []models.ProductPackage, totalGrams float64, durationDays int) []types.PackageRecommendation
	CalculatePlanRequirements(products []models.Product, needs types.NutritionalNeeds, profile *models.HealthProfile, durationDays int) ([]types.DosageRequirement, error)
}

// IShoppingService defines the interface for price comparison
type IShoppingService interface {
	FindOptimalShoppingOptions(ctx context.Context, requirements []types.DosageRequirement, products []models.Product) ([]types.ShoppingOption, error)
	CompareProductPrices(ctx context.Context, productID uuid.UUID, packageID *uuid.UUID) ([]types.PriceComparison, error)
}

// IPlanService defines the interface for building a full supplement plan
type IPlanService interface {
	BuildPlan(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID, durationDays int) (*types.SupplementPlan, error)
}

// ITokenService defines the interface for access token handling
type ITokenService interface {
	GenerateToken(userID uuid.UUID, email string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

var (
	_ IRecommendationService = (*RecommendationService)(nil)
	_ IDosageService         = (*DosageService)(nil)
	_ IShoppingService       = (*ShoppingService)(nil)
	_ IPlanService           = (*PlanService)(nil)
	_ ITokenService          = (*TokenService)(nil)
)
