package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecommendationService is a mock implementation of service.IRecommendationService
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID, opts types.RecommendationOptions) ([]types.ProductRecommendation, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ProductRecommendation), args.Error(1)
}

func (m *MockRecommendationService) CheckCompatibility(ctx context.Context, productID, userID uuid.UUID) (*types.CompatibilityResult, error) {
	args := m.Called(ctx, productID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.CompatibilityResult), args.Error(1)
}

// MockShoppingService is a mock implementation of service.IShoppingService
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) FindOptimalShoppingOptions(ctx context.Context, requirements []types.DosageRequirement, products []models.Product) ([]types.ShoppingOption, error) {
	args := m.Called(ctx, requirements, products)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ShoppingOption), args.Error(1)
}

func (m *MockShoppingService) CompareProductPrices(ctx context.Context, productID uuid.UUID, packageID *uuid.UUID) ([]types.PriceComparison, error) {
	args := m.Called(ctx, productID, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PriceComparison), args.Error(1)
}

// MockPlanService is a mock implementation of service.IPlanService
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) BuildPlan(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID, durationDays int) (*types.SupplementPlan, error) {
	args := m.Called(ctx, userID, productIDs, durationDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SupplementPlan), args.Error(1)
}

// MockTokenService is a mock implementation of service.ITokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
