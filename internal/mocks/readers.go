package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/service"
	"github.com/stretchr/testify/mock"
)

// MockProfileReader is a mock implementation of service.ProfileReader
type MockProfileReader struct {
	mock.Mock
}

func (m *MockProfileReader) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HealthProfile), args.Error(1)
}

// MockNutritionPlanReader is a mock implementation of service.NutritionPlanReader
type MockNutritionPlanReader struct {
	mock.Mock
}

func (m *MockNutritionPlanReader) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.NutritionPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.NutritionPlan), args.Error(1)
}

// MockProductReader is a mock implementation of service.ProductReader
type MockProductReader struct {
	mock.Mock
}

func (m *MockProductReader) GetAvailableProducts(ctx context.Context, filters service.ProductFilters, limit, offset int) ([]models.Product, error) {
	args := m.Called(ctx, filters, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductReader) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

// MockContraindicationReader is a mock implementation of service.ContraindicationReader
type MockContraindicationReader struct {
	mock.Mock
}

func (m *MockContraindicationReader) FindByProductID(ctx context.Context, productID uuid.UUID) ([]models.Contraindication, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Contraindication), args.Error(1)
}

// MockStoreReader is a mock implementation of service.StoreReader
type MockStoreReader struct {
	mock.Mock
}

func (m *MockStoreReader) FindAllActiveStores(ctx context.Context) ([]models.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Store), args.Error(1)
}

func (m *MockStoreReader) FindPriceByProductAndStore(ctx context.Context, productID, storeID uuid.UUID, packageID *uuid.UUID) (*models.ProductPrice, error) {
	args := m.Called(ctx, productID, storeID, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductPrice), args.Error(1)
}

func (m *MockStoreReader) FindPackagesByProductID(ctx context.Context, productID uuid.UUID) ([]models.ProductPackage, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductPackage), args.Error(1)
}

func (m *MockStoreReader) FindPriceComparison(ctx context.Context, productID uuid.UUID, packageID *uuid.UUID) ([]models.ProductPrice, error) {
	args := m.Called(ctx, productID, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductPrice), args.Error(1)
}

var (
	_ service.ProfileReader          = (*MockProfileReader)(nil)
	_ service.NutritionPlanReader    = (*MockNutritionPlanReader)(nil)
	_ service.ProductReader          = (*MockProductReader)(nil)
	_ service.ContraindicationReader = (*MockContraindicationReader)(nil)
	_ service.StoreReader            = (*MockStoreReader)(nil)
)
