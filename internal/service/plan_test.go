package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/mocks"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/service"
	"github.com/pageza/nutristack/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type planFixture struct {
	profiles *mocks.MockProfileReader
	plans    *mocks.MockNutritionPlanReader
	products *mocks.MockProductReader
	shopping *mocks.MockShoppingService
	svc      *service.PlanService
}

func newPlanFixture() *planFixture {
	f := &planFixture{
		profiles: new(mocks.MockProfileReader),
		plans:    new(mocks.MockNutritionPlanReader),
		products: new(mocks.MockProductReader),
		shopping: new(mocks.MockShoppingService),
	}
	f.svc = service.NewPlanService(f.profiles, f.plans, f.products, service.NewDosageService(nil), f.shopping)
	return f
}

func TestBuildPlan(t *testing.T) {
	f := newPlanFixture()
	userID := uuid.New()
	whey := &models.Product{ID: uuid.New(), Type: models.ProductProtein, Protein: 25}
	creatine := &models.Product{ID: uuid.New(), Type: models.ProductCreatine}
	profile := &models.HealthProfile{Goal: goal(models.GoalCut), ActivityLevel: activity(models.ActivityHigh)}

	f.profiles.On("GetByUserID", mock.Anything, userID).Return(profile, nil)
	f.plans.On("GetLatestByUserID", mock.Anything, userID).Return(&models.NutritionPlan{
		UserID: userID, Calories: 2200, Protein: 180, Carbs: 200, Fats: 70, Method: "mifflin_st_jeor",
	}, nil)
	f.products.On("GetByID", mock.Anything, whey.ID).Return(whey, nil).Once()
	f.products.On("GetByID", mock.Anything, creatine.ID).Return(creatine, nil).Once()

	expectedReqs := []types.DosageRequirement{
		{ProductID: whey.ID, DailyGrams: 388.8, DurationDays: 60, FrequencyPerWeek: 7},
		{ProductID: creatine.ID, DailyGrams: 5, DurationDays: 60, FrequencyPerWeek: 7},
	}
	options := []types.ShoppingOption{{StoreName: "Shop", TotalCost: 120}}
	f.shopping.On("FindOptimalShoppingOptions", mock.Anything, expectedReqs, []models.Product{*whey, *creatine}).Return(options, nil)

	plan, err := f.svc.BuildPlan(context.Background(), userID, []uuid.UUID{whey.ID, creatine.ID, whey.ID}, 60)
	require.NoError(t, err)

	assert.Equal(t, userID, plan.UserID)
	assert.Equal(t, 60, plan.DurationDays)
	assert.Equal(t, 180.0, plan.Needs.Protein)
	assert.Equal(t, "mifflin_st_jeor", plan.Needs.Method)
	require.Len(t, plan.Dosages, 2)
	assert.Equal(t, 388.8, plan.Dosages[0].DailyAmountGrams)
	assert.Equal(t, 5.0, plan.Dosages[1].DailyAmountGrams)
	assert.Equal(t, expectedReqs, plan.Requirements)
	assert.Equal(t, options, plan.ShoppingOptions)
	f.products.AssertExpectations(t)
	f.shopping.AssertExpectations(t)
}

func TestBuildPlanErrors(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("missing profile", func(t *testing.T) {
		f := newPlanFixture()
		f.profiles.On("GetByUserID", mock.Anything, userID).Return(nil, nil)

		_, err := f.svc.BuildPlan(context.Background(), userID, []uuid.UUID{productID}, 30)
		assert.ErrorIs(t, err, service.ErrProfileNotFound)
	})

	t.Run("missing nutrition plan", func(t *testing.T) {
		f := newPlanFixture()
		f.profiles.On("GetByUserID", mock.Anything, userID).Return(&models.HealthProfile{}, nil)
		f.plans.On("GetLatestByUserID", mock.Anything, userID).Return(nil, nil)

		_, err := f.svc.BuildPlan(context.Background(), userID, []uuid.UUID{productID}, 30)
		assert.ErrorIs(t, err, service.ErrPlanNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newPlanFixture()
		f.profiles.On("GetByUserID", mock.Anything, userID).Return(&models.HealthProfile{}, nil)
		f.plans.On("GetLatestByUserID", mock.Anything, userID).Return(&models.NutritionPlan{Protein: 150}, nil)
		f.products.On("GetByID", mock.Anything, productID).Return(nil, nil)

		_, err := f.svc.BuildPlan(context.Background(), userID, []uuid.UUID{productID}, 30)
		assert.ErrorIs(t, err, service.ErrProductNotFound)
		f.shopping.AssertNotCalled(t, "FindOptimalShoppingOptions", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative duration", func(t *testing.T) {
		f := newPlanFixture()

		_, err := f.svc.BuildPlan(context.Background(), userID, []uuid.UUID{productID}, -7)
		assert.ErrorIs(t, err, service.ErrInvalidDuration)
		f.profiles.AssertNotCalled(t, "GetByUserID", mock.Anything, mock.Anything)
	})
}
