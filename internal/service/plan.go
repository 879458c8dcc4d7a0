package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/logger"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/types"
	"go.uber.org/zap"
)

// PlanService runs dosage and shopping for a user's selected products.
type PlanService struct {
	profiles ProfileReader
	plans    NutritionPlanReader
	products ProductReader
	dosage   IDosageService
	shopping IShoppingService
}

func NewPlanService(profiles ProfileReader, plans NutritionPlanReader, products ProductReader, dosage IDosageService, shopping IShoppingService) *PlanService {
	return &PlanService{
		profiles: profiles,
		plans:    plans,
		products: products,
		dosage:   dosage,
		shopping: shopping,
	}
}

// BuildPlan requires both a health profile and a nutrition plan. Duplicate product ids
// are collapsed; an unknown id fails the whole plan.
func (s *PlanService) BuildPlan(ctx context.Context, userID uuid.UUID, productIDs []uuid.UUID, durationDays int) (*types.SupplementPlan, error) {
	durationDays, err := normalizeDuration(durationDays)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("failed to load health profile", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load health profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	nutrition, err := s.plans.GetLatestByUserID(ctx, userID)
	if err != nil {
		logger.Error("failed to load nutrition plan", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load nutrition plan: %w", err)
	}
	if nutrition == nil {
		return nil, ErrPlanNotFound
	}
	needs := types.NeedsFromPlan(nutrition)

	products, err := s.loadProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	dosages := make([]types.DosageCalculation, 0, len(products))
	for i := range products {
		calc, err := s.dosage.CalculateDosage(ctx, &products[i], needs, profile, durationDays)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate dosage for %s: %w", products[i].ID, err)
		}
		dosages = append(dosages, *calc)
	}

	requirements, err := s.dosage.CalculatePlanRequirements(products, needs, profile, durationDays)
	if err != nil {
		return nil, err
	}
	options, err := s.shopping.FindOptimalShoppingOptions(ctx, requirements, products)
	if err != nil {
		return nil, err
	}

	logger.Info("built supplement plan",
		zap.String("user_id", userID.String()),
		zap.Int("products", len(products)),
		zap.Int("shopping_options", len(options)))

	return &types.SupplementPlan{
		UserID:          userID,
		DurationDays:    durationDays,
		Needs:           needs,
		Dosages:         dosages,
		Requirements:    requirements,
		ShoppingOptions: options,
	}, nil
}

func (s *PlanService) loadProducts(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		product, err := s.products.GetByID(ctx, id)
		if err != nil {
			logger.Error("failed to load product", zap.String("product_id", id.String()), zap.Error(err))
			return nil, fmt.Errorf("failed to load product: %w", err)
		}
		if product == nil {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		products = append(products, *product)
	}
	return products, nil
}
