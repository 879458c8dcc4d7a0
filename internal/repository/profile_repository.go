package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ProfileRepository interface {
		service.ProfileReader
		service.NutritionPlanReader
		SaveProfile(ctx context.Context, profile *models.HealthProfile) error
		CreateNutritionPlan(ctx context.Context, plan *models.NutritionPlan) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	var profile models.HealthProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.NutritionPlan, error) {
	var plan models.NutritionPlan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

// SaveProfile inserts the profile or replaces the one the user already has.
func (r *profileRepository) SaveProfile(ctx context.Context, profile *models.HealthProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profile).Error
}

func (r *profileRepository) CreateNutritionPlan(ctx context.Context, plan *models.NutritionPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}
