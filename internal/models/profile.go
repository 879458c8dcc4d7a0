package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityLevel is the self-reported training volume of a user.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
	ActivityVeryHigh ActivityLevel = "very_high"
)

// Goal is the body-composition goal a user is working towards.
type Goal string

const (
	GoalMass      Goal = "mass"
	GoalCut       Goal = "cut"
	GoalMaintain  Goal = "maintain"
	GoalEndurance Goal = "endurance"
)

// HealthProfile holds the optional health data used to score and dose supplements.
// Every field except the user reference may be missing.
type HealthProfile struct {
	ID            uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID        uuid.UUID      `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Age           *int           `json:"age,omitempty"`
	Gender        *string        `gorm:"size:20" json:"gender,omitempty"`
	Weight        *float64       `json:"weight,omitempty"`
	Height        *float64       `json:"height,omitempty"`
	ActivityLevel *ActivityLevel `gorm:"size:20" json:"activity_level,omitempty"`
	Goal          *Goal          `gorm:"size:20" json:"goal,omitempty"`
	Allergies     StringList     `json:"allergies"`
	Diseases      StringList     `json:"diseases"`
	Medications   StringList     `json:"medications"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (HealthProfile) TableName() string {
	return "health_profiles"
}

// BeforeCreate assigns an id when the caller did not.
func (p *HealthProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Activity returns the activity level, or "" when unknown.
func (p *HealthProfile) Activity() ActivityLevel {
	if p == nil || p.ActivityLevel == nil {
		return ""
	}
	return ActivityLevel(strings.ToLower(string(*p.ActivityLevel)))
}

// GoalOrEmpty returns the goal, or "" when unknown.
func (p *HealthProfile) GoalOrEmpty() Goal {
	if p == nil || p.Goal == nil {
		return ""
	}
	return Goal(strings.ToLower(string(*p.Goal)))
}

// NutritionPlan is the latest macro target snapshot computed for a user by the
// BMR/TDEE calculator. This core only reads it.
type NutritionPlan struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Calories  float64   `gorm:"not null" json:"calories"`
	Protein   float64   `gorm:"not null" json:"protein"`
	Carbs     float64   `gorm:"not null" json:"carbs"`
	Fats      float64   `gorm:"not null" json:"fats"`
	BMR       float64   `json:"bmr"`
	TDEE      float64   `json:"tdee"`
	Method    string    `gorm:"size:50" json:"method"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NutritionPlan) TableName() string {
	return "nutrition_plans"
}

func (p *NutritionPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
