package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductType is the supplement category a product belongs to.
type ProductType string

const (
	ProductProtein     ProductType = "protein"
	ProductCreatine    ProductType = "creatine"
	ProductAmino       ProductType = "amino"
	ProductVitamin     ProductType = "vitamin"
	ProductPreWorkout  ProductType = "pre_workout"
	ProductPostWorkout ProductType = "post_workout"
	ProductFatBurner   ProductType = "fat_burner"
	ProductOther       ProductType = "other"
)

// Severity grades how strongly a contraindication argues against a product.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Brand is a supplement manufacturer.
type Brand struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Verified  bool      `gorm:"not null;default:false" json:"verified"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Brand) TableName() string {
	return "brands"
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Product is a supplement. Macros are per serving for scoring and per 100 g for
// protein dosing; any of them may be zero when unknown.
type Product struct {
	ID                uuid.UUID          `gorm:"type:varchar(36);primarykey" json:"id"`
	Name              string             `gorm:"size:255;not null" json:"name"`
	Type              ProductType        `gorm:"size:30;not null;index" json:"type"`
	Protein           float64            `gorm:"not null;default:0" json:"protein"`
	Carbs             float64            `gorm:"not null;default:0" json:"carbs"`
	Fats              float64            `gorm:"not null;default:0" json:"fats"`
	Calories          float64            `gorm:"not null;default:0" json:"calories"`
	ServingSize       *string            `gorm:"size:50" json:"serving_size,omitempty"`
	IsAvailable       bool               `gorm:"not null;default:true;index" json:"is_available"`
	BrandID           *uuid.UUID         `gorm:"type:varchar(36)" json:"brand_id,omitempty"`
	Brand             *Brand             `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Contraindications []Contraindication `gorm:"many2many:product_contraindications" json:"-"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	DeletedAt         gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasVerifiedBrand reports whether the product's brand is loaded and verified.
func (p *Product) HasVerifiedBrand() bool {
	return p.Brand != nil && p.Brand.Verified
}

// Contraindication is a condition or medication under which a product may be unsafe.
// Name is the key matched against a user's diseases and medications.
type Contraindication struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Severity    Severity  `gorm:"size:10;not null" json:"severity"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Contraindication) TableName() string {
	return "contraindications"
}

func (c *Contraindication) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
