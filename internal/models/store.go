package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is a retail partner that sells supplements.
type Store struct {
	ID             uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Website        string    `gorm:"size:255" json:"website,omitempty"`
	DeliveryFee    *float64  `json:"delivery_fee,omitempty"`
	MinOrderAmount *float64  `json:"min_order_amount,omitempty"`
	IsActive       bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Store) TableName() string {
	return "stores"
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// DeliveryFeeOrZero returns the delivery fee, treating an unset fee as free delivery.
func (s *Store) DeliveryFeeOrZero() float64 {
	if s == nil || s.DeliveryFee == nil {
		return 0
	}
	return *s.DeliveryFee
}

// MinOrderOrZero returns the minimum order amount, treating an unset value as no minimum.
func (s *Store) MinOrderOrZero() float64 {
	if s == nil || s.MinOrderAmount == nil {
		return 0
	}
	return *s.MinOrderAmount
}

// ProductPackage is a purchasable size of a product.
type ProductPackage struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"product_id"`
	Name        string    `gorm:"size:100" json:"name,omitempty"`
	WeightGrams *float64  `json:"weight_grams,omitempty"`
	Servings    *int      `json:"servings,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ProductPackage) TableName() string {
	return "product_packages"
}

func (p *ProductPackage) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasWeight reports whether the package has a usable weight.
func (p *ProductPackage) HasWeight() bool {
	return p.WeightGrams != nil && *p.WeightGrams > 0
}

// ProductPrice is a store's price for a product, optionally for one package size.
// UpdatedAt records when the feed last refreshed the row.
type ProductPrice struct {
	ID            uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	ProductID     uuid.UUID       `gorm:"type:varchar(36);not null;index:idx_price_product_store" json:"product_id"`
	StoreID       uuid.UUID       `gorm:"type:varchar(36);not null;index:idx_price_product_store" json:"store_id"`
	PackageID     *uuid.UUID      `gorm:"type:varchar(36);index" json:"package_id,omitempty"`
	Price         float64         `gorm:"not null" json:"price"`
	DiscountPrice *float64        `json:"discount_price,omitempty"`
	InStock       bool            `gorm:"not null;default:true" json:"in_stock"`
	URL           string          `gorm:"size:500" json:"url,omitempty"`
	Store         *Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	Package       *ProductPackage `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (ProductPrice) TableName() string {
	return "product_prices"
}

func (p *ProductPrice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// UnitPrice returns the discounted price when one is set, otherwise the list price.
func (p *ProductPrice) UnitPrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}
