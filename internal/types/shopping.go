package types

import (
	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/models"
)

// ShoppingLine is one product in a store basket.
type ShoppingLine struct {
	ProductID  uuid.UUID  `json:"product_id"`
	PackageID  *uuid.UUID `json:"package_id,omitempty"`
	Quantity   int        `json:"quantity"`
	UnitPrice  float64    `json:"unit_price"`
	TotalPrice float64    `json:"total_price"`
}

// ShoppingOption is a single store's quote for a whole basket.
// When MeetsMinimumOrder is false the basket cannot be checked out and
// TotalCost excludes delivery.
type ShoppingOption struct {
	StoreID           uuid.UUID      `json:"store_id"`
	StoreName         string         `json:"store_name"`
	Lines             []ShoppingLine `json:"lines"`
	Subtotal          float64        `json:"subtotal"`
	DeliveryFee       float64        `json:"delivery_fee"`
	MinOrderAmount    float64        `json:"min_order_amount"`
	TotalCost         float64        `json:"total_cost"`
	MeetsMinimumOrder bool           `json:"meets_minimum_order"`
}

// PriceComparison is one store's offer for a single product.
type PriceComparison struct {
	Store         models.Store `json:"store"`
	ProductID     uuid.UUID    `json:"product_id"`
	PackageID     *uuid.UUID   `json:"package_id,omitempty"`
	Price         float64      `json:"price"`
	DiscountPrice *float64     `json:"discount_price,omitempty"`
	FinalCost     float64      `json:"final_cost"`
	URL           string       `json:"url,omitempty"`
}

// ShoppingRequest is the body of a shopping options request.
type ShoppingRequest struct {
	Requirements []DosageRequirement `json:"requirements" binding:"required,min=1,dive"`
}
