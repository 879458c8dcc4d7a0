package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/service"
	"github.com/pageza/nutristack/backend/internal/types"
)

type ShoppingHandler struct {
	shopping service.IShoppingService
	products service.ProductReader
}

func NewShoppingHandler(shopping service.IShoppingService, products service.ProductReader) *ShoppingHandler {
	return &ShoppingHandler{
		shopping: shopping,
		products: products,
	}
}

func (h *ShoppingHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/shopping/options", h.FindShoppingOptions)
	router.GET("/products/:id/prices", h.CompareProductPrices)
}

// FindShoppingOptions quotes the requested basket at every active store. Products
// that do not exist are left out of the basket.
func (h *ShoppingHandler) FindShoppingOptions(c *gin.Context) {
	var req types.ShoppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	seen := make(map[uuid.UUID]bool, len(req.Requirements))
	products := make([]models.Product, 0, len(req.Requirements))
	for _, r := range req.Requirements {
		if seen[r.ProductID] {
			continue
		}
		seen[r.ProductID] = true

		p, err := h.products.GetByID(ctx, r.ProductID)
		if err != nil {
			respondError(c, err, "failed to load products")
			return
		}
		if p != nil {
			products = append(products, *p)
		}
	}

	options, err := h.shopping.FindOptimalShoppingOptions(ctx, req.Requirements, products)
	if err != nil {
		respondError(c, err, "failed to find shopping options")
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

func (h *ShoppingHandler) CompareProductPrices(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid product id")
		return
	}

	var packageID *uuid.UUID
	if raw := c.Query("package_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "invalid package id")
			return
		}
		packageID = &id
	}

	comparisons, err := h.shopping.CompareProductPrices(c.Request.Context(), productID, packageID)
	if err != nil {
		respondError(c, err, "failed to compare prices")
		return
	}
	c.JSON(http.StatusOK, gin.H{"prices": comparisons})
}
