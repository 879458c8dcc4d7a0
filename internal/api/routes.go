package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pageza/nutristack/backend/internal/middleware"
	"github.com/pageza/nutristack/backend/internal/service"
)

// Dependencies are the engines and collaborators behind the HTTP surface.
type Dependencies struct {
	Recommendations   service.IRecommendationService
	Plans             service.IPlanService
	Shopping          service.IShoppingService
	Products          service.ProductReader
	Tokens            middleware.TokenValidator
	SupplementLimiter *middleware.RateLimiter
	Ping              Pinger
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck(deps.Ping))
	router.GET("/api/health", HealthCheck(deps.Ping))

	v1 := router.Group("/api/v1")
	NewSupplementHandler(deps.Recommendations, deps.Plans).RegisterRoutes(v1, deps.Tokens, deps.SupplementLimiter)
	NewShoppingHandler(deps.Shopping, deps.Products).RegisterRoutes(v1)
}
