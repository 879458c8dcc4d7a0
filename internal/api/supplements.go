package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/nutristack/backend/internal/middleware"
	"github.com/pageza/nutristack/backend/internal/service"
	"github.com/pageza/nutristack/backend/internal/types"
)

type SupplementHandler struct {
	recommendations service.IRecommendationService
	plans           service.IPlanService
}

func NewSupplementHandler(recommendations service.IRecommendationService, plans service.IPlanService) *SupplementHandler {
	return &SupplementHandler{
		recommendations: recommendations,
		plans:           plans,
	}
}

// RegisterRoutes mounts the user-scoped supplement endpoints. Recommendations and plans
// are rate limited when a limiter is given.
func (h *SupplementHandler) RegisterRoutes(router *gin.RouterGroup, tokens middleware.TokenValidator, limiter *middleware.RateLimiter) {
	limited := []gin.HandlerFunc{}
	if limiter != nil {
		limited = append(limited, limiter.RateLimitMiddleware())
	}

	supplements := router.Group("/supplements")
	supplements.Use(middleware.AuthMiddleware(tokens))
	{
		supplements.GET("/recommendations", append(limited, h.GetRecommendations)...)
		supplements.GET("/:id/compatibility", h.CheckCompatibility)
		supplements.POST("/plan", append(limited, h.BuildPlan)...)
	}
}

func (h *SupplementHandler) GetRecommendations(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var opts types.RecommendationOptions
	if raw := c.Query("max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			badRequest(c, "max must be a non-negative integer")
			return
		}
		opts.MaxProducts = n
	}
	if raw := c.Query("exclude"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				badRequest(c, "exclude must be a comma separated list of product ids")
				return
			}
			opts.ExcludeProductIDs = append(opts.ExcludeProductIDs, id)
		}
	}

	recs, err := h.recommendations.GetRecommendations(c.Request.Context(), userID, opts)
	if err != nil {
		respondError(c, err, "failed to get recommendations")
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (h *SupplementHandler) CheckCompatibility(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "invalid product id")
		return
	}

	result, err := h.recommendations.CheckCompatibility(c.Request.Context(), productID, userID)
	if err != nil {
		respondError(c, err, "failed to check compatibility")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *SupplementHandler) BuildPlan(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req types.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	plan, err := h.plans.BuildPlan(c.Request.Context(), userID, req.ProductIDs, req.DurationDays)
	if err != nil {
		respondError(c, err, "failed to build supplement plan")
		return
	}
	c.JSON(http.StatusOK, plan)
}
