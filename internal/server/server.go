package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/nutristack/backend/config"
	"github.com/pageza/nutristack/backend/internal/api"
	"github.com/pageza/nutristack/backend/internal/cache"
	"github.com/pageza/nutristack/backend/internal/database"
	"github.com/pageza/nutristack/backend/internal/logger"
	"github.com/pageza/nutristack/backend/internal/middleware"
	"github.com/pageza/nutristack/backend/internal/repository"
	"github.com/pageza/nutristack/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// Services are the engines a Server exposes, built from the storage layer.
type Services struct {
	Recommendations *service.RecommendationService
	Dosage          *service.DosageService
	Shopping        *service.ShoppingService
	Plans           *service.PlanService
	Tokens          *service.TokenService
	Products        repository.ProductRepository
}

// NewServices wires repositories, the price cache and the engines. A nil redis
// client disables the cache.
func NewServices(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Services {
	profiles := repository.NewProfileRepository(db)
	products := repository.NewProductRepository(db)
	stores := cache.NewPriceCache(repository.NewStoreRepository(db), redisClient, cfg.PriceCacheTTL)

	dosage := service.NewDosageService(stores)
	shopping := service.NewShoppingService(stores, cfg.ShoppingWorkers)
	return &Services{
		Recommendations: service.NewRecommendationService(profiles, products, products),
		Dosage:          dosage,
		Shopping:        shopping,
		Plans:           service.NewPlanService(profiles, profiles, products, dosage, shopping),
		Tokens:          service.NewTokenService(cfg.JWTSecret),
		Products:        products,
	}
}

// New creates a new server instance
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	router := gin.New()
	router.Use(middleware.ErrorHandler(), middleware.RequestLogger(), middleware.CORS())

	svcs := NewServices(cfg, db, redisClient)
	api.RegisterRoutes(router, api.Dependencies{
		Recommendations:   svcs.Recommendations,
		Plans:             svcs.Plans,
		Shopping:          svcs.Shopping,
		Products:          svcs.Products,
		Tokens:            svcs.Tokens,
		SupplementLimiter: middleware.NewSupplementRateLimiter(redisClient, cfg.SupplementRateLimit),
		Ping: func(ctx context.Context) error {
			return database.HealthCheck(ctx, db)
		},
	})

	return &Server{
		router: router,
		cfg:    cfg,
	}
}

// Handler exposes the router, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              net.JoinHostPort(s.cfg.ServerHost, s.cfg.ServerPort),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
