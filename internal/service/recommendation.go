package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/pageza/nutristack/backend/internal/logger"
	"github.com/pageza/nutristack/backend/internal/models"
	"github.com/pageza/nutristack/backend/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	candidatePageSize      = 200
	defaultMaxProducts     = 10
	contraindicationLoader = 8
)

type RecommendationService struct {
	profiles          ProfileReader
	products          ProductReader
	contraindications ContraindicationReader
	rules             []ScoringRule
}

func NewRecommendationService(profiles ProfileReader, products ProductReader, contraindications ContraindicationReader) *RecommendationService {
	return &RecommendationService{
		profiles:          profiles,
		products:          products,
		contraindications: contraindications,
		rules:             DefaultScoringRules(),
	}
}

// WithRules replaces the scoring rule table.
func (s *RecommendationService) WithRules(rules []ScoringRule) *RecommendationService {
	s.rules = rules
	return s
}

// GetRecommendations scores every available product for the user and returns the
// best candidates. Products with a high severity contraindication are never returned.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uuid.UUID, opts types.RecommendationOptions) ([]types.ProductRecommendation, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.products.GetAvailableProducts(ctx, ProductFilters{ExcludeIDs: opts.ExcludeProductIDs}, candidatePageSize, 0)
	if err != nil {
		logger.Error("failed to load candidate products", zap.Error(err))
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	products = withoutIDs(products, opts.ExcludeProductIDs)

	contraindications, err := s.loadContraindications(ctx, products)
	if err != nil {
		return nil, err
	}

	recommendations := make([]types.ProductRecommendation, 0, len(products))
	for i := range products {
		product := &products[i]
		matched := matchContraindications(contraindications[i], profile.Diseases)
		if hasHighSeverity(matched) {
			logger.Debug("excluding contraindicated product",
				zap.String("product_id", product.ID.String()),
				zap.Strings("contraindications", contraindicationNames(matched)))
			continue
		}

		result := Score(s.rules, ScoreInput{Product: product, Profile: profile, Matched: matched})
		logger.Debug("scored product",
			zap.String("product_id", product.ID.String()),
			zap.Int("score", result.Score))

		recommendations = append(recommendations, types.ProductRecommendation{
			Product:           *product,
			Score:             result.Score,
			Reasons:           result.Reasons,
			Warnings:          result.Warnings,
			Contraindications: contraindicationNames(matched),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	limit := opts.MaxProducts
	if limit <= 0 {
		limit = defaultMaxProducts
	}
	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}

	logger.Info("built recommendations",
		zap.String("user_id", userID.String()),
		zap.Int("candidates", len(products)),
		zap.Int("returned", len(recommendations)))
	return recommendations, nil
}

// CheckCompatibility matches a single product against both the user's diseases and medications.
func (s *RecommendationService) CheckCompatibility(ctx context.Context, productID, userID uuid.UUID) (*types.CompatibilityResult, error) {
	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		logger.Error("failed to load product", zap.String("product_id", productID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	contraindications, err := s.contraindications.FindByProductID(ctx, productID)
	if err != nil {
		logger.Error("failed to load contraindications", zap.String("product_id", productID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load contraindications: %w", err)
	}

	matched := matchContraindications(contraindications, profile.Diseases, profile.Medications)
	warnings := make([]string, 0, len(matched))
	for _, c := range matched {
		warnings = append(warnings, contraindicationWarning(c))
	}

	return &types.CompatibilityResult{
		ProductID:         productID,
		Compatible:        !hasHighSeverity(matched),
		Warnings:          warnings,
		Contraindications: contraindicationNames(matched),
	}, nil
}

func (s *RecommendationService) loadProfile(ctx context.Context, userID uuid.UUID) (*models.HealthProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("failed to load health profile", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load health profile: %w", err)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// loadContraindications fetches contraindications for every product concurrently.
// The result is indexed like products.
func (s *RecommendationService) loadContraindications(ctx context.Context, products []models.Product) ([][]models.Contraindication, error) {
	out := make([][]models.Contraindication, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(contraindicationLoader)
	for i := range products {
		i := i
		g.Go(func() error {
			cs, err := s.contraindications.FindByProductID(gctx, products[i].ID)
			if err != nil {
				return fmt.Errorf("failed to load contraindications for %s: %w", products[i].ID, err)
			}
			out[i] = cs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("failed to load contraindications", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func withoutIDs(products []models.Product, exclude []uuid.UUID) []models.Product {
	if len(exclude) == 0 {
		return products
	}
	skip := make(map[uuid.UUID]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	kept := products[:0:0]
	for _, p := range products {
		if _, ok := skip[p.ID]; !ok {
			kept = append(kept, p)
		}
	}
	return kept
}
