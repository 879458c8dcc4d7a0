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

const defaultShoppingWorkers = 4

// ShoppingService quotes whole baskets per store. It never splits a basket across stores.
type ShoppingService struct {
	stores  StoreReader
	workers int
}

func NewShoppingService(stores StoreReader, workers int) *ShoppingService {
	if workers <= 0 {
		workers = defaultShoppingWorkers
	}
	return &ShoppingService{stores: stores, workers: workers}
}

// basketItem is a requirement joined with its product and that product's packages.
type basketItem struct {
	requirement types.DosageRequirement
	product     *models.Product
	packages    []models.ProductPackage
}

// FindOptimalShoppingOptions returns one option per store able to supply every item in
// stock, cheapest total first. Requirements whose product is not in products are skipped.
func (s *ShoppingService) FindOptimalShoppingOptions(ctx context.Context, requirements []types.DosageRequirement, products []models.Product) ([]types.ShoppingOption, error) {
	items, err := s.basketItems(ctx, requirements, products)
	if err != nil {
		return nil, err
	}

	stores, err := s.stores.FindAllActiveStores(ctx)
	if err != nil {
		logger.Error("failed to load stores", zap.Error(err))
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}
	stores = uniqueStores(stores)

	quotes := make([]*types.ShoppingOption, len(stores))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range stores {
		i := i
		g.Go(func() error {
			option, err := s.calculateStoreOption(gctx, &stores[i], items)
			if err != nil {
				return err
			}
			quotes[i] = option
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("failed to quote stores", zap.Error(err))
		return nil, err
	}

	options := make([]types.ShoppingOption, 0, len(quotes))
	for _, q := range quotes {
		if q != nil {
			options = append(options, *q)
		}
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].TotalCost < options[j].TotalCost
	})

	logger.Info("built shopping options",
		zap.Int("items", len(items)),
		zap.Int("stores", len(stores)),
		zap.Int("options", len(options)))
	return options, nil
}

// CompareProductPrices lists every in-stock offer for a product with the store's delivery
// fee added, cheapest first.
func (s *ShoppingService) CompareProductPrices(ctx context.Context, productID uuid.UUID, packageID *uuid.UUID) ([]types.PriceComparison, error) {
	prices, err := s.stores.FindPriceComparison(ctx, productID, packageID)
	if err != nil {
		logger.Error("failed to load prices", zap.String("product_id", productID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to load prices: %w", err)
	}

	comparisons := make([]types.PriceComparison, 0, len(prices))
	for i := range prices {
		price := &prices[i]
		if !price.InStock {
			continue
		}
		store := models.Store{ID: price.StoreID}
		if price.Store != nil {
			store = *price.Store
		}
		comparisons = append(comparisons, types.PriceComparison{
			Store:         store,
			ProductID:     price.ProductID,
			PackageID:     price.PackageID,
			Price:         price.Price,
			DiscountPrice: price.DiscountPrice,
			FinalCost:     round2(price.UnitPrice() + store.DeliveryFeeOrZero()),
			URL:           price.URL,
		})
	}
	sort.SliceStable(comparisons, func(i, j int) bool {
		return comparisons[i].FinalCost < comparisons[j].FinalCost
	})
	return comparisons, nil
}

// basketItems joins requirements to products and loads packages once per product.
func (s *ShoppingService) basketItems(ctx context.Context, requirements []types.DosageRequirement, products []models.Product) ([]basketItem, error) {
	byID := make(map[uuid.UUID]*models.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	packagesByProduct := make(map[uuid.UUID][]models.ProductPackage)
	items := make([]basketItem, 0, len(requirements))
	for _, req := range requirements {
		product, ok := byID[req.ProductID]
		if !ok {
			logger.Debug("skipping requirement for unknown product", zap.String("product_id", req.ProductID.String()))
			continue
		}
		packages, loaded := packagesByProduct[product.ID]
		if !loaded {
			var err error
			packages, err = s.stores.FindPackagesByProductID(ctx, product.ID)
			if err != nil {
				logger.Error("failed to load packages", zap.String("product_id", product.ID.String()), zap.Error(err))
				return nil, fmt.Errorf("failed to load packages: %w", err)
			}
			packagesByProduct[product.ID] = packages
		}
		items = append(items, basketItem{requirement: req, product: product, packages: packages})
	}
	return items, nil
}

// calculateStoreOption prices every item at one store. It returns (nil, nil) when the
// store cannot supply some item in stock.
func (s *ShoppingService) calculateStoreOption(ctx context.Context, store *models.Store, items []basketItem) (*types.ShoppingOption, error) {
	option := &types.ShoppingOption{
		StoreID:   store.ID,
		StoreName: store.Name,
		Lines:     make([]types.ShoppingLine, 0, len(items)),
	}

	for _, item := range items {
		line, err := s.priceLine(ctx, store, item)
		if err != nil {
			return nil, err
		}
		if line == nil {
			logger.Debug("store cannot supply basket",
				zap.String("store_id", store.ID.String()),
				zap.String("product_id", item.product.ID.String()))
			return nil, nil
		}
		option.Lines = append(option.Lines, *line)
		option.Subtotal += line.TotalPrice
	}

	option.Subtotal = round2(option.Subtotal)
	option.DeliveryFee = store.DeliveryFeeOrZero()
	option.MinOrderAmount = store.MinOrderOrZero()
	option.MeetsMinimumOrder = option.MinOrderAmount == 0 || option.Subtotal >= option.MinOrderAmount
	option.TotalCost = option.Subtotal
	if option.MeetsMinimumOrder {
		option.TotalCost = round2(option.Subtotal + option.DeliveryFee)
	}
	return option, nil
}

// priceLine returns nil when the store has no in-stock price for the item.
func (s *ShoppingService) priceLine(ctx context.Context, store *models.Store, item basketItem) (*types.ShoppingLine, error) {
	total := item.requirement.TotalGrams()

	var (
		price     *models.ProductPrice
		packageID *uuid.UUID
		quantity  int
		err       error
	)
	if best := FindBestPackage(item.packages, total); best != nil {
		quantity = packagesNeeded(total, *best.WeightGrams)
		pkgID := best.ID
		packageID = &pkgID
		price, err = s.stores.FindPriceByProductAndStore(ctx, item.product.ID, store.ID, packageID)
		if err == nil && price == nil {
			price, err = s.unscopedPrice(ctx, item.product.ID, store.ID)
		}
	} else {
		quantity = packagesNeeded(total, ReferencePackageGrams)
		price, err = s.unscopedPrice(ctx, item.product.ID, store.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load price for %s at %s: %w", item.product.ID, store.ID, err)
	}
	if price == nil || !price.InStock {
		return nil, nil
	}

	unit := price.UnitPrice()
	return &types.ShoppingLine{
		ProductID:  item.product.ID,
		PackageID:  packageID,
		Quantity:   quantity,
		UnitPrice:  unit,
		TotalPrice: round2(unit * float64(quantity)),
	}, nil
}

// unscopedPrice looks up the product price that is not tied to a package. A row
// for some other package is not a product price and is ignored.
func (s *ShoppingService) unscopedPrice(ctx context.Context, productID, storeID uuid.UUID) (*models.ProductPrice, error) {
	price, err := s.stores.FindPriceByProductAndStore(ctx, productID, storeID, nil)
	if err != nil || price == nil || price.PackageID != nil {
		return nil, err
	}
	return price, nil
}

// FindBestPackage picks the package of known weight that needs the fewest units to cover
// totalGrams, preferring the larger package on ties. It returns nil when no package has a weight.
func FindBestPackage(packages []models.ProductPackage, totalGrams float64) *models.ProductPackage {
	var (
		best      *models.ProductPackage
		bestCount int
	)
	for i := range packages {
		pkg := &packages[i]
		if !pkg.HasWeight() {
			continue
		}
		count := packagesNeeded(totalGrams, *pkg.WeightGrams)
		if best == nil || count < bestCount || (count == bestCount && *pkg.WeightGrams > *best.WeightGrams) {
			best, bestCount = pkg, count
		}
	}
	return best
}

func uniqueStores(stores []models.Store) []models.Store {
	seen := make(map[uuid.UUID]struct{}, len(stores))
	out := make([]models.Store, 0, len(stores))
	for _, st := range stores {
		if _, dup := seen[st.ID]; dup {
			continue
		}
		seen[st.ID] = struct{}{}
		out = append(out, st)
	}
	return out
}
