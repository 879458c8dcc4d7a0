package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/nutristack/backend/config"
	"github.com/pageza/nutristack/backend/internal/cache"
	"github.com/pageza/nutristack/backend/internal/database"
)

// withDB opens the selected database, applies migrations and runs fn.
func withDB(fn func(cfg *config.Config, db *gorm.DB) error) error {
	var (
		cfg *config.Config
		db  *gorm.DB
		err error
	)
	if dbPath != "" {
		cfg = config.Defaults()
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", dbPath, err)
		}
	} else {
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		db, err = database.New(cfg)
		if err != nil {
			return err
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		return err
	}
	return fn(cfg, db)
}

func parseUUIDFlag(name, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid --%s %q", name, value)
	}
	return id, nil
}

// invalidatePriceCache drops cached stores and comparisons for products whose prices
// were just written. Without a configured redis there is nothing to drop; an
// unreachable redis is reported and skipped since entries expire on their own.
func invalidatePriceCache(ctx context.Context, out io.Writer, cfg *config.Config, productIDs []uuid.UUID) error {
	if cfg.RedisURL == "" && cfg.RedisHost == "" {
		return nil
	}
	client, err := database.NewRedisClient(cfg)
	if err != nil {
		fmt.Fprintf(out, "Skipping price cache invalidation: %v\n", err)
		return nil
	}
	defer client.Close()

	prices := cache.NewPriceCache(nil, client, cfg.PriceCacheTTL)
	if err := prices.InvalidateStores(ctx); err != nil {
		return err
	}
	for _, id := range productIDs {
		if err := prices.InvalidateProduct(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
