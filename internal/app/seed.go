package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/catalog-backend/internal/app/seeder"
	"github.com/heartmarshall/catalog-backend/internal/config"
)

// Seed loads the configured descriptor files and upserts them. Any error is
// fatal for startup; a *seeder.ConfigurationError means the seed set itself
// references unknown categories or carries invalid fields.
func Seed(
	ctx context.Context,
	logger *slog.Logger,
	categories seeder.CategoryBulkRepo,
	products seeder.ProductBulkRepo,
	txm seeder.TxManager,
	cfg config.SeedConfig,
) error {
	seedCfg := seeder.ConfigFrom(cfg)

	descriptors, err := seeder.LoadDescriptors(seedCfg)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	pipeline := seeder.NewPipeline(logger, categories, products, txm, seedCfg)
	if err := pipeline.Run(ctx, descriptors); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
