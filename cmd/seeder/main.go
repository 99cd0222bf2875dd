// Command seeder loads categories and then products from JSON descriptor
// files into the catalog database. The server seeds on startup as well;
// this command exists for loading larger sets offline.
//
// Flags:
//
//	--categories  path to the categories JSON file (default: bundled set)
//	--products    path to the products JSON file (default: bundled set)
//	--dry-run     load and validate the files without touching the database
//	--migrate     apply migrations before seeding
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/product"
	"github.com/heartmarshall/catalog-backend/internal/app"
	"github.com/heartmarshall/catalog-backend/internal/app/seeder"
	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/migrations"
)

// Compile-time interface assertions.
var (
	_ seeder.CategoryBulkRepo = (*category.Repo)(nil)
	_ seeder.ProductBulkRepo  = (*product.Repo)(nil)
)

func main() {
	categoriesFlag := flag.String("categories", "", "path to categories JSON (default: bundled)")
	productsFlag := flag.String("products", "", "path to products JSON (default: bundled)")
	dryRunFlag := flag.Bool("dry-run", false, "validate descriptor files without writing to DB")
	migrateFlag := flag.Bool("migrate", false, "apply migrations before seeding")
	flag.Parse()

	_ = godotenv.Load()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seedCfg := appCfg.Seed
	if *categoriesFlag != "" {
		seedCfg.CategoriesPath = *categoriesFlag
	}
	if *productsFlag != "" {
		seedCfg.ProductsPath = *productsFlag
	}

	if *dryRunFlag {
		d, err := seeder.LoadDescriptors(seeder.ConfigFrom(seedCfg))
		if err == nil {
			err = seeder.Validate(d)
		}
		if err != nil {
			exit(logger, "seed set invalid", err)
		}
		logger.Info("seed set valid",
			slog.Int("categories", len(d.Categories)),
			slog.Int("products", len(d.Products)),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Bulk upserts are bounded by ctx, not by the server-side statement timeout.
	dbCfg := appCfg.Database
	dbCfg.ApplicationName = "catalog-seeder"
	dbCfg.StatementTimeout = 0

	pool, err := postgres.NewPool(ctx, dbCfg)
	if err != nil {
		exit(logger, "connect to database", err)
	}
	defer pool.Close()

	if *migrateFlag {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			exit(logger, "migrate", err)
		}
	}

	txm := postgres.NewTxManager(pool)
	categoryRepo := category.New(pool)
	productRepo := product.New(pool, txm)

	if err := app.Seed(ctx, logger, categoryRepo, productRepo, txm, seedCfg); err != nil {
		exit(logger, "seeding failed", err)
	}

	logger.Info("seeding completed successfully")
}

func exit(logger *slog.Logger, msg string, err error) {
	var cfgErr *seeder.ConfigurationError
	if errors.As(err, &cfgErr) {
		logger.Error(msg, slog.String("error", err.Error()), slog.String("kind", "seed_configuration"))
	} else {
		logger.Error(msg, slog.String("error", err.Error()))
	}
	os.Exit(1)
}
