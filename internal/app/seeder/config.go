package seeder

import "github.com/heartmarshall/catalog-backend/internal/config"

// Config holds seed pipeline settings.
type Config struct {
	CategoriesPath string
	ProductsPath   string
	BatchSize      int
	DryRun         bool
}

// ConfigFrom derives pipeline settings from the application config.
func ConfigFrom(c config.SeedConfig) Config {
	return Config{
		CategoriesPath: c.CategoriesPath,
		ProductsPath:   c.ProductsPath,
		BatchSize:      c.BatchSize,
	}
}
