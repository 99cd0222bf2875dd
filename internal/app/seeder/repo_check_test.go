package seeder_test

import (
	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/product"
	"github.com/heartmarshall/catalog-backend/internal/app/seeder"
)

// Compile-time checks: the postgres repositories satisfy the seeder contracts.
var (
	_ seeder.CategoryBulkRepo = (*category.Repo)(nil)
	_ seeder.ProductBulkRepo  = (*product.Repo)(nil)
	_ seeder.TxManager        = (*postgres.TxManager)(nil)
)
