// Package seeder loads the static catalog seed set into the store.
// It runs once before the server starts serving, or offline via cmd/seeder.
package seeder

import (
	"context"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// CategoryBulkRepo is implemented by category.Repo.
// Upsert is idempotent and returns the number of inserted or changed rows.
type CategoryBulkRepo interface {
	Upsert(ctx context.Context, categories []domain.Category) (int, error)
}

// ProductBulkRepo is implemented by product.Repo.
// Upsert must reject products whose category does not exist.
type ProductBulkRepo interface {
	Upsert(ctx context.Context, products []domain.Product) (int, error)
}

// TxManager runs fn inside one database transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
