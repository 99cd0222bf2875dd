// Package rating implements the Rating repository using PostgreSQL.
package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new rating repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	ProductID uuid.UUID `db:"product_id"`
	Value     int16     `db:"value"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Rating {
	return domain.Rating{
		ID:        r.ID,
		ProductID: r.ProductID,
		Value:     int(r.Value),
		CreatedAt: r.CreatedAt,
	}
}

// GetByProductIDs returns ratings of several products (batch for DataLoader),
// newest first within a product.
func (r *Repo) GetByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]domain.Rating, error) {
	if len(productIDs) == 0 {
		return []domain.Rating{}, nil
	}

	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, `
SELECT id, product_id, value, created_at
FROM product.ratings
WHERE product_id = ANY($1::uuid[])
ORDER BY product_id, created_at DESC, id`, productIDs)
	if err != nil {
		return nil, fmt.Errorf("get ratings by product_ids: %w", err)
	}

	out := make([]domain.Rating, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Create stores a rating. Returns domain.ErrNotFound when the product does not exist.
func (r *Repo) Create(ctx context.Context, rating domain.Rating) (*domain.Rating, error) {
	var dst row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, `
INSERT INTO product.ratings (id, product_id, value)
VALUES ($1, $2, $3)
RETURNING id, product_id, value, created_at`,
		rating.ID, rating.ProductID, int16(rating.Value),
	)
	if err != nil {
		mapped := postgres.MapError(err, "rating", rating.ID)
		if errors.Is(mapped, domain.ErrConstraintViolation) {
			return nil, fmt.Errorf("product %s: %w", rating.ProductID, domain.ErrNotFound)
		}
		return nil, mapped
	}

	created := dst.toDomain()
	return &created, nil
}
