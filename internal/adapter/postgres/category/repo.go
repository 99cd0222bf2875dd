// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

const table = "product.categories"

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

func (r row) toDomain() domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name}
}

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	query, args, err := postgres.Builder().
		Select("id", "name").
		From(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	c := dst.toDomain()
	return &c, nil
}

// GetByIDs returns the categories with the given ids (batch for DataLoader).
// Unknown ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, name FROM product.categories WHERE id = ANY($1::uuid[]) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("get categories by ids: %w", err)
	}

	return toDomain(rows), nil
}

// List returns every category ordered by name.
// Returns an empty slice (not nil) when there are no categories.
func (r *Repo) List(ctx context.Context) ([]domain.Category, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT id, name FROM product.categories ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return toDomain(rows), nil
}

// Upsert writes categories keyed on id. Rows that already hold the same
// values are left untouched, so re-applying a set returns 0.
// Returns the number of inserted or changed rows.
func (r *Repo) Upsert(ctx context.Context, categories []domain.Category) (int, error) {
	if len(categories) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(`
INSERT INTO product.categories AS c (id, name)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name, updated_at = now()
WHERE c.name IS DISTINCT FROM EXCLUDED.name`,
			c.ID, c.Name,
		)
	}

	n, err := postgres.SendBatchExec(ctx, postgres.QuerierFromCtx(ctx, r.db), batch)
	if err != nil {
		return n, postgres.MapError(err, "categories", "batch")
	}
	return n, nil
}

func toDomain(rows []row) []domain.Category {
	out := make([]domain.Category, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}
