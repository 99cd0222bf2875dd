// Package product implements the Product repository using PostgreSQL.
// Writes enforce that every product references an existing category.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

const table = "product.products"

var columns = []string{"id", "name", "description", "price", "image_url", "store_id", "category_id"}

// txRunner abstracts postgres.TxManager.
type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db  postgres.Querier
	txm txRunner
}

// New creates a new product repository.
func New(db postgres.Querier, txm txRunner) *Repo {
	return &Repo{db: db, txm: txm}
}

type row struct {
	ID          uuid.UUID       `db:"id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	ImageURL    *string         `db:"image_url"`
	StoreID     uuid.UUID       `db:"store_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
}

func (r row) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		StoreID:     r.StoreID,
		CategoryID:  r.CategoryID,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a product by primary key.
// Returns domain.ErrNotFound if the product does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		return nil, postgres.MapError(err, "product", id)
	}

	p := dst.toDomain()
	return &p, nil
}

// List returns products matching filter. Products are ordered by id unless
// filter.SortBy says otherwise; id always breaks ties.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]domain.Product, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// likeEscaper neutralises LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// uuid.UUID is an array type, so squirrel.Eq would expand it into an IN list;
// id predicates are written as plain expressions instead.
func buildListQuery(filter domain.ProductFilter) squirrel.SelectBuilder {
	q := postgres.Builder().Select(columns...).From(table)

	if len(filter.IDs) > 0 {
		q = q.Where("id = ANY(?::uuid[])", filter.IDs)
	}
	if filter.CategoryID != nil {
		q = q.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.StoreID != nil {
		q = q.Where("store_id = ?", *filter.StoreID)
	}
	if filter.Search != nil {
		if term := domain.NormalizeSearch(*filter.Search); term != "" {
			q = q.Where(squirrel.ILike{"name": "%" + likeEscaper.Replace(term) + "%"})
		}
	}

	switch filter.SortBy {
	case domain.ProductSortByName:
		q = q.OrderBy("name", "id")
	case domain.ProductSortByPrice:
		q = q.OrderBy("price", "id")
	default:
		q = q.OrderBy("id")
	}

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	return q
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a single product. A missing category yields a
// *domain.ConstraintError and nothing is written.
func (r *Repo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.StoreID, p.CategoryID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, query, args...); err != nil {
		mapped := postgres.MapError(err, "product", p.ID)
		if errors.Is(mapped, domain.ErrConstraintViolation) {
			return nil, fmt.Errorf("product %s: %w", p.ID, &domain.ConstraintError{
				MissingCategoryIDs: []uuid.UUID{p.CategoryID},
			})
		}
		return nil, mapped
	}

	created := dst.toDomain()
	return &created, nil
}

// Upsert writes products keyed on id. Every referenced category must exist;
// otherwise a *domain.ConstraintError lists the missing ids and no product
// row is written. Rows already holding the same values are left untouched,
// so re-applying a set returns 0.
// Returns the number of inserted or changed rows.
func (r *Repo) Upsert(ctx context.Context, products []domain.Product) (int, error) {
	if len(products) == 0 {
		return 0, nil
	}

	var written int
	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		missing, err := missingCategories(ctx, q, products)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return &domain.ConstraintError{MissingCategoryIDs: missing}
		}

		batch := &pgx.Batch{}
		for _, p := range products {
			batch.Queue(upsertSQL,
				p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.StoreID, p.CategoryID,
			)
		}

		written, err = postgres.SendBatchExec(ctx, q, batch)
		if err != nil {
			return postgres.MapError(err, "products", "batch")
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("upsert products: %w", err)
	}

	return written, nil
}

const upsertSQL = `
INSERT INTO product.products AS p (id, name, description, price, image_url, store_id, category_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET name        = EXCLUDED.name,
    description = EXCLUDED.description,
    price       = EXCLUDED.price,
    image_url   = EXCLUDED.image_url,
    store_id    = EXCLUDED.store_id,
    category_id = EXCLUDED.category_id,
    updated_at  = now()
WHERE (p.name, p.description, p.price, p.image_url, p.store_id, p.category_id)
      IS DISTINCT FROM
      (EXCLUDED.name, EXCLUDED.description, EXCLUDED.price, EXCLUDED.image_url, EXCLUDED.store_id, EXCLUDED.category_id)`

// missingCategories returns the distinct category ids referenced by products
// that have no category row. The FK constraint still backs this check.
func missingCategories(ctx context.Context, q postgres.Querier, products []domain.Product) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(products))
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		ids = append(ids, p.CategoryID)
	}

	var missing []uuid.UUID
	err := pgxscan.Select(ctx, q, &missing, `
SELECT ids.id
FROM unnest($1::uuid[]) WITH ORDINALITY AS ids(id, ord)
WHERE NOT EXISTS (SELECT 1 FROM product.categories c WHERE c.id = ids.id)
ORDER BY ids.ord`, ids)
	if err != nil {
		return nil, fmt.Errorf("check categories: %w", err)
	}

	return missing, nil
}

