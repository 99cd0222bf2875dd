package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category with a random id.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	c := domain.Category{ID: uuid.New(), Name: "Category " + uniqueSuffix()}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO product.categories (id, name) VALUES ($1, $2)`,
		c.ID, c.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedProduct inserts a product belonging to categoryID.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, categoryID uuid.UUID) domain.Product {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Product{
		ID:          uuid.New(),
		Name:        "Product " + suffix,
		Description: "Description " + suffix,
		Price:       decimal.RequireFromString("19.99"),
		StoreID:     uuid.New(),
		CategoryID:  categoryID,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO product.products (id, name, description, price, image_url, store_id, category_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.StoreID, p.CategoryID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}

// SeedRating inserts a rating for productID.
func SeedRating(t *testing.T, pool *pgxpool.Pool, productID uuid.UUID, value int) domain.Rating {
	t.Helper()

	r := domain.Rating{ID: uuid.New(), ProductID: productID, Value: value}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO product.ratings (id, product_id, value) VALUES ($1, $2, $3) RETURNING created_at`,
		r.ID, r.ProductID, r.Value,
	).Scan(&r.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRating: %v", err)
	}

	return r
}

// CountRows returns the number of rows in a catalog table.
func CountRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), `SELECT count(*) FROM `+table).Scan(&n); err != nil {
		t.Fatalf("testhelper: CountRows %s: %v", table, err)
	}
	return n
}
