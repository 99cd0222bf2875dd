package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	category := SeedCategory(t, pool)
	product := SeedProduct(t, pool, category.ID)

	var name string
	err := pool.QueryRow(
		context.Background(),
		`SELECT name FROM product.products WHERE id = $1`,
		product.ID,
	).Scan(&name)
	if err != nil {
		t.Fatalf("expected product in DB, got error: %v", err)
	}

	if name != product.Name {
		t.Fatalf("expected name %q, got %q", product.Name, name)
	}
}
