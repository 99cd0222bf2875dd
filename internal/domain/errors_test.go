package domain

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("name", "required")

	if got := err.Error(); got != "validation: name: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "name", Message: "required"},
		{Field: "price", Message: "must not be negative"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestConstraintError(t *testing.T) {
	t.Parallel()

	missing := uuid.MustParse("3b4b1c2e-0000-4000-8000-000000000001")
	err := &ConstraintError{MissingCategoryIDs: []uuid.UUID{missing}}

	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatal("errors.Is(err, ErrConstraintViolation) = false")
	}
	if !strings.Contains(err.Error(), missing.String()) {
		t.Fatalf("Error() should list the missing id, got %q", err.Error())
	}

	var ce *ConstraintError
	if !errors.As(errors.Join(errors.New("upsert products"), err), &ce) {
		t.Fatal("errors.As should find *ConstraintError through wrapping")
	}
}

func TestGatewayError_Kinds(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tests := []struct {
		kind GatewayErrorKind
		want error
	}{
		{GatewayUnavailable, ErrInventoryUnavailable},
		{GatewayTimeout, ErrInventoryTimeout},
		{GatewayNotFound, ErrInventoryNotFound},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			err := NewGatewayError(tt.kind, id, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("errors.Is(%s, %v) = false", tt.kind, tt.want)
			}
			for _, other := range []error{ErrInventoryUnavailable, ErrInventoryTimeout, ErrInventoryNotFound} {
				if other != tt.want && errors.Is(err, other) {
					t.Errorf("%s should not match %v", tt.kind, other)
				}
			}
		})
	}
}

func TestGatewayError_KeepsCause(t *testing.T) {
	t.Parallel()

	err := NewGatewayError(GatewayTimeout, uuid.New(), context.DeadlineExceeded)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("cause should be reachable with errors.Is")
	}
	if !errors.Is(err, ErrInventoryTimeout) {
		t.Fatal("kind sentinel should be reachable with errors.Is")
	}
}

func TestCatalogProduct_InventoryAccessors(t *testing.T) {
	t.Parallel()

	degraded := CatalogProduct{Status: InventoryStatusDegraded}
	if degraded.AvailableQuantity() != nil || degraded.AsOf() != nil {
		t.Fatal("degraded product must not expose inventory fields")
	}

	ok := CatalogProduct{
		Status:    InventoryStatusOK,
		Inventory: &InventorySnapshot{AvailableQuantity: 5},
	}
	if q := ok.AvailableQuantity(); q == nil || *q != 5 {
		t.Fatalf("AvailableQuantity() = %v, want 5", q)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrConstraintViolation,
		ErrSeedConfiguration, ErrInventoryUnavailable, ErrInventoryTimeout, ErrInventoryNotFound,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
