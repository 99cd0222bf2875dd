package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ListProducts returns the products matching filter in store order, each
// merged with its stock level. Stock is read concurrently; a failure
// degrades only the affected product. The call returns once every product
// has been composed.
func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.CatalogProduct, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}

	products, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	out := make([]domain.CatalogProduct, len(products))

	var g errgroup.Group
	g.SetLimit(s.cfg.MaxConcurrency)
	for i, p := range products {
		g.Go(func() error {
			out[i] = s.compose(ctx, p)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func validateFilter(f domain.ProductFilter) error {
	var errs []domain.FieldError
	if f.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if f.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}
	if f.SortBy != "" && !f.SortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sortBy", Message: "unknown sort field"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
