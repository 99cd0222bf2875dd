package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// GetProduct returns one product merged with its stock level.
// A product missing from the store yields domain.ErrNotFound and the
// inventory system is not called.
func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (*domain.CatalogProduct, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	cp := s.compose(ctx, *p)
	return &cp, nil
}
