package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// CreateProduct stores a new product and returns it merged with its stock
// level. A category that does not exist yields domain.ErrConstraintViolation.
func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.CatalogProduct, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.products.Create(ctx, domain.Product{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		StoreID:     input.StoreID,
		CategoryID:  input.CategoryID,
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.InfoContext(ctx, "product created",
		slog.String("product_id", created.ID.String()),
		slog.String("category_id", created.CategoryID.String()),
	)

	cp := s.compose(ctx, *created)
	return &cp, nil
}
