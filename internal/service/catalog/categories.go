package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ListCategories returns every category ordered by name.
func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	cats, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
