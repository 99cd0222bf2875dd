package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// AddRating records a 1..5 rating. A product that does not exist yields
// domain.ErrNotFound.
func (s *Service) AddRating(ctx context.Context, input AddRatingInput) (*domain.Rating, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	r, err := s.ratings.Create(ctx, domain.Rating{
		ID:        uuid.New(),
		ProductID: input.ProductID,
		Value:     input.Value,
	})
	if err != nil {
		return nil, fmt.Errorf("add rating: %w", err)
	}
	return r, nil
}
