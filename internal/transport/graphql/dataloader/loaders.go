package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Category by ID
// ---------------------------------------------------------------------------

// A key without a row resolves to domain.ErrNotFound: every product
// references an existing category, so a miss is a store inconsistency.
func newCategoryBatchFn(repo categoryRepo) dataloader.BatchFunc[uuid.UUID, *domain.Category] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Category] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Category](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Category, len(rows))
		for i := range rows {
			c := rows[i] // copy to avoid aliasing
			byID[c.ID] = &c
		}

		results := make([]*dataloader.Result[*domain.Category], len(keys))
		for i, key := range keys {
			if c, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.Category]{Data: c}
			} else {
				results[i] = &dataloader.Result[*domain.Category]{Error: fmt.Errorf("category %s: %w", key, domain.ErrNotFound)}
			}
		}
		return results
	}
}

// ---------------------------------------------------------------------------
// Ratings by ProductID
// ---------------------------------------------------------------------------

func newRatingsBatchFn(repo ratingRepo) dataloader.BatchFunc[uuid.UUID, []domain.Rating] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Rating] {
		ratings, err := repo.GetByProductIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Rating](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Rating, len(keys))
		for _, r := range ratings {
			grouped[r.ProductID] = append(grouped[r.ProductID], r)
		}

		return mapResults(keys, grouped, emptySlice[domain.Rating])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
