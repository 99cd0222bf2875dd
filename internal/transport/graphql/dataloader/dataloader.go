// Package dataloader provides per-request DataLoaders for batching GraphQL
// field resolvers into single SQL calls. DataLoaders call repositories
// directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Defaults used when no Option overrides them.
const (
	DefaultMaxBatch = 100
	DefaultWait     = 2 * time.Millisecond
)

type settings struct {
	maxBatch int
	wait     time.Duration
}

// Option tunes how loaders batch keys.
type Option func(*settings)

// WithMaxBatch caps the number of keys per repository call. n <= 0 keeps the default.
func WithMaxBatch(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// WithWait sets how long a loader collects keys before calling the
// repository. d <= 0 keeps the default.
func WithWait(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.wait = d
		}
	}
}

// ---------------------------------------------------------------------------
// Repository interfaces (consumer-defined)
// ---------------------------------------------------------------------------

type categoryRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
}

type ratingRepo interface {
	GetByProductIDs(ctx context.Context, productIDs []uuid.UUID) ([]domain.Rating, error)
}

// Repos holds all repositories required by DataLoaders.
type Repos struct {
	Category categoryRepo
	Rating   ratingRepo
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	CategoryByID       *dataloader.Loader[uuid.UUID, *domain.Category]
	RatingsByProductID *dataloader.Loader[uuid.UUID, []domain.Rating]
}

// NewLoaders creates a new set of DataLoaders backed by the given repositories.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(repos *Repos, opts ...Option) *Loaders {
	s := settings{maxBatch: DefaultMaxBatch, wait: DefaultWait}
	for _, o := range opts {
		o(&s)
	}
	return &Loaders{
		CategoryByID:       newLoader(newCategoryBatchFn(repos.Category), s),
		RatingsByProductID: newLoader(newRatingsBatchFn(repos.Rating), s),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V], s settings) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](s.wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](s.maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}
