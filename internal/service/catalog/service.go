// Package catalog composes catalog records with live inventory data.
// The store is always read first; the inventory system is consulted only
// for products that exist, and its failures degrade a product instead of
// failing the request.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

type productRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type ratingRepo interface {
	Create(ctx context.Context, rating domain.Rating) (*domain.Rating, error)
}

type stockGateway interface {
	GetStock(ctx context.Context, productID uuid.UUID, timeout time.Duration) (*domain.InventorySnapshot, error)
}

type compositionRecorder interface {
	RecordComposition(status, reason string)
}

type nopRecorder struct{}

func (nopRecorder) RecordComposition(string, string) {}

const (
	// DefaultMaxConcurrency bounds parallel inventory reads of one listing.
	DefaultMaxConcurrency = 16
	// MaxListLimit caps the page size of ListProducts.
	MaxListLimit = 200
)

// Config holds composition settings.
type Config struct {
	InventoryTimeout time.Duration
	MaxConcurrency   int
}

// Service provides catalog queries and mutations.
type Service struct {
	products   productRepo
	categories categoryRepo
	ratings    ratingRepo
	stock      stockGateway
	recorder   compositionRecorder
	cfg        Config
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new catalog service. recorder may be nil.
func NewService(
	log *slog.Logger,
	products productRepo,
	categories categoryRepo,
	ratings ratingRepo,
	stock stockGateway,
	recorder compositionRecorder,
	cfg Config,
) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	return &Service{
		products:   products,
		categories: categories,
		ratings:    ratings,
		stock:      stock,
		recorder:   recorder,
		cfg:        cfg,
		log:        log.With("service", "catalog"),
		now:        time.Now,
	}
}
