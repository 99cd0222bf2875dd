package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
)

// catalogService defines what resolver needs from Catalog service.
type catalogService interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.CatalogProduct, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.CatalogProduct, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateProduct(ctx context.Context, input catalog.CreateProductInput) (*domain.CatalogProduct, error)
	AddRating(ctx context.Context, input catalog.AddRatingInput) (*domain.Rating, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	catalog catalogService
	log     *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(log *slog.Logger, catalog catalogService) *Resolver {
	return &Resolver{
		catalog: catalog,
		log:     log.With("component", "graphql"),
	}
}
