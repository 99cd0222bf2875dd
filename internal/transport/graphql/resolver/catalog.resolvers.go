package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"

	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/model"
)

// Category is the resolver for the category field.
func (r *productResolver) Category(ctx context.Context, obj *domain.CatalogProduct) (*domain.Category, error) {
	return dataloader.FromContext(ctx).CategoryByID.Load(ctx, obj.CategoryID)()
}

// Ratings is the resolver for the ratings field.
func (r *productResolver) Ratings(ctx context.Context, obj *domain.CatalogProduct) ([]*domain.Rating, error) {
	ratings, err := dataloader.FromContext(ctx).RatingsByProductID.Load(ctx, obj.ID)()
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Rating, len(ratings))
	for i := range ratings {
		result[i] = &ratings[i]
	}
	return result, nil
}

// InventoryStatus is the resolver for the inventoryStatus field.
func (r *productResolver) InventoryStatus(ctx context.Context, obj *domain.CatalogProduct) (model.InventoryStatus, error) {
	return model.FromInventoryStatus(obj.Status), nil
}

// Product returns generated.ProductResolver implementation.
func (r *Resolver) Product() generated.ProductResolver { return &productResolver{r} }

type productResolver struct{ *Resolver }
