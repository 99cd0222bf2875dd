package resolver

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.86

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/model"
)

// CreateProduct is the resolver for the createProduct field.
func (r *mutationResolver) CreateProduct(ctx context.Context, input model.CreateProductInput) (*domain.CatalogProduct, error) {
	return r.catalog.CreateProduct(ctx, catalog.CreateProductInput{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		StoreID:     input.StoreID,
		CategoryID:  input.CategoryID,
	})
}

// AddRating is the resolver for the addRating field.
func (r *mutationResolver) AddRating(ctx context.Context, input model.AddRatingInput) (*domain.Rating, error) {
	return r.catalog.AddRating(ctx, catalog.AddRatingInput{
		ProductID: input.ProductID,
		Value:     input.Value,
	})
}

// Product is the resolver for the product field.
func (r *queryResolver) Product(ctx context.Context, id uuid.UUID) (*domain.CatalogProduct, error) {
	return r.catalog.GetProduct(ctx, id)
}

// Products is the resolver for the products field.
func (r *queryResolver) Products(ctx context.Context, filter *model.ProductFilter) ([]*domain.CatalogProduct, error) {
	items, err := r.catalog.ListProducts(ctx, model.ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CatalogProduct, len(items))
	for i := range items {
		result[i] = &items[i]
	}
	return result, nil
}

// Categories is the resolver for the categories field.
func (r *queryResolver) Categories(ctx context.Context) ([]*domain.Category, error) {
	cats, err := r.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Category, len(cats))
	for i := range cats {
		result[i] = &cats[i]
	}
	return result, nil
}

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
