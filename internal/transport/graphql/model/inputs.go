package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductFilter struct {
	Ids        []uuid.UUID       `json:"ids,omitempty"`
	CategoryID *uuid.UUID        `json:"categoryId,omitempty"`
	StoreID    *uuid.UUID        `json:"storeId,omitempty"`
	Search     *string           `json:"search,omitempty"`
	SortBy     *ProductSortField `json:"sortBy,omitempty"`
	Limit      *int              `json:"limit,omitempty"`
	Offset     *int              `json:"offset,omitempty"`
}

type CreateProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	StoreID     uuid.UUID       `json:"storeId"`
	CategoryID  uuid.UUID       `json:"categoryId"`
}

type AddRatingInput struct {
	ProductID uuid.UUID `json:"productId"`
	Value     int       `json:"value"`
}
