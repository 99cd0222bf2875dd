package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups products. Categories are created by the seed loader only.
type Category struct {
	ID   uuid.UUID
	Name string
}

// Product is a sellable item. CategoryID must reference an existing Category.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    *string
	StoreID     uuid.UUID
	CategoryID  uuid.UUID
}

// Rating is a single 1..5 score left for a product.
type Rating struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Value     int
	CreatedAt time.Time
}

// Rating bounds.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// ProductSortField selects the ordering of product listings.
type ProductSortField string

const (
	ProductSortByID    ProductSortField = "ID"
	ProductSortByName  ProductSortField = "NAME"
	ProductSortByPrice ProductSortField = "PRICE"
)

func (f ProductSortField) String() string { return string(f) }

func (f ProductSortField) IsValid() bool {
	switch f {
	case ProductSortByID, ProductSortByName, ProductSortByPrice:
		return true
	}
	return false
}

// ProductFilter contains filtering/pagination parameters for product listings.
// A zero filter lists every product ordered by id.
type ProductFilter struct {
	IDs        []uuid.UUID
	CategoryID *uuid.UUID
	StoreID    *uuid.UUID
	Search     *string
	SortBy     ProductSortField
	Limit      int
	Offset     int
}
