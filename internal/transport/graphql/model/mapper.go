package model

import (
	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// ToDomainFilter converts an optional GraphQL filter into a domain filter.
// A nil filter lists every product.
func ToDomainFilter(f *ProductFilter) domain.ProductFilter {
	out := domain.ProductFilter{SortBy: domain.ProductSortByID}
	if f == nil {
		return out
	}
	out.IDs = f.Ids
	out.CategoryID = f.CategoryID
	out.StoreID = f.StoreID
	out.Search = f.Search
	if f.SortBy != nil {
		out.SortBy = domain.ProductSortField(*f.SortBy)
	}
	if f.Limit != nil {
		out.Limit = *f.Limit
	}
	if f.Offset != nil {
		out.Offset = *f.Offset
	}
	return out
}

// FromInventoryStatus converts a domain status, treating unknown values as degraded.
func FromInventoryStatus(s domain.InventoryStatus) InventoryStatus {
	if s == domain.InventoryStatusOK {
		return InventoryStatusOK
	}
	return InventoryStatusDegraded
}
