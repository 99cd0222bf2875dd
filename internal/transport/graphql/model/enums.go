package model

import (
	"fmt"
	"io"
	"strconv"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// InventoryStatus mirrors domain.InventoryStatus on the wire.
type InventoryStatus string

const (
	InventoryStatusOK       InventoryStatus = "OK"
	InventoryStatusDegraded InventoryStatus = "DEGRADED"
)

func (e InventoryStatus) IsValid() bool {
	return domain.InventoryStatus(e).IsValid()
}

func (e InventoryStatus) String() string { return string(e) }

func (e *InventoryStatus) UnmarshalGQL(v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}
	*e = InventoryStatus(str)
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid InventoryStatus", str)
	}
	return nil
}

func (e InventoryStatus) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}

// ProductSortField mirrors domain.ProductSortField on the wire.
type ProductSortField string

const (
	ProductSortFieldID    ProductSortField = "ID"
	ProductSortFieldName  ProductSortField = "NAME"
	ProductSortFieldPrice ProductSortField = "PRICE"
)

func (e ProductSortField) IsValid() bool {
	return domain.ProductSortField(e).IsValid()
}

func (e ProductSortField) String() string { return string(e) }

func (e *ProductSortField) UnmarshalGQL(v interface{}) error {
	str, ok := v.(string)
	if !ok {
		return fmt.Errorf("enums must be strings")
	}
	*e = ProductSortField(str)
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid ProductSortField", str)
	}
	return nil
}

func (e ProductSortField) MarshalGQL(w io.Writer) {
	fmt.Fprint(w, strconv.Quote(e.String()))
}
