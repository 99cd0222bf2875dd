package domain

import (
	"time"

	"github.com/google/uuid"
)

// InventoryStatus tells clients whether the inventory fields of a product
// reflect a successful read from the inventory system.
type InventoryStatus string

const (
	InventoryStatusOK       InventoryStatus = "OK"
	InventoryStatusDegraded InventoryStatus = "DEGRADED"
)

func (s InventoryStatus) String() string { return string(s) }

func (s InventoryStatus) IsValid() bool {
	switch s {
	case InventoryStatusOK, InventoryStatusDegraded:
		return true
	}
	return false
}

// InventorySnapshot is the stock level reported by the inventory system
// for one product at one point in time. It is never persisted in the catalog.
type InventorySnapshot struct {
	ProductID         uuid.UUID
	AvailableQuantity int
	AsOf              time.Time
}

// CatalogProduct is a product merged with its inventory view.
// Inventory is nil when Status is InventoryStatusDegraded.
type CatalogProduct struct {
	Product
	Inventory *InventorySnapshot
	Status    InventoryStatus
}

// AvailableQuantity returns the merged stock level, or nil when degraded.
func (p CatalogProduct) AvailableQuantity() *int {
	if p.Inventory == nil {
		return nil
	}
	q := p.Inventory.AvailableQuantity
	return &q
}

// AsOf returns the freshness of the merged stock level, or nil when degraded.
func (p CatalogProduct) AsOf() *time.Time {
	if p.Inventory == nil {
		return nil
	}
	t := p.Inventory.AsOf
	return &t
}

// StockChanged is the notification published by the inventory system
// whenever the stock level of a product changes.
type StockChanged struct {
	EventID           string
	ProductID         uuid.UUID
	AvailableQuantity *int
	OccurredAt        time.Time
}
