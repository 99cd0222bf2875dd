// Package inventory keeps the catalog's view of inventory fresh: a
// read-through stock cache in front of the inventory gateway and a
// reactor that invalidates it when stock changes.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

type stockReader interface {
	GetStock(ctx context.Context, productID uuid.UUID, timeout time.Duration) (*domain.InventorySnapshot, error)
}

type stockCache interface {
	Get(ctx context.Context, productID uuid.UUID) (*domain.InventorySnapshot, bool, error)
	Version(ctx context.Context, productID uuid.UUID) (int64, error)
	SetIfVersion(ctx context.Context, s domain.InventorySnapshot, version int64) (bool, error)
	Delete(ctx context.Context, productID uuid.UUID) error
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
}

type eventRecorder interface {
	RecordEvent(result string)
}

type nopRecorder struct{}

func (nopRecorder) RecordEvent(string) {}
