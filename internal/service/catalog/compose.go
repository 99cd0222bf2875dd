package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Composition reasons reported to the recorder.
const (
	reasonOK          = "ok"
	reasonNotFound    = "inventory_not_found"
	reasonTimeout     = "timeout"
	reasonUnavailable = "unavailable"
)

// compose merges p with its stock level. It never fails: a product the
// inventory system does not know has zero stock, and any other gateway
// failure yields a DEGRADED product without inventory fields.
func (s *Service) compose(ctx context.Context, p domain.Product) domain.CatalogProduct {
	snap, err := s.stock.GetStock(ctx, p.ID, s.cfg.InventoryTimeout)

	switch {
	case err == nil:
		s.recorder.RecordComposition(domain.InventoryStatusOK.String(), reasonOK)
		return domain.CatalogProduct{Product: p, Inventory: snap, Status: domain.InventoryStatusOK}

	case errors.Is(err, domain.ErrInventoryNotFound):
		s.recorder.RecordComposition(domain.InventoryStatusOK.String(), reasonNotFound)
		return domain.CatalogProduct{
			Product: p,
			Inventory: &domain.InventorySnapshot{
				ProductID:         p.ID,
				AvailableQuantity: 0,
				AsOf:              s.now().UTC(),
			},
			Status: domain.InventoryStatusOK,
		}

	default:
		reason := reasonUnavailable
		if errors.Is(err, domain.ErrInventoryTimeout) {
			reason = reasonTimeout
		}
		s.recorder.RecordComposition(domain.InventoryStatusDegraded.String(), reason)
		s.log.WarnContext(ctx, "inventory degraded",
			slog.String("product_id", p.ID.String()),
			slog.String("reason", reason),
			slog.String("error", err.Error()),
		)
		return domain.CatalogProduct{Product: p, Status: domain.InventoryStatusDegraded}
	}
}
