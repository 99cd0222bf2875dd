package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// Event results reported to the recorder.
const (
	EventInvalidated  = "invalidated"
	EventDuplicate    = "duplicate"
	EventAcknowledged = "acknowledged"
	EventMalformed    = "malformed"
	EventFailed       = "failed"
)

// DefaultDedupTTL is how long processed event ids are remembered.
const DefaultDedupTTL = 24 * time.Hour

// Reactor handles stock-change events. Handling is idempotent: the cached
// snapshot is deleted on every delivery, and repeated event ids are only
// counted as duplicates.
type Reactor struct {
	cache    stockCache
	recorder eventRecorder
	dedupTTL time.Duration
	log      *slog.Logger
}

// NewReactor creates a Reactor. cache may be nil when caching is disabled;
// events are then acknowledged without effect.
func NewReactor(log *slog.Logger, cache stockCache, recorder eventRecorder) *Reactor {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Reactor{
		cache:    cache,
		recorder: recorder,
		dedupTTL: DefaultDedupTTL,
		log:      log.With("service", "inventory_reactor"),
	}
}

// HandleStockChanged invalidates the cached snapshot of ev.ProductID.
func (r *Reactor) HandleStockChanged(ctx context.Context, ev domain.StockChanged) error {
	if r.cache == nil {
		r.recorder.RecordEvent(EventAcknowledged)
		r.log.DebugContext(ctx, "stock changed, no cache to invalidate",
			slog.String("event_id", ev.EventID),
			slog.String("product_id", ev.ProductID.String()),
		)
		return nil
	}

	if err := r.cache.Delete(ctx, ev.ProductID); err != nil {
		r.recorder.RecordEvent(EventFailed)
		return fmt.Errorf("invalidate stock %s: %w", ev.ProductID, err)
	}

	first, err := r.cache.MarkProcessed(ctx, ev.EventID, r.dedupTTL)
	if err != nil {
		r.log.WarnContext(ctx, "mark event processed",
			slog.String("event_id", ev.EventID),
			slog.String("error", err.Error()),
		)
		first = true
	}
	if !first {
		r.recorder.RecordEvent(EventDuplicate)
		r.log.DebugContext(ctx, "duplicate stock event", slog.String("event_id", ev.EventID))
		return nil
	}

	r.recorder.RecordEvent(EventInvalidated)
	r.log.InfoContext(ctx, "stock cache invalidated",
		slog.String("event_id", ev.EventID),
		slog.String("product_id", ev.ProductID.String()),
	)
	return nil
}

// HandleMalformed logs and counts a payload that cannot be decoded.
func (r *Reactor) HandleMalformed(ctx context.Context, body []byte, err error) {
	r.recorder.RecordEvent(EventMalformed)
	r.log.WarnContext(ctx, "malformed stock event dropped",
		slog.Int("bytes", len(body)),
		slog.String("error", err.Error()),
	)
}
