package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// CachedGateway serves stock reads from the cache and falls back to the
// gateway on a miss. Concurrent misses for one product share a single
// gateway call, which is detached from the cancellation of whichever caller
// started it; each caller still stops waiting when its own context ends.
// Cache failures are logged and bypassed; gateway errors are returned
// unchanged and never cached. A snapshot read before an invalidation is
// not written back.
type CachedGateway struct {
	next  stockReader
	cache stockCache
	group singleflight.Group
	log   *slog.Logger
}

// NewCachedGateway wraps next with cache.
func NewCachedGateway(log *slog.Logger, next stockReader, cache stockCache) *CachedGateway {
	return &CachedGateway{
		next:  next,
		cache: cache,
		log:   log.With("service", "inventory_cache"),
	}
}

// GetStock implements the gateway contract.
func (g *CachedGateway) GetStock(ctx context.Context, productID uuid.UUID, timeout time.Duration) (*domain.InventorySnapshot, error) {
	snap, ok, err := g.cache.Get(ctx, productID)
	if err != nil {
		g.log.WarnContext(ctx, "stock cache read failed",
			slog.String("product_id", productID.String()),
			slog.String("error", err.Error()),
		)
	}
	if ok {
		return snap, nil
	}

	ch := g.group.DoChan(productID.String(), func() (any, error) {
		return g.fetch(context.WithoutCancel(ctx), productID, timeout)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		s := *res.Val.(*domain.InventorySnapshot)
		return &s, nil
	case <-ctx.Done():
		return nil, domain.NewGatewayError(domain.GatewayUnavailable, productID, ctx.Err())
	}
}

// fetch reads from the gateway and populates the cache unless the product
// was invalidated while the read was in flight. The gateway bounds the call
// with timeout.
func (g *CachedGateway) fetch(ctx context.Context, productID uuid.UUID, timeout time.Duration) (*domain.InventorySnapshot, error) {
	version, verErr := g.cache.Version(ctx, productID)

	fresh, err := g.next.GetStock(ctx, productID, timeout)
	if err != nil {
		return nil, err
	}

	if verErr != nil {
		g.log.WarnContext(ctx, "stock cache version read failed",
			slog.String("product_id", productID.String()),
			slog.String("error", verErr.Error()),
		)
		return fresh, nil
	}

	stored, err := g.cache.SetIfVersion(ctx, *fresh, version)
	switch {
	case err != nil:
		g.log.WarnContext(ctx, "stock cache write failed",
			slog.String("product_id", productID.String()),
			slog.String("error", err.Error()),
		)
	case !stored:
		g.log.DebugContext(ctx, "stock invalidated during read, not cached",
			slog.String("product_id", productID.String()),
		)
	}
	return fresh, nil
}
