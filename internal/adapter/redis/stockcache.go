package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

const (
	stockKeyPrefix   = "catalog:stock:"
	versionKeyPrefix = "catalog:stockver:"
	eventKeyPrefix   = "catalog:event:"
)

// versionTTL keeps invalidation counters around far longer than any
// in-flight inventory read.
const versionTTL = 24 * time.Hour

// setIfVersion writes the snapshot only while the product's invalidation
// counter still holds the value read before the inventory call.
//
// KEYS[1] snapshot key, KEYS[2] version key
// ARGV[1] expected version, ARGV[2] payload, ARGV[3] ttl in ms (0 = none)
var setIfVersion = goredis.NewScript(`
local v = redis.call('GET', KEYS[2])
if not v then v = '0' end
if v ~= ARGV[1] then return 0 end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
  redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
else
  redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// StockCache keeps inventory snapshots keyed by product id.
type StockCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewStockCache creates a StockCache whose entries expire after ttl.
func NewStockCache(rdb *goredis.Client, ttl time.Duration) *StockCache {
	return &StockCache{rdb: rdb, ttl: ttl}
}

type cachedSnapshot struct {
	AvailableQuantity int       `json:"q"`
	AsOf              time.Time `json:"t"`
}

func stockKey(id uuid.UUID) string   { return stockKeyPrefix + id.String() }
func versionKey(id uuid.UUID) string { return versionKeyPrefix + id.String() }

// Get returns the cached snapshot. A miss is (nil, false, nil).
func (c *StockCache) Get(ctx context.Context, productID uuid.UUID) (*domain.InventorySnapshot, bool, error) {
	raw, err := c.rdb.Get(ctx, stockKey(productID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stock cache get: %w", err)
	}

	var v cachedSnapshot
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false, fmt.Errorf("stock cache decode %s: %w", productID, err)
	}
	return &domain.InventorySnapshot{
		ProductID:         productID,
		AvailableQuantity: v.AvailableQuantity,
		AsOf:              v.AsOf,
	}, true, nil
}

func encodeSnapshot(s domain.InventorySnapshot) ([]byte, error) {
	raw, err := json.Marshal(cachedSnapshot{AvailableQuantity: s.AvailableQuantity, AsOf: s.AsOf})
	if err != nil {
		return nil, fmt.Errorf("stock cache encode: %w", err)
	}
	return raw, nil
}

// Set stores s for the configured ttl unconditionally.
func (c *StockCache) Set(ctx context.Context, s domain.InventorySnapshot) error {
	raw, err := encodeSnapshot(s)
	if err != nil {
		return err
	}
	if err := c.rdb.Set(ctx, stockKey(s.ProductID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("stock cache set: %w", err)
	}
	return nil
}

// Version returns the invalidation counter of productID. A product that was
// never invalidated is at version 0.
func (c *StockCache) Version(ctx context.Context, productID uuid.UUID) (int64, error) {
	v, err := c.rdb.Get(ctx, versionKey(productID)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stock cache version: %w", err)
	}
	return v, nil
}

// SetIfVersion stores s only if no Delete happened since version was read.
// It reports whether the snapshot was written.
func (c *StockCache) SetIfVersion(ctx context.Context, s domain.InventorySnapshot, version int64) (bool, error) {
	raw, err := encodeSnapshot(s)
	if err != nil {
		return false, err
	}
	keys := []string{stockKey(s.ProductID), versionKey(s.ProductID)}
	n, err := setIfVersion.Run(ctx, c.rdb, keys, version, raw, c.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("stock cache set: %w", err)
	}
	return n == 1, nil
}

// Delete drops the snapshot of productID and bumps its version so reads
// started before the call cannot write the old value back. Deleting a
// missing key is not an error.
func (c *StockCache) Delete(ctx context.Context, productID uuid.UUID) error {
	_, err := c.rdb.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.Del(ctx, stockKey(productID))
		p.Incr(ctx, versionKey(productID))
		p.Expire(ctx, versionKey(productID), versionTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("stock cache delete: %w", err)
	}
	return nil
}

// MarkProcessed records eventID and reports whether this call was the first
// to do so. Marks expire after ttl.
func (c *StockCache) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	first, err := c.rdb.SetNX(ctx, eventKeyPrefix+eventID, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("stock cache mark event: %w", err)
	}
	return first, nil
}

// Ping checks the connection.
func (c *StockCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
