// Package inventory is the gRPC client of the inventory system.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

// DefaultTimeout bounds a call when neither the caller nor the client
// configuration supplies a positive timeout.
const DefaultTimeout = 300 * time.Millisecond

// Request outcomes reported to the Observer.
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeTimeout     = "timeout"
	OutcomeUnavailable = "unavailable"
)

// Observer receives the latency of every GetStock call.
type Observer interface {
	ObserveInventoryRequest(outcome string, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) ObserveInventoryRequest(string, time.Duration) {}

// Client reads stock levels over a shared gRPC connection.
// It never retries: one GetStock is at most one RPC.
type Client struct {
	conn     *grpc.ClientConn
	timeout  time.Duration
	log      *slog.Logger
	observer Observer
	now      func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithObserver reports call latencies to o.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		if o != nil {
			c.observer = o
		}
	}
}

// Dial creates a lazily connecting client for addr.
func Dial(addr string, timeout time.Duration, logger *slog.Logger, opts ...Option) (*Client, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("inventory: dial %s: %w", addr, err)
	}
	return NewClient(conn, timeout, logger, opts...), nil
}

// NewClient wraps an existing connection. The connection must be created
// with the json content-subtype, as Dial does.
func NewClient(conn *grpc.ClientConn, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		conn:     conn,
		timeout:  timeout,
		log:      logger.With("adapter", "inventory"),
		observer: nopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetStock returns the current stock level of productID.
// Failures are *domain.GatewayError. A non-positive timeout selects the
// client default. Cancellation of ctx aborts the call.
func (c *Client) GetStock(ctx context.Context, productID uuid.UUID, timeout time.Duration) (*domain.InventorySnapshot, error) {
	if timeout <= 0 {
		timeout = c.timeout
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	resp := new(GetStockResponse)
	err := c.conn.Invoke(callCtx, getStockMethod, &GetStockRequest{ProductID: productID.String()}, resp)
	elapsed := time.Since(start)

	if err != nil {
		gwErr := classify(ctx, productID, err)
		c.observer.ObserveInventoryRequest(outcomeOf(gwErr.Kind), elapsed)
		c.log.DebugContext(ctx, "inventory request failed",
			slog.String("product_id", productID.String()),
			slog.String("kind", string(gwErr.Kind)),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		return nil, gwErr
	}

	if resp.AvailableQuantity < 0 {
		c.observer.ObserveInventoryRequest(OutcomeUnavailable, elapsed)
		return nil, domain.NewGatewayError(domain.GatewayUnavailable, productID,
			fmt.Errorf("negative quantity %d", resp.AvailableQuantity))
	}

	c.observer.ObserveInventoryRequest(OutcomeOK, elapsed)

	asOf := resp.AsOf
	if asOf.IsZero() {
		asOf = c.now()
	}
	return &domain.InventorySnapshot{
		ProductID:         productID,
		AvailableQuantity: resp.AvailableQuantity,
		AsOf:              asOf.UTC(),
	}, nil
}

// State reports the connectivity state of the underlying connection.
func (c *Client) State() string {
	return c.conn.GetState().String()
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// classify maps an RPC failure to a gateway error. parent is the caller's
// context: when it is done, its error is kept as the cause so callers can
// tell their own cancellation from an inventory failure.
func classify(parent context.Context, productID uuid.UUID, err error) *domain.GatewayError {
	if perr := parent.Err(); perr != nil {
		if errors.Is(perr, context.DeadlineExceeded) {
			return domain.NewGatewayError(domain.GatewayTimeout, productID, perr)
		}
		return domain.NewGatewayError(domain.GatewayUnavailable, productID, perr)
	}

	switch status.Code(err) {
	case codes.DeadlineExceeded:
		return domain.NewGatewayError(domain.GatewayTimeout, productID, err)
	case codes.NotFound:
		return domain.NewGatewayError(domain.GatewayNotFound, productID, err)
	default:
		return domain.NewGatewayError(domain.GatewayUnavailable, productID, err)
	}
}

func outcomeOf(kind domain.GatewayErrorKind) string {
	switch kind {
	case domain.GatewayTimeout:
		return OutcomeTimeout
	case domain.GatewayNotFound:
		return OutcomeNotFound
	default:
		return OutcomeUnavailable
	}
}
