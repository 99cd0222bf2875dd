package inventory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

type fakeServer struct {
	calls      atomic.Int32
	GetStockFn func(ctx context.Context, req *GetStockRequest) (*GetStockResponse, error)
}

func (s *fakeServer) GetStock(ctx context.Context, req *GetStockRequest) (*GetStockResponse, error) {
	s.calls.Add(1)
	return s.GetStockFn(ctx, req)
}

type recordingObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (o *recordingObserver) ObserveInventoryRequest(outcome string, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.outcomes = append(o.outcomes, outcome)
}

func newTestClient(t *testing.T, srv Server, timeout time.Duration, opts ...Option) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	RegisterServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	require.NoError(t, err)

	c := NewClient(conn, timeout, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestClient_GetStock_OK(t *testing.T) {
	t.Parallel()
	id := uuid.New()
	asOf := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	obs := &recordingObserver{}

	srv := &fakeServer{GetStockFn: func(_ context.Context, req *GetStockRequest) (*GetStockResponse, error) {
		assert.Equal(t, id.String(), req.ProductID)
		return &GetStockResponse{ProductID: req.ProductID, AvailableQuantity: 5, AsOf: asOf}, nil
	}}
	c := newTestClient(t, srv, time.Second, WithObserver(obs))

	snap, err := c.GetStock(context.Background(), id, 0)

	require.NoError(t, err)
	assert.Equal(t, id, snap.ProductID)
	assert.Equal(t, 5, snap.AvailableQuantity)
	assert.True(t, asOf.Equal(snap.AsOf))
	assert.Equal(t, []string{OutcomeOK}, obs.outcomes)
}

func TestClient_GetStock_ZeroAsOfUsesReadTime(t *testing.T) {
	t.Parallel()
	fixed := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)
	srv := &fakeServer{GetStockFn: func(_ context.Context, req *GetStockRequest) (*GetStockResponse, error) {
		return &GetStockResponse{ProductID: req.ProductID, AvailableQuantity: 0}, nil
	}}
	c := newTestClient(t, srv, time.Second)
	c.now = func() time.Time { return fixed }

	snap, err := c.GetStock(context.Background(), uuid.New(), 0)

	require.NoError(t, err)
	assert.Equal(t, 0, snap.AvailableQuantity)
	assert.Equal(t, fixed, snap.AsOf)
}

func TestClient_GetStock_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		handler     func(ctx context.Context, req *GetStockRequest) (*GetStockResponse, error)
		timeout     time.Duration
		wantErr     error
		wantOutcome string
	}{
		{
			name: "not found",
			handler: func(context.Context, *GetStockRequest) (*GetStockResponse, error) {
				return nil, status.Error(codes.NotFound, "no such product")
			},
			wantErr:     domain.ErrInventoryNotFound,
			wantOutcome: OutcomeNotFound,
		},
		{
			name: "unavailable",
			handler: func(context.Context, *GetStockRequest) (*GetStockResponse, error) {
				return nil, status.Error(codes.Unavailable, "maintenance")
			},
			wantErr:     domain.ErrInventoryUnavailable,
			wantOutcome: OutcomeUnavailable,
		},
		{
			name: "internal error is unavailable",
			handler: func(context.Context, *GetStockRequest) (*GetStockResponse, error) {
				return nil, errors.New("boom")
			},
			wantErr:     domain.ErrInventoryUnavailable,
			wantOutcome: OutcomeUnavailable,
		},
		{
			name: "slow server times out",
			handler: func(ctx context.Context, _ *GetStockRequest) (*GetStockResponse, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			timeout:     50 * time.Millisecond,
			wantErr:     domain.ErrInventoryTimeout,
			wantOutcome: OutcomeTimeout,
		},
		{
			name: "negative quantity",
			handler: func(_ context.Context, req *GetStockRequest) (*GetStockResponse, error) {
				return &GetStockResponse{ProductID: req.ProductID, AvailableQuantity: -1}, nil
			},
			wantErr:     domain.ErrInventoryUnavailable,
			wantOutcome: OutcomeUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			obs := &recordingObserver{}
			srv := &fakeServer{GetStockFn: tt.handler}
			c := newTestClient(t, srv, time.Second, WithObserver(obs))

			id := uuid.New()
			snap, err := c.GetStock(context.Background(), id, tt.timeout)

			require.Error(t, err)
			assert.Nil(t, snap)
			assert.ErrorIs(t, err, tt.wantErr)

			var gwErr *domain.GatewayError
			require.ErrorAs(t, err, &gwErr)
			assert.Equal(t, id, gwErr.ProductID)

			assert.Equal(t, int32(1), srv.calls.Load(), "gateway must not retry")
			assert.Equal(t, []string{tt.wantOutcome}, obs.outcomes)
		})
	}
}

func TestClient_GetStock_CallerCancellation(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	srv := &fakeServer{GetStockFn: func(ctx context.Context, _ *GetStockRequest) (*GetStockResponse, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	c := newTestClient(t, srv, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := c.GetStock(ctx, uuid.New(), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrInventoryUnavailable)
}

func TestClient_GetStock_ServerDown(t *testing.T) {
	t.Parallel()
	lis := bufconn.Listen(1 << 20)
	require.NoError(t, lis.Close())

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)),
	)
	require.NoError(t, err)
	c := NewClient(conn, 100*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)))
	defer c.Close()

	_, err = c.GetStock(context.Background(), uuid.New(), 0)

	require.Error(t, err)
	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Contains(t, []domain.GatewayErrorKind{domain.GatewayUnavailable, domain.GatewayTimeout}, gwErr.Kind)
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	t.Parallel()
	c := NewClient(nil, 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Equal(t, DefaultTimeout, c.timeout)
}
