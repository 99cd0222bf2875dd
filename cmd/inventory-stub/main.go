// Command inventory-stub serves the inventory GetStock RPC from a static
// JSON file. It exists for local development and demos; production runs
// against the real inventory service.
//
// The stock file maps product ids to available quantities:
//
//	{"ba16da71-c7dd-4eac-9ead-5a4e0c8a7e01": 12}
//
// Unknown ids answer NotFound, which the catalog reads as zero stock.
//
// Flags:
//
//	--addr     listen address (default :9090)
//	--stock    path to the stock JSON file (required)
//	--latency  artificial delay added to every call
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/heartmarshall/catalog-backend/internal/adapter/inventory"
)

type stockServer struct {
	stock   map[string]int
	latency time.Duration
	now     func() time.Time
}

func (s *stockServer) GetStock(ctx context.Context, req *inventory.GetStockRequest) (*inventory.GetStockResponse, error) {
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return nil, status.FromContextError(ctx.Err()).Err()
		}
	}

	qty, ok := s.stock[strings.ToLower(req.ProductID)]
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no stock record for %s", req.ProductID)
	}
	return &inventory.GetStockResponse{
		ProductID:         req.ProductID,
		AvailableQuantity: qty,
		AsOf:              s.now().UTC(),
	}, nil
}

func loadStock(path string) (map[string]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var in map[string]int
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(in))
	for id, qty := range in {
		out[strings.ToLower(id)] = qty
	}
	return out, nil
}

func main() {
	addrFlag := flag.String("addr", ":9090", "listen address")
	stockFlag := flag.String("stock", "", "path to stock JSON file")
	latencyFlag := flag.Duration("latency", 0, "artificial delay per call")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if *stockFlag == "" {
		logger.Error("--stock is required")
		os.Exit(1)
	}
	stock, err := loadStock(*stockFlag)
	if err != nil {
		logger.Error("load stock file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", *addrFlag)
	if err != nil {
		logger.Error("listen", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := grpc.NewServer()
	inventory.RegisterServer(srv, &stockServer{stock: stock, latency: *latencyFlag, now: time.Now})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	logger.Info("inventory stub listening",
		slog.String("addr", lis.Addr().String()),
		slog.Int("products", len(stock)),
	)
	if err := srv.Serve(lis); err != nil {
		logger.Error("serve", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
