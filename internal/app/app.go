package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/catalog-backend/internal/adapter/inventory"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/product"
	"github.com/heartmarshall/catalog-backend/internal/adapter/postgres/rating"
	redisadapter "github.com/heartmarshall/catalog-backend/internal/adapter/redis"
	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/domain"
	"github.com/heartmarshall/catalog-backend/internal/metrics"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
	invsvc "github.com/heartmarshall/catalog-backend/internal/service/inventory"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/catalog-backend/internal/transport/rest"
	"github.com/heartmarshall/catalog-backend/migrations"
)

// Run is the application entry point. Startup is strictly ordered:
// connect, migrate, seed, then serve. A broken seed set aborts startup
// before the listener opens.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("events_transport", cfg.Events.Transport),
	)

	// Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	txm := postgres.NewTxManager(pool)
	categoryRepo := category.New(pool)
	productRepo := product.New(pool, txm)
	ratingRepo := rating.New(pool)

	// Seed.
	if cfg.Seed.Enabled {
		if err := Seed(ctx, logger, categoryRepo, productRepo, txm, cfg.Seed); err != nil {
			return err
		}
	} else {
		logger.Info("seeding disabled")
	}

	reg := metrics.New()

	// Inventory gateway.
	invClient, err := inventory.Dial(cfg.Inventory.Addr, cfg.Inventory.Timeout, logger, inventory.WithObserver(reg))
	if err != nil {
		return err
	}
	defer invClient.Close()

	var gateway stockGateway = invClient
	healthOpts := []rest.HealthOption{rest.WithInventory(invClient)}
	var reactor *invsvc.Reactor

	if cfg.Cache.Enabled {
		rdb, err := redisadapter.NewClient(ctx, cfg.Cache)
		if err != nil {
			return err
		}
		defer rdb.Close()

		stockCache := redisadapter.NewStockCache(rdb, cfg.Cache.TTL)
		gateway = invsvc.NewCachedGateway(logger, invClient, stockCache)
		reactor = invsvc.NewReactor(logger, stockCache, reg)
		healthOpts = append(healthOpts, rest.WithCache(stockCache))
	} else {
		reactor = invsvc.NewReactor(logger, nil, reg)
	}

	// Services.
	catalogService := catalog.NewService(
		logger, productRepo, categoryRepo, ratingRepo, gateway, reg,
		catalog.Config{
			InventoryTimeout: cfg.Inventory.Timeout,
			MaxConcurrency:   cfg.Inventory.MaxConcurrency,
		},
	)

	handler, cleanup := NewRouter(RouterDeps{
		Logger:    logger,
		Catalog:   catalogService,
		Loaders:   &dataloader.Repos{Category: categoryRepo, Rating: ratingRepo},
		Health:    rest.NewHealthHandler(pool, BuildVersion(), healthOpts...),
		Metrics:   reg,
		GraphQL:   cfg.GraphQL,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
	})
	defer cleanup()

	source, closeSource, err := newEventSource(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer closeSource()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return source.Run(gctx, reactor)
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}

// stockGateway is the stock reader handed to the catalog service: the gRPC
// client itself, or the cache in front of it.
type stockGateway interface {
	GetStock(ctx context.Context, productID uuid.UUID, timeout time.Duration) (*domain.InventorySnapshot, error)
}
