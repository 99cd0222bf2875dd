package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/heartmarshall/catalog-backend/internal/config"
	"github.com/heartmarshall/catalog-backend/internal/metrics"
	"github.com/heartmarshall/catalog-backend/internal/service/catalog"
	gqlpkg "github.com/heartmarshall/catalog-backend/internal/transport/graphql"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/dataloader"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/generated"
	"github.com/heartmarshall/catalog-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/catalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/catalog-backend/internal/transport/rest"
)

// RouterDeps holds everything the HTTP surface needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Catalog   *catalog.Service
	Loaders   *dataloader.Repos
	Health    *rest.HealthHandler
	Metrics   *metrics.Registry
	GraphQL   config.GraphQLConfig
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
}

// NewRouter builds the HTTP handler: GraphQL on /query, probes, metrics and
// the optional playground. The returned func stops background work of the
// middleware and must be called on shutdown.
func NewRouter(d RouterDeps) (http.Handler, func()) {
	res := resolver.NewResolver(d.Logger, d.Catalog)
	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})

	gqlSrv := newGraphQLServer(schema, d.GraphQL)
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(d.Logger))

	mws, cleanup := queryMiddleware(d)
	graphqlHandler := middleware.Chain(mws...)(gqlSrv)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", d.Metrics.Handler())
	mux.Handle("GET /query", graphqlHandler)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)

	if d.GraphQL.PlaygroundEnabled {
		mux.Handle("GET /playground", playground.Handler("Catalog", "/query"))
		mux.Handle("GET /{$}", http.RedirectHandler("/playground", http.StatusFound))
	}

	return mux, cleanup
}

// queryMiddleware lists the /query stack from outermost to innermost.
// Metrics wraps everything so rejected and panicking requests are counted.
// CORS answers preflights before the rate limiter sees them, and loaders
// are created only for requests that reach the executor.
func queryMiddleware(d RouterDeps) ([]middleware.Middleware, func()) {
	var (
		limit   middleware.Middleware
		cleanup = func() {}
	)
	if d.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(d.RateLimit.RPS, d.RateLimit.Burst, time.Minute)
		limit = rl.Limit()
		cleanup = rl.Stop
	}

	loaders := dataloader.Middleware(d.Loaders,
		dataloader.WithMaxBatch(d.GraphQL.LoaderMaxBatch),
		dataloader.WithWait(d.GraphQL.LoaderWait),
	)

	return []middleware.Middleware{
		middleware.Metrics(d.Metrics, "/query"),
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		limit,
		middleware.Middleware(loaders),
	}, cleanup
}

func newGraphQLServer(schema graphql.ExecutableSchema, cfg config.GraphQLConfig) *handler.Server {
	srv := handler.New(schema)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	if cfg.IntrospectionEnabled || cfg.PlaygroundEnabled {
		srv.Use(extension.Introspection{})
	}
	srv.Use(extension.AutomaticPersistedQuery{
		Cache: lru.New[string](100),
	})
	if cfg.ComplexityLimit > 0 {
		srv.Use(extension.FixedComplexityLimit(cfg.ComplexityLimit))
	}

	return srv
}
