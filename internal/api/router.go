package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bazaar-sim/internal/config"
	"bazaar-sim/internal/sim"
)

// RouterConfig contains all dependencies needed to construct the HTTP
// router. Designed for dependency injection and testability.
//
// Example usage in tests:
//
//	cfg := api.RouterConfig{
//	    Catalog: catalog.Builtin(),
//	    Limits:  config.DefaultLimits(),
//	}
//	router := api.NewRouter(cfg)
//	ts := httptest.NewServer(router)
type RouterConfig struct {
	// Catalog is the read-only card-name lookup the builder consults.
	Catalog sim.Catalog

	// Limits bounds batch size and dispatch queue depth.
	Limits config.Limits

	// WorkerCount is the number of goroutines RunBatch fans out across.
	WorkerCount int

	// Hub serves /api/simulate/stream. If nil, a new one is created.
	Hub *WebSocketHub

	// RateLimiter is an optional pre-configured rate limiter. If nil, a new
	// one is created from RateLimitConfig.
	RateLimiter *IPRateLimiter

	// RateLimitConfig is only used if RateLimiter is nil.
	RateLimitConfig *RateLimitConfig

	// CORSOrigins overrides the default allowed origins.
	CORSOrigins []string

	// DisableLogging disables the request logger middleware (useful for benchmarks).
	DisableLogging bool
}

// NewRouter constructs the HTTP router with all middleware and routes.
//
// IMPORTANT: This function opens no listener. It starts no goroutine of
// its own; when cfg.RateLimiter is nil, the IPRateLimiter it creates starts
// its cleanup goroutine. Safe to use with httptest.NewServer.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	if !cfg.DisableLogging {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	rateLimiter := cfg.RateLimiter
	if rateLimiter == nil {
		rateLimitCfg := DefaultRateLimitConfig
		if cfg.RateLimitConfig != nil {
			rateLimitCfg = *cfg.RateLimitConfig
		}
		rateLimiter = NewIPRateLimiter(rateLimitCfg)
	}
	r.Use(rateLimiter.Middleware)

	corsOrigins := cfg.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = AllowedOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	hub := cfg.Hub
	if hub == nil {
		hub = NewWebSocketHub()
	}

	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}

	h := &routerHandlers{
		catalog: cfg.Catalog,
		limits:  cfg.Limits,
		workers: workers,
		hub:     hub,
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/simulate", h.handleSimulate)
		r.Get("/simulate/stream", h.handleSimulateStream)
		r.Get("/catalog", h.handleCatalog)
		r.Get("/healthz", h.handleHealthz)
	})

	// Prometheus scrape endpoint, also exposed here in addition to the
	// localhost-only debug server.
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]string{"service": "bazaar-sim"})
	})

	return r
}
