package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bazaar-sim/internal/config"
	"bazaar-sim/internal/sim"
)

// Server is the HTTP API server with WebSocket support for the
// simulation control surface.
type Server struct {
	router      *chi.Mux
	hub         *WebSocketHub
	rateLimiter *IPRateLimiter
}

// NewServer creates a new API server wired to the given catalog and
// resource limits.
//
// IMPORTANT: No listener is opened until Start() is called, so tests can
// construct a Server and use Router() directly with httptest. The rate
// limiter created here starts its cleanup goroutine immediately; Stop ends
// it.
func NewServer(catalog sim.Catalog, cfg config.AppConfig) *Server {
	rateLimiter := NewIPRateLimiter(DefaultRateLimitConfig)
	hub := NewWebSocketHub()

	router := NewRouter(RouterConfig{
		Catalog:     catalog,
		Limits:      cfg.Limits,
		WorkerCount: cfg.Server.WorkerCount,
		Hub:         hub,
		RateLimiter: rateLimiter,
	})

	return &Server{
		router:      router,
		hub:         hub,
		rateLimiter: rateLimiter,
	}
}

// Router returns the HTTP handler for use with httptest.
//
// Example:
//
//	server := api.NewServer(catalog.Builtin(), config.Load())
//	ts := httptest.NewServer(server.Router())
//	defer ts.Close()
//	resp, _ := http.Get(ts.URL + "/api/healthz")
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving HTTP on addr. Call this only once; to stop the
// server, signal the process and call Stop for cleanup.
func (s *Server) Start(addr string) error {
	log.Printf("🌐 API server starting on %s", addr)
	log.Printf("🎲 POST /api/simulate — run a batch and get a Summary")
	log.Printf("📡 GET  /api/simulate/stream — watch one run live")
	return http.ListenAndServe(addr, s.router)
}

// Stop performs graceful shutdown of background workers.
func (s *Server) Stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}
