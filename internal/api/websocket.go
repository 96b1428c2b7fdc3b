package api

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"bazaar-sim/internal/sim"
)

const (
	// MaxWSConnectionsTotal is the maximum number of WebSocket connections allowed.
	MaxWSConnectionsTotal = 500

	// MaxWSConnectionsPerIP is the maximum WebSocket connections per IP.
	MaxWSConnectionsPerIP = 10

	// streamDrainInterval is how often a running simulation's dispatch
	// queue is drained and forwarded to its WebSocket client.
	streamDrainInterval = 50 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if IsAllowedOrigin(origin) {
			return true
		}
		log.Printf("⚠️ WebSocket connection rejected from origin: %s", origin)
		RecordConnectionRejected("origin")
		return false
	},
}

// WebSocketHub tracks live connections for DoS protection and metrics.
// There is no shared game world to broadcast: each connection drives its
// own simulation run via StreamRun and is only counted here for
// connection limiting.
type WebSocketHub struct {
	mu          sync.Mutex
	count       int
	byIP        map[string]int
	totalLimit  int
	perIPLimiter *WebSocketRateLimiter
}

// NewWebSocketHub creates a hub with the default connection limits.
func NewWebSocketHub() *WebSocketHub {
	return &WebSocketHub{
		byIP:         make(map[string]int),
		totalLimit:   MaxWSConnectionsTotal,
		perIPLimiter: NewWebSocketRateLimiter(MaxWSConnectionsPerIP),
	}
}

// ClientCount returns the number of currently connected clients.
func (h *WebSocketHub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.count
}

func (h *WebSocketHub) register() {
	h.mu.Lock()
	h.count++
	n := h.count
	h.mu.Unlock()
	UpdateWSConnections(n)
}

func (h *WebSocketHub) unregister() {
	h.mu.Lock()
	h.count--
	n := h.count
	h.mu.Unlock()
	UpdateWSConnections(n)
}

// streamFrame is one JSON message sent down a /api/simulate/stream
// connection: either a narrated DispatchableEvent or the terminal result.
type streamFrame struct {
	Kind   string               `json:"kind"`
	Tick   sim.GameTicks        `json:"tick,omitempty"`
	Source sim.CardId           `json:"source,omitempty"`
	Target sim.CardId           `json:"target,omitempty"`
	Player string               `json:"player,omitempty"`
	Amount uint32               `json:"amount,omitempty"`
	Crit   bool                 `json:"crit,omitempty"`
	Result *sim.SimulationResult `json:"result,omitempty"`
}

// StreamRun upgrades the request to a WebSocket, builds and runs one
// simulation from tmpl with a live dispatch channel, and forwards each
// DispatchableEvent as a JSON frame as the run progresses. It blocks until the run
// finishes or the client disconnects.
func (h *WebSocketHub) StreamRun(w http.ResponseWriter, r *http.Request, tmpl sim.SimulationTemplate, catalog sim.Catalog, dispatchCapacity int) {
	ip := GetClientIP(r)

	if h.ClientCount() >= h.totalLimit {
		RecordConnectionRejected("ws_total_limit")
		http.Error(w, "Too many connections", http.StatusServiceUnavailable)
		return
	}
	if !h.perIPLimiter.Allow(ip) {
		RecordConnectionRejected("ws_ip_limit")
		http.Error(w, "Too many connections from your IP", http.StatusTooManyRequests)
		return
	}
	defer h.perIPLimiter.Release(ip)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.register()
	defer h.unregister()

	run, err := sim.Build(tmpl, catalog)
	if err != nil {
		RecordBuildFailure()
		_ = conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}
	run = run.Clone(*seedOrZero(tmpl.Seed), dispatchCapacity)

	done := make(chan *sim.SimulationResult, 1)
	go func() { done <- run.Run() }()

	ticker := time.NewTicker(streamDrainInterval)
	defer ticker.Stop()

	for {
		select {
		case result := <-done:
			for _, ev := range run.DrainDispatch(4096) {
				_ = conn.WriteJSON(toFrame(ev))
			}
			_ = conn.WriteJSON(streamFrame{Kind: "result", Result: result})
			IncrementWSMessages()
			return
		case <-ticker.C:
			events := run.DrainDispatch(256)
			for _, ev := range events {
				if err := conn.WriteJSON(toFrame(ev)); err != nil {
					return
				}
				IncrementWSMessages()
			}
		}
	}
}

func seedOrZero(seed *uint64) *uint64 {
	if seed != nil {
		return seed
	}
	zero := uint64(0)
	return &zero
}

func toFrame(ev sim.DispatchableEvent) streamFrame {
	return streamFrame{
		Kind:   ev.Kind.String(),
		Tick:   ev.Tick,
		Source: ev.Source,
		Target: ev.Target,
		Player: ev.Player.String(),
		Amount: ev.Amount,
		Crit:   ev.Crit,
	}
}
