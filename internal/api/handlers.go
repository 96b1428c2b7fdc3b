package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"bazaar-sim/internal/config"
	"bazaar-sim/internal/sim"
)

// routerHandlers holds the collaborators the HTTP handlers close over: a
// read-only catalog and the batch-run entry points, rather than a live
// running game engine.
type routerHandlers struct {
	catalog sim.Catalog
	limits  config.Limits
	workers int
	hub     *WebSocketHub
}

// simulateRequest is the decoded body of POST /api/simulate: a
// SimulationTemplate plus the batch-run knobs the HTTP layer owns.
type simulateRequest struct {
	sim.SimulationTemplate
	Iterations int    `toml:"iterations" json:"iterations"`
	BatchSeed  uint64 `toml:"batch_seed" json:"batch_seed"`
}

// handleSimulate runs a batch of n simulations from a posted
// SimulationTemplate and returns the aggregate Summary.
func (h *routerHandlers) handleSimulate(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSimulateRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	n := req.Iterations
	if q := r.URL.Query().Get("n"); q != "" {
		if parsed, err := strconv.Atoi(q); err == nil {
			n = parsed
		}
	}
	if n <= 0 {
		n = 1
	}
	if n > h.limits.MaxIterationsPerRequest {
		n = h.limits.MaxIterationsPerRequest
	}

	start := time.Now()
	summary, err := sim.RunBatchSummary(req.SimulationTemplate, h.catalog, n, req.BatchSeed, h.workers)
	RecordBatch(time.Since(start))
	if err != nil {
		if sim.IsBuildError(err) {
			RecordBuildFailure()
			writeError(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	recordSummary(summary)
	writeJSON(w, summary)
}

// handleSimulateStream upgrades to a WebSocket and narrates one run's
// DispatchableEvents to the connecting client as it executes, then sends
// a final result frame.
func (h *routerHandlers) handleSimulateStream(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSimulateRequest(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.hub.StreamRun(w, r, req.SimulationTemplate, h.catalog, h.limits.MaxDispatchQueue)
}

// handleCatalog lists every card name the builder can resolve.
func (h *routerHandlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	type named interface{ Names() []string }
	if c, ok := h.catalog.(named); ok {
		writeJSON(w, c.Names())
		return
	}
	writeJSON(w, []string{})
}

// handleHealthz is the ambient liveness endpoint.
func (h *routerHandlers) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// decodeSimulateRequest decodes a request body as TOML or JSON depending
// on Content-Type: TOML-first to match the simulation template's native
// shape, while still accepting JSON for browser-based callers.
func decodeSimulateRequest(r *http.Request) (simulateRequest, error) {
	var req simulateRequest

	ct := r.Header.Get("Content-Type")
	if strings.Contains(ct, "json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r.Body); err != nil {
		return req, err
	}
	dec := toml.NewDecoder(&buf)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, err
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// recordSummary feeds a finished batch's outcome counts into the
// Prometheus run counters.
func recordSummary(s sim.Summary) {
	RecordRunsByOutcome("victory", s.Victories)
	RecordRunsByOutcome("defeat", s.Defeats)
	RecordRunsByOutcome("draw_timeout", s.DrawTimeout)
	RecordRunsByOutcome("draw_simultaneous", s.DrawSimultaneous)
}
