package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar-sim/internal/catalog"
	"bazaar-sim/internal/config"
)

func testRouter() http.Handler {
	return NewRouter(RouterConfig{
		Catalog:        catalog.Builtin(),
		Limits:         config.DefaultLimits(),
		WorkerCount:    2,
		DisableLogging: true,
	})
}

func TestHealthzReturnsOK(t *testing.T) {
	ts := httptest.NewServer(testRouter())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/healthz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCatalogListsBuiltinCards(t *testing.T) {
	ts := httptest.NewServer(testRouter())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/catalog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	found := false
	for _, n := range names {
		if n == "Fang" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the builtin catalog to list Fang, got %v", names)
	}
}

func TestSimulateRunsABatchFromJSON(t *testing.T) {
	ts := httptest.NewServer(testRouter())
	defer ts.Close()

	body := []byte(`{
		"iterations": 5,
		"batch_seed": 42,
		"player": {"health": 20, "cards": [{"name": "Fang", "tier": "Bronze"}]},
		"opponent": {"health": 20, "cards": [{"name": "Fang", "tier": "Bronze"}]}
	}`)

	resp, err := http.Post(ts.URL+"/api/simulate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var summary struct {
		TotalRuns int `json:"TotalRuns"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if summary.TotalRuns != 5 {
		t.Errorf("expected TotalRuns 5, got %d", summary.TotalRuns)
	}
}

func TestSimulateRejectsUnknownCardWithUnprocessableEntity(t *testing.T) {
	ts := httptest.NewServer(testRouter())
	defer ts.Close()

	body := []byte(`{
		"iterations": 1,
		"player": {"health": 20, "cards": [{"name": "Nonexistent", "tier": "Bronze"}]},
		"opponent": {"health": 20}
	}`)

	resp, err := http.Post(ts.URL+"/api/simulate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for an unknown card, got %d", resp.StatusCode)
	}
}

func TestSimulateCapsIterationsAtConfiguredLimit(t *testing.T) {
	router := NewRouter(RouterConfig{
		Catalog:        catalog.Builtin(),
		Limits:         config.Limits{MaxIterationsPerRequest: 2, MaxDispatchQueue: 0},
		WorkerCount:    2,
		DisableLogging: true,
	})
	ts := httptest.NewServer(router)
	defer ts.Close()

	body := []byte(`{
		"iterations": 1000,
		"player": {"health": 20, "cards": [{"name": "Fang", "tier": "Bronze"}]},
		"opponent": {"health": 20, "cards": [{"name": "Fang", "tier": "Bronze"}]}
	}`)

	resp, err := http.Post(ts.URL+"/api/simulate", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	var summary struct {
		TotalRuns int `json:"TotalRuns"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		t.Fatalf("failed to decode summary: %v", err)
	}
	if summary.TotalRuns != 2 {
		t.Errorf("expected iterations capped at the configured limit of 2, got %d", summary.TotalRuns)
	}
}

func TestRootServesServiceBanner(t *testing.T) {
	ts := httptest.NewServer(testRouter())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload["service"] != "bazaar-sim" {
		t.Errorf("expected service banner to name bazaar-sim, got %v", payload)
	}
}

func TestMetricsEndpointIsScrapable(t *testing.T) {
	ts := httptest.NewServer(testRouter())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 from /metrics, got %d", resp.StatusCode)
	}
}
