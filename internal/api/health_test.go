package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/futbolpath/futbolpath/internal/api"
	"github.com/futbolpath/futbolpath/internal/graph"
)

func TestLiveness_ReturnsOK(t *testing.T) {
	t.Parallel()

	h := api.NewHealthHandler(nil, &mockGraph{}, testLogger(), "test-v1")

	r := newTestRouter()
	r.GET("/health", h.Liveness)

	w := doRequest(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["status"] != "ok" || body["version"] != "test-v1" {
		t.Errorf("unexpected body: %v", body)
	}

	if body["store"] != "not_configured" || body["graph"] != "loading" {
		t.Errorf("store/graph = %v/%v, want not_configured/loading", body["store"], body["graph"])
	}
}

func TestLiveness_StoreDownStillOK(t *testing.T) {
	t.Parallel()

	h := api.NewHealthHandler(&mockChecker{err: errors.New("down")}, &mockGraph{stats: graph.Stats{Loaded: true}}, testLogger(), "v")

	r := newTestRouter()
	r.GET("/health", h.Liveness)

	w := doRequest(r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["store"] != "disconnected" || body["graph"] != "loaded" {
		t.Errorf("store/graph = %v/%v, want disconnected/loaded", body["store"], body["graph"])
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		storeErr   error
		loaded     bool
		wantStatus int
		wantChecks map[string]string
	}{
		{name: "ready", loaded: true, wantStatus: http.StatusOK, wantChecks: map[string]string{"store": "ok", "graph": "ok"}},
		{name: "graph loading", wantStatus: http.StatusServiceUnavailable, wantChecks: map[string]string{"store": "ok", "graph": "loading"}},
		{name: "store down", storeErr: errors.New("down"), loaded: true, wantStatus: http.StatusServiceUnavailable, wantChecks: map[string]string{"store": "error", "graph": "ok"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := api.NewHealthHandler(&mockChecker{err: tc.storeErr}, &mockGraph{stats: graph.Stats{Loaded: tc.loaded}}, testLogger(), "v")

			r := newTestRouter()
			r.GET("/ready", h.Readiness)

			w := doRequest(r, "/ready")
			if w.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, w.Code)
			}

			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}

			for k, want := range tc.wantChecks {
				if body.Checks[k] != want {
					t.Errorf("check %s = %q, want %q", k, body.Checks[k], want)
				}
			}
		})
	}
}
