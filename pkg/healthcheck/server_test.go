package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerHealthy(t *testing.T) {
	h := NewHandler()
	h.SetDetail("champions", 3)
	h.AddCheck("dataset", func(ctx context.Context) error { return nil })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.Status != "ok" || body.Checks["dataset"] != "ok" || body.Details["champions"] != float64(3) {
		t.Errorf("Unexpected body %+v", body)
	}
}

func TestHandlerDegraded(t *testing.T) {
	h := NewHandler()
	h.AddCheck("redis", func(ctx context.Context) error { return errors.New("connection refused") })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("Expected 503, got %d", rec.Code)
	}
}

func TestProbe(t *testing.T) {
	ok := httptest.NewServer(NewHandler())
	defer ok.Close()
	if err := Probe(ok.URL + "/health"); err != nil {
		t.Fatalf("Expected healthy probe, got %v", err)
	}

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()
	if err := Probe(bad.URL); err == nil {
		t.Fatal("Expected unhealthy probe")
	}
}
