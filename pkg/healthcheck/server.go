// Package healthcheck provides a minimal HTTP health endpoint and a client
// probe for container health checks.
package healthcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Check reports the state of one component. A nil error means healthy.
type Check func(ctx context.Context) error

// Handler serves the health endpoint.
type Handler struct {
	mu      sync.RWMutex
	checks  map[string]Check
	details map[string]any
}

// NewHandler creates a handler with no checks; it always answers "ok".
func NewHandler() *Handler {
	return &Handler{
		checks:  make(map[string]Check),
		details: make(map[string]any),
	}
}

// AddCheck registers a named check. A failing check turns the response
// into 503.
func (h *Handler) AddCheck(name string, c Check) {
	h.mu.Lock()
	h.checks[name] = c
	h.mu.Unlock()
}

// SetDetail attaches static information to the response body.
func (h *Handler) SetDetail(name string, v any) {
	h.mu.Lock()
	h.details[name] = v
	h.mu.Unlock()
}

type response struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Details map[string]any    `json:"details,omitempty"`
}

// ServeHTTP runs every check with a short deadline.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	h.mu.RLock()
	resp := response{Status: "ok", Details: h.details}
	if len(h.checks) > 0 {
		resp.Checks = make(map[string]string, len(h.checks))
	}
	for name, c := range h.checks {
		if err := c(ctx); err != nil {
			resp.Status = "degraded"
			resp.Checks[name] = err.Error()
			continue
		}
		resp.Checks[name] = "ok"
	}
	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	body, _ := json.Marshal(resp)
	h.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// Server is a minimal HTTP server for health checks.
type Server struct {
	server *http.Server
}

// New creates a new lightweight health check server around h.
func New(addr string, h *Handler) *Server {
	mux := http.NewServeMux()
	mux.Handle("/", h)
	mux.Handle("/health", h)

	return &Server{
		server: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadTimeout:       2 * time.Second,
			WriteTimeout:      3 * time.Second,
			IdleTimeout:       30 * time.Second,
			ReadHeaderTimeout: 1 * time.Second,
			MaxHeaderBytes:    1 << 10, // 1KB
		},
	}
}

// Start starts the health check server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Probe performs a quick health check against url.
func Probe(url string) error {
	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: %d", resp.StatusCode)
	}
	return nil
}
