package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// storagePinger is the part of the storage backend the health checks need.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	storage storagePinger
	driver  string
	version string
}

// NewHealthHandler creates a HealthHandler for the storage backend named by driver.
func NewHealthHandler(storage storagePinger, driver, version string) *HealthHandler {
	return &HealthHandler{storage: storage, driver: driver, version: version}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
}

// ComponentStatus reports one dependency of the server.
type ComponentStatus struct {
	Status  string `json:"status"`
	Driver  string `json:"driver,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now().UTC()})
}

// Ready answers 503 until the storage backend responds.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	comp := h.checkStorage(r.Context())
	writeJSON(w, statusCode(comp.Status), HealthResponse{Status: comp.Status, Timestamp: time.Now().UTC()})
}

// Health reports the version and the storage backend with its ping latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := h.checkStorage(r.Context())
	writeJSON(w, statusCode(comp.Status), HealthResponse{
		Status:     comp.Status,
		Version:    h.version,
		Components: map[string]ComponentStatus{"storage": comp},
		Timestamp:  time.Now().UTC(),
	})
}

func (h *HealthHandler) checkStorage(ctx context.Context) ComponentStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.storage.Ping(ctx); err != nil {
		return ComponentStatus{Status: "down", Driver: h.driver}
	}
	return ComponentStatus{Status: "ok", Driver: h.driver, Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == "ok" {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
