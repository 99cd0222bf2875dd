package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// connState reports the connectivity state of the inventory connection.
type connState interface {
	State() string
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db        dbPinger
	inventory connState
	cache     dbPinger
	version   string
}

// HealthOption configures optional components of the /health report.
type HealthOption func(*HealthHandler)

// WithInventory adds the inventory connection to /health.
func WithInventory(c connState) HealthOption {
	return func(h *HealthHandler) { h.inventory = c }
}

// WithCache adds the stock cache to /health.
func WithCache(p dbPinger) HealthOption {
	return func(h *HealthHandler) { h.cache = p }
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDegraded = "degraded"
)

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
// The inventory system is not consulted: without it the catalog still serves
// degraded products.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    statusDown,
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Health is the full health check. The database decides between 200 and 503;
// an unhealthy inventory connection or cache only marks the report degraded.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := statusOK

	db := pingComponent(ctx, h.db)
	components["database"] = db
	if db.Status != statusOK {
		overallStatus = statusDown
	}

	if h.inventory != nil {
		inv := inventoryComponent(h.inventory.State())
		components["inventory"] = inv
		if inv.Status != statusOK && overallStatus == statusOK {
			overallStatus = statusDegraded
		}
	}

	if h.cache != nil {
		c := pingComponent(ctx, h.cache)
		components["cache"] = c
		if c.Status != statusOK && overallStatus == statusOK {
			overallStatus = statusDegraded
		}
	}

	status := http.StatusOK
	if overallStatus == statusDown {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func pingComponent(ctx context.Context, p dbPinger) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

// IDLE is healthy: the connection dials lazily on the first call.
func inventoryComponent(state string) CompStatus {
	switch state {
	case "READY", "IDLE", "CONNECTING":
		return CompStatus{Status: statusOK, Detail: state}
	default:
		return CompStatus{Status: statusDown, Detail: state}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
