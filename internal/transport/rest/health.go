package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type stateReader interface {
	StateVersion(ctx context.Context) (int64, error)
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db      dbPinger
	state   stateReader
	version string
}

func NewHealthHandler(db dbPinger, state stateReader, version string) *HealthHandler {
	return &HealthHandler{db: db, state: state, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status       string                `json:"status"`
	Version      string                `json:"version,omitempty"`
	StateVersion *int64                `json:"stateVersion,omitempty"`
	Components   map[string]CompStatus `json:"components,omitempty"`
	Timestamp    time.Time             `json:"timestamp"`
}

type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDegraded = "degraded"
)

// Live answers 200 while the process is serving.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 until the database is reachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health reports each component with its latency, the build version and
// the graph state version. A failed database makes the service down; a
// failed state counter only degrades it.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     statusOK,
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
	}

	if !resp.probe(ctx, "database", h.db.Ping) {
		resp.Status = statusDown
	} else {
		var version int64
		ok := resp.probe(ctx, "state_counter", func(ctx context.Context) (err error) {
			version, err = h.state.StateVersion(ctx)
			return err
		})
		if ok {
			resp.StateVersion = &version
		} else {
			resp.Status = statusDegraded
		}
	}

	code := http.StatusOK
	if resp.Status == statusDown {
		code = http.StatusServiceUnavailable
	}
	resp.Timestamp = time.Now()
	writeJSON(w, code, resp)
}

func (resp *HealthResponse) probe(ctx context.Context, name string, check func(context.Context) error) bool {
	start := time.Now()
	if err := check(ctx); err != nil {
		resp.Components[name] = CompStatus{Status: statusDown}
		return false
	}
	resp.Components[name] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	return true
}
