package rest

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/accessgraph-backend/internal/auth"
	"github.com/heartmarshall/accessgraph-backend/internal/config"
	"github.com/heartmarshall/accessgraph-backend/internal/transport/middleware"
)

type tokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Log                *slog.Logger
	Health             *HealthHandler
	Requests           *RequestHandler
	Tokens             tokenVerifier
	CORS               config.CORSConfig
	Limiter            *middleware.RateLimiter
	MutationsPerMinute int
}

// NewRouter builds the HTTP handler: probes and metrics at the root, the
// request API under /api, all behind the common middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	h := d.Requests
	mux.HandleFunc("POST /api/groups/{groupID}/requests", h.RequestJoin)
	mux.HandleFunc("GET /api/groups/{groupID}/requests", h.ListGroupRequests)
	mux.HandleFunc("GET /api/groups/{groupID}/requests/count", h.CountGroupRequests)
	mux.HandleFunc("POST /api/groups/{groupID}/members", h.AddMember)
	mux.HandleFunc("PATCH /api/groups/{groupID}/members", h.EditMember)
	mux.HandleFunc("POST /api/groups/{groupID}/members/revoke", h.RevokeMember)
	mux.HandleFunc("GET /api/requests/{requestID}", h.GetRequest)
	mux.HandleFunc("POST /api/requests/{requestID}/status", h.UpdateStatus)
	mux.HandleFunc("GET /api/me/requests/pending", h.PendingForMe)
	mux.HandleFunc("GET /api/state-version", h.StateVersion)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Metrics(),
		middleware.Recovery(d.Log),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
	}
	// Limiting runs after Auth so authenticated callers get their own bucket.
	if d.Limiter != nil {
		mws = append(mws, middleware.When(middleware.IsMutation, d.Limiter.Limit(d.MutationsPerMinute)))
	}
	return middleware.Chain(mws...)(mux)
}
