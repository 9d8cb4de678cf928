package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/transport/middleware"
)

// RouterDeps holds everything NewRouter wires into the mux.
type RouterDeps struct {
	Logger      *slog.Logger
	Suggestions *SuggestionHandler
	Health      *HealthHandler
	Metrics     *middleware.Metrics
	Limiter     *middleware.RateLimiter

	CORS              config.CORSConfig
	SessionCookieName string
	// CreatePerMinute caps suggestion creation per client IP; 0 disables it.
	CreatePerMinute int
}

// NewRouter builds the HTTP handler: API routes instrumented per route,
// creation rate limited, everything behind the shared middleware chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	route := func(pattern string, h http.Handler) {
		mux.Handle(pattern, d.Metrics.Instrument(pattern, h))
	}

	var limitCreate middleware.Middleware
	if d.Limiter != nil {
		limitCreate = d.Limiter.Limit(d.CreatePerMinute)
	}

	route("GET /api/suggestions", http.HandlerFunc(d.Suggestions.List))
	route("POST /api/suggestions", middleware.Chain(limitCreate)(http.HandlerFunc(d.Suggestions.Create)))
	route("PATCH /api/suggestions/{id}", http.HandlerFunc(d.Suggestions.UpdateState))
	route("PUT /api/suggestions/{id}", http.HandlerFunc(d.Suggestions.UpdateState))

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)
	mux.Handle("GET /metrics", d.Metrics.Handler())

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.Identity(d.SessionCookieName),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}
