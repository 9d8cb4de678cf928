package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	agentrepo "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/agent"
	suggestionrepo "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/redis/session"
	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/service/suggestion"
	"github.com/heartmarshall/casedesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/casedesk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), applies migrations, and serves
// HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("states", cfg.Suggestion.States.String()),
		slog.Bool("session_store", cfg.Redis.URL != ""),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var sessionPinger interface{ Ping(context.Context) error }
	if c.SessionStore != nil {
		sessionPinger = c.SessionStore
	}

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:            logger,
		Suggestions:       rest.NewSuggestionHandler(c.Suggestions, logger),
		Health:            rest.NewHealthHandler(c.Pool, sessionPinger, BuildVersion()),
		Metrics:           middleware.NewMetrics(reg),
		Limiter:           limiter,
		CORS:              cfg.CORS,
		SessionCookieName: cfg.Session.CookieName,
		CreatePerMinute:   cfg.Suggestion.CreateRatePerMinute,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// Container holds the process-wide resources shared by the server and the
// operator commands. Close releases them.
type Container struct {
	Pool         *pgxpool.Pool
	SessionStore *session.Store
	Agents       *agentrepo.Repo
	Suggestions  *suggestion.Service
}

// NewContainer connects to the stores and builds the suggestion service.
// Migrations run first when cfg.Database.AutoMigrate is set.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
	}

	c := &Container{Pool: pool, Agents: agentrepo.New(pool)}

	var sessions interface {
		AgentID(ctx context.Context, token string) (string, error)
	} = session.CookieDecoder{}

	if cfg.Redis.URL != "" {
		store, err := session.NewStore(ctx, cfg.Redis.URL)
		if err != nil {
			pool.Close()
			return nil, err
		}
		c.SessionStore = store
		sessions = store
	}

	c.Suggestions = suggestion.NewService(
		logger,
		suggestionrepo.New(pool),
		c.Agents,
		sessions,
		postgres.NewTxManager(pool),
		suggestion.Config{
			States:         cfg.Suggestion.States,
			DefaultState:   cfg.Suggestion.Default,
			DefaultAgentID: cfg.Suggestion.DefaultAgentID,
		},
	)

	return c, nil
}

// Close releases the Redis client and the database pool.
func (c *Container) Close() {
	if c.SessionStore != nil {
		_ = c.SessionStore.Close()
	}
	c.Pool.Close()
}
