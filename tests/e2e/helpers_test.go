//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	agentrepo "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/agent"
	suggestionrepo "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/suggestion"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/casedesk-backend/internal/adapter/redis/session"
	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/service/suggestion"
	"github.com/heartmarshall/casedesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/casedesk-backend/internal/transport/rest"
)

const sessionCookie = "casedesk_session"

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	Sessions *session.Store
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper) and an in-memory Redis.
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Stores.
	pool := testhelper.SetupTestDB(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := session.NewStoreWithClient(client)
	t.Cleanup(func() { _ = sessions.Close() })

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Service.
	svc := suggestion.NewService(
		logger,
		suggestionrepo.New(pool),
		agentrepo.New(pool),
		sessions,
		txm,
		suggestion.Config{
			States:       domain.MustParseStateSet(domain.DefaultStates),
			DefaultState: domain.StatePending,
		},
	)

	// 4. Router with the production middleware chain.
	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Suggestions: rest.NewSuggestionHandler(svc, logger),
		Health:      rest.NewHealthHandler(pool, sessions, "test-version"),
		Metrics:     middleware.NewMetrics(prometheus.NewRegistry()),
		Limiter:     limiter,
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,PUT,OPTIONS",
			AllowedHeaders:   "Content-Type,X-Agent-Email,X-Agent-Id",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		SessionCookieName: sessionCookie,
	})

	// 5. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		Sessions: sessions,
	}
}

// ---------------------------------------------------------------------------
// do sends a JSON request and returns status + raw body.
// ---------------------------------------------------------------------------

func (ts *testServer) do(t *testing.T, method, path string, body any, headers map[string]string, cookies ...*http.Cookie) (int, []byte) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, buf.Bytes()
}

func decodeObject(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func decodeArray(t *testing.T, raw []byte) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

func urlQuery(s string) string { return url.QueryEscape(s) }

func lowerNoSpace(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}
