package suggestion

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

//go:generate moq -out suggestion_repo_mock_test.go -pkg suggestion . suggestionRepo
//go:generate moq -out agent_repo_mock_test.go -pkg suggestion . agentRepo
//go:generate moq -out session_resolver_mock_test.go -pkg suggestion . sessionResolver
//go:generate moq -out tx_manager_mock_test.go -pkg suggestion . txManager

var fixedNow = time.Date(2025, 3, 5, 14, 30, 0, 0, time.UTC)

func defaultConfig() Config {
	return Config{
		States:       domain.MustParseStateSet(domain.DefaultStates),
		DefaultState: domain.StatePending,
	}
}

// passthroughTx runs fn with the given context, like a committed transaction.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

// activeAgents returns an agentRepoMock that knows the given agents by id and email.
func activeAgents(agents ...domain.Agent) *agentRepoMock {
	return &agentRepoMock{
		GetActiveByEmailFunc: func(_ context.Context, email string) (*domain.Agent, error) {
			for _, a := range agents {
				if a.Email == email && a.Active {
					a := a
					return &a, nil
				}
			}
			return nil, domain.ErrNotFound
		},
		GetByIDFunc: func(_ context.Context, id int64) (*domain.Agent, error) {
			for _, a := range agents {
				if a.ID == id {
					a := a
					return &a, nil
				}
			}
			return nil, domain.ErrNotFound
		},
	}
}

type testDeps struct {
	repo     *suggestionRepoMock
	agents   *agentRepoMock
	sessions sessionResolver
	tx       *txManagerMock
	cfg      Config
}

// newTestService creates a Service with the given mocks, a discard logger
// and a fixed clock. Nil dependencies get defaults.
func newTestService(t *testing.T, d testDeps) *Service {
	t.Helper()
	if d.repo == nil {
		d.repo = &suggestionRepoMock{}
	}
	if d.agents == nil {
		d.agents = &agentRepoMock{}
	}
	if d.tx == nil {
		d.tx = passthroughTx()
	}
	if d.cfg.States == nil {
		d.cfg = defaultConfig()
	}

	svc := NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), d.repo, d.agents, d.sessions, d.tx, d.cfg)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func strPtr(s string) *string { return &s }
