// Package suggestion implements suggestion intake, listing and review.
package suggestion

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

type suggestionRepo interface {
	FindByNormalized(ctx context.Context, key string) (*domain.SuggestionView, error)
	GetByID(ctx context.Context, id int64) (*domain.SuggestionView, error)
	Create(ctx context.Context, s *domain.Suggestion) (int64, error)
	UpdateState(ctx context.Context, id int64, state domain.State, notes *string) (int64, error)
	List(ctx context.Context, q domain.SuggestionQuery) ([]domain.SuggestionView, error)
}

type agentRepo interface {
	GetActiveByEmail(ctx context.Context, email string) (*domain.Agent, error)
	GetByID(ctx context.Context, id int64) (*domain.Agent, error)
}

type sessionResolver interface {
	AgentID(ctx context.Context, token string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the validated suggestion settings.
type Config struct {
	States         domain.StateSet
	DefaultState   domain.State
	DefaultAgentID int64
}

// Service provides suggestion operations.
type Service struct {
	suggestions suggestionRepo
	agents      agentRepo
	sessions    sessionResolver
	tx          txManager
	cfg         Config
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new suggestion service. sessions may be nil, in
// which case session cookies are ignored during identity resolution.
func NewService(
	log *slog.Logger,
	suggestions suggestionRepo,
	agents agentRepo,
	sessions sessionResolver,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		suggestions: suggestions,
		agents:      agents,
		sessions:    sessions,
		tx:          tx,
		cfg:         cfg,
		log:         log.With("service", "suggestion"),
		now:         time.Now,
	}
}

// States returns the configured allow-list.
func (s *Service) States() domain.StateSet {
	return s.cfg.States
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
