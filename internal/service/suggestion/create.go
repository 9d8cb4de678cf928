package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// CreateResult is a persisted suggestion plus the agent it was attributed to.
type CreateResult struct {
	Suggestion      domain.SuggestionView
	ResolvedAgentID int64
}

// Create validates, de-duplicates and stores a new suggestion.
//
// The lookup by normalized case number is a fast path; the unique index on
// that column decides races, and a violation is reported the same way as a
// fast-path hit: *domain.DuplicateSuggestionError carrying the existing row.
func (s *Service) Create(ctx context.Context, in CreateInput) (*CreateResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	agentID, err := s.ResolveAgent(ctx, in.Identity)
	if err != nil {
		return nil, err
	}

	state, err := s.resolveState(in.State)
	if err != nil {
		return nil, err
	}

	caseNumber := strings.TrimSpace(in.CaseNumber)
	key := domain.NormalizeCaseNumber(caseNumber)

	existing, err := s.suggestions.FindByNormalized(ctx, key)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "duplicate suggestion rejected",
			slog.String("case_number", caseNumber),
			slog.Int64("existing_id", existing.ID),
		)
		return nil, &domain.DuplicateSuggestionError{Existing: *existing}
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("check duplicate: %w", err)
	}

	var created *domain.SuggestionView
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		id, err := s.suggestions.Create(ctx, &domain.Suggestion{
			CaseNumber:           caseNumber,
			CaseNumberNormalized: key,
			AgentID:              agentID,
			State:                state,
			Notes:                trimOrNil(in.Notes),
			CreatedAt:            s.now().UTC(),
		})
		if err != nil {
			return err
		}

		created, err = s.suggestions.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("re-read suggestion %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, s.duplicateAfterConflict(ctx, key, err)
		case errors.Is(err, domain.ErrUnknownAgent):
			return nil, err
		default:
			return nil, fmt.Errorf("create suggestion: %w", err)
		}
	}

	s.log.InfoContext(ctx, "suggestion created",
		slog.Int64("suggestion_id", created.ID),
		slog.Int64("agent_id", agentID),
		slog.String("state", string(state)),
	)

	return &CreateResult{Suggestion: *created, ResolvedAgentID: agentID}, nil
}

// resolveState returns the configured default for an empty token and
// validates anything else against the allow-list.
func (s *Service) resolveState(token string) (domain.State, error) {
	if strings.TrimSpace(token) == "" {
		return s.cfg.DefaultState, nil
	}
	return s.cfg.States.Validate(token)
}

// duplicateAfterConflict converts a unique violation into a duplicate error
// by reading the row that won the race.
func (s *Service) duplicateAfterConflict(ctx context.Context, key string, cause error) error {
	existing, err := s.suggestions.FindByNormalized(ctx, key)
	if err != nil {
		return fmt.Errorf("create suggestion: %w (lookup after conflict: %v)", cause, err)
	}

	s.log.InfoContext(ctx, "duplicate suggestion rejected on insert",
		slog.String("case_number_normalized", key),
		slog.Int64("existing_id", existing.ID),
	)
	return &domain.DuplicateSuggestionError{Existing: *existing}
}
