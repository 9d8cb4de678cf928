package suggestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// UpdateState transitions a suggestion to a new state and optionally
// replaces its notes. A missing id is reported as domain.ErrNotFound.
func (s *Service) UpdateState(ctx context.Context, in UpdateStateInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	state, err := s.cfg.States.Validate(in.State)
	if err != nil {
		return err
	}

	affected, err := s.suggestions.UpdateState(ctx, in.ID, state, trimOrNil(in.Notes))
	if err != nil {
		return fmt.Errorf("update suggestion state: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("suggestion %d: %w", in.ID, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "suggestion state updated",
		slog.Int64("suggestion_id", in.ID),
		slog.String("state", string(state)),
		slog.Bool("notes_replaced", trimOrNil(in.Notes) != nil),
	)

	return nil
}
