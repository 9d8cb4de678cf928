package suggestion

import (
	"context"
	"fmt"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// List returns suggestions matching the listing parameters.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.SuggestionView, error) {
	q := BuildQuery(in)

	views, err := s.suggestions.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}
	if views == nil {
		views = []domain.SuggestionView{}
	}

	return views, nil
}
