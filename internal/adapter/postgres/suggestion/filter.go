package suggestion

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// filterColumns maps equality fields to their qualified columns.
var filterColumns = map[domain.FilterField]string{
	domain.FieldState:   "s.state",
	domain.FieldAgentID: "s.agent_id",
}

// buildListQuery folds q into
//
//	(broad_1 OR broad_2 ...) AND strict_1 AND strict_2 ...
//
// The broad group is omitted when it is empty.
func buildListQuery(q domain.SuggestionQuery) (sq.SelectBuilder, error) {
	query := selectView()

	broad := make(sq.Or, 0, len(q.Broad))
	for _, p := range q.Broad {
		expr, err := predicateExpr(p)
		if err != nil {
			return query, err
		}
		if expr != nil {
			broad = append(broad, expr)
		}
	}
	if len(broad) > 0 {
		query = query.Where(broad)
	}

	for _, p := range q.Strict {
		expr, err := predicateExpr(p)
		if err != nil {
			return query, err
		}
		if expr != nil {
			query = query.Where(expr)
		}
	}

	dir := string(domain.SortAsc)
	if q.Order == domain.SortDesc {
		dir = string(domain.SortDesc)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return query.
		OrderBy("s.created_at "+dir, "s.id "+dir).
		Limit(uint64(limit)), nil
}

// predicateExpr converts a single predicate. PredicateNone yields nil.
func predicateExpr(p domain.Predicate) (sq.Sqlizer, error) {
	switch p.Kind {
	case domain.PredicateNone:
		return nil, nil
	case domain.PredicateText:
		pattern := "%" + postgres.EscapeLike(p.Text) + "%"
		return sq.Or{
			sq.ILike{"s.case_number": pattern},
			sq.ILike{"s.notes": pattern},
		}, nil
	case domain.PredicateDateRange:
		return sq.And{
			sq.GtOrEq{"s.created_at": p.From},
			sq.Lt{"s.created_at": p.To},
		}, nil
	case domain.PredicateEquals:
		col, ok := filterColumns[p.Field]
		if !ok {
			return nil, fmt.Errorf("suggestion filter: unsupported field %q", p.Field)
		}
		return sq.Eq{col: p.Value}, nil
	default:
		return nil, fmt.Errorf("suggestion filter: unsupported predicate kind %d", p.Kind)
	}
}
