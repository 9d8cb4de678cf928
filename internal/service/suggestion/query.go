package suggestion

import (
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200

	dateLayout = "2006-01-02"
)

// BuildQuery turns raw listing parameters into a typed query.
// term and date are broad (OR-ed) filters; state and agentId are strict.
// Malformed date and agentId values are dropped. top above MaxLimit is
// clamped; missing, non-numeric or non-positive top selects DefaultLimit.
// sort "desc" (any case) selects descending order, anything else ascending.
func BuildQuery(in ListInput) domain.SuggestionQuery {
	var q domain.SuggestionQuery

	if term := strings.TrimSpace(in.Term); term != "" {
		q.Broad = append(q.Broad, domain.TextPredicate(term))
	}

	if day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(in.Date), time.UTC); err == nil {
		q.Broad = append(q.Broad, domain.DateRangePredicate(day, day.AddDate(0, 0, 1)))
	}

	if state := strings.ToLower(strings.TrimSpace(in.State)); state != "" {
		q.Strict = append(q.Strict, domain.EqualsPredicate(domain.FieldState, state))
	}

	if id, ok := parsePositiveID(in.AgentID); ok {
		q.Strict = append(q.Strict, domain.EqualsPredicate(domain.FieldAgentID, id))
	}

	q.Limit = parseLimit(in.Top)

	q.Order = domain.SortAsc
	if strings.EqualFold(strings.TrimSpace(in.Sort), "desc") {
		q.Order = domain.SortDesc
	}

	return q
}

func parseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
