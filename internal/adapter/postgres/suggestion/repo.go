// Package suggestion implements the Suggestion store using PostgreSQL.
// Listing queries are folded from a domain.SuggestionQuery with squirrel;
// rows are scanned with scany.
package suggestion

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const (
	table = "suggestions"

	// UniqueNormalizedConstraint is the unique index enforcing one suggestion
	// per normalized case number.
	UniqueNormalizedConstraint = "ux_suggestions_case_number_normalized"
)

var viewColumns = []string{
	"s.id",
	"s.case_number",
	"s.case_number_normalized",
	"s.agent_id",
	"s.state",
	"s.notes",
	"s.created_at",
	"a.display_name AS agent_name",
	"a.email AS agent_email",
}

// Repo provides suggestion persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new suggestion repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type viewRow struct {
	ID                   int64     `db:"id"`
	CaseNumber           string    `db:"case_number"`
	CaseNumberNormalized string    `db:"case_number_normalized"`
	AgentID              int64     `db:"agent_id"`
	State                string    `db:"state"`
	Notes                *string   `db:"notes"`
	CreatedAt            time.Time `db:"created_at"`
	AgentName            string    `db:"agent_name"`
	AgentEmail           string    `db:"agent_email"`
}

func (r viewRow) toDomain() domain.SuggestionView {
	return domain.SuggestionView{
		Suggestion: domain.Suggestion{
			ID:                   r.ID,
			CaseNumber:           r.CaseNumber,
			CaseNumberNormalized: r.CaseNumberNormalized,
			AgentID:              r.AgentID,
			State:                domain.State(r.State),
			Notes:                r.Notes,
			CreatedAt:            r.CreatedAt.UTC(),
		},
		AgentName:  r.AgentName,
		AgentEmail: r.AgentEmail,
	}
}

func selectView() sq.SelectBuilder {
	return postgres.Builder().
		Select(viewColumns...).
		From(table + " s").
		Join("agents a ON a.id = s.agent_id")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByNormalized returns the suggestion whose normalized case number equals key.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) FindByNormalized(ctx context.Context, key string) (*domain.SuggestionView, error) {
	return r.getOne(ctx, selectView().Where(sq.Eq{"s.case_number_normalized": key}), key)
}

// GetByID returns a suggestion joined with its agent.
// Returns domain.ErrNotFound if the suggestion does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.SuggestionView, error) {
	return r.getOne(ctx, selectView().Where(sq.Eq{"s.id": id}), id)
}

// List returns suggestions matching q, ordered by (created_at, id) in the
// requested direction and capped at q.Limit rows.
func (r *Repo) List(ctx context.Context, q domain.SuggestionQuery) ([]domain.SuggestionView, error) {
	query, err := buildListQuery(q)
	if err != nil {
		return nil, err
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build suggestion list: %w", err)
	}

	var rows []viewRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list suggestions: %w", err)
	}

	views := make([]domain.SuggestionView, len(rows))
	for i, row := range rows {
		views[i] = row.toDomain()
	}
	return views, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts s and returns the generated id.
// A unique violation on the normalized case number wraps domain.ErrAlreadyExists;
// a missing agent wraps domain.ErrUnknownAgent.
func (r *Repo) Create(ctx context.Context, s *domain.Suggestion) (int64, error) {
	query := postgres.Builder().
		Insert(table).
		Columns("case_number", "case_number_normalized", "agent_id", "state", "notes", "created_at").
		Values(s.CaseNumber, s.CaseNumberNormalized, s.AgentID, string(s.State), s.Notes, s.CreatedAt).
		Suffix("RETURNING id")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build suggestion insert: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if postgres.IsConstraintViolation(err, postgres.CodeForeignKeyViolation, "") {
			return 0, fmt.Errorf("suggestion %q agent %d: %w", s.CaseNumber, s.AgentID, domain.ErrUnknownAgent)
		}
		return 0, postgres.MapError(err, "suggestion", s.CaseNumberNormalized)
	}

	return id, nil
}

// UpdateState sets the state of suggestion id and, when notes is non-nil,
// replaces its notes. It returns the number of affected rows.
func (r *Repo) UpdateState(ctx context.Context, id int64, state domain.State, notes *string) (int64, error) {
	query := postgres.Builder().
		Update(table).
		Set("state", string(state)).
		Where(sq.Eq{"id": id})
	if notes != nil {
		query = query.Set("notes", *notes)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build suggestion update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "suggestion", id)
	}

	return tag.RowsAffected(), nil
}

func (r *Repo) getOne(ctx context.Context, query sq.SelectBuilder, key any) (*domain.SuggestionView, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build suggestion query: %w", err)
	}

	var row viewRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "suggestion", key)
	}

	view := row.toDomain()
	return &view, nil
}
