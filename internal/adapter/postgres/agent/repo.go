// Package agent implements read access to agents using PostgreSQL.
// Agents are owned by an external user-management process; the only write
// is the operator activation toggle.
package agent

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

const table = "agents"

var columns = []string{"id", "email", "display_name", "active"}

// Repo provides agent lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new agent repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type agentRow struct {
	ID          int64  `db:"id"`
	Email       string `db:"email"`
	DisplayName string `db:"display_name"`
	Active      bool   `db:"active"`
}

func (r agentRow) toDomain() *domain.Agent {
	return &domain.Agent{
		ID:          r.ID,
		Email:       r.Email,
		DisplayName: r.DisplayName,
		Active:      r.Active,
	}
}

// GetActiveByEmail returns the active agent whose email equals email,
// ignoring case and surrounding whitespace on both sides.
// Returns domain.ErrNotFound if no active agent matches.
func (r *Repo) GetActiveByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where("lower(btrim(email)) = lower(btrim(?))", email).
		Where(sq.Eq{"active": true})

	return r.getOne(ctx, query, email)
}

// GetByID returns an agent by primary key regardless of its active flag.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id})

	return r.getOne(ctx, query, id)
}

// SetActive flips the active flag of the agent identified by email and
// returns the updated agent. Returns domain.ErrNotFound if no agent matches.
func (r *Repo) SetActive(ctx context.Context, email string, active bool) (*domain.Agent, error) {
	query := postgres.Builder().
		Update(table).
		Set("active", active).
		Where("lower(btrim(email)) = lower(btrim(?))", email).
		Suffix("RETURNING id, email, display_name, active")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build agent update: %w", err)
	}

	var row agentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "agent", email)
	}

	return row.toDomain(), nil
}

func (r *Repo) getOne(ctx context.Context, query sq.SelectBuilder, key any) (*domain.Agent, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build agent query: %w", err)
	}

	var row agentRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "agent", key)
	}

	return row.toDomain(), nil
}
