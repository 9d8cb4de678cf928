package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAgent creates an active agent with a unique email.
func SeedAgent(t *testing.T, pool *pgxpool.Pool) domain.Agent {
	t.Helper()
	return seedAgent(t, pool, true)
}

// SeedInactiveAgent creates an agent with active = false.
func SeedInactiveAgent(t *testing.T, pool *pgxpool.Pool) domain.Agent {
	t.Helper()
	return seedAgent(t, pool, false)
}

func seedAgent(t *testing.T, pool *pgxpool.Pool, active bool) domain.Agent {
	t.Helper()

	suffix := uniqueSuffix()
	agent := domain.Agent{
		Email:       "agent-" + suffix + "@example.com",
		DisplayName: "Agent " + suffix,
		Active:      active,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO agents (email, display_name, active) VALUES ($1, $2, $3) RETURNING id`,
		agent.Email, agent.DisplayName, agent.Active,
	).Scan(&agent.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAgent: %v", err)
	}

	return agent
}

// UniqueCaseNumber returns a case number that no other test has used,
// formatted with mixed case and spacing the way agents type them.
func UniqueCaseNumber(prefix string) string {
	return prefix + " " + uniqueSuffix()
}

// SeedSuggestion inserts a suggestion directly, bypassing the repository.
// createdAt is truncated to microseconds to match PostgreSQL precision.
func SeedSuggestion(t *testing.T, pool *pgxpool.Pool, agentID int64, caseNumber string, state domain.State, notes *string, createdAt time.Time) domain.Suggestion {
	t.Helper()

	s := domain.Suggestion{
		CaseNumber:           caseNumber,
		CaseNumberNormalized: domain.NormalizeCaseNumber(caseNumber),
		AgentID:              agentID,
		State:                state,
		Notes:                notes,
		CreatedAt:            createdAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO suggestions (case_number, case_number_normalized, agent_id, state, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		s.CaseNumber, s.CaseNumberNormalized, s.AgentID, string(s.State), s.Notes, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSuggestion: %v", err)
	}

	return s
}
