package suggestion

import (
	"strings"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
)

// IdentityInput holds the identity sources carried in the request body.
// Header and cookie sources are read from ctxutil.IdentityHints.
type IdentityInput struct {
	Email   string
	AgentID string
}

// CreateInput holds the parameters for creating a suggestion.
type CreateInput struct {
	CaseNumber string
	Notes      *string
	// State is optional; empty selects the configured default.
	State    string
	Identity IdentityInput
}

// Validate checks the fields that can be verified without configuration.
func (i CreateInput) Validate() error {
	if strings.TrimSpace(i.CaseNumber) == "" {
		return domain.NewValidationError("caseNumber", "required")
	}
	return nil
}

// UpdateStateInput holds the parameters for a state transition.
type UpdateStateInput struct {
	ID    int64
	State string
	// Notes replaces the stored notes only when non-empty.
	Notes *string
}

// Validate checks all fields and collects all errors.
func (i UpdateStateInput) Validate() error {
	if i.ID <= 0 {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

// ListInput holds raw listing parameters as received from the client.
// Every field is optional; malformed values are dropped or defaulted.
type ListInput struct {
	Term    string
	Date    string
	State   string
	AgentID string
	Top     string
	Sort    string
}
