package domain

import "time"

// Suggestion is a proposal to add a known-but-unrecorded case to the catalog.
type Suggestion struct {
	ID         int64
	CaseNumber string
	// CaseNumberNormalized is derived from CaseNumber and used only for
	// duplicate detection.
	CaseNumberNormalized string
	AgentID              int64
	State                State
	Notes                *string
	CreatedAt            time.Time
}

// SuggestionView is a Suggestion joined with its author's display fields.
type SuggestionView struct {
	Suggestion
	AgentName  string
	AgentEmail string
}
