package domain

import "time"

// PredicateKind tags the variant held by a Predicate.
type PredicateKind int

const (
	PredicateNone PredicateKind = iota
	// PredicateText matches a substring of the case number or the notes.
	PredicateText
	// PredicateDateRange matches created_at within [From, To).
	PredicateDateRange
	// PredicateEquals matches Field = Value exactly.
	PredicateEquals
)

// FilterField names the columns an equality predicate may target.
type FilterField string

const (
	FieldState   FilterField = "state"
	FieldAgentID FilterField = "agent_id"
)

// Predicate is a single listing filter. Only the fields relevant to Kind are set.
type Predicate struct {
	Kind  PredicateKind
	Text  string
	From  time.Time
	To    time.Time
	Field FilterField
	Value any
}

// TextPredicate builds a substring predicate.
func TextPredicate(term string) Predicate {
	return Predicate{Kind: PredicateText, Text: term}
}

// DateRangePredicate builds a half-open [from, to) predicate on created_at.
func DateRangePredicate(from, to time.Time) Predicate {
	return Predicate{Kind: PredicateDateRange, From: from, To: to}
}

// EqualsPredicate builds an exact-match predicate.
func EqualsPredicate(field FilterField, value any) Predicate {
	return Predicate{Kind: PredicateEquals, Field: field, Value: value}
}

// SortOrder is the listing direction applied to (created_at, id).
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// SuggestionQuery is the typed listing filter. Broad predicates are
// OR-ed together as one group; every Strict predicate must hold.
type SuggestionQuery struct {
	Broad  []Predicate
	Strict []Predicate
	Limit  int
	Order  SortOrder
}
