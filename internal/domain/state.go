package domain

import (
	"fmt"
	"strings"
)

// State is a suggestion review state token, always lowercase.
type State string

func (s State) String() string { return string(s) }

// Default review states.
const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

// DefaultStates is the allow-list used when none is configured.
const DefaultStates = "pending,approved,rejected"

// StateSet is the configured allow-list of suggestion states.
// The order of the configured list is preserved for diagnostics.
type StateSet []State

// ParseStateSet parses a comma-separated allow-list such as
// "pending,approved,rejected". Entries are trimmed and lowercased;
// duplicates are collapsed. Empty entries and tokens containing characters
// other than [a-z0-9_-] are rejected.
func ParseStateSet(raw string) (StateSet, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("state list is empty")
	}

	parts := strings.Split(raw, ",")
	seen := make(map[State]struct{}, len(parts))
	states := make([]State, 0, len(parts))

	for i, p := range parts {
		token := strings.ToLower(strings.TrimSpace(p))
		if token == "" {
			return nil, fmt.Errorf("state list entry %d is empty", i+1)
		}
		if !isStateToken(token) {
			return nil, fmt.Errorf("state list entry %q contains invalid characters", token)
		}
		s := State(token)
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		states = append(states, s)
	}

	return StateSet(states), nil
}

// MustParseStateSet is ParseStateSet for constant input. It panics on error.
func MustParseStateSet(raw string) StateSet {
	set, err := ParseStateSet(raw)
	if err != nil {
		panic(err)
	}
	return set
}

// Validate checks a free-form token against the allow-list, comparing
// lowercased. It returns the canonical State or an *InvalidStateError.
func (s StateSet) Validate(token string) (State, error) {
	candidate := State(strings.ToLower(strings.TrimSpace(token)))
	if candidate != "" && s.Contains(candidate) {
		return candidate, nil
	}
	return "", &InvalidStateError{Received: token, Allowed: s.States()}
}

// Contains reports whether st is a member of the set.
func (s StateSet) Contains(st State) bool {
	for _, v := range s {
		if v == st {
			return true
		}
	}
	return false
}

// States returns a copy of the allow-list in configured order.
func (s StateSet) States() []State {
	out := make([]State, len(s))
	copy(out, s)
	return out
}

// Len returns the number of states in the set.
func (s StateSet) Len() int { return len(s) }

func (s StateSet) String() string {
	parts := make([]string, len(s))
	for i, st := range s {
		parts[i] = string(st)
	}
	return strings.Join(parts, ",")
}

func isStateToken(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
