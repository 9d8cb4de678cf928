package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	identityKey  ctxKey = "identity_hints"
)

// IdentityHints carries the request-level identity sources that do not come
// from the JSON body: the X-Agent-Email and X-Agent-Id headers and the raw
// session cookie value. Values are stored as received; resolution happens in
// the service layer.
type IdentityHints struct {
	Email        string
	AgentID      string
	SessionToken string
}

// IsZero reports whether no hint was supplied.
func (h IdentityHints) IsZero() bool {
	return strings.TrimSpace(h.Email) == "" &&
		strings.TrimSpace(h.AgentID) == "" &&
		strings.TrimSpace(h.SessionToken) == ""
}

// WithIdentityHints stores identity hints in the context.
func WithIdentityHints(ctx context.Context, h IdentityHints) context.Context {
	return context.WithValue(ctx, identityKey, h)
}

// IdentityHintsFromCtx extracts identity hints from the context.
// Returns the zero value if absent.
func IdentityHintsFromCtx(ctx context.Context) IdentityHints {
	h, _ := ctx.Value(identityKey).(IdentityHints)
	return h
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
