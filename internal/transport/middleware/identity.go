package middleware

import (
	"net/http"
	"strings"

	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// Identity headers sent by the case-desk front end.
const (
	AgentEmailHeader = "X-Agent-Email"
	AgentIDHeader    = "X-Agent-Id"
)

// Identity returns middleware that copies the agent identity headers and the
// session cookie named cookieName into the request context. Nothing is
// validated here; the suggestion service decides which hint wins.
func Identity(cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hints := ctxutil.IdentityHints{
				Email:   strings.TrimSpace(r.Header.Get(AgentEmailHeader)),
				AgentID: strings.TrimSpace(r.Header.Get(AgentIDHeader)),
			}
			if cookieName != "" {
				if c, err := r.Cookie(cookieName); err == nil {
					hints.SessionToken = c.Value
				}
			}

			if hints.IsZero() {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithIdentityHints(r.Context(), hints)))
		})
	}
}
