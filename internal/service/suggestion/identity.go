package suggestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/pkg/ctxutil"
)

// ResolveAgent determines the acting agent.
//
// An email (body first, then the X-Agent-Email header) must match an
// active agent; a miss is ErrUnknownAgent with no fallback. Without an
// email the first positive integer among the body agentId, the X-Agent-Id
// header, the session cookie and the configured default wins. The session
// store is consulted only when the body and header yield nothing.
func (s *Service) ResolveAgent(ctx context.Context, in IdentityInput) (int64, error) {
	hints := ctxutil.IdentityHintsFromCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" {
		email = strings.ToLower(strings.TrimSpace(hints.Email))
	}
	if email != "" {
		agent, err := s.agents.GetActiveByEmail(ctx, email)
		if errors.Is(err, domain.ErrNotFound) {
			return 0, fmt.Errorf("agent %q: %w", email, domain.ErrUnknownAgent)
		}
		if err != nil {
			return 0, fmt.Errorf("resolve agent by email: %w", err)
		}
		return agent.ID, nil
	}

	if id, ok := parsePositiveID(in.AgentID); ok {
		return s.checkAgent(ctx, id, "body")
	}
	if id, ok := parsePositiveID(hints.AgentID); ok {
		return s.checkAgent(ctx, id, "header")
	}

	if token := strings.TrimSpace(hints.SessionToken); token != "" && s.sessions != nil {
		raw, err := s.sessions.AgentID(ctx, token)
		if err != nil {
			return 0, fmt.Errorf("resolve session: %w", err)
		}
		if id, ok := parsePositiveID(raw); ok {
			return s.checkAgent(ctx, id, "session")
		}
	}

	if s.cfg.DefaultAgentID > 0 {
		return s.checkAgent(ctx, s.cfg.DefaultAgentID, "default")
	}

	return 0, domain.ErrMissingAgentIdentity
}

// checkAgent confirms that id names an active agent. A selected source that
// names an unknown or inactive agent fails instead of falling through.
func (s *Service) checkAgent(ctx context.Context, id int64, source string) (int64, error) {
	agent, err := s.agents.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return 0, fmt.Errorf("agent %d from %s: %w", id, source, domain.ErrUnknownAgent)
	}
	if err != nil {
		return 0, fmt.Errorf("resolve agent %d: %w", id, err)
	}
	if !agent.Active {
		return 0, fmt.Errorf("agent %d from %s is inactive: %w", id, source, domain.ErrUnknownAgent)
	}

	s.log.DebugContext(ctx, "agent resolved", slog.Int64("agent_id", id), slog.String("source", source))
	return id, nil
}

// parsePositiveID parses a base-10 integer greater than zero.
func parsePositiveID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
