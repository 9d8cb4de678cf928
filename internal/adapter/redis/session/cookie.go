package session

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// CookieDecoder extracts an agent id embedded directly in the cookie value.
// Accepted forms: "agent:<id>", a bare number, or (URL-encoded) JSON
// {"agentId": <id>}. Anything else yields "".
type CookieDecoder struct{}

// AgentID implements the same lookup contract as Store. It never fails.
func (CookieDecoder) AgentID(_ context.Context, value string) (string, error) {
	return decodeCookie(value), nil
}

func decodeCookie(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}

	if unescaped, err := url.QueryUnescape(v); err == nil {
		v = strings.TrimSpace(unescaped)
	}

	if rest, ok := strings.CutPrefix(v, "agent:"); ok {
		return strings.TrimSpace(rest)
	}

	if strings.HasPrefix(v, "{") {
		var payload struct {
			AgentID json.RawMessage `json:"agentId"`
		}
		if err := json.Unmarshal([]byte(v), &payload); err != nil {
			return ""
		}
		return strings.Trim(string(payload.AgentID), `"`)
	}

	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return v
	}
	return ""
}
