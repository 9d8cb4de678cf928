package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/casedesk-backend/internal/domain"
	"github.com/heartmarshall/casedesk-backend/internal/service/suggestion"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// suggestionService defines the minimal interface needed by SuggestionHandler.
type suggestionService interface {
	List(ctx context.Context, in suggestion.ListInput) ([]domain.SuggestionView, error)
	Create(ctx context.Context, in suggestion.CreateInput) (*suggestion.CreateResult, error)
	UpdateState(ctx context.Context, in suggestion.UpdateStateInput) error
}

// SuggestionHandler serves the suggestion REST endpoints.
type SuggestionHandler struct {
	svc suggestionService
	log *slog.Logger
}

// NewSuggestionHandler creates a SuggestionHandler.
func NewSuggestionHandler(svc suggestionService, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{svc: svc, log: logger.With("handler", "suggestion")}
}

type suggestionResponse struct {
	ID         int64     `json:"id"`
	CaseNumber string    `json:"caseNumber"`
	AgentID    int64     `json:"agentId"`
	AgentName  string    `json:"agentName"`
	AgentEmail string    `json:"agentEmail"`
	State      string    `json:"state"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

type createRequest struct {
	CaseNumber string     `json:"caseNumber"`
	Notes      *string    `json:"notes"`
	State      string     `json:"state"`
	AgentEmail string     `json:"agentEmail"`
	AgentID    flexibleID `json:"agentId"`
}

type createResponse struct {
	ID              int64              `json:"id"`
	Row             suggestionResponse `json:"row"`
	ResolvedAgentID int64              `json:"resolvedAgentId"`
}

type duplicateResponse struct {
	Error    string             `json:"error"`
	Message  string             `json:"message"`
	Existing suggestionResponse `json:"existing"`
}

type updateStateRequest struct {
	State string  `json:"state"`
	Notes *string `json:"notes"`
}

// errorResponse is the 400 body. Detail carries the allowed states when a
// state token is rejected.
type errorResponse struct {
	Error  string `json:"error"`
	Detail any    `json:"detalle,omitempty"`
}

// flexibleID accepts a JSON number or string and keeps it as text; the
// service decides whether it is a usable id.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("agentId must be a number or string")
	}
	*f = flexibleID(n.String())
	return nil
}

// List handles GET /api/suggestions?term=&date=&state=&agentId=&top=&sort=.
func (h *SuggestionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	views, err := h.svc.List(r.Context(), suggestion.ListInput{
		Term:    q.Get("term"),
		Date:    q.Get("date"),
		State:   q.Get("state"),
		AgentID: q.Get("agentId"),
		Top:     q.Get("top"),
		Sort:    q.Get("sort"),
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	out := make([]suggestionResponse, len(views))
	for i, v := range views {
		out[i] = toSuggestionResponse(v)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /api/suggestions.
func (h *SuggestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Create(r.Context(), suggestion.CreateInput{
		CaseNumber: req.CaseNumber,
		Notes:      req.Notes,
		State:      req.State,
		Identity: suggestion.IdentityInput{
			Email:   req.AgentEmail,
			AgentID: string(req.AgentID),
		},
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		ID:              result.Suggestion.ID,
		Row:             toSuggestionResponse(result.Suggestion),
		ResolvedAgentID: result.ResolvedAgentID,
	})
}

// UpdateState handles PATCH and PUT /api/suggestions/{id}.
func (h *SuggestionHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	var req updateStateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.svc.UpdateState(r.Context(), suggestion.UpdateStateInput{
		ID:    id,
		State: req.State,
		Notes: req.Notes,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps service errors to HTTP responses. Store errors are
// logged and reported with a generic message only.
func (h *SuggestionHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		dup *domain.DuplicateSuggestionError
		ise *domain.InvalidStateError
		ve  *domain.ValidationError
	)

	switch {
	case errors.As(err, &dup):
		writeJSON(w, http.StatusConflict, duplicateResponse{
			Error:    "duplicated",
			Message:  duplicateMessage(dup.Existing),
			Existing: toSuggestionResponse(dup.Existing),
		})
	case errors.As(err, &ise):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  fmt.Sprintf("invalid state %q", ise.Received),
			Detail: ise.Allowed,
		})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  validationMessage(ve),
			Detail: fieldDetail(ve),
		})
	case errors.Is(err, domain.ErrUnknownAgent):
		writeError(w, http.StatusBadRequest, "unknown agent")
	case errors.Is(err, domain.ErrMissingAgentIdentity):
		writeError(w, http.StatusBadRequest, "missing agent identity")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "suggestion not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toSuggestionResponse(v domain.SuggestionView) suggestionResponse {
	return suggestionResponse{
		ID:         v.ID,
		CaseNumber: v.CaseNumber,
		AgentID:    v.AgentID,
		AgentName:  v.AgentName,
		AgentEmail: v.AgentEmail,
		State:      string(v.State),
		Notes:      v.Notes,
		CreatedAt:  v.CreatedAt.UTC(),
	}
}

func duplicateMessage(v domain.SuggestionView) string {
	who := v.AgentName
	if who == "" {
		who = v.AgentEmail
	}
	return fmt.Sprintf("case %s was already suggested by %s on %s",
		v.CaseNumber, who, v.CreatedAt.UTC().Format(time.DateOnly))
}

func validationMessage(ve *domain.ValidationError) string {
	parts := make([]string, len(ve.Errors))
	for i, fe := range ve.Errors {
		parts[i] = fe.Field + " " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func fieldDetail(ve *domain.ValidationError) map[string]string {
	out := make(map[string]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
