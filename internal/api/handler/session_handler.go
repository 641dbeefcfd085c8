package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/emily-flambe/naptime/internal/api/validation"
	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/internal/service"
	"github.com/emily-flambe/naptime/pkg/problem"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// List handles GET /v1/sessions
// @Summary List archived sleep sessions
// @Description Fetch the archived session history. Filter by instant range. Results sorted by start time descending (newest first).
// @Tags sessions
// @Produce json
// @Param from query string false "Start of range (RFC3339)" format(date-time) example(2024-03-01T00:00:00Z)
// @Param to query string false "End of range (RFC3339)" format(date-time) example(2024-03-14T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SessionListResponse "Archived sessions with pagination"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseSessionFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list sessions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Sync handles POST /v1/sessions/sync
// @Summary Sync sessions from the wearable provider
// @Description Pull a trailing window of sleep sessions from the provider into the archive.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body domain.SyncRequest false "Sync parameters"
// @Success 200 {object} domain.SyncResponse "Sync outcome"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Request body contains invalid fields"
// @Failure 401 {object} problem.Problem "Provider authentication failed"
// @Failure 429 {object} problem.Problem "Provider rate limit exceeded"
// @Failure 503 {object} problem.Problem "Provider unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sessions/sync [post]
func (h *SessionHandler) Sync(w http.ResponseWriter, r *http.Request) {
	var req domain.SyncRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			problem.BadRequest("Invalid JSON body").Write(w)
			return
		}
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.service.Sync(r.Context(), req.Days)
	if err != nil {
		writeProviderProblem(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSessionFilter(r *http.Request) (domain.SessionFilter, []problem.FieldError) {
	var filter domain.SessionFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
