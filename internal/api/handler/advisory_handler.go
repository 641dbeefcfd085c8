package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/internal/service"
	"github.com/emily-flambe/naptime/pkg/problem"
)

type AdvisoryHandler struct {
	service service.AdvisoryService
}

func NewAdvisoryHandler(service service.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{service: service}
}

// Get handles GET /v1/advisory
// @Summary Get the current nap advisory
// @Description Compute (or return the cached) nap advisory for the subject. "No data" is a normal 200 advisory, never an error; only upstream provider failures produce error statuses.
// @Tags advisory
// @Produce json
// @Param refresh query boolean false "Bypass the cache and recompute" default(false)
// @Success 200 {object} domain.Advisory "Current advisory"
// @Failure 401 {object} problem.Problem "Provider authentication failed"
// @Failure 429 {object} problem.Problem "Provider rate limit exceeded"
// @Failure 503 {object} problem.Problem "Provider unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /advisory [get]
func (h *AdvisoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	refresh := r.URL.Query().Get("refresh") == "true"

	advisory, err := h.service.Current(r.Context(), refresh)
	if err != nil {
		writeProviderProblem(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(advisory)
}

// writeProviderProblem maps the fetch layer's typed failures onto the status
// codes the transport contract promises: 401, 429, 503, else 500.
func writeProviderProblem(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAuthFailed):
		problem.Unauthorized("Wearable provider rejected the configured token").Write(w)
	case errors.Is(err, domain.ErrRateLimited):
		problem.TooManyRequests("Wearable provider rate limit hit; try again shortly").Write(w)
	case errors.Is(err, domain.ErrProviderUnavailable):
		problem.ServiceUnavailable("Wearable provider is unreachable").Write(w)
	default:
		problem.InternalError("Failed to compute advisory").Write(w)
	}
}
