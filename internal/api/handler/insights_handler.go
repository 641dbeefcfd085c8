package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/emily-flambe/naptime/internal/llm"
	"github.com/emily-flambe/naptime/internal/service"
	"github.com/emily-flambe/naptime/pkg/problem"
)

// InsightsHandler serves the LLM narrative around the current advisory.
type InsightsHandler struct {
	service service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Get handles GET /v1/insights
// @Summary Narrate the current advisory
// @Description Generate an LLM narrative around the deterministic advisory. The advisory decision itself never changes here.
// @Tags insights
// @Produce json
// @Success 200 {object} domain.InsightsResponse "Advisory with narrative"
// @Failure 401 {object} problem.Problem "Provider authentication failed"
// @Failure 429 {object} problem.Problem "Provider rate limit exceeded"
// @Failure 503 {object} problem.Problem "Provider or insights backend unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Generate(r.Context())
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("Insights backend is not configured").Write(w)
			return
		}
		writeProviderProblem(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
