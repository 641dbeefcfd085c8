package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/internal/llm"
)

func TestInsightsHandler_Get(t *testing.T) {
	svc := &mockInsightsService{
		generateFunc: func(_ context.Context) (*domain.InsightsResponse, error) {
			return &domain.InsightsResponse{
				Advisory: domain.Advisory{SleepCategory: domain.CategoryStruggling},
				Insights: domain.LLMInsightsOutput{
					Summary:      "short night",
					Observations: []string{"five hours"},
					Guidance:     []string{"nap before five"},
				},
				TraceID: "trace-1",
			}, nil
		},
	}
	h := NewInsightsHandler(svc)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/v1/insights", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp domain.InsightsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Insights.Summary != "short night" {
		t.Errorf("summary = %q, want short night", resp.Insights.Summary)
	}
	if resp.TraceID != "trace-1" {
		t.Errorf("trace_id = %q, want trace-1", resp.TraceID)
	}
}

func TestInsightsHandler_Get_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unconfigured model maps to 503", llm.ErrOpenAIUnavailable, http.StatusServiceUnavailable},
		{"provider auth failure maps to 401", domain.ErrAuthFailed, http.StatusUnauthorized},
		{"provider rate limit maps to 429", domain.ErrRateLimited, http.StatusTooManyRequests},
		{"model request failure maps to 500", llm.ErrOpenAIRequest, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockInsightsService{
				generateFunc: func(_ context.Context) (*domain.InsightsResponse, error) {
					return nil, tt.err
				},
			}
			h := NewInsightsHandler(svc)

			rec := httptest.NewRecorder()
			h.Get(rec, httptest.NewRequest(http.MethodGet, "/v1/insights", nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
