package service

import (
	"context"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/internal/langfuse"
	"github.com/emily-flambe/naptime/internal/llm"
	"github.com/emily-flambe/naptime/internal/repository"
)

// InsightsWindowDays is how much trailing history the narrative sees.
const InsightsWindowDays = 7

// InsightsService wraps the deterministic advisory in an LLM-generated
// narrative. The advisory decision itself is never delegated to the model.
type InsightsService interface {
	// Generate computes the current advisory and narrates it.
	Generate(ctx context.Context) (*domain.InsightsResponse, error)
}

type insightsService struct {
	advisoryService AdvisoryService
	sessionRepo     repository.SessionRepository
	llmClient       llm.NapInsightsLLM
	langfuseClient  langfuse.Client
	loc             *time.Location
	clock           func() time.Time
}

// NewInsightsService creates a new InsightsService. llmClient may be nil,
// in which case Generate reports ErrInsightsUnavailable.
func NewInsightsService(
	advisoryService AdvisoryService,
	sessionRepo repository.SessionRepository,
	llmClient llm.NapInsightsLLM,
	langfuseClient langfuse.Client,
	loc *time.Location,
) InsightsService {
	if loc == nil {
		loc = time.UTC
	}
	return &insightsService{
		advisoryService: advisoryService,
		sessionRepo:     sessionRepo,
		llmClient:       llmClient,
		langfuseClient:  langfuseClient,
		loc:             loc,
		clock:           time.Now,
	}
}

func (s *insightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	advisory, err := s.advisoryService.Current(ctx, false)
	if err != nil {
		return nil, err
	}

	// Trailing history comes from the archive rather than a second provider
	// round-trip; a slightly stale narrative window is acceptable.
	local := s.clock().In(s.loc)
	toDay := local.Format(dayFormat)
	fromDay := local.AddDate(0, 0, -InsightsWindowDays).Format(dayFormat)

	records, err := s.sessionRepo.ListByDayRange(ctx, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.SleepSession, 0, len(records))
	for i := range records {
		sessions = append(sessions, records[i].ToSession())
	}

	insightsCtx := &domain.InsightsContext{
		Advisory: *advisory,
		Sessions: sessions,
	}

	output, err := s.llmClient.GenerateInsights(ctx, insightsCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.InsightsResponse{
		Advisory: *advisory,
		Insights: *output,
	}

	if s.langfuseClient != nil && s.langfuseClient.IsEnabled() {
		traceID, err := s.langfuseClient.CreateTrace(ctx, langfuse.TraceInput{
			Name:   "nap-insights",
			Input:  insightsCtx,
			Output: output,
			Tags:   []string{"insights"},
		})
		if err == nil {
			response.TraceID = traceID
		}
	}

	return response, nil
}
