package service

import (
	"context"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/internal/langfuse"
)

// mockSessionSource is a mock implementation of SessionSource.
type mockSessionSource struct {
	fetchFunc  func(ctx context.Context, fromDay, toDay string) ([]domain.SleepSession, error)
	fetchCalls int
	lastFrom   string
	lastTo     string
}

func (m *mockSessionSource) FetchSessions(ctx context.Context, fromDay, toDay string) ([]domain.SleepSession, error) {
	m.fetchCalls++
	m.lastFrom = fromDay
	m.lastTo = toDay
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, fromDay, toDay)
	}
	return nil, nil
}

// mockSessionRepository is a mock implementation of repository.SessionRepository.
type mockSessionRepository struct {
	upsertFunc         func(ctx context.Context, records []domain.SessionRecord) (int, error)
	listFunc           func(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionRecord, error)
	listByDayRangeFunc func(ctx context.Context, fromDay, toDay string) ([]domain.SessionRecord, error)
	upserted           []domain.SessionRecord
}

func (m *mockSessionRepository) Upsert(ctx context.Context, records []domain.SessionRecord) (int, error) {
	m.upserted = records
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, records)
	}
	return len(records), nil
}

func (m *mockSessionRepository) List(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionRecord, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockSessionRepository) ListByDayRange(ctx context.Context, fromDay, toDay string) ([]domain.SessionRecord, error) {
	if m.listByDayRangeFunc != nil {
		return m.listByDayRangeFunc(ctx, fromDay, toDay)
	}
	return nil, nil
}

// mockCache is a mock implementation of cache.Cache that records calls.
type mockCache struct {
	entries  map[string]*domain.Advisory
	getCalls int
	setCalls int
	lastTTL  time.Duration
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string]*domain.Advisory)}
}

func (m *mockCache) Get(_ context.Context, key string) (*domain.Advisory, bool) {
	m.getCalls++
	adv, ok := m.entries[key]
	return adv, ok
}

func (m *mockCache) Set(_ context.Context, key string, adv *domain.Advisory, ttl time.Duration) {
	m.setCalls++
	m.lastTTL = ttl
	m.entries[key] = adv
}

func (m *mockCache) Flush(_ context.Context) {
	m.entries = make(map[string]*domain.Advisory)
}

// mockInsightsLLM is a mock implementation of llm.NapInsightsLLM.
type mockInsightsLLM struct {
	generateFunc func(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
	lastContext  *domain.InsightsContext
}

func (m *mockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	m.lastContext = insightsCtx
	if m.generateFunc != nil {
		return m.generateFunc(ctx, insightsCtx)
	}
	return &domain.LLMInsightsOutput{Summary: "ok"}, nil
}

// mockLangfuse is a mock implementation of langfuse.Client.
type mockLangfuse struct {
	enabled    bool
	traceID    string
	traceCalls int
	lastTrace  langfuse.TraceInput
}

func (m *mockLangfuse) IsEnabled() bool {
	return m.enabled
}

func (m *mockLangfuse) CreateTrace(_ context.Context, in langfuse.TraceInput) (string, error) {
	m.traceCalls++
	m.lastTrace = in
	return m.traceID, nil
}

func (m *mockLangfuse) CreateScore(_ context.Context, _ langfuse.ScoreInput) error {
	return nil
}
