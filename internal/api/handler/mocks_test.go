package handler

import (
	"context"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
)

// mockAdvisoryService is a mock implementation of service.AdvisoryService.
type mockAdvisoryService struct {
	currentFunc func(ctx context.Context, refresh bool) (*domain.Advisory, error)
	lastRefresh bool
}

func (m *mockAdvisoryService) ComputeAdvisory(_ []domain.SleepSession, now time.Time) *domain.Advisory {
	return &domain.Advisory{GeneratedAt: now}
}

func (m *mockAdvisoryService) GetCachedOrCompute(_ context.Context, _ string, sessions []domain.SleepSession, now time.Time) *domain.Advisory {
	return m.ComputeAdvisory(sessions, now)
}

func (m *mockAdvisoryService) Current(ctx context.Context, refresh bool) (*domain.Advisory, error) {
	m.lastRefresh = refresh
	if m.currentFunc != nil {
		return m.currentFunc(ctx, refresh)
	}
	return &domain.Advisory{}, nil
}

// mockSessionService is a mock implementation of service.SessionService.
type mockSessionService struct {
	syncFunc   func(ctx context.Context, days int) (*domain.SyncResponse, error)
	listFunc   func(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error)
	lastDays   int
	lastFilter domain.SessionFilter
}

func (m *mockSessionService) Sync(ctx context.Context, days int) (*domain.SyncResponse, error) {
	m.lastDays = days
	if m.syncFunc != nil {
		return m.syncFunc(ctx, days)
	}
	return &domain.SyncResponse{}, nil
}

func (m *mockSessionService) List(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	m.lastFilter = filter
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.SessionListResponse{}, nil
}

// mockInsightsService is a mock implementation of service.InsightsService.
type mockInsightsService struct {
	generateFunc func(ctx context.Context) (*domain.InsightsResponse, error)
}

func (m *mockInsightsService) Generate(ctx context.Context) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx)
	}
	return &domain.InsightsResponse{}, nil
}
