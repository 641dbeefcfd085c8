package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/emily-flambe/naptime/internal/cache"
	"github.com/emily-flambe/naptime/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultFetchWindowDays is the trailing window pulled from the provider.
	// Wide enough to tolerate "sleep is dated to the day it ends" and to
	// catch late-reported same-day naps.
	DefaultFetchWindowDays = 3

	// SubjectKey identifies the one subject this deployment serves.
	SubjectKey = "primary"

	dayFormat = "2006-01-02"
)

// SessionSource supplies already-resolved sleep sessions for a civil date
// range. The provider client implements it; tests substitute fixtures.
type SessionSource interface {
	FetchSessions(ctx context.Context, fromDay, toDay string) ([]domain.SleepSession, error)
}

// AdvisoryService turns provider sessions and the current instant into a nap
// advisory. ComputeAdvisory is pure; Current adds the fetch-and-cache loop
// around it.
type AdvisoryService interface {
	// ComputeAdvisory is the engine: deterministic given its inputs, no I/O.
	ComputeAdvisory(sessions []domain.SleepSession, now time.Time) *domain.Advisory
	// GetCachedOrCompute returns the cached advisory for key if fresh,
	// otherwise computes from the supplied sessions and caches the result.
	GetCachedOrCompute(ctx context.Context, key string, sessions []domain.SleepSession, now time.Time) *domain.Advisory
	// Current runs the full path: cache lookup, provider fetch on miss,
	// compute, cache fill. refresh bypasses the lookup but still fills.
	Current(ctx context.Context, refresh bool) (*domain.Advisory, error)
}

type advisoryService struct {
	source     SessionSource
	cache      cache.Cache
	loc        *time.Location
	ttl        time.Duration
	windowDays int
	clock      func() time.Time
}

// NewAdvisoryService creates an AdvisoryService evaluating time in loc.
func NewAdvisoryService(source SessionSource, c cache.Cache, loc *time.Location, ttl time.Duration, windowDays int) AdvisoryService {
	if loc == nil {
		loc = time.UTC
	}
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	if windowDays <= 0 {
		windowDays = DefaultFetchWindowDays
	}
	return &advisoryService{
		source:     source,
		cache:      c,
		loc:        loc,
		ttl:        ttl,
		windowDays: windowDays,
		clock:      time.Now,
	}
}

func (s *advisoryService) ComputeAdvisory(sessions []domain.SleepSession, now time.Time) *domain.Advisory {
	local := now.In(s.loc)
	today := local.Format(dayFormat)

	main := SelectMainSleep(sessions, today)
	hasNapped := DetectNapToday(sessions, today, s.loc)

	var (
		totalSeconds int
		metrics      domain.SleepMetrics
		quality      = domain.QualityUnknown
	)
	if main != nil {
		totalSeconds = main.TotalSleepSeconds
		metrics = buildMetrics(main)
		quality = domain.LabelQuality(main.QualityScore)
	}

	category := ClassifySleep(totalSeconds)
	window := ClassifyTimeWindow(local.Hour())

	return Resolve(category, window, hasNapped, totalSeconds, metrics, quality, now)
}

func (s *advisoryService) GetCachedOrCompute(ctx context.Context, key string, sessions []domain.SleepSession, now time.Time) *domain.Advisory {
	if adv, ok := s.cache.Get(ctx, key); ok {
		return adv
	}

	adv := s.ComputeAdvisory(sessions, now)
	s.cache.Set(ctx, key, adv, s.ttl)
	return adv
}

func (s *advisoryService) Current(ctx context.Context, refresh bool) (*domain.Advisory, error) {
	tracer := otel.Tracer("naptime-api/advisory")
	ctx, span := tracer.Start(ctx, "AdvisoryService.Current",
		trace.WithAttributes(
			attribute.Bool("advisory.refresh", refresh),
			attribute.String("advisory.subject", SubjectKey),
		),
	)
	defer span.End()

	now := s.clock()

	if !refresh {
		if adv, ok := s.cache.Get(ctx, SubjectKey); ok {
			span.SetAttributes(attribute.Bool("advisory.cache_hit", true))
			return adv, nil
		}
	}
	span.SetAttributes(attribute.Bool("advisory.cache_hit", false))

	local := now.In(s.loc)
	toDay := local.Format(dayFormat)
	fromDay := local.AddDate(0, 0, -s.windowDays).Format(dayFormat)

	sessions, err := s.source.FetchSessions(ctx, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	adv := s.ComputeAdvisory(sessions, now)
	s.cache.Set(ctx, SubjectKey, adv, s.ttl)

	// Attach output payload for Langfuse
	if outJSON, err := json.Marshal(adv); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
	}
	span.SetAttributes(
		attribute.Int("advisory.sessions", len(sessions)),
		attribute.String("advisory.category", string(adv.SleepCategory)),
		attribute.String("advisory.window", string(adv.TimeWindow)),
		attribute.Bool("advisory.needs_nap", adv.NeedsNap),
	)

	return adv, nil
}

// buildMetrics converts the session's second-granularity breakdown into the
// minutes pass-through the advisory exposes.
func buildMetrics(s *domain.SleepSession) domain.SleepMetrics {
	m := domain.SleepMetrics{
		TotalMinutes: s.TotalSleepSeconds / 60,
	}
	if s.DeepSleepSeconds != nil {
		m.DeepMinutes = *s.DeepSleepSeconds / 60
	}
	if s.RemSleepSeconds != nil {
		m.RemMinutes = *s.RemSleepSeconds / 60
	}
	if s.LightSleepSeconds != nil {
		m.LightMinutes = *s.LightSleepSeconds / 60
	}
	if s.EfficiencyPercent != nil {
		m.Efficiency = *s.EfficiencyPercent
	}
	return m
}
