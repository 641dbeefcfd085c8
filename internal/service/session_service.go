package service

import (
	"context"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/internal/repository"
	"github.com/emily-flambe/naptime/pkg/pagination"
)

const (
	// MaxSyncDays caps a single provider pull.
	MaxSyncDays = 30
)

// SessionService pulls sessions from the provider into the archive and
// serves the archived history.
type SessionService interface {
	// Sync fetches the trailing `days` window from the provider and upserts
	// it into the archive.
	Sync(ctx context.Context, days int) (*domain.SyncResponse, error)
	// List returns archived sessions, newest first, cursor-paginated.
	List(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error)
}

type sessionService struct {
	source SessionSource
	repo   repository.SessionRepository
	loc    *time.Location
	clock  func() time.Time
}

// NewSessionService creates a SessionService evaluating dates in loc.
func NewSessionService(source SessionSource, repo repository.SessionRepository, loc *time.Location) SessionService {
	if loc == nil {
		loc = time.UTC
	}
	return &sessionService{
		source: source,
		repo:   repo,
		loc:    loc,
		clock:  time.Now,
	}
}

func (s *sessionService) Sync(ctx context.Context, days int) (*domain.SyncResponse, error) {
	if days <= 0 {
		days = DefaultFetchWindowDays
	}
	if days > MaxSyncDays {
		days = MaxSyncDays
	}

	local := s.clock().In(s.loc)
	toDay := local.Format(dayFormat)
	fromDay := local.AddDate(0, 0, -days).Format(dayFormat)

	sessions, err := s.source.FetchSessions(ctx, fromDay, toDay)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SessionRecord, 0, len(sessions))
	for _, session := range sessions {
		if session.ProviderID == "" {
			// Malformed document; not worth failing the whole sync over.
			continue
		}
		records = append(records, domain.NewSessionRecord(session))
	}

	archived, err := s.repo.Upsert(ctx, records)
	if err != nil {
		return nil, err
	}

	return &domain.SyncResponse{
		Fetched:  len(sessions),
		Archived: archived,
		FromDay:  fromDay,
		ToDay:    toDay,
	}, nil
}

func (s *sessionService) List(ctx context.Context, filter domain.SessionFilter) (*domain.SessionListResponse, error) {
	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.SessionListResponse{
		Data: records,
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			StartAt: last.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
