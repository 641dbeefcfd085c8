package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/pkg/pagination"
	"github.com/google/uuid"
)

func newTestSessionService(source SessionSource, repo *mockSessionRepository) *sessionService {
	svc := NewSessionService(source, repo, time.UTC).(*sessionService)
	svc.clock = func() time.Time { return at(15) }
	return svc
}

func TestSync(t *testing.T) {
	source := &mockSessionSource{
		fetchFunc: func(_ context.Context, _, _ string) ([]domain.SleepSession, error) {
			return []domain.SleepSession{
				lastNight(7 * 3600),
				napSession(testToday, at(14)),
				{Day: testToday}, // malformed: no provider id
			}, nil
		},
	}
	repo := &mockSessionRepository{}
	svc := newTestSessionService(source, repo)

	resp, err := svc.Sync(context.Background(), 7)
	if err != nil {
		t.Fatalf("Sync() error = %v", err)
	}

	if source.lastFrom != "2024-03-07" || source.lastTo != "2024-03-14" {
		t.Errorf("fetched [%s, %s], want [2024-03-07, 2024-03-14]", source.lastFrom, source.lastTo)
	}
	if resp.Fetched != 3 {
		t.Errorf("Fetched = %d, want 3", resp.Fetched)
	}
	if resp.Archived != 2 {
		t.Errorf("Archived = %d, want 2 (malformed document skipped)", resp.Archived)
	}
	if len(repo.upserted) != 2 {
		t.Fatalf("upserted %d records, want 2", len(repo.upserted))
	}
	if repo.upserted[0].ProviderID != "night-1" {
		t.Errorf("upserted[0].ProviderID = %s, want night-1", repo.upserted[0].ProviderID)
	}
	if resp.FromDay != "2024-03-07" || resp.ToDay != "2024-03-14" {
		t.Errorf("window = [%s, %s], want [2024-03-07, 2024-03-14]", resp.FromDay, resp.ToDay)
	}
}

func TestSync_ClampsDays(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantFrom string
	}{
		{"zero days falls back to the default window", 0, "2024-03-11"},
		{"negative days falls back to the default window", -5, "2024-03-11"},
		{"days above the cap are clamped", 365, "2024-02-13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &mockSessionSource{}
			svc := newTestSessionService(source, &mockSessionRepository{})

			if _, err := svc.Sync(context.Background(), tt.days); err != nil {
				t.Fatalf("Sync() error = %v", err)
			}
			if source.lastFrom != tt.wantFrom {
				t.Errorf("fromDay = %s, want %s", source.lastFrom, tt.wantFrom)
			}
		})
	}
}

func TestSync_ProviderError(t *testing.T) {
	wantErr := domain.ErrProviderUnavailable
	source := &mockSessionSource{
		fetchFunc: func(_ context.Context, _, _ string) ([]domain.SleepSession, error) {
			return nil, wantErr
		},
	}
	repo := &mockSessionRepository{}
	svc := newTestSessionService(source, repo)

	if _, err := svc.Sync(context.Background(), 3); !errors.Is(err, wantErr) {
		t.Fatalf("Sync() error = %v, want %v", err, wantErr)
	}
	if repo.upserted != nil {
		t.Error("nothing must be archived when the fetch fails")
	}
}

func TestList_Pagination(t *testing.T) {
	makeRecords := func(n int) []domain.SessionRecord {
		records := make([]domain.SessionRecord, n)
		for i := range records {
			records[i] = domain.SessionRecord{
				ID:      uuid.New(),
				Day:     testToday,
				Type:    domain.SessionTypeMain,
				StartAt: at(15).Add(-time.Duration(i) * time.Hour),
			}
		}
		return records
	}

	t.Run("full page plus one signals more", func(t *testing.T) {
		repo := &mockSessionRepository{
			listFunc: func(_ context.Context, _ domain.SessionFilter) ([]domain.SessionRecord, error) {
				return makeRecords(pagination.DefaultLimit + 1), nil
			},
		}
		svc := newTestSessionService(&mockSessionSource{}, repo)

		resp, err := svc.List(context.Background(), domain.SessionFilter{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(resp.Data) != pagination.DefaultLimit {
			t.Errorf("len(Data) = %d, want %d", len(resp.Data), pagination.DefaultLimit)
		}
		if !resp.Pagination.HasMore {
			t.Error("HasMore = false, want true")
		}
		if resp.Pagination.NextCursor == "" {
			t.Error("NextCursor is empty, want cursor for the last row")
		}

		cursor, err := pagination.DecodeCursor(resp.Pagination.NextCursor)
		if err != nil {
			t.Fatalf("DecodeCursor() error = %v", err)
		}
		last := resp.Data[len(resp.Data)-1]
		if cursor.ID != last.ID || !cursor.StartAt.Equal(last.StartAt) {
			t.Error("cursor must point at the last returned row")
		}
	})

	t.Run("short page has no cursor", func(t *testing.T) {
		repo := &mockSessionRepository{
			listFunc: func(_ context.Context, _ domain.SessionFilter) ([]domain.SessionRecord, error) {
				return makeRecords(3), nil
			},
		}
		svc := newTestSessionService(&mockSessionSource{}, repo)

		resp, err := svc.List(context.Background(), domain.SessionFilter{})
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(resp.Data) != 3 {
			t.Errorf("len(Data) = %d, want 3", len(resp.Data))
		}
		if resp.Pagination.HasMore {
			t.Error("HasMore = true, want false")
		}
		if resp.Pagination.NextCursor != "" {
			t.Errorf("NextCursor = %s, want empty", resp.Pagination.NextCursor)
		}
	})

	t.Run("repository error propagates", func(t *testing.T) {
		wantErr := errors.New("db down")
		repo := &mockSessionRepository{
			listFunc: func(_ context.Context, _ domain.SessionFilter) ([]domain.SessionRecord, error) {
				return nil, wantErr
			},
		}
		svc := newTestSessionService(&mockSessionSource{}, repo)

		if _, err := svc.List(context.Background(), domain.SessionFilter{}); !errors.Is(err, wantErr) {
			t.Fatalf("List() error = %v, want %v", err, wantErr)
		}
	})
}
