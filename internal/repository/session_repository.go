package repository

import (
	"context"

	"github.com/emily-flambe/naptime/internal/domain"
	"github.com/emily-flambe/naptime/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SessionRepository archives provider-fetched sleep sessions. The archive
// only backs the history endpoint; the advisory engine always works from a
// fresh provider fetch.
type SessionRepository interface {
	// Upsert creates or refreshes archive rows keyed by provider session id.
	Upsert(ctx context.Context, records []domain.SessionRecord) (int, error)
	// List returns archived sessions newest-first with cursor pagination.
	List(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionRecord, error)
	// ListByDayRange returns archived sessions for an inclusive civil date range.
	ListByDayRange(ctx context.Context, fromDay, toDay string) ([]domain.SessionRecord, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Upsert(ctx context.Context, records []domain.SessionRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "provider_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"day", "type", "start_at", "end_at", "total_sleep_seconds",
			"efficiency_percent", "deep_sleep_seconds", "rem_sleep_seconds",
			"light_sleep_seconds", "quality_score", "fetched_at",
		}),
	}).Create(&records)
	if result.Error != nil {
		return 0, result.Error
	}

	return len(records), nil
}

func (r *sessionRepository) List(ctx context.Context, filter domain.SessionFilter) ([]domain.SessionRecord, error) {
	query := r.db.WithContext(ctx).Order("start_at DESC")

	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: rows strictly after the cursor position.
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	// Fetch one extra row so the caller can tell whether more pages exist.
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.SessionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *sessionRepository) ListByDayRange(ctx context.Context, fromDay, toDay string) ([]domain.SessionRecord, error) {
	var records []domain.SessionRecord
	err := r.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", fromDay, toDay).
		Order("start_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
