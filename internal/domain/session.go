package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionType represents the category of a wearable-reported sleep session.
// @Description Type of session: MAIN for the primary overnight sleep, NAP for daytime naps, OTHER for anything else the device reports.
type SessionType string

const (
	// SessionTypeMain is the primary overnight sleep session.
	SessionTypeMain SessionType = "MAIN"
	// SessionTypeNap is a short daytime sleep session.
	SessionTypeNap SessionType = "NAP"
	// SessionTypeOther covers device-reported intervals that are neither
	// clearly main sleep nor a tagged nap (restless periods, mis-tagged rests).
	SessionTypeOther SessionType = "OTHER"
)

// SleepSession is one sleep interval as reported by the wearable provider.
// Sessions are read-only inputs to the advisory engine: supplied fresh on
// every fetch, never mutated, never persisted by the engine itself.
type SleepSession struct {
	// ProviderID is the provider's identifier for this session.
	ProviderID string `json:"provider_id"`
	// Day is the civil calendar date the provider assigns the session to
	// (YYYY-MM-DD, local). Overnight sleep is dated to the day it ends.
	Day string `json:"day"`
	// Type of the session.
	Type SessionType `json:"type"`
	// StartAt and EndAt are timezone-aware instants.
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	// TotalSleepSeconds may legitimately be 0 when the device has not
	// synced yet. That is distinct from "no sessions returned" but both
	// degrade to the no-data category.
	TotalSleepSeconds int `json:"total_sleep_seconds"`
	// EfficiencyPercent is 0-100 when reported.
	EfficiencyPercent *int `json:"efficiency_percent,omitempty"`
	// Stage breakdown, each non-negative when reported.
	DeepSleepSeconds  *int `json:"deep_sleep_seconds,omitempty"`
	RemSleepSeconds   *int `json:"rem_sleep_seconds,omitempty"`
	LightSleepSeconds *int `json:"light_sleep_seconds,omitempty"`
	// QualityScore is 0-100, sourced from the provider's readiness sub-object.
	QualityScore *int `json:"quality_score,omitempty"`
}

// LocalStartHour returns the hour of day the session started, in the given
// zone. Used for nap detection on sessions the provider mis-tags.
func (s *SleepSession) LocalStartHour(loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	return s.StartAt.In(loc).Hour()
}

// SessionRecord is an archived copy of a provider session, upserted on each
// sync so the history endpoint survives provider outages.
type SessionRecord struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProviderID        string      `gorm:"type:varchar(64);not null;uniqueIndex:idx_session_records_provider" json:"provider_id"`
	Day               string      `gorm:"type:varchar(10);not null;index" json:"day"`
	Type              SessionType `gorm:"type:varchar(10);not null" json:"type"`
	StartAt           time.Time   `gorm:"not null;index:idx_session_records_start,sort:desc" json:"start_at"`
	EndAt             time.Time   `gorm:"not null" json:"end_at"`
	TotalSleepSeconds int         `gorm:"not null" json:"total_sleep_seconds"`
	EfficiencyPercent *int        `gorm:"type:smallint" json:"efficiency_percent,omitempty"`
	DeepSleepSeconds  *int        `json:"deep_sleep_seconds,omitempty"`
	RemSleepSeconds   *int        `json:"rem_sleep_seconds,omitempty"`
	LightSleepSeconds *int        `json:"light_sleep_seconds,omitempty"`
	QualityScore      *int        `gorm:"type:smallint" json:"quality_score,omitempty"`
	FetchedAt         time.Time   `gorm:"autoUpdateTime" json:"fetched_at"`
}

func (SessionRecord) TableName() string {
	return "session_records"
}

// ToSession converts an archived record back into the engine's input shape.
func (r *SessionRecord) ToSession() SleepSession {
	return SleepSession{
		ProviderID:        r.ProviderID,
		Day:               r.Day,
		Type:              r.Type,
		StartAt:           r.StartAt,
		EndAt:             r.EndAt,
		TotalSleepSeconds: r.TotalSleepSeconds,
		EfficiencyPercent: r.EfficiencyPercent,
		DeepSleepSeconds:  r.DeepSleepSeconds,
		RemSleepSeconds:   r.RemSleepSeconds,
		LightSleepSeconds: r.LightSleepSeconds,
		QualityScore:      r.QualityScore,
	}
}

// NewSessionRecord snapshots a provider session for the archive.
func NewSessionRecord(s SleepSession) SessionRecord {
	return SessionRecord{
		ProviderID:        s.ProviderID,
		Day:               s.Day,
		Type:              s.Type,
		StartAt:           s.StartAt,
		EndAt:             s.EndAt,
		TotalSleepSeconds: s.TotalSleepSeconds,
		EfficiencyPercent: s.EfficiencyPercent,
		DeepSleepSeconds:  s.DeepSleepSeconds,
		RemSleepSeconds:   s.RemSleepSeconds,
		LightSleepSeconds: s.LightSleepSeconds,
		QualityScore:      s.QualityScore,
	}
}

// SessionFilter contains filter parameters for listing archived sessions.
type SessionFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

// SessionListResponse is the response body for the session history endpoint.
// @Description Paginated list of archived sleep sessions.
type SessionListResponse struct {
	// Array of archived session records
	Data []SessionRecord `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// SyncRequest is the request body for the session sync endpoint.
// @Description Request payload for pulling a trailing window of sessions from the provider.
type SyncRequest struct {
	// Number of trailing days to fetch (defaults to the configured window)
	Days int `json:"days" validate:"omitempty,min=1,max=30" example:"3"`
}

// SyncResponse reports the outcome of a provider sync.
// @Description Result of a session sync.
type SyncResponse struct {
	// Number of sessions fetched from the provider
	Fetched int `json:"fetched" example:"4"`
	// Number of archive rows created or updated
	Archived int `json:"archived" example:"4"`
	// Start of the fetched window (YYYY-MM-DD)
	FromDay string `json:"from_day" example:"2024-03-11"`
	// End of the fetched window (YYYY-MM-DD)
	ToDay string `json:"to_day" example:"2024-03-14"`
}
