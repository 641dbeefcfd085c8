package oura

import (
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
)

// sleepDocument mirrors one entry of the provider's sleep collection.
// Durations are in seconds; bedtime instants carry the device's UTC offset.
type sleepDocument struct {
	ID                 string             `json:"id"`
	Day                string             `json:"day"`
	Type               string             `json:"type"`
	BedtimeStart       time.Time          `json:"bedtime_start"`
	BedtimeEnd         time.Time          `json:"bedtime_end"`
	TotalSleepDuration int                `json:"total_sleep_duration"`
	Efficiency         *int               `json:"efficiency"`
	DeepSleepDuration  *int               `json:"deep_sleep_duration"`
	RemSleepDuration   *int               `json:"rem_sleep_duration"`
	LightSleepDuration *int               `json:"light_sleep_duration"`
	Readiness          *readinessDocument `json:"readiness"`
}

// readinessDocument is the nested readiness block attached to long sleeps.
type readinessDocument struct {
	Score *int `json:"score"`
}

// sleepListResponse is the provider's paginated envelope.
type sleepListResponse struct {
	Data      []sleepDocument `json:"data"`
	NextToken string          `json:"next_token"`
}

// mapSessionType folds the provider's type vocabulary into the engine's
// three-way split. Unrecognized values become OTHER rather than an error so
// a vocabulary change upstream cannot break the advisory path.
func mapSessionType(t string) domain.SessionType {
	switch t {
	case "long_sleep":
		return domain.SessionTypeMain
	case "late_nap", "nap":
		return domain.SessionTypeNap
	default:
		return domain.SessionTypeOther
	}
}

func (d *sleepDocument) toSession() domain.SleepSession {
	s := domain.SleepSession{
		ProviderID:        d.ID,
		Day:               d.Day,
		Type:              mapSessionType(d.Type),
		StartAt:           d.BedtimeStart,
		EndAt:             d.BedtimeEnd,
		TotalSleepSeconds: d.TotalSleepDuration,
		EfficiencyPercent: d.Efficiency,
		DeepSleepSeconds:  d.DeepSleepDuration,
		RemSleepSeconds:   d.RemSleepDuration,
		LightSleepSeconds: d.LightSleepDuration,
	}
	if d.Readiness != nil {
		s.QualityScore = d.Readiness.Score
	}
	return s
}
