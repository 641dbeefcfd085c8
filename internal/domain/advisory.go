package domain

import (
	"math"
	"time"
)

// TimeWindow classifies "now" into a named slice of the subject's day.
// @Description Named time-of-day window used by the advisory engine.
type TimeWindow string

const (
	WindowOvernightSleep TimeWindow = "overnight_sleep"
	WindowPreNap         TimeWindow = "pre_nap"
	WindowNap            TimeWindow = "nap"
	WindowPostNap        TimeWindow = "post_nap"
)

// SleepCategory buckets last night's total sleep duration, ordered by
// severity. NoData covers both "no sessions" and "session with zero sleep".
// @Description Coarse sufficiency bucket for last night's sleep.
type SleepCategory string

const (
	CategoryNoData           SleepCategory = "no_data"
	CategorySeverelyDeprived SleepCategory = "severely_deprived"
	CategoryStruggling       SleepCategory = "struggling"
	CategorySufficient       SleepCategory = "sufficient"
	CategoryOversleep        SleepCategory = "oversleep"
)

// NapPriority expresses how urgently a nap is recommended. Unknown is
// reserved for the no-data category, where urgency cannot be judged.
// @Description Nap urgency: none, maybe, yes, or unknown when no data exists.
type NapPriority string

const (
	PriorityNone    NapPriority = "none"
	PriorityMaybe   NapPriority = "maybe"
	PriorityYes     NapPriority = "yes"
	PriorityUnknown NapPriority = "unknown"
)

// QualityLabel is a coarse rendering of the provider's 0-100 quality score.
type QualityLabel string

const (
	QualityExcellent QualityLabel = "excellent"
	QualityGood      QualityLabel = "good"
	QualityFair      QualityLabel = "fair"
	QualityPoor      QualityLabel = "poor"
	QualityUnknown   QualityLabel = "unknown"
)

// SleepMetrics is the duration breakdown passed through to callers, in minutes.
// @Description Duration breakdown of the selected sleep session, in minutes.
type SleepMetrics struct {
	TotalMinutes int `json:"total_minutes" example:"432"`
	DeepMinutes  int `json:"deep_minutes" example:"78"`
	RemMinutes   int `json:"rem_minutes" example:"95"`
	LightMinutes int `json:"light_minutes" example:"259"`
	// Efficiency is the provider's 0-100 sleep efficiency, 0 when unreported.
	Efficiency int `json:"efficiency" example:"91"`
}

// Advisory is the engine's output. NeedsNap is always a pure function of
// (SleepCategory, TimeWindow, HasNappedToday) and is never mutated after
// construction.
// @Description Computed nap advisory for the subject.
type Advisory struct {
	NeedsNap       bool          `json:"needs_nap" example:"true"`
	NapPriority    NapPriority   `json:"nap_priority" example:"yes"`
	SleepHours     float64       `json:"sleep_hours" example:"5.5"`
	SleepCategory  SleepCategory `json:"sleep_category" example:"struggling"`
	TimeWindow     TimeWindow    `json:"time_window" example:"nap"`
	HasNappedToday bool          `json:"has_napped_today" example:"false"`
	Message        string        `json:"message"`
	Recommendation string        `json:"recommendation"`
	QualityLabel   QualityLabel  `json:"quality_label" example:"good"`
	Metrics        SleepMetrics  `json:"metrics"`
	GeneratedAt    time.Time     `json:"generated_at"`
}

// RoundHours converts seconds to hours with one fractional digit, the
// precision the advisory exposes.
func RoundHours(totalSeconds int) float64 {
	return math.Round(float64(totalSeconds)/3600*10) / 10
}

// LabelQuality maps an optional 0-100 quality score to a display label.
func LabelQuality(score *int) QualityLabel {
	if score == nil {
		return QualityUnknown
	}
	switch {
	case *score >= 85:
		return QualityExcellent
	case *score >= 70:
		return QualityGood
	case *score >= 50:
		return QualityFair
	default:
		return QualityPoor
	}
}
