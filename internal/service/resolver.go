package service

import (
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
)

// napDecision derives the need/priority pair from the sufficiency category
// alone. Struggling only warrants a nap inside the nap window; severe
// deprivation and oversleep warrant one in any non-sleep window.
func napDecision(category domain.SleepCategory, window domain.TimeWindow) (bool, domain.NapPriority) {
	if window == domain.WindowOvernightSleep {
		return false, domain.PriorityNone
	}
	switch category {
	case domain.CategorySeverelyDeprived, domain.CategoryOversleep:
		return true, domain.PriorityYes
	case domain.CategoryStruggling:
		if window == domain.WindowNap {
			return true, domain.PriorityMaybe
		}
		return false, domain.PriorityNone
	case domain.CategoryNoData:
		return false, domain.PriorityUnknown
	default:
		return false, domain.PriorityNone
	}
}

// Resolve combines the three classifications and the already-napped flag
// into the final advisory. Precedence, first match wins:
//
//  1. overnight window: fixed "should be asleep" copy, never a nap,
//  2. already napped: fixed redundancy copy, never a nap,
//  3. the (window, category) message table plus category-derived priority.
//
// The function is total: every combination of the 4x5 inputs plus the two
// overrides produces a defined advisory.
func Resolve(
	category domain.SleepCategory,
	window domain.TimeWindow,
	hasNapped bool,
	sleepSeconds int,
	metrics domain.SleepMetrics,
	quality domain.QualityLabel,
	now time.Time,
) *domain.Advisory {
	adv := &domain.Advisory{
		SleepHours:     domain.RoundHours(sleepSeconds),
		SleepCategory:  category,
		TimeWindow:     window,
		HasNappedToday: hasNapped,
		QualityLabel:   quality,
		Metrics:        metrics,
		GeneratedAt:    now,
	}

	switch {
	case window == domain.WindowOvernightSleep:
		adv.NeedsNap = false
		adv.NapPriority = domain.PriorityNone
		adv.Message = asleepPair.message
		adv.Recommendation = asleepPair.recommendation
	case hasNapped:
		adv.NeedsNap = false
		adv.NapPriority = domain.PriorityNone
		adv.Message = alreadyNappedPair.message
		adv.Recommendation = alreadyNappedPair.recommendation
	default:
		pair := messageTable[windowIndex(window)][categoryIndex(category)]
		adv.NeedsNap, adv.NapPriority = napDecision(category, window)
		adv.Message = pair.message
		adv.Recommendation = pair.recommendation
	}

	return adv
}
