package service

import "github.com/emily-flambe/naptime/internal/domain"

const (
	// Time window boundaries, local civil hours. Half-open on the right:
	// hour 17 is post-nap, hour 14 is nap.
	overnightStartHour = 22
	morningStartHour   = 7
	napStartHour       = 14
	napEndHour         = 17

	// Sleep sufficiency thresholds in seconds.
	severeSleepSeconds    = 4 * 3600
	strugglingSleepMax    = 6 * 3600
	sufficientSleepMax    = 9 * 3600
)

// ClassifyTimeWindow maps a local wall-clock hour (0-23) to a named window.
// Always computed against the current instant; the result is never cached.
func ClassifyTimeWindow(localHour int) domain.TimeWindow {
	switch {
	case localHour >= overnightStartHour || localHour < morningStartHour:
		return domain.WindowOvernightSleep
	case localHour < napStartHour:
		return domain.WindowPreNap
	case localHour < napEndHour:
		return domain.WindowNap
	default:
		return domain.WindowPostNap
	}
}

// ClassifySleep maps last night's total sleep duration to a sufficiency
// category. Exactly zero seconds means the device has not synced and is
// indistinguishable, for advisory purposes, from having no sessions at all.
// 6h and 9h exactly are both sufficient; anything over 9h is oversleep.
func ClassifySleep(totalSeconds int) domain.SleepCategory {
	switch {
	case totalSeconds <= 0:
		return domain.CategoryNoData
	case totalSeconds < severeSleepSeconds:
		return domain.CategorySeverelyDeprived
	case totalSeconds < strugglingSleepMax:
		return domain.CategoryStruggling
	case totalSeconds <= sufficientSleepMax:
		return domain.CategorySufficient
	default:
		return domain.CategoryOversleep
	}
}
