package service

import (
	"time"

	"github.com/emily-flambe/naptime/internal/domain"
)

const (
	// Nap detection bounds: sessions starting in [11:00, 19:00) local count
	// as daytime rest even when the provider tags them as ordinary sleep.
	// Sessions starting in nighttime hours are never naps.
	napStartHourMin = 11
	napStartHourMax = 19
)

// SelectMainSleep picks the session that represents "last night" out of a
// multi-day window of provider sessions. Preference order:
//
//  1. a MAIN session dated today (overnight sleep is dated to the day it ends),
//  2. the most recent MAIN session anywhere in the window,
//  3. the first non-NAP session,
//  4. the first session at all.
//
// Returns nil when no session qualifies. Total over empty and malformed
// input; callers treat nil as the no-data category, never as an error.
func SelectMainSleep(sessions []domain.SleepSession, today string) *domain.SleepSession {
	if len(sessions) == 0 {
		return nil
	}

	for i := range sessions {
		if sessions[i].Day == today && sessions[i].Type == domain.SessionTypeMain {
			return &sessions[i]
		}
	}

	// Most recent main sleep anywhere in the window.
	var latestMain *domain.SleepSession
	for i := range sessions {
		if sessions[i].Type != domain.SessionTypeMain {
			continue
		}
		if latestMain == nil || sessions[i].StartAt.After(latestMain.StartAt) {
			latestMain = &sessions[i]
		}
	}
	if latestMain != nil {
		return latestMain
	}

	for i := range sessions {
		if sessions[i].Type != domain.SessionTypeNap {
			return &sessions[i]
		}
	}

	return &sessions[0]
}

// DetectNapToday reports whether a qualifying daytime rest already happened
// today. A session counts when it is dated today and either the provider
// tagged it as a nap, or it started inside the daytime nap bounds without
// being main sleep. The second clause catches sessions the provider mis-tags
// as ordinary sleep but which are clearly daytime rest.
func DetectNapToday(sessions []domain.SleepSession, today string, loc *time.Location) bool {
	for i := range sessions {
		s := &sessions[i]
		if s.Day != today {
			continue
		}
		if s.Type == domain.SessionTypeNap {
			return true
		}
		if s.Type == domain.SessionTypeMain {
			continue
		}
		hour := s.LocalStartHour(loc)
		if hour >= napStartHourMin && hour < napStartHourMax {
			return true
		}
	}
	return false
}
