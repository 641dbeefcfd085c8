package service

import "github.com/emily-flambe/naptime/internal/domain"

// messagePair is one user-facing advisory text entry. Entries are fixed
// copy: no interpolation, no derivation from other fields.
type messagePair struct {
	message        string
	recommendation string
}

// Override copy, checked before the table (see Resolve).
var (
	asleepPair = messagePair{
		message:        "You should be asleep right now.",
		recommendation: "Put the phone down and go back to bed. Tomorrow's nap forecast depends on it.",
	}
	alreadyNappedPair = messagePair{
		message:        "You already got your nap in today. Nice work.",
		recommendation: "Another nap would be redundant and could push bedtime later. Ride it out until tonight.",
	}
)

// windowIndex and categoryIndex give the enums fixed positions in the
// message table so a missing entry is a compile-time hole rather than a
// silent string-key miss.
func windowIndex(w domain.TimeWindow) int {
	switch w {
	case domain.WindowOvernightSleep:
		return 0
	case domain.WindowPreNap:
		return 1
	case domain.WindowNap:
		return 2
	default:
		return 3
	}
}

func categoryIndex(c domain.SleepCategory) int {
	switch c {
	case domain.CategoryNoData:
		return 0
	case domain.CategorySeverelyDeprived:
		return 1
	case domain.CategoryStruggling:
		return 2
	case domain.CategorySufficient:
		return 3
	default:
		return 4
	}
}

// messageTable holds one entry per (window, category) pair. The overnight
// row exists so every combination is defined even though the overnight
// override normally short-circuits before the lookup.
var messageTable = [4][5]messagePair{
	// overnight_sleep: one fixed pair for the whole row. The overnight
	// override always wins, whatever the category says.
	{asleepPair, asleepPair, asleepPair, asleepPair, asleepPair},
	// pre_nap
	{
		{"No sleep data for last night yet.", "The tracker probably hasn't synced. Check again later; assume a normal morning until then."},
		{"Rough night: well under four hours of sleep.", "Hold on until the nap window opens at 2pm, then take a real nap. Coffee is a bridge, not a fix."},
		{"Short night: you got less sleep than you need.", "You can power through the morning. If it catches up with you, the nap window opens at 2pm."},
		{"You slept well last night.", "No nap needed. Enjoy the morning with a clear head."},
		{"You slept a lot last night, possibly too much.", "Skip the morning coffee refill and get moving; long sleeps can leave you groggier than short ones."},
	},
	// nap
	{
		{"No sleep data for last night.", "Can't judge nap urgency without data. Nap if you feel like it; it's the right time of day for one."},
		{"You badly need a nap.", "This is the window. 20 to 90 minutes, dark room, phone elsewhere. Go."},
		{"A nap would do you good right now.", "You're inside the nap window; 20 to 30 minutes now beats dragging through the evening."},
		{"You're well rested; a nap is optional.", "If you nap anyway, keep it under 20 minutes so it doesn't dent tonight's sleep."},
		{"You may be oversleeping; a short nap could still reset you.", "Keep it brief and set an alarm. The goal is recalibration, not a second night."},
	},
	// post_nap
	{
		{"No sleep data for last night.", "The nap window has passed anyway. Aim for an early, solid bedtime tonight."},
		{"You're running on empty and the nap window has closed.", "Napping now would wreck tonight. Wind down early and protect a full night's sleep."},
		{"You're short on sleep, but it's too late for a nap.", "Skip the late nap; go to bed earlier than usual instead."},
		{"You're in good shape for the evening.", "Keep the evening calm and hit your usual bedtime."},
		{"Long sleep last night; no nap needed this late.", "Resist dozing on the couch. A normal bedtime will straighten out the rhythm."},
	},
}
