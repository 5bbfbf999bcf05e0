package progression

import (
	"time"

	"github.com/2beens/fitquest/internal/datemath"
)

// a streak survives one calendar day boundary, a full day without activity breaks it
const lapseAfterDays = 2

type StreakState struct {
	Current int `json:"streak"`
	Best    int `json:"bestStreak"`
	// LastActivityDate is the date key of the last logged activity, empty if none yet
	LastActivityDate string `json:"lastLoggedDate,omitempty"`
}

type StreakTracker struct {
	calendar *datemath.Calendar
}

func NewStreakTracker(calendar *datemath.Calendar) *StreakTracker {
	return &StreakTracker{
		calendar: calendar,
	}
}

// ShouldIncrement is true for the first activity logged on a new calendar day.
func (t *StreakTracker) ShouldIncrement(lastActivityDate string, today time.Time) bool {
	return lastActivityDate != t.calendar.DateKey(today)
}

// OnActivityLogged counts today in the streak, repeat logging on the same day is a no-op.
func (t *StreakTracker) OnActivityLogged(state StreakState, today time.Time) StreakState {
	if !t.ShouldIncrement(state.LastActivityDate, today) {
		return state
	}

	state.Current++
	if state.Current > state.Best {
		state.Best = state.Current
	}
	state.LastActivityDate = t.calendar.DateKey(today)
	return state
}

// CheckForLapse zeroes the current streak once a whole calendar day passed without activity.
// Best streak is kept. Safe to run any number of times.
func (t *StreakTracker) CheckForLapse(state StreakState, today time.Time) (StreakState, error) {
	if state.LastActivityDate == "" || state.Current == 0 {
		return state, nil
	}

	last, err := t.calendar.ParseDateKey(state.LastActivityDate)
	if err != nil {
		return state, err
	}

	if t.calendar.DaysBetween(last, today) >= lapseAfterDays {
		state.Current = 0
	}
	return state, nil
}

// Lapsed reports whether CheckForLapse reset the streak between before and after.
func Lapsed(before, after StreakState) bool {
	return before.Current > 0 && after.Current == 0
}
