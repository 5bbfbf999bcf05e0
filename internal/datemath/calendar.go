package datemath

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// KeyLayout is the single date key format used by every date-indexed structure.
const KeyLayout = "2006-01-02"

const DefaultTimezone = "Europe/London"

const secondsPerDay = 24 * 60 * 60

var ErrInvalidDateInput = errors.New("invalid date input")

// Calendar does day-granular arithmetic in one fixed reference timezone,
// so that two instants on the same local day always map to the same day.
type Calendar struct {
	location *time.Location
}

func NewCalendar(location *time.Location) *Calendar {
	if location == nil {
		location = time.UTC
	}
	return &Calendar{
		location: location,
	}
}

// NewCalendarForTimezone loads the IANA timezone by name, empty name falls back to DefaultTimezone.
func NewCalendarForTimezone(timezone string) (*Calendar, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load location [%s]: %w", timezone, err)
	}
	return NewCalendar(location), nil
}

func (c *Calendar) Location() *time.Location {
	return c.location
}

// Today returns the local midnight of the day now falls on.
func (c *Calendar) Today(now time.Time) time.Time {
	return c.startOfDay(now)
}

// DaysBetween returns the number of calendar days from a to b (negative if b is before a).
// Time-of-day components are ignored.
func (c *Calendar) DaysBetween(a, b time.Time) int {
	ay, am, ad := a.In(c.location).Date()
	by, bm, bd := b.In(c.location).Date()
	// UTC days are always 24h long, so DST transitions in the local zone do not matter here.
	// Unix seconds, time.Duration overflows for spans over ~292 years.
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / secondsPerDay)
}

// AddDays returns the local midnight n days after t.
func (c *Calendar) AddDays(t time.Time, n int) time.Time {
	y, m, d := t.In(c.location).Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, c.location)
}

func (c *Calendar) DateKey(t time.Time) string {
	return t.In(c.location).Format(KeyLayout)
}

// ParseDateKey accepts a YYYY-MM-DD key or an RFC3339 timestamp and returns
// the local midnight of that calendar day.
func (c *Calendar) ParseDateKey(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDateInput)
	}

	if t, err := time.ParseInLocation(KeyLayout, s, c.location); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: [%s]", ErrInvalidDateInput, s)
	}
	return c.startOfDay(t), nil
}

func (c *Calendar) startOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.location)
}
