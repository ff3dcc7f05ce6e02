package schedule

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// TimeOfDay is a wall-clock time of day in minutes since midnight
type TimeOfDay int

// MinutesPerDay ...
const MinutesPerDay = 24 * 60

// NewTimeOfDay ...
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM" in 24-hour format
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: want HH:MM", s)
	}
	return NewTimeOfDay(t.Hour(), t.Minute()), nil
}

// Hour ...
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute ...
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// Valid ...
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// String formats as HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// On returns the instant at this wall-clock time on the given date in loc
func (t TimeOfDay) On(date civil.Date, loc *time.Location) time.Time {
	return time.Date(date.Year, date.Month, date.Day, t.Hour(), t.Minute(), 0, 0, loc)
}

// Window is a weekly recurring interval. Start must be before End,
// windows crossing midnight are not supported.
type Window struct {
	Weekdays WeekdaySet
	Start    TimeOfDay
	End      TimeOfDay
}

// Valid ...
func (w Window) Valid() bool {
	return !w.Weekdays.Empty() && w.Start.Valid() && w.End.Valid() && w.Start < w.End
}

// String ...
func (w Window) String() string {
	return fmt.Sprintf("%s %s-%s", w.Weekdays, w.Start, w.End)
}
