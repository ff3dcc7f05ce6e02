package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a calendar weekday, Sunday = 0 (same origin as time.Weekday)
type Weekday int

const (
	// Sunday ...
	Sunday Weekday = 0
	// Monday ...
	Monday Weekday = 1
	// Tuesday ...
	Tuesday Weekday = 2
	// Wednesday ...
	Wednesday Weekday = 3
	// Thursday ...
	Thursday Weekday = 4
	// Friday ...
	Friday Weekday = 5
	// Saturday ...
	Saturday Weekday = 6
)

const daysPerWeek = 7

// WeekdayOf returns the wall-clock weekday of t in its own location
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// Add moves forward n days, wrapping around the week
func (d Weekday) Add(n int) Weekday {
	return Weekday((int(d) + n%daysPerWeek + daysPerWeek) % daysPerWeek)
}

// Valid ...
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// String ...
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return time.Weekday(d).String()
}

// ParseWeekday accepts full English names and three-letter abbreviations, case-insensitive
func ParseWeekday(s string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for d := Sunday; d <= Saturday; d++ {
		name := strings.ToLower(d.String())
		if key == name || key == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday: %q", s)
}

// WeekdaySet is a bitmask of weekdays, bit d is set when weekday d is included
type WeekdaySet uint8

// NewWeekdaySet ...
func NewWeekdaySet(days ...Weekday) WeekdaySet {
	var s WeekdaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// With returns the set including d
func (s WeekdaySet) With(d Weekday) WeekdaySet {
	if !d.Valid() {
		return s
	}
	return s | 1<<uint(d)
}

// Contains ...
func (s WeekdaySet) Contains(d Weekday) bool {
	if !d.Valid() {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Empty ...
func (s WeekdaySet) Empty() bool {
	return s&allDays == 0
}

const allDays WeekdaySet = 1<<daysPerWeek - 1

// Days returns the weekdays in calendar order starting Sunday
func (s WeekdaySet) Days() []Weekday {
	var days []Weekday
	for d := Sunday; d <= Saturday; d++ {
		if s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// String ...
func (s WeekdaySet) String() string {
	days := s.Days()
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return strings.Join(names, ",")
}
