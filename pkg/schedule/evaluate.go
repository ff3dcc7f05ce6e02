package schedule

import (
	"time"

	"cloud.google.com/go/civil"
)

// Campaign is the part of a campaign the evaluator needs
type Campaign struct {
	ID        string
	StartDate civil.Date
	EndDate   civil.Date
	Windows   []Window
}

// StatusKind ...
type StatusKind int

const (
	// StatusNotStarted when the reference date is before the start date
	StatusNotStarted StatusKind = 1

	// StatusEnded when the reference date is after the end date
	StatusEnded StatusKind = 2

	// StatusPendingToday when today's window has not opened yet
	StatusPendingToday StatusKind = 3

	// StatusLive when the reference instant is inside today's window
	StatusLive StatusKind = 4

	// StatusWaitingForNext when the next window is on a later day
	StatusWaitingForNext StatusKind = 5

	// StatusNoSchedule when no window matches any weekday
	StatusNoSchedule StatusKind = 6
)

// StatusKinds lists every kind in declaration order
var StatusKinds = []StatusKind{
	StatusNotStarted,
	StatusEnded,
	StatusPendingToday,
	StatusLive,
	StatusWaitingForNext,
	StatusNoSchedule,
}

var statusKindNames = map[StatusKind]string{
	StatusNotStarted:     "not_started",
	StatusEnded:          "ended",
	StatusPendingToday:   "pending_today",
	StatusLive:           "live",
	StatusWaitingForNext: "waiting_for_next",
	StatusNoSchedule:     "no_schedule",
}

// String ...
func (k StatusKind) String() string {
	name, ok := statusKindNames[k]
	if !ok {
		return "unknown"
	}
	return name
}

// Status is the activation status of a campaign at a reference instant.
//
// OpensAt is set for PendingToday and WaitingForNext (the next start).
// ClosesAt is set for PendingToday, Live and WaitingForNext (the next end).
type Status struct {
	Kind     StatusKind
	OpensAt  time.Time
	ClosesAt time.Time
}

// NextActivation returns the opening instant of the first window, in declaration order,
// whose start time on the reference date is strictly after ref. Weekdays are not consulted.
// It is not the soonest instant across all windows unless the windows are already sorted.
func NextActivation(windows []Window, ref time.Time) (time.Time, bool) {
	today := civil.DateOf(ref)

	for _, w := range windows {
		opensAt := w.Start.On(today, ref.Location())
		if opensAt.After(ref) {
			return opensAt, true
		}
	}
	return time.Time{}, false
}

// Evaluate classifies the campaign at ref.
// Only the earliest-starting window of a day is considered for that day.
func Evaluate(c Campaign, ref time.Time) Status {
	today := civil.DateOf(ref)
	if today.Before(c.StartDate) {
		return Status{Kind: StatusNotStarted}
	}
	if today.After(c.EndDate) {
		return Status{Kind: StatusEnded}
	}

	loc := ref.Location()
	weekday := WeekdayOf(ref)

	if w, ok := firstWindowOn(c.Windows, weekday); ok {
		opensAt := w.Start.On(today, loc)
		closesAt := w.End.On(today, loc)

		if ref.Before(opensAt) {
			return Status{
				Kind:     StatusPendingToday,
				OpensAt:  opensAt,
				ClosesAt: closesAt,
			}
		}
		if !ref.After(closesAt) {
			return Status{
				Kind:     StatusLive,
				ClosesAt: closesAt,
			}
		}
	}

	for days := 1; days <= daysPerWeek; days++ {
		w, ok := firstWindowOn(c.Windows, weekday.Add(days))
		if !ok {
			continue
		}
		date := today.AddDays(days)
		return Status{
			Kind:     StatusWaitingForNext,
			OpensAt:  w.Start.On(date, loc),
			ClosesAt: w.End.On(date, loc),
		}
	}

	return Status{Kind: StatusNoSchedule}
}

// firstWindowOn returns the earliest-starting window on weekday d, ties keep declaration order
func firstWindowOn(windows []Window, d Weekday) (Window, bool) {
	var first Window
	found := false
	for _, w := range windows {
		if !w.Weekdays.Contains(d) {
			continue
		}
		if !found || w.Start < first.Start {
			first = w
			found = true
		}
	}
	return first, found
}
