package present

import (
	"cloud.google.com/go/civil"
	"fmt"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"
	"io"
	"time"
)

const productID = "-//promo-schedule//Campaign Schedule//EN"

var rruleWeekdays = map[schedule.Weekday]rrule.Weekday{
	schedule.Sunday:    rrule.SU,
	schedule.Monday:    rrule.MO,
	schedule.Tuesday:   rrule.TU,
	schedule.Wednesday: rrule.WE,
	schedule.Thursday:  rrule.TH,
	schedule.Friday:    rrule.FR,
	schedule.Saturday:  rrule.SA,
}

// firstOccurrence is the first date on or after start whose weekday is in days
func firstOccurrence(start civil.Date, days schedule.WeekdaySet) (civil.Date, bool) {
	weekday := schedule.WeekdayOf(start.In(time.UTC))
	for i := 0; i < 7; i++ {
		if days.Contains(weekday.Add(i)) {
			return start.AddDays(i), true
		}
	}
	return civil.Date{}, false
}

func windowRule(w model.CampaignWindow, until time.Time) *rrule.ROption {
	var days []rrule.Weekday
	for _, d := range w.Weekdays.Days() {
		days = append(days, rruleWeekdays[d])
	}
	return &rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: days,
		Until:     until,
	}
}

// Calendar builds one weekly recurring event per window of the campaign.
// DTSTART and DTEND carry a TZID of loc so that BYDAY expands on local weekdays,
// loc must be a named zone (not time.Local or a fixed zone).
func Calendar(c model.Campaign, loc *time.Location, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	startDate := civil.DateOf(c.StartDate)
	endDate := civil.DateOf(c.EndDate)
	until := schedule.NewTimeOfDay(23, 59).On(endDate, loc).Add(59 * time.Second).UTC()

	for i, w := range c.Windows {
		first, ok := firstOccurrence(startDate, w.Weekdays)
		if !ok || first.After(endDate) {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%d@promo-schedule", c.ID, i))
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp.UTC())
		event.Props.SetText(ical.PropSummary, fmt.Sprintf("%s (%s)", c.Type.String(), w.Weekdays.String()))
		event.Props.SetDateTime(ical.PropDateTimeStart, w.StartTime.On(first, loc))
		event.Props.SetDateTime(ical.PropDateTimeEnd, w.EndTime.On(first, loc))

		rule := ical.NewProp(ical.PropRecurrenceRule)
		rule.Value = windowRule(w, until).RRuleString()
		event.Props.Set(rule)

		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

// Encode writes the calendar in the text/calendar format
func Encode(w io.Writer, cal *ical.Calendar) error {
	return ical.NewEncoder(w).Encode(cal)
}
