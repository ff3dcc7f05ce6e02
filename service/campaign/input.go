package campaign

import (
	"cloud.google.com/go/civil"
	"fmt"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"strings"
)

// Input is the raw campaign form
type Input struct {
	Type      string        `json:"type"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
	BudgetMax string        `json:"budgetMax,omitempty"`
	Windows   []WindowInput `json:"windows"`
}

// WindowInput ...
type WindowInput struct {
	Weekdays  []string `json:"weekdays"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
}

// FieldError ...
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func fieldError(field string, format string, args ...interface{}) error {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// FieldErrors returns the field errors combined by Parse, nil if err is not a validation error
func FieldErrors(err error) []*FieldError {
	var result []*FieldError
	for _, e := range multierr.Errors(err) {
		fe, ok := e.(*FieldError)
		if !ok {
			return nil
		}
		result = append(result, fe)
	}
	return result
}

type inputParser struct {
	err error
}

func (p *inputParser) addError(field string, format string, args ...interface{}) {
	p.err = multierr.Append(p.err, fieldError(field, format, args...))
}

func (p *inputParser) parseDate(field string, name string, s string) (civil.Date, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		p.addError(field, "%s is required", name)
		return civil.Date{}, false
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		p.addError(field, "%s must be in format YYYY-MM-DD", name)
		return civil.Date{}, false
	}
	return d, true
}

func (p *inputParser) parseWindow(index int, in WindowInput) (model.CampaignWindow, bool) {
	prefix := fmt.Sprintf("windows[%d]", index)
	valid := true

	var days schedule.WeekdaySet
	for _, s := range in.Weekdays {
		d, err := schedule.ParseWeekday(s)
		if err != nil {
			p.addError(prefix+".weekdays", "%v", err)
			valid = false
			continue
		}
		days = days.With(d)
	}
	if len(in.Weekdays) == 0 {
		p.addError(prefix+".weekdays", "At least one weekday is required")
		valid = false
	}

	parseTime := func(field string, s string) schedule.TimeOfDay {
		if strings.TrimSpace(s) == "" {
			p.addError(prefix+"."+field, "%s is required", field)
			valid = false
			return 0
		}
		t, err := schedule.ParseTimeOfDay(strings.TrimSpace(s))
		if err != nil {
			p.addError(prefix+"."+field, "%v", err)
			valid = false
		}
		return t
	}

	start := parseTime("startTime", in.StartTime)
	end := parseTime("endTime", in.EndTime)
	if !valid {
		return model.CampaignWindow{}, false
	}

	if start >= end {
		p.addError(prefix+".endTime", "End time must be after start time")
		return model.CampaignWindow{}, false
	}

	return model.CampaignWindow{
		Seq:       index,
		Weekdays:  days,
		StartTime: start,
		EndTime:   end,
	}, true
}

// Parse validates the form, returning every invalid field at once
func (in Input) Parse() (model.Campaign, error) {
	p := &inputParser{}
	var c model.Campaign

	if strings.TrimSpace(in.Type) == "" {
		p.addError("type", "Campaign type is required")
	} else if t, err := model.ParseCampaignType(in.Type); err != nil {
		p.addError("type", "%v", err)
	} else {
		c.Type = t
	}

	start, startOK := p.parseDate("startDate", "Start date", in.StartDate)
	end, endOK := p.parseDate("endDate", "End date", in.EndDate)
	if startOK && endOK && start.After(end) {
		p.addError("endDate", "End date must be after start date")
	}
	c.StartDate = model.NewDate(start)
	c.EndDate = model.NewDate(end)

	if s := strings.TrimSpace(in.BudgetMax); s != "" {
		budget, err := decimal.NewFromString(s)
		switch {
		case err != nil:
			p.addError("budgetMax", "Budget must be a decimal number")
		case budget.IsNegative():
			p.addError("budgetMax", "Budget must not be negative")
		default:
			c.BudgetMax = decimal.NewNullDecimal(budget)
		}
	}

	if len(in.Windows) == 0 {
		p.addError("windows", "At least one schedule is required")
	}
	for i, w := range in.Windows {
		window, ok := p.parseWindow(i, w)
		if ok {
			c.Windows = append(c.Windows, window)
		}
	}

	if p.err != nil {
		return model.Campaign{}, p.err
	}
	return c, nil
}

// ToInput converts back to the raw form
func ToInput(c model.Campaign) Input {
	in := Input{
		Type:      c.Type.String(),
		StartDate: c.StartDate.Format("2006-01-02"),
		EndDate:   c.EndDate.Format("2006-01-02"),
	}
	if c.BudgetMax.Valid {
		in.BudgetMax = c.BudgetMax.Decimal.String()
	}
	for _, w := range c.Windows {
		var days []string
		for _, d := range w.Weekdays.Days() {
			days = append(days, d.String())
		}
		in.Windows = append(in.Windows, WindowInput{
			Weekdays:  days,
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		})
	}
	return in
}
