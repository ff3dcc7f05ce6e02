package model

import (
	"cloud.google.com/go/civil"
	"fmt"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/shopspring/decimal"
	"strings"
	"time"
)

// Campaign ...
type Campaign struct {
	ID   string       `db:"id" json:"id"`
	Type CampaignType `db:"type" json:"type"`

	StartDate time.Time `db:"start_date" json:"startDate"`
	EndDate   time.Time `db:"end_date" json:"endDate"`

	BudgetMax decimal.NullDecimal `db:"budget_max" json:"budgetMax"`
	Version   int64               `db:"version" json:"version"`

	Windows []CampaignWindow `db:"-" json:"windows"`
}

// CampaignWindow is one weekly window of a campaign, Seq keeps the declaration order
type CampaignWindow struct {
	CampaignID string `db:"campaign_id" json:"-"`
	Seq        int    `db:"seq" json:"seq"`

	Weekdays  schedule.WeekdaySet `db:"weekdays" json:"weekdays"`
	StartTime schedule.TimeOfDay  `db:"start_minute" json:"startMinute"`
	EndTime   schedule.TimeOfDay  `db:"end_minute" json:"endMinute"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool     `json:"valid"`
	Campaign Campaign `json:"campaign"`
}

// CampaignType ...
type CampaignType int

const (
	// CampaignTypeCostPerOrder ...
	CampaignTypeCostPerOrder CampaignType = 1

	// CampaignTypeCostPerClick ...
	CampaignTypeCostPerClick CampaignType = 2

	// CampaignTypeBuyOneGetOne ...
	CampaignTypeBuyOneGetOne CampaignType = 3
)

// CampaignTypes in display order
var CampaignTypes = []CampaignType{
	CampaignTypeCostPerOrder,
	CampaignTypeCostPerClick,
	CampaignTypeBuyOneGetOne,
}

var campaignTypeNames = map[CampaignType][2]string{
	CampaignTypeCostPerOrder: {"Cost per Order", "cost_per_order"},
	CampaignTypeCostPerClick: {"Cost per Click", "cost_per_click"},
	CampaignTypeBuyOneGetOne: {"Buy One Get One", "buy_one_get_one"},
}

// String returns the display name
func (t CampaignType) String() string {
	names, ok := campaignTypeNames[t]
	if !ok {
		return fmt.Sprintf("CampaignType(%d)", int(t))
	}
	return names[0]
}

// Key returns the snake_case name
func (t CampaignType) Key() string {
	return campaignTypeNames[t][1]
}

// ParseCampaignType accepts the display name or the snake_case key, case-insensitive
func ParseCampaignType(s string) (CampaignType, error) {
	s = strings.TrimSpace(s)
	for _, t := range CampaignTypes {
		names := campaignTypeNames[t]
		if strings.EqualFold(s, names[0]) || strings.EqualFold(s, names[1]) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown campaign type: %q", s)
}

// scheduleWindows keeps the declaration order
func (c Campaign) scheduleWindows() []schedule.Window {
	if len(c.Windows) == 0 {
		return nil
	}
	result := make([]schedule.Window, 0, len(c.Windows))
	for _, w := range c.Windows {
		result = append(result, schedule.Window{
			Weekdays: w.Weekdays,
			Start:    w.StartTime,
			End:      w.EndTime,
		})
	}
	return result
}

// ToSchedule returns the view used by the schedule evaluator
func (c Campaign) ToSchedule() schedule.Campaign {
	return schedule.Campaign{
		ID:        c.ID,
		StartDate: civil.DateOf(c.StartDate),
		EndDate:   civil.DateOf(c.EndDate),
		Windows:   c.scheduleWindows(),
	}
}

// NewDate returns the UTC midnight the DATE columns are stored as
func NewDate(d civil.Date) time.Time {
	return d.In(time.UTC)
}

// CloneWindows ...
func (c Campaign) CloneWindows() Campaign {
	if c.Windows != nil {
		c.Windows = append([]CampaignWindow(nil), c.Windows...)
	}
	return c
}
