package present

import (
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
	"testing"
	"time"
)

var testLoc = time.FixedZone("ICT", 7*3600)

func newInstant(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, testLoc)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewPrinter__Language(t *testing.T) {
	table := []struct {
		name   string
		header string
		tag    language.Tag
	}{
		{name: "empty", header: "", tag: language.English},
		{name: "english", header: "en-US,en;q=0.9", tag: language.English},
		{name: "vietnamese", header: "vi-VN,vi;q=0.9,en;q=0.8", tag: language.Vietnamese},
		{name: "unsupported", header: "fr-FR", tag: language.English},
		{name: "invalid", header: "!!!", tag: language.English},
	}
	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			assert.Equal(t, e.tag, NewPrinter(e.header).Language())
		})
	}
}

func TestPrinter_Label__English(t *testing.T) {
	p := NewPrinter("en")

	assert.Equal(t, "Not started", p.Label(schedule.Status{Kind: schedule.StatusNotStarted}))
	assert.Equal(t, "Ended", p.Label(schedule.Status{Kind: schedule.StatusEnded}))
	assert.Equal(t, "No schedule", p.Label(schedule.Status{Kind: schedule.StatusNoSchedule}))

	assert.Equal(t, "Live until 17:00", p.Label(schedule.Status{
		Kind:     schedule.StatusLive,
		ClosesAt: newInstant("2022-05-16 17:00"),
	}))

	assert.Equal(t, "Opens today at 09:00 until 17:00", p.Label(schedule.Status{
		Kind:     schedule.StatusPendingToday,
		OpensAt:  newInstant("2022-05-16 09:00"),
		ClosesAt: newInstant("2022-05-16 17:00"),
	}))

	assert.Equal(t, "Next window Mon 16 May, 09:00-10:00", p.Label(schedule.Status{
		Kind:     schedule.StatusWaitingForNext,
		OpensAt:  newInstant("2022-05-16 09:00"),
		ClosesAt: newInstant("2022-05-16 10:00"),
	}))

	assert.Equal(t, "Unknown", p.Label(schedule.Status{}))
}

func TestPrinter_Label__Vietnamese(t *testing.T) {
	p := NewPrinter("vi")

	assert.Equal(t, "Chưa bắt đầu", p.Label(schedule.Status{Kind: schedule.StatusNotStarted}))
	assert.Equal(t, "Đang diễn ra đến 17:00", p.Label(schedule.Status{
		Kind:     schedule.StatusLive,
		ClosesAt: newInstant("2022-05-16 17:00"),
	}))
	assert.Equal(t, "Khung giờ tiếp theo 16/05/2022, 09:00-10:00", p.Label(schedule.Status{
		Kind:     schedule.StatusWaitingForNext,
		OpensAt:  newInstant("2022-05-16 09:00"),
		ClosesAt: newInstant("2022-05-16 10:00"),
	}))
}
