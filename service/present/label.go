package present

import (
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"time"
)

const (
	keyNotStarted     = "status.not_started"
	keyEnded          = "status.ended"
	keyLive           = "status.live"
	keyPendingToday   = "status.pending_today"
	keyWaitingForNext = "status.waiting_for_next"
	keyNoSchedule     = "status.no_schedule"
	keyUnknown        = "status.unknown"
)

var supportedTags = []language.Tag{
	language.English,
	language.Vietnamese,
}

var tagMatcher = language.NewMatcher(supportedTags)

var messages = map[language.Tag]map[string]string{
	language.English: {
		keyNotStarted:     "Not started",
		keyEnded:          "Ended",
		keyLive:           "Live until %s",
		keyPendingToday:   "Opens today at %s until %s",
		keyWaitingForNext: "Next window %s, %s-%s",
		keyNoSchedule:     "No schedule",
		keyUnknown:        "Unknown",
	},
	language.Vietnamese: {
		keyNotStarted:     "Chưa bắt đầu",
		keyEnded:          "Đã kết thúc",
		keyLive:           "Đang diễn ra đến %s",
		keyPendingToday:   "Mở hôm nay lúc %s đến %s",
		keyWaitingForNext: "Khung giờ tiếp theo %s, %s-%s",
		keyNoSchedule:     "Không có lịch",
		keyUnknown:        "Không xác định",
	},
}

var dateLayouts = map[language.Tag]string{
	language.English:    "Mon 02 Jan",
	language.Vietnamese: "02/01/2006",
}

const clockLayout = "15:04"

var labelCatalog = mustBuildCatalog()

func mustBuildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range messages {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Printer renders statuses in one of the supported languages
type Printer struct {
	tag     language.Tag
	printer *message.Printer
}

// NewPrinter matches the Accept-Language header value, English when nothing matches
func NewPrinter(acceptLanguage string) *Printer {
	tag := language.English
	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
		_, index, confidence := tagMatcher.Match(tags...)
		if confidence != language.No {
			tag = supportedTags[index]
		}
	}
	return &Printer{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(labelCatalog)),
	}
}

// Language ...
func (p *Printer) Language() language.Tag {
	return p.tag
}

func (p *Printer) sprintf(key string, args ...interface{}) string {
	return p.printer.Sprintf(key, args...)
}

// Label is a short human readable text of the status
func (p *Printer) Label(s schedule.Status) string {
	switch s.Kind {
	case schedule.StatusNotStarted:
		return p.sprintf(keyNotStarted)
	case schedule.StatusEnded:
		return p.sprintf(keyEnded)
	case schedule.StatusLive:
		return p.sprintf(keyLive, s.ClosesAt.Format(clockLayout))
	case schedule.StatusPendingToday:
		return p.sprintf(keyPendingToday, s.OpensAt.Format(clockLayout), s.ClosesAt.Format(clockLayout))
	case schedule.StatusWaitingForNext:
		return p.sprintf(keyWaitingForNext,
			p.formatDate(s.OpensAt), s.OpensAt.Format(clockLayout), s.ClosesAt.Format(clockLayout))
	case schedule.StatusNoSchedule:
		return p.sprintf(keyNoSchedule)
	default:
		return p.sprintf(keyUnknown)
	}
}

func (p *Printer) formatDate(t time.Time) string {
	return t.Format(dateLayouts[p.tag])
}
