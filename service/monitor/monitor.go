package monitor

import (
	"context"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"sync"
	"time"
)

//go:generate moq -out monitor_mocks_test.go . CampaignSource

// CampaignSource is reloaded before every refresh
type CampaignSource interface {
	Reload(ctx context.Context) error
	List() []model.Campaign
}

// Transition of a campaign between two refreshes
type Transition struct {
	CampaignID string
	From       schedule.StatusKind
	To         schedule.StatusKind
	At         time.Time
}

var statusKinds = []schedule.StatusKind{
	schedule.StatusNotStarted,
	schedule.StatusEnded,
	schedule.StatusPendingToday,
	schedule.StatusLive,
	schedule.StatusWaitingForNext,
	schedule.StatusNoSchedule,
}

// Monitor periodically evaluates every campaign
type Monitor struct {
	source CampaignSource
	loc    *time.Location
	spec   string
	logger *zap.Logger
	now    func() time.Time

	gauge *prometheus.GaugeVec
	cron  *cron.Cron

	mut      sync.Mutex
	previous map[string]schedule.StatusKind
}

// New creates a monitor running on the cron spec in loc
func New(source CampaignSource, loc *time.Location, spec string, logger *zap.Logger) *Monitor {
	return &Monitor{
		source: source,
		loc:    loc,
		spec:   spec,
		logger: logger,
		now:    time.Now,

		gauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "campaign_schedule_campaigns",
			Help: "Number of campaigns by activation status",
		}, []string{"status"}),
		cron: cron.New(cron.WithLocation(loc)),

		previous: map[string]schedule.StatusKind{},
	}
}

// Collector ...
func (m *Monitor) Collector() prometheus.Collector {
	return m.gauge
}

// Refresh reloads the campaigns, updates the gauge and returns the status transitions
func (m *Monitor) Refresh(ctx context.Context) ([]Transition, error) {
	if err := m.source.Reload(ctx); err != nil {
		return nil, err
	}

	now := m.now().In(m.loc)
	campaigns := m.source.List()

	counts := map[schedule.StatusKind]int{}
	current := make(map[string]schedule.StatusKind, len(campaigns))
	for _, c := range campaigns {
		kind := schedule.Evaluate(c.ToSchedule(), now).Kind
		counts[kind]++
		current[c.ID] = kind
	}

	for _, kind := range statusKinds {
		m.gauge.WithLabelValues(kind.String()).Set(float64(counts[kind]))
	}

	m.mut.Lock()
	defer m.mut.Unlock()

	var transitions []Transition
	for _, c := range campaigns {
		prev, ok := m.previous[c.ID]
		if !ok || prev == current[c.ID] {
			continue
		}
		t := Transition{
			CampaignID: c.ID,
			From:       prev,
			To:         current[c.ID],
			At:         now,
		}
		transitions = append(transitions, t)

		m.logger.Info("Campaign status changed",
			zap.String("campaignID", t.CampaignID),
			zap.Stringer("from", t.From),
			zap.Stringer("to", t.To),
			zap.Time("at", t.At),
		)
	}
	m.previous = current

	return transitions, nil
}

func (m *Monitor) refreshJob() {
	if _, err := m.Refresh(context.Background()); err != nil {
		m.logger.Error("Refresh campaign statuses", zap.Error(err))
	}
}

// Start runs a first refresh then schedules the next ones
func (m *Monitor) Start(ctx context.Context) error {
	if _, err := m.Refresh(ctx); err != nil {
		return err
	}
	if _, err := m.cron.AddFunc(m.spec, m.refreshJob); err != nil {
		return err
	}
	m.cron.Start()
	m.logger.Info("Monitor started", zap.String("spec", m.spec), zap.String("location", m.loc.String()))
	return nil
}

// Stop waits for a running refresh to complete
func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
	m.logger.Info("Monitor stopped")
}
