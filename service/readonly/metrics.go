package readonly

import (
	"errors"
	"github.com/QuangTung97/promo-schedule/pkg/leasestore"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultNotFound = "not_found"
	resultError    = "error"
)

// Metrics of the evaluation path
type Metrics struct {
	evaluations *prometheus.CounterVec
}

// NewMetrics ...
func NewMetrics() *Metrics {
	return &Metrics{
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campaign_schedule_evaluations_total",
			Help: "Number of campaign evaluations by resulting status",
		}, []string{"status"}),
	}
}

// Register registers the evaluation counter and the lease store counters
func (m *Metrics) Register(reg prometheus.Registerer, storeProvider leasestore.Provider) error {
	collectors := []prometheus.Collector{
		m.evaluations,
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "campaign_schedule_store_access_total",
			Help: "Number of memcached lookups",
		}, func() float64 {
			return float64(storeProvider.StoreAccessCount())
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "campaign_schedule_store_miss_total",
			Help: "Number of memcached lookups that were not a hit",
		}, func() float64 {
			return float64(storeProvider.StoreMissCount())
		}),
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) observe(status schedule.Status, err error) {
	if m == nil {
		return
	}
	label := status.Kind.String()
	if errors.Is(err, ErrCampaignNotFound) {
		label = resultNotFound
	} else if err != nil {
		label = resultError
	}
	m.evaluations.WithLabelValues(label).Inc()
}
