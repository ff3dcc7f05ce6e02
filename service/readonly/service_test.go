package readonly

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/QuangTung97/promo-schedule/repository"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newContext() context.Context {
	return context.Background()
}

var testLoc = time.FixedZone("ICT", 7*3600)

func newInstant(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", s, testLoc)
	if err != nil {
		panic(err)
	}
	return t
}

func newDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// newCampaign01 runs in May 2022, Monday and Wednesday 09:00 to 17:00
func newCampaign01() model.Campaign {
	return model.Campaign{
		ID:        "campaign01",
		Type:      model.CampaignTypeCostPerOrder,
		StartDate: newDate("2022-05-01"),
		EndDate:   newDate("2022-05-31"),
		Version:   1,
		Windows: []model.CampaignWindow{
			{
				CampaignID: "campaign01",
				Weekdays:   schedule.NewWeekdaySet(schedule.Monday, schedule.Wednesday),
				StartTime:  schedule.NewTimeOfDay(9, 0),
				EndTime:    schedule.NewTimeOfDay(17, 0),
			},
		},
	}
}

type serviceTest struct {
	provider     *repository.ProviderMock
	repoProvider *RepositoryProviderMock
	repo         *IRepositoryMock
	metrics      *Metrics

	service *Service
}

func newServiceTest() *serviceTest {
	provider := &repository.ProviderMock{}
	repoProvider := &RepositoryProviderMock{}
	repo := &IRepositoryMock{}

	provider.ReadonlyFunc = func(ctx context.Context) context.Context {
		return ctx
	}
	repoProvider.NewRepoFunc = func() IRepository {
		return repo
	}
	repo.FinishFunc = func() {}

	metrics := NewMetrics()

	return &serviceTest{
		provider:     provider,
		repoProvider: repoProvider,
		repo:         repo,
		metrics:      metrics,
		service:      NewService(provider, repoProvider, metrics),
	}
}

func (s *serviceTest) stubGetCampaign(campaigns ...model.Campaign) {
	s.repo.GetCampaignFunc = func(ctx context.Context, id string) func() (model.NullCampaign, error) {
		return func() (model.NullCampaign, error) {
			for _, c := range campaigns {
				if c.ID == id {
					return model.NullCampaign{Valid: true, Campaign: c}, nil
				}
			}
			return model.NullCampaign{}, nil
		}
	}
}

func TestService_Evaluate__Live(t *testing.T) {
	s := newServiceTest()
	s.stubGetCampaign(newCampaign01())

	// 2022-05-16 is a Monday
	outputs := s.service.Evaluate(newContext(), []Input{
		{CampaignID: "campaign01", ReqTime: newInstant("2022-05-16 10:00")},
	})

	assert.Equal(t, []Output{
		{
			Campaign: newCampaign01(),
			Status: schedule.Status{
				Kind:     schedule.StatusLive,
				ClosesAt: newInstant("2022-05-16 17:00"),
			},
		},
	}, outputs)

	assert.Equal(t, 1, len(s.provider.ReadonlyCalls()))
	assert.Equal(t, 1, len(s.repoProvider.NewRepoCalls()))
	assert.Equal(t, 1, len(s.repo.FinishCalls()))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.evaluations.WithLabelValues("live")))
}

func TestService_Evaluate__Not_Found(t *testing.T) {
	s := newServiceTest()
	s.stubGetCampaign()

	outputs := s.service.Evaluate(newContext(), []Input{
		{CampaignID: "campaign01", ReqTime: newInstant("2022-05-16 10:00")},
	})
	assert.Equal(t, []Output{{Err: ErrCampaignNotFound}}, outputs)
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.evaluations.WithLabelValues("not_found")))
}

func TestService_Evaluate__Repo_Error(t *testing.T) {
	s := newServiceTest()
	s.repo.GetCampaignFunc = func(ctx context.Context, id string) func() (model.NullCampaign, error) {
		return func() (model.NullCampaign, error) {
			return model.NullCampaign{}, errors.New("db error")
		}
	}

	outputs := s.service.Evaluate(newContext(), []Input{
		{CampaignID: "campaign01", ReqTime: newInstant("2022-05-16 10:00")},
	})
	assert.Equal(t, []Output{{Err: errors.New("db error")}}, outputs)
	assert.Equal(t, float64(1), testutil.ToFloat64(s.metrics.evaluations.WithLabelValues("error")))
}

func TestService_Evaluate__All_Fetches_Before_Resolve(t *testing.T) {
	s := newServiceTest()

	var events []string
	s.repo.GetCampaignFunc = func(ctx context.Context, id string) func() (model.NullCampaign, error) {
		events = append(events, "fetch:"+id)
		return func() (model.NullCampaign, error) {
			events = append(events, "resolve:"+id)
			return model.NullCampaign{}, nil
		}
	}

	s.service.Evaluate(newContext(), []Input{
		{CampaignID: "a"},
		{CampaignID: "b"},
		{CampaignID: "c"},
	})

	assert.Equal(t, []string{
		"fetch:a", "fetch:b", "fetch:c",
		"resolve:a", "resolve:b", "resolve:c",
	}, events)
}

func TestService_Evaluate__Multiple_Inputs(t *testing.T) {
	s := newServiceTest()

	campaign02 := newCampaign01()
	campaign02.ID = "campaign02"
	campaign02.Windows = nil

	s.stubGetCampaign(newCampaign01(), campaign02)

	outputs := s.service.Evaluate(newContext(), []Input{
		{CampaignID: "campaign01", ReqTime: newInstant("2022-05-16 08:00")},
		{CampaignID: "campaign02", ReqTime: newInstant("2022-05-16 08:00")},
		{CampaignID: "campaign03", ReqTime: newInstant("2022-05-16 08:00")},
		{CampaignID: "campaign01", ReqTime: newInstant("2022-06-01 08:00")},
		{CampaignID: "campaign01", ReqTime: newInstant("2022-05-17 08:00")},
	})

	assert.Equal(t, 5, len(outputs))

	assert.Equal(t, schedule.Status{
		Kind:     schedule.StatusPendingToday,
		OpensAt:  newInstant("2022-05-16 09:00"),
		ClosesAt: newInstant("2022-05-16 17:00"),
	}, outputs[0].Status)
	assert.Equal(t, sql.NullTime{Valid: true, Time: newInstant("2022-05-16 09:00")}, outputs[0].NextActivation)

	assert.Equal(t, schedule.Status{Kind: schedule.StatusNoSchedule}, outputs[1].Status)
	assert.Equal(t, sql.NullTime{}, outputs[1].NextActivation)

	assert.Equal(t, ErrCampaignNotFound, outputs[2].Err)

	assert.Equal(t, schedule.Status{Kind: schedule.StatusEnded}, outputs[3].Status)

	assert.Equal(t, schedule.Status{
		Kind:     schedule.StatusWaitingForNext,
		OpensAt:  newInstant("2022-05-18 09:00"),
		ClosesAt: newInstant("2022-05-18 17:00"),
	}, outputs[4].Status)
	assert.Equal(t, sql.NullTime{Valid: true, Time: newInstant("2022-05-17 09:00")}, outputs[4].NextActivation)
}

func TestService_Evaluate__Nil_Metrics(t *testing.T) {
	s := newServiceTest()
	s.stubGetCampaign(newCampaign01())
	s.service = NewService(s.provider, s.repoProvider, nil)

	outputs := s.service.Evaluate(newContext(), []Input{
		{CampaignID: "campaign01", ReqTime: newInstant("2022-05-16 10:00")},
	})
	assert.Equal(t, nil, outputs[0].Err)
}
