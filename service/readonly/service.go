package readonly

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/schedule"
	"github.com/QuangTung97/promo-schedule/repository"
	"time"
)

//go:generate otelwrap --out service_wrappers.go . IService
//go:generate moq -out service_mocks_test.go . IService

// IService ...
type IService interface {
	Evaluate(ctx context.Context, inputs []Input) []Output
}

// Input ...
type Input struct {
	CampaignID string
	ReqTime    time.Time
}

// Output ...
type Output struct {
	Campaign       model.Campaign
	Status         schedule.Status
	NextActivation sql.NullTime
	Err            error
}

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// Service ...
type Service struct {
	provider     repository.Provider
	repoProvider RepositoryProvider
	metrics      *Metrics
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider, repoProvider RepositoryProvider, metrics *Metrics,
) *Service {
	return &Service{
		provider:     provider,
		repoProvider: repoProvider,
		metrics:      metrics,
	}
}

type evaluateState struct {
	repo  IRepository
	ctx   context.Context
	input Input

	getCampaign func() (model.NullCampaign, error)

	campaign model.Campaign
	status   schedule.Status
	next     sql.NullTime

	err error
}

func (s *evaluateState) setError(err error) {
	s.err = err
}

func (s *evaluateState) doNext(fn func()) {
	if s.err != nil {
		return
	}
	fn()
}

func (s *evaluateState) fetchCampaign() {
	s.getCampaign = s.repo.GetCampaign(s.ctx, s.input.CampaignID)
}

func (s *evaluateState) handleCampaign() {
	nullCampaign, err := s.getCampaign()
	if err != nil {
		s.setError(err)
		return
	}

	if !nullCampaign.Valid {
		s.setError(ErrCampaignNotFound)
		return
	}

	s.campaign = nullCampaign.Campaign
}

func (s *evaluateState) evaluate() {
	c := s.campaign.ToSchedule()
	s.status = schedule.Evaluate(c, s.input.ReqTime)

	next, ok := schedule.NextActivation(c.Windows, s.input.ReqTime)
	if ok {
		s.next = sql.NullTime{Valid: true, Time: next}
	}
}

// Evaluate computes the status of every input, all campaigns are fetched in one batch
func (s *Service) Evaluate(ctx context.Context, inputs []Input) []Output {
	ctx = s.provider.Readonly(ctx)

	repo := s.repoProvider.NewRepo()
	defer repo.Finish()

	states := make([]*evaluateState, 0, len(inputs))
	for _, input := range inputs {
		states = append(states, &evaluateState{
			repo:  repo,
			ctx:   ctx,
			input: input,
		})
	}

	for _, state := range states {
		state.doNext(state.fetchCampaign)
	}

	for _, state := range states {
		state.doNext(state.handleCampaign)
		state.doNext(state.evaluate)
	}

	outputs := make([]Output, 0, len(states))
	for _, state := range states {
		s.metrics.observe(state.status, state.err)
		outputs = append(outputs, Output{
			Campaign:       state.campaign,
			Status:         state.status,
			NextActivation: state.next,
			Err:            state.err,
		})
	}
	return outputs
}
