package campaign

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/campaignset"
	"github.com/QuangTung97/promo-schedule/pkg/otellib"
	"github.com/QuangTung97/promo-schedule/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"sync"
)

//go:generate moq -out service_mocks_test.go . CacheInvalidator

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// CacheInvalidator removes cached copies of a campaign
type CacheInvalidator interface {
	InvalidateCampaign(ctx context.Context, id string) error
}

// Service owns the current campaign snapshot and writes through to the database
type Service struct {
	provider    repository.Provider
	repo        repository.Campaign
	invalidator CacheInvalidator

	newID func() string

	mut      sync.Mutex
	snapshot *campaignset.Set
}

// NewService ...
func NewService(
	provider repository.Provider, repo repository.Campaign, invalidator CacheInvalidator,
) *Service {
	empty, _ := campaignset.New(nil)
	return &Service{
		provider:    provider,
		repo:        repo,
		invalidator: invalidator,

		newID:    uuid.NewString,
		snapshot: empty,
	}
}

// Snapshot returns the current immutable set
func (s *Service) Snapshot() *campaignset.Set {
	s.mut.Lock()
	defer s.mut.Unlock()
	return s.snapshot
}

// modify applies fn to the current snapshot while holding the lock
func (s *Service) modify(fn func(set *campaignset.Set) (*campaignset.Set, error)) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	next, err := fn(s.snapshot)
	if err != nil {
		return err
	}
	s.snapshot = next
	return nil
}

// Reload replaces the snapshot with all campaigns in the database
func (s *Service) Reload(ctx context.Context) error {
	campaigns, err := s.repo.ListCampaigns(s.provider.Readonly(ctx))
	if err != nil {
		return err
	}
	return s.modify(func(set *campaignset.Set) (*campaignset.Set, error) {
		return set.Replace(campaigns)
	})
}

// List ...
func (s *Service) List() []model.Campaign {
	return s.Snapshot().List()
}

// Get reads the snapshot, falling back to the database for campaigns written
// by another instance since the last reload
func (s *Service) Get(ctx context.Context, id string) (model.Campaign, error) {
	c, ok := s.Snapshot().Get(id)
	if ok {
		return c, nil
	}

	nullCampaign, err := s.repo.GetCampaign(s.provider.Readonly(ctx), id)
	if err != nil {
		return model.Campaign{}, err
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, ErrCampaignNotFound
	}
	return nullCampaign.Campaign, nil
}

// upsert puts c into the snapshot, replacing the campaign with the same id.
// A reload running between the commit and this call may have added c already.
func (s *Service) upsert(c model.Campaign) error {
	return s.modify(func(set *campaignset.Set) (*campaignset.Set, error) {
		next, err := set.Add(c)
		if errors.Is(err, campaignset.ErrDuplicateID) {
			return set.Update(c)
		}
		return next, err
	})
}

func (s *Service) invalidate(ctx context.Context, id string) {
	if err := s.invalidator.InvalidateCampaign(ctx, id); err != nil {
		otellib.Extract(otellib.WithCampaignID(ctx, id)).Warn("Invalidate campaign cache", zap.Error(err))
	}
}

// Create ...
func (s *Service) Create(ctx context.Context, in Input) (model.Campaign, error) {
	c, err := in.Parse()
	if err != nil {
		return model.Campaign{}, err
	}
	c.ID = s.newID()
	c.Version = 1

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.repo.InsertCampaign(ctx, c)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	if err := s.upsert(c); err != nil {
		return model.Campaign{}, err
	}

	s.invalidate(ctx, c.ID)
	return c, nil
}

func lockError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrCampaignNotFound
	}
	return err
}

// Update replaces the campaign with id, bumping its version
func (s *Service) Update(ctx context.Context, id string, in Input) (model.Campaign, error) {
	c, err := in.Parse()
	if err != nil {
		return model.Campaign{}, err
	}
	c.ID = id

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		version, err := s.repo.LockCampaign(ctx, id)
		if err != nil {
			return lockError(err)
		}
		c.Version = version + 1
		return s.repo.UpdateCampaign(ctx, c)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	if err := s.upsert(c); err != nil {
		return model.Campaign{}, err
	}

	s.invalidate(ctx, id)
	return c, nil
}

// Delete ...
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		if _, err := s.repo.LockCampaign(ctx, id); err != nil {
			return lockError(err)
		}
		return s.repo.DeleteCampaign(ctx, id)
	})
	if err != nil {
		return err
	}

	err = s.modify(func(set *campaignset.Set) (*campaignset.Set, error) {
		next, err := set.Delete(id)
		if errors.Is(err, campaignset.ErrNotFound) {
			return set, nil
		}
		return next, err
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}
