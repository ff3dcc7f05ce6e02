package campaignset

import (
	"errors"
	"github.com/QuangTung97/promo-schedule/model"
)

// ErrNotFound ...
var ErrNotFound = errors.New("campaignset: campaign not found")

// ErrDuplicateID ...
var ErrDuplicateID = errors.New("campaignset: duplicated campaign id")

// Set is an immutable, versioned collection of campaigns.
// Every modification returns a new Set, the receiver is never changed.
type Set struct {
	version   int64
	campaigns []model.Campaign
	index     map[string]int
}

// New creates a set with version 1
func New(campaigns []model.Campaign) (*Set, error) {
	return newSet(1, campaigns)
}

func newSet(version int64, campaigns []model.Campaign) (*Set, error) {
	s := &Set{
		version:   version,
		campaigns: make([]model.Campaign, 0, len(campaigns)),
		index:     make(map[string]int, len(campaigns)),
	}
	for _, c := range campaigns {
		if _, existed := s.index[c.ID]; existed {
			return nil, ErrDuplicateID
		}
		s.index[c.ID] = len(s.campaigns)
		s.campaigns = append(s.campaigns, c.CloneWindows())
	}
	return s, nil
}

// Version ...
func (s *Set) Version() int64 {
	return s.version
}

// Len ...
func (s *Set) Len() int {
	return len(s.campaigns)
}

// Get ...
func (s *Set) Get(id string) (model.Campaign, bool) {
	i, ok := s.index[id]
	if !ok {
		return model.Campaign{}, false
	}
	return s.campaigns[i].CloneWindows(), true
}

// List returns campaigns in insertion order
func (s *Set) List() []model.Campaign {
	result := make([]model.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		result = append(result, c.CloneWindows())
	}
	return result
}

// Add appends a new campaign
func (s *Set) Add(c model.Campaign) (*Set, error) {
	if _, existed := s.index[c.ID]; existed {
		return nil, ErrDuplicateID
	}
	campaigns := make([]model.Campaign, 0, len(s.campaigns)+1)
	campaigns = append(campaigns, s.campaigns...)
	campaigns = append(campaigns, c)
	return newSet(s.version+1, campaigns)
}

// Update replaces the campaign with the same id, keeping its position
func (s *Set) Update(c model.Campaign) (*Set, error) {
	i, ok := s.index[c.ID]
	if !ok {
		return nil, ErrNotFound
	}
	campaigns := make([]model.Campaign, len(s.campaigns))
	copy(campaigns, s.campaigns)
	campaigns[i] = c
	return newSet(s.version+1, campaigns)
}

// Delete ...
func (s *Set) Delete(id string) (*Set, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, ErrNotFound
	}
	campaigns := make([]model.Campaign, 0, len(s.campaigns)-1)
	campaigns = append(campaigns, s.campaigns[:i]...)
	campaigns = append(campaigns, s.campaigns[i+1:]...)
	return newSet(s.version+1, campaigns)
}

// Replace swaps the whole content
func (s *Set) Replace(campaigns []model.Campaign) (*Set, error) {
	return newSet(s.version+1, campaigns)
}
