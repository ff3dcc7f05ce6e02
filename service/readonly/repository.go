package readonly

import (
	"context"
	"encoding/json"
	"github.com/QuangTung97/promo-schedule/model"
	"github.com/QuangTung97/promo-schedule/pkg/leasestore"
	"github.com/QuangTung97/promo-schedule/pkg/memtable"
	"github.com/QuangTung97/promo-schedule/repository"
)

//go:generate moq -out repository_mocks_test.go . IRepository RepositoryProvider

// IRepository is created per request and can NOT be shared between goroutines
type IRepository interface {
	GetCampaign(ctx context.Context, id string) func() (model.NullCampaign, error)
	Finish()
}

// RepositoryProvider can be shared between goroutines
type RepositoryProvider interface {
	NewRepo() IRepository
	InvalidateCampaign(ctx context.Context, id string) error
}

type repositoryProviderImpl struct {
	mem           *memtable.MemTable
	storeProvider leasestore.Provider
	campaignRepo  repository.Campaign
	options       repositoryOptions
}

var _ RepositoryProvider = &repositoryProviderImpl{}

// NewRepositoryProvider ...
func NewRepositoryProvider(
	mem *memtable.MemTable, storeProvider leasestore.Provider,
	campaignRepo repository.Campaign, options ...RepositoryOption,
) RepositoryProvider {
	return &repositoryProviderImpl{
		mem:           mem,
		storeProvider: storeProvider,
		campaignRepo:  campaignRepo,
		options:       newRepositoryOptions(options...),
	}
}

func campaignKey(id string) string {
	return "campaign:" + id
}

func marshalNullCampaign(c model.NullCampaign) []byte {
	data, err := json.Marshal(c)
	if err != nil {
		panic(err)
	}
	return data
}

func unmarshalNullCampaign(data []byte) (model.NullCampaign, error) {
	var c model.NullCampaign
	err := json.Unmarshal(data, &c)
	if err != nil {
		return model.NullCampaign{}, err
	}
	return c, nil
}

// NewRepo ...
func (p *repositoryProviderImpl) NewRepo() IRepository {
	db := newCampaignDB(p.campaignRepo)
	if p.options.dbOnly {
		return &repositoryImpl{
			db: db,
		}
	}

	sess := p.storeProvider.NewSession(p.options.sessionOptions...)
	return &repositoryImpl{
		mem:      p.mem,
		localTTL: p.options.localTTL,
		sess:     sess,
		store:    sess.NewStore(db),
		db:       db,
	}
}

// InvalidateCampaign deletes the local and the memcached copies
func (p *repositoryProviderImpl) InvalidateCampaign(ctx context.Context, id string) error {
	if p.options.dbOnly {
		return nil
	}

	key := campaignKey(id)
	p.mem.Del(key)

	sess := p.storeProvider.NewSession()
	defer sess.Finish()

	return sess.NewStore(nil).Invalidate(ctx, key)()
}

type repositoryImpl struct {
	mem      *memtable.MemTable
	localTTL int

	sess  leasestore.Session
	store leasestore.Store
	db    *campaignDB
}

// GetCampaign reads from the local table, then memcached, then the database
func (r *repositoryImpl) GetCampaign(ctx context.Context, id string) func() (model.NullCampaign, error) {
	key := campaignKey(id)

	var getFn func() ([]byte, error)
	if r.store == nil {
		getFn = r.db.Get(ctx, key)
	} else if data, ok := r.mem.Get(key); ok {
		return func() (model.NullCampaign, error) {
			return unmarshalNullCampaign(data)
		}
	} else {
		storeFn := r.store.Get(ctx, key)
		getFn = func() ([]byte, error) {
			data, err := storeFn()
			if err != nil {
				return nil, err
			}
			r.mem.Set(key, data, r.localTTL)
			return data, nil
		}
	}

	return func() (model.NullCampaign, error) {
		data, err := getFn()
		if err != nil {
			return model.NullCampaign{}, err
		}
		return unmarshalNullCampaign(data)
	}
}

// Finish ...
func (r *repositoryImpl) Finish() {
	if r.sess != nil {
		r.sess.Finish()
	}
}

// campaignDB batches every pending key into one query on the first resolve
type campaignDB struct {
	repo repository.Campaign

	pending    []string
	pendingSet map[string]struct{}

	results map[string][]byte
	errs    map[string]error
}

var _ leasestore.Database = &campaignDB{}

func newCampaignDB(repo repository.Campaign) *campaignDB {
	return &campaignDB{
		repo:       repo,
		pendingSet: map[string]struct{}{},
		results:    map[string][]byte{},
		errs:       map[string]error{},
	}
}

func (d *campaignDB) fetchData(ctx context.Context) {
	if len(d.pending) == 0 {
		return
	}
	ids := d.pending
	d.pending = nil
	d.pendingSet = map[string]struct{}{}

	campaigns, err := d.repo.SelectCampaigns(ctx, ids)
	if err != nil {
		for _, id := range ids {
			d.errs[id] = err
		}
		return
	}

	for _, id := range ids {
		d.results[id] = marshalNullCampaign(model.NullCampaign{})
	}
	for _, c := range campaigns {
		d.results[c.ID] = marshalNullCampaign(model.NullCampaign{
			Valid:    true,
			Campaign: c,
		})
	}
}

// Get ...
func (d *campaignDB) Get(ctx context.Context, key string) func() ([]byte, error) {
	id := key[len(campaignKey("")):]

	_, existed := d.pendingSet[id]
	_, fetched := d.results[id]
	if !existed && !fetched {
		d.pendingSet[id] = struct{}{}
		d.pending = append(d.pending, id)
	}

	return func() ([]byte, error) {
		d.fetchData(ctx)
		if err := d.errs[id]; err != nil {
			return nil, err
		}
		return d.results[id], nil
	}
}
