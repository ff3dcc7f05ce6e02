package leasestore

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"time"
)

//go:generate moq -out leasestore_mocks_test.go . CacheClient CachePipeline Database

// ErrLeaseNotGranted when all lease waits finished without getting the data or the lease
var ErrLeaseNotGranted = errors.New("leasestore: lease not granted")

// LeaseGetType ...
type LeaseGetType int

const (
	// LeaseGetTypeOK when entry is found
	LeaseGetTypeOK LeaseGetType = 1

	// LeaseGetTypeGranted when entry is not found but lease is granted
	LeaseGetTypeGranted LeaseGetType = 2

	// LeaseGetTypeRejected when entry is not found and lease is not granted
	LeaseGetTypeRejected LeaseGetType = 3
)

// LeaseGetOutput ...
type LeaseGetOutput struct {
	Type    LeaseGetType
	Data    []byte
	LeaseID uint64
}

// CacheClient for remote cache (like memcached)
type CacheClient interface {
	// Pipeline can NOT be shared between goroutines
	Pipeline() CachePipeline
}

// CachePipeline for batching cache requests
type CachePipeline interface {
	LeaseGet(key string) func() (LeaseGetOutput, error)
	LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error
	Delete(key string) func() error
	Finish()
}

// Database for the backing store
type Database interface {
	Get(ctx context.Context, key string) func() ([]byte, error)
}

// Provider can be shared between goroutines
type Provider interface {
	NewSession(options ...SessionOption) Session

	StoreAccessCount() uint64
	StoreMissCount() uint64
}

// Session can NOT be shared between goroutines
type Session interface {
	NewStore(db Database) Store
	Finish()
}

// Store is a read-through cache over a Database
type Store interface {
	Get(ctx context.Context, key string) func() ([]byte, error)
	Invalidate(ctx context.Context, key string) func() error
}

type timer interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realTimer struct {
}

func (realTimer) Now() time.Time {
	return time.Now()
}

func (realTimer) Sleep(d time.Duration) {
	time.Sleep(d)
}

// NewProvider ...
func NewProvider(client CacheClient) Provider {
	return newProviderImpl(client)
}

func newProviderImpl(client CacheClient) *providerImpl {
	return &providerImpl{
		client: client,
		timer:  realTimer{},
	}
}

type providerImpl struct {
	client CacheClient
	timer  timer

	storeAccessCount uint64
	storeMissCount   uint64
}

type delayedCall struct {
	startedAt time.Time
	call      func()
}

type sessionImpl struct {
	provider *providerImpl
	options  sessionOptions
	pipeline CachePipeline

	nextCalls    []func()
	delayedCalls []delayedCall

	storeAccessCount uint64
	storeMissCount   uint64
}

// NewSession ...
func (p *providerImpl) NewSession(options ...SessionOption) Session {
	return &sessionImpl{
		provider: p,
		options:  newSessionOptions(options...),
		pipeline: p.client.Pipeline(),
	}
}

// StoreAccessCount ...
func (p *providerImpl) StoreAccessCount() uint64 {
	return atomic.LoadUint64(&p.storeAccessCount)
}

// StoreMissCount ...
func (p *providerImpl) StoreMissCount() uint64 {
	return atomic.LoadUint64(&p.storeMissCount)
}

func (s *sessionImpl) addNextCall(fn func()) {
	s.nextCalls = append(s.nextCalls, fn)
}

func (s *sessionImpl) addDelayedCall(d time.Duration, fn func()) {
	s.delayedCalls = append(s.delayedCalls, delayedCall{
		startedAt: s.provider.timer.Now().Add(d),
		call:      fn,
	})
}

func (s *sessionImpl) callNextCalls() {
	for len(s.nextCalls) > 0 {
		nextCalls := s.nextCalls
		s.nextCalls = nil

		for _, call := range nextCalls {
			call()
		}
	}
}

// processAllCalls runs the pending calls, sleeping for the earliest delayed call
// and then running every delayed call that is due
func (s *sessionImpl) processAllCalls() {
	s.callNextCalls()

	for len(s.delayedCalls) > 0 {
		sort.SliceStable(s.delayedCalls, func(i, j int) bool {
			return s.delayedCalls[i].startedAt.Before(s.delayedCalls[j].startedAt)
		})

		d := s.delayedCalls[0].startedAt.Sub(s.provider.timer.Now())
		if d > 0 {
			s.provider.timer.Sleep(d)
		}

		now := s.provider.timer.Now()
		var due []delayedCall
		var remaining []delayedCall
		for _, c := range s.delayedCalls {
			if c.startedAt.After(now) {
				remaining = append(remaining, c)
				continue
			}
			due = append(due, c)
		}
		s.delayedCalls = remaining

		for _, c := range due {
			c.call()
		}
		s.callNextCalls()
	}
}

// NewStore ...
func (s *sessionImpl) NewStore(db Database) Store {
	return &storeImpl{
		sess:     s,
		db:       db,
		pipeline: s.pipeline,
	}
}

// Finish flushes the pipeline and adds the session counters to the provider
func (s *sessionImpl) Finish() {
	s.processAllCalls()
	s.pipeline.Finish()

	atomic.AddUint64(&s.provider.storeAccessCount, s.storeAccessCount)
	atomic.AddUint64(&s.provider.storeMissCount, s.storeMissCount)
	s.storeAccessCount = 0
	s.storeMissCount = 0
}
