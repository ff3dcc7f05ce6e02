package readonly

import (
	"github.com/QuangTung97/promo-schedule/pkg/leasestore"
)

type repositoryOptions struct {
	dbOnly         bool
	localTTL       int
	sessionOptions []leasestore.SessionOption
}

func defaultRepositoryOptions() repositoryOptions {
	return repositoryOptions{
		localTTL: 5,
	}
}

func newRepositoryOptions(options ...RepositoryOption) repositoryOptions {
	opts := defaultRepositoryOptions()
	for _, o := range options {
		o(&opts)
	}
	return opts
}

// RepositoryOption ...
type RepositoryOption func(opts *repositoryOptions)

// WithDBOnly reads directly from the database, skipping both caches
func WithDBOnly(dbOnly bool) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.dbOnly = dbOnly
	}
}

// WithLocalTTL sets the seconds a campaign is kept in the local table
func WithLocalTTL(seconds int) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.localTTL = seconds
	}
}

// WithSessionOptions ...
func WithSessionOptions(options ...leasestore.SessionOption) RepositoryOption {
	return func(opts *repositoryOptions) {
		opts.sessionOptions = options
	}
}
