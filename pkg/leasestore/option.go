package leasestore

import "time"

type sessionOptions struct {
	waitLeaseDurations []time.Duration
	leaseTTL           uint32
}

func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		waitLeaseDurations: []time.Duration{
			10 * time.Millisecond,
			20 * time.Millisecond,
			50 * time.Millisecond,
		},
		leaseTTL: 0,
	}
}

func newSessionOptions(options ...SessionOption) sessionOptions {
	opts := defaultSessionOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// SessionOption ...
type SessionOption func(opts *sessionOptions)

// WithWaitLeaseDurations ...
func WithWaitLeaseDurations(durations []time.Duration) SessionOption {
	return func(opts *sessionOptions) {
		opts.waitLeaseDurations = durations
	}
}

// WithLeaseTTL sets the TTL in seconds of the values set after a granted lease, 0 means no expiration
func WithLeaseTTL(ttl uint32) SessionOption {
	return func(opts *sessionOptions) {
		opts.leaseTTL = ttl
	}
}
