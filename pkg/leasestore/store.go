package leasestore

import (
	"context"
)

type storeImpl struct {
	sess     *sessionImpl
	db       Database
	pipeline CachePipeline
}

type storeGetAction struct {
	root *storeImpl
	ctx  context.Context
	key  string

	leaseGetFn func() (LeaseGetOutput, error)

	leaseWaitIndex int

	data []byte
	err  error
}

func (s *storeGetAction) handleLeaseGet() {
	s.data, s.err = s.handleLeaseGetWithOutput()
}

func (s *storeGetAction) handleLeaseGetWithOutput() ([]byte, error) {
	output, err := s.leaseGetFn()
	if err != nil {
		return nil, err
	}

	sess := s.root.sess

	if output.Type == LeaseGetTypeGranted {
		sess.storeMissCount++

		dbFn := s.root.db.Get(s.ctx, s.key)
		sess.addNextCall(func() {
			dbData, err := dbFn()
			if err != nil {
				s.err = err
				s.root.pipeline.Delete(s.key)
				return
			}
			s.data = dbData
			s.root.pipeline.LeaseSet(s.key, s.data, output.LeaseID, sess.options.leaseTTL)
		})
		return nil, nil
	}

	if output.Type == LeaseGetTypeRejected {
		sess.storeMissCount++

		durations := sess.options.waitLeaseDurations
		if s.leaseWaitIndex >= len(durations) {
			return nil, ErrLeaseNotGranted
		}
		duration := durations[s.leaseWaitIndex]
		s.leaseWaitIndex++

		sess.addDelayedCall(duration, func() {
			s.leaseGetFn = s.root.pipeline.LeaseGet(s.key)
			sess.addNextCall(s.handleLeaseGet)
		})
		return nil, nil
	}

	return output.Data, nil
}

// Get ...
func (s *storeImpl) Get(ctx context.Context, key string) func() ([]byte, error) {
	s.sess.storeAccessCount++

	fn := s.pipeline.LeaseGet(key)
	action := &storeGetAction{
		root:       s,
		key:        key,
		ctx:        ctx,
		leaseGetFn: fn,
	}

	s.sess.addNextCall(action.handleLeaseGet)

	return func() ([]byte, error) {
		s.sess.processAllCalls()
		return action.data, action.err
	}
}

// Invalidate ...
func (s *storeImpl) Invalidate(_ context.Context, key string) func() error {
	return s.pipeline.Delete(key)
}
