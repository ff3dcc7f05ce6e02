package cacheclient

import (
	"github.com/QuangTung97/go-memcache/memcache"
	"github.com/QuangTung97/promo-schedule/pkg/leasestore"
	"time"
)

// Client ...
type Client struct {
	client *memcache.Client
}

// Pipeline ...
type Pipeline struct {
	pipe *memcache.Pipeline
}

var _ leasestore.CacheClient = &Client{}

var _ leasestore.CachePipeline = Pipeline{}

// leaseTTL is the number of seconds a granted lease stays valid
const leaseTTL = 5

// New ...
func New(addr string, numConns int) (*Client, error) {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		return nil, err
	}
	return &Client{
		client: client,
	}, nil
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// Pipeline ...
func (c *Client) Pipeline() leasestore.CachePipeline {
	return Pipeline{
		pipe: c.client.Pipeline(),
	}
}

// LeaseGet ...
func (p Pipeline) LeaseGet(key string) func() (leasestore.LeaseGetOutput, error) {
	fn := p.pipe.MGet(key, memcache.MGetOptions{
		N:   leaseTTL,
		CAS: true,
	})
	return func() (leasestore.LeaseGetOutput, error) {
		resp, err := fn()
		if err != nil {
			return leasestore.LeaseGetOutput{}, err
		}
		if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
			return leasestore.LeaseGetOutput{
				Type: leasestore.LeaseGetTypeRejected,
			}, nil
		}

		if resp.Flags&memcache.MGetFlagW != 0 {
			return leasestore.LeaseGetOutput{
				Type:    leasestore.LeaseGetTypeGranted,
				LeaseID: resp.CAS,
			}, nil
		}

		return leasestore.LeaseGetOutput{
			Type: leasestore.LeaseGetTypeOK,
			Data: resp.Data,
		}, nil
	}
}

// LeaseSet ...
func (p Pipeline) LeaseSet(key string, value []byte, leaseID uint64, ttl uint32) func() error {
	fn := p.pipe.MSet(key, value, memcache.MSetOptions{
		CAS: leaseID,
		TTL: ttl,
	})
	return func() error {
		_, err := fn()
		return err
	}
}

// Delete ...
func (p Pipeline) Delete(key string) func() error {
	fn := p.pipe.MDel(key, memcache.MDelOptions{})
	return func() error {
		_, err := fn()
		return err
	}
}

// Finish ...
func (p Pipeline) Finish() {
	p.pipe.Finish()
}
