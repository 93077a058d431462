// Package cache memoizes prepared statements per session.
//
// A PreparedStatementCache maps a Key to the PreparedHandle the session
// returned for it. Concurrent first requests for the same key share one
// prepare round trip; requests for different keys never wait on each other.
// Entries are never evicted.
//
// A failed prepare is broadcast: every caller waiting on that round trip gets
// the same error, nothing is stored, and the next request prepares again.
package cache

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// PrepareFunc performs the prepare round trip for a cache miss.
type PrepareFunc func(ctx context.Context, session interfaces.Preparer) (*types.PreparedHandle, error)

type PreparedStatementCache struct {
	mu      sync.RWMutex
	entries map[Key]*types.PreparedHandle
	flights singleflight.Group

	logger  logging.Logger
	metrics *Metrics
}

type Option func(*PreparedStatementCache)

func WithLogger(logger logging.Logger) Option {
	return func(c *PreparedStatementCache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(c *PreparedStatementCache) {
		c.metrics = metrics
	}
}

// New creates an empty cache. The cache is not tied to a session; callers
// that reuse one across reconnects accept that handles may be stale.
func New(opts ...Option) *PreparedStatementCache {
	c := &PreparedStatementCache{
		entries: make(map[Key]*types.PreparedHandle),
		logger:  logging.NewNoOpLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PrepareStatement is the default PrepareFunc: it prepares the key text on
// the session.
func PrepareStatement(key Key) PrepareFunc {
	return func(ctx context.Context, session interfaces.Preparer) (*types.PreparedHandle, error) {
		return session.Prepare(ctx, string(key))
	}
}

// GetPreparedStatement returns the handle cached for key, preparing it with
// prepare on a miss. A nil prepare uses PrepareStatement(key).
//
// Only one prepare per key runs at a time. Callers arriving while it runs
// wait for its result. Any caller whose ctx ends first, including the one
// that started the prepare, returns ctx.Err() and the prepare still completes.
func (c *PreparedStatementCache) GetPreparedStatement(
	ctx context.Context,
	session interfaces.Preparer,
	key Key,
	prepare PrepareFunc,
) (*types.PreparedHandle, error) {
	if c == nil {
		return nil, dserrors.ErrCacheUnavailable
	}
	if session == nil {
		return nil, fmt.Errorf("%w: nil session", dserrors.ErrCacheUnavailable)
	}
	if key == "" {
		return nil, fmt.Errorf("%w: empty cache key", dserrors.ErrInvalidQuery)
	}
	if prepare == nil {
		prepare = PrepareStatement(key)
	}

	if handle, ok := c.Get(key); ok {
		c.metrics.hit()
		return handle, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The prepare outlives the caller that started it; the driver timeout
	// bounds it instead.
	flightCtx := context.WithoutCancel(ctx)
	results := c.flights.DoChan(string(key), func() (interface{}, error) {
		// A flight for key may have completed between Get and DoChan.
		if handle, ok := c.Get(key); ok {
			c.metrics.hit()
			return handle, nil
		}
		return c.populate(flightCtx, session, key, prepare)
	})

	select {
	case res := <-results:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*types.PreparedHandle), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *PreparedStatementCache) populate(
	ctx context.Context,
	session interfaces.Preparer,
	key Key,
	prepare PrepareFunc,
) (*types.PreparedHandle, error) {
	c.logger.Debug("Preparing statement", "statement", string(key))

	done := c.metrics.trackPrepare()
	handle, err := prepare(ctx, session)
	if err == nil && handle == nil {
		err = errors.New("session returned no prepared handle")
	}
	done(err)

	if err != nil {
		if !dserrors.IsPreparationFailed(err) {
			err = dserrors.NewPreparationFailedError(string(key), err)
		}
		c.logger.Warn("Prepare failed", "statement", string(key), "error", err)
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = handle
	size := len(c.entries)
	c.mu.Unlock()

	c.metrics.setEntries(size)
	c.logger.Debug("Statement prepared", "statement", string(key), "entries", size)
	return handle, nil
}

// Get returns the cached handle for key without preparing anything.
func (c *PreparedStatementCache) Get(key Key) (*types.PreparedHandle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	handle, ok := c.entries[key]
	return handle, ok
}

func (c *PreparedStatementCache) Contains(key Key) bool {
	_, ok := c.Get(key)
	return ok
}

func (c *PreparedStatementCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Keys returns the cached keys in lexical order.
func (c *PreparedStatementCache) Keys() []Key {
	c.mu.RLock()
	keys := make([]Key, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	c.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
