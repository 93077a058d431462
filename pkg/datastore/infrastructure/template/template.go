// Package template executes query definitions through the prepared
// statement cache of the current session.
package template

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gocql/gocql"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/cache"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	dsretry "github.com/trigg3rX/triggerx-cql/pkg/datastore/retry"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/statement"
	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/retry"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

type Template struct {
	conn   interfaces.Connection
	logger logging.Logger
	policy *dsretry.Policy

	cacheOpts []cache.Option

	mu      sync.Mutex
	session interfaces.Sessioner
	cache   *cache.PreparedStatementCache
}

type Option func(*options)

type options struct {
	retryConfig *retry.RetryConfig
	cacheOpts   []cache.Option
}

// WithRetryConfig sets the backoff used for idempotent statements.
func WithRetryConfig(cfg *retry.RetryConfig) Option {
	return func(o *options) { o.retryConfig = cfg }
}

// WithCacheOptions configures every cache the template creates.
func WithCacheOptions(opts ...cache.Option) Option {
	return func(o *options) { o.cacheOpts = append(o.cacheOpts, opts...) }
}

func New(conn interfaces.Connection, logger logging.Logger, opts ...Option) *Template {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Template{
		conn:      conn,
		logger:    logger,
		policy:    dsretry.NewPolicy(o.retryConfig, logger),
		cacheOpts: append([]cache.Option{cache.WithLogger(logger)}, o.cacheOpts...),
	}
}

// Cache returns the cache for the current session. A reconnect replaces the
// session and with it the cache, since prepared ids belong to a session.
func (t *Template) Cache() *cache.PreparedStatementCache {
	session := t.conn.GetSession()
	if session == nil {
		return nil
	}
	return t.cacheFor(session)
}

func (t *Template) cacheFor(session interfaces.Sessioner) *cache.PreparedStatementCache {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cache == nil || t.session != session {
		if t.cache != nil {
			t.logger.Infof("Session changed, dropping %d prepared statements", t.cache.Len())
		}
		t.session = session
		t.cache = cache.New(t.cacheOpts...)
	}
	return t.cache
}

// Prepare returns the prepared statement for def on the current session.
func (t *Template) Prepare(ctx context.Context, def types.QueryDefinition) (*statement.PreparedStatement, error) {
	session := t.conn.GetSession()
	if session == nil {
		return nil, fmt.Errorf("%w: no active session", dserrors.ErrCacheUnavailable)
	}
	return statement.Of(t.cacheFor(session), def).CreatePreparedStatement(ctx, session)
}

// Execute runs def with positional values and discards any rows.
func (t *Template) Execute(ctx context.Context, def types.QueryDefinition, values ...interface{}) error {
	return t.run(ctx, def, func(q interfaces.GocqlxQueryer) error {
		return q.Bind(values...).Exec()
	})
}

// ExecuteStruct runs def with bind markers taken from the fields of arg.
func (t *Template) ExecuteStruct(ctx context.Context, def types.QueryDefinition, arg interface{}) error {
	return t.run(ctx, def, func(q interfaces.GocqlxQueryer) error {
		return q.BindStruct(arg).Exec()
	})
}

// ExecuteMap runs def with bind markers taken from m.
func (t *Template) ExecuteMap(ctx context.Context, def types.QueryDefinition, m map[string]interface{}) error {
	return t.run(ctx, def, func(q interfaces.GocqlxQueryer) error {
		return q.BindMap(m).Exec()
	})
}

// Get scans the first row into dest. It returns ErrRecordNotFound when the
// query matches nothing.
func (t *Template) Get(ctx context.Context, def types.QueryDefinition, dest interface{}, values ...interface{}) error {
	err := t.run(ctx, def, func(q interfaces.GocqlxQueryer) error {
		return q.Bind(values...).Get(dest)
	})
	if errors.Is(err, gocql.ErrNotFound) {
		return dserrors.ErrRecordNotFound
	}
	return err
}

// Select scans all rows into dest, which must be a pointer to a slice.
func (t *Template) Select(ctx context.Context, def types.QueryDefinition, dest interface{}, values ...interface{}) error {
	return t.run(ctx, def, func(q interfaces.GocqlxQueryer) error {
		return q.Bind(values...).Select(dest)
	})
}

func (t *Template) run(ctx context.Context, def types.QueryDefinition, fn func(q interfaces.GocqlxQueryer) error) error {
	session := t.conn.GetSession()
	if session == nil {
		return fmt.Errorf("%w: no active session", dserrors.ErrCacheUnavailable)
	}
	ps, err := statement.Of(t.cacheFor(session), def).CreatePreparedStatement(ctx, session)
	if err != nil {
		return err
	}

	gocqlxSession := t.conn.GetGocqlxSession()
	err = t.policy.Do(ctx, ps.IsIdempotent(), func() error {
		q := gocqlxSession.Wrap(ps.Bind(session), ps.Names()).WithContext(ctx)
		defer q.Release()
		return fn(q)
	})
	if err != nil && !errors.Is(err, gocql.ErrNotFound) {
		t.logger.Debug("cql statement failed", "statement", ps.Statement(), "error", err)
	}
	return err
}
