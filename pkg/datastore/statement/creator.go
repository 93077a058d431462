// Package statement turns query definitions into prepared statements backed
// by a shared PreparedStatementCache.
package statement

import (
	"context"
	"fmt"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/cache"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// Creator prepares one QueryDefinition through a cache.
type Creator struct {
	cache *cache.PreparedStatementCache
	def   types.QueryDefinition
}

// Of binds a definition to a cache. Nothing is validated or prepared until
// CreatePreparedStatement is called.
func Of(c *cache.PreparedStatementCache, def types.QueryDefinition) *Creator {
	return &Creator{cache: c, def: def}
}

// CreatePreparedStatement returns the cached handle for the definition's
// statement, preparing it on the session if needed, overlaid with the
// definition's attributes.
func (c *Creator) CreatePreparedStatement(ctx context.Context, session interfaces.Preparer) (*PreparedStatement, error) {
	if c.cache == nil {
		return nil, dserrors.ErrCacheUnavailable
	}
	if session == nil {
		return nil, fmt.Errorf("%w: nil session", dserrors.ErrCacheUnavailable)
	}

	key, err := cache.DeriveKey(c.def)
	if err != nil {
		return nil, err
	}

	handle, err := c.cache.GetPreparedStatement(ctx, session, key, cache.PrepareStatement(key))
	if err != nil {
		return nil, err
	}
	return newPreparedStatement(handle, c.def), nil
}
