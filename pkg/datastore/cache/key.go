package cache

import (
	"fmt"

	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// Key identifies a cache entry. It is the statement text, byte for byte.
type Key string

// DeriveKey maps a definition to its cache key. Attributes are not part of
// the key, so definitions that differ only in idempotency, consistency,
// tracing or fetch size share one prepared handle. No normalization is done:
// statements differing in whitespace or case get different keys.
func DeriveKey(def types.QueryDefinition) (Key, error) {
	stmt := def.Statement()
	if stmt == "" {
		return "", fmt.Errorf("%w: statement must not be empty", dserrors.ErrInvalidQuery)
	}
	return Key(stmt), nil
}
