package cache

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

func TestDeriveKey_UsesStatementText(t *testing.T) {
	key, err := DeriveKey(types.NewQueryDefinition(insertUser, types.WithIdempotent(true)))

	require.NoError(t, err)
	assert.Equal(t, Key(insertUser), key)
}

func TestDeriveKey_IgnoresAttributes(t *testing.T) {
	quorum, err := DeriveKey(types.NewQueryDefinition(insertUser, types.WithConsistency(gocql.Quorum)))
	require.NoError(t, err)
	one, err := DeriveKey(types.NewQueryDefinition(insertUser,
		types.WithConsistency(gocql.One),
		types.WithIdempotent(false),
		types.WithTracing(true),
		types.WithFetchSize(10),
	))
	require.NoError(t, err)

	assert.Equal(t, quorum, one)
}

func TestDeriveKey_NoWhitespaceNormalization(t *testing.T) {
	a, err := DeriveKey(types.NewQueryDefinition("SELECT * FROM user"))
	require.NoError(t, err)
	b, err := DeriveKey(types.NewQueryDefinition("SELECT *  FROM user"))
	require.NoError(t, err)
	c, err := DeriveKey(types.NewQueryDefinition(" SELECT * FROM user"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDeriveKey_EmptyStatement(t *testing.T) {
	_, err := DeriveKey(types.NewQueryDefinition(""))
	assert.ErrorIs(t, err, dserrors.ErrInvalidQuery)

	_, err = DeriveKey(types.QueryDefinition{})
	assert.ErrorIs(t, err, dserrors.ErrInvalidQuery)
}
