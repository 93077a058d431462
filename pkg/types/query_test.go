package types

import (
	"testing"

	"github.com/gocql/gocql"
	"github.com/scylladb/gocqlx/v2/qb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueryDefinition_NoAttributes(t *testing.T) {
	def := NewQueryDefinition("SELECT * FROM user")

	assert.Equal(t, "SELECT * FROM user", def.Statement())
	_, ok := def.Idempotent()
	assert.False(t, ok)
	_, ok = def.Consistency()
	assert.False(t, ok)
	_, ok = def.Tracing()
	assert.False(t, ok)
	_, ok = def.FetchSize()
	assert.False(t, ok)
	assert.Empty(t, def.Names())
}

func TestNewQueryDefinition_AllAttributes(t *testing.T) {
	def := NewQueryDefinition("INSERT INTO user (id, username) VALUES (?, ?)",
		WithIdempotent(true),
		WithConsistency(gocql.LocalQuorum),
		WithTracing(true),
		WithFetchSize(500),
		WithNames("id", "username"),
	)

	idempotent, ok := def.Idempotent()
	require.True(t, ok)
	assert.True(t, idempotent)

	consistency, ok := def.Consistency()
	require.True(t, ok)
	assert.Equal(t, gocql.LocalQuorum, consistency)

	tracing, ok := def.Tracing()
	require.True(t, ok)
	assert.True(t, tracing)

	fetchSize, ok := def.FetchSize()
	require.True(t, ok)
	assert.Equal(t, 500, fetchSize)

	assert.Equal(t, []string{"id", "username"}, def.Names())
}

func TestWithFetchSize_IgnoresNonPositive(t *testing.T) {
	def := NewQueryDefinition("SELECT * FROM user", WithFetchSize(0))

	_, ok := def.FetchSize()
	assert.False(t, ok)
}

func TestQueryDefinition_With_DoesNotModifyOriginal(t *testing.T) {
	original := NewQueryDefinition("SELECT * FROM user", WithIdempotent(true), WithNames("id"))

	changed := original.With(WithIdempotent(false), WithConsistency(gocql.One))

	v, _ := original.Idempotent()
	assert.True(t, v)
	_, ok := original.Consistency()
	assert.False(t, ok)

	v, _ = changed.Idempotent()
	assert.False(t, v)
	assert.Equal(t, original.Statement(), changed.Statement())
}

func TestQueryDefinition_Names_ReturnsCopy(t *testing.T) {
	def := NewQueryDefinition("SELECT * FROM user WHERE id=?", WithNames("id"))

	names := def.Names()
	names[0] = "mutated"

	assert.Equal(t, []string{"id"}, def.Names())
}

func TestFromBuilder_KeepsBuilderNames(t *testing.T) {
	def := FromBuilder(qb.Insert("user").Columns("id", "username"), WithIdempotent(true))

	assert.Contains(t, def.Statement(), "INSERT INTO user")
	assert.Equal(t, []string{"id", "username"}, def.Names())
	v, ok := def.Idempotent()
	assert.True(t, ok)
	assert.True(t, v)
}

func TestQueryDefinition_String(t *testing.T) {
	assert.Equal(t, "SELECT 1", NewQueryDefinition("SELECT 1").String())
	assert.Equal(t,
		"SELECT 1 [idempotent=true consistency=QUORUM]",
		NewQueryDefinition("SELECT 1", WithIdempotent(true), WithConsistency(gocql.Quorum)).String(),
	)
}

func TestParseConsistency(t *testing.T) {
	tests := []struct {
		input    string
		expected gocql.Consistency
		wantErr  bool
	}{
		{input: "QUORUM", expected: gocql.Quorum},
		{input: "local_quorum", expected: gocql.LocalQuorum},
		{input: " one ", expected: gocql.One},
		{input: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseConsistency(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestNewPreparedHandle_FromQueryInfo(t *testing.T) {
	info := &gocql.QueryInfo{
		Id:          []byte{0x01, 0x02},
		Args:        []gocql.ColumnInfo{{Keyspace: "app", Table: "user", Name: "id"}},
		PKeyColumns: []int{0},
	}

	h := NewPreparedHandle("SELECT * FROM user WHERE id=?", "app", info, true)

	assert.Equal(t, "SELECT * FROM user WHERE id=?", h.Statement())
	assert.Equal(t, "app", h.Keyspace())
	assert.Equal(t, []byte{0x01, 0x02}, h.ID())
	require.Len(t, h.BindColumns(), 1)
	assert.Equal(t, "id", h.BindColumns()[0].Name)
	assert.Equal(t, []int{0}, h.PartitionKeyIndexes())
	assert.True(t, h.DefaultIdempotent())
	assert.False(t, h.PreparedAt().IsZero())

	info.Id[0] = 0xff
	assert.Equal(t, []byte{0x01, 0x02}, h.ID())
}

func TestNewPreparedHandle_NilInfo(t *testing.T) {
	h := NewPreparedHandle("SELECT 1", "", nil, false)

	assert.Empty(t, h.ID())
	assert.Empty(t, h.BindColumns())
	assert.Empty(t, h.ResultColumns())
	assert.False(t, h.DefaultIdempotent())
}
