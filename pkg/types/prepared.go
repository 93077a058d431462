package types

import (
	"time"

	"github.com/gocql/gocql"
)

// ColumnSpec describes one bind marker or result column of a prepared statement.
type ColumnSpec struct {
	Keyspace string
	Table    string
	Name     string
	Type     string
}

// PreparedHandle is the server-confirmed result of preparing a statement.
// Handles are shared by every caller of a cache and are never modified after
// construction; per-call attributes live on statement.PreparedStatement.
type PreparedHandle struct {
	statement         string
	keyspace          string
	id                []byte
	bindColumns       []ColumnSpec
	resultColumns     []ColumnSpec
	partitionKey      []int
	defaultIdempotent bool
	preparedAt        time.Time
}

// NewPreparedHandle builds a handle from the metadata the driver returned for
// the PREPARE round trip. info may be nil when no metadata is available.
func NewPreparedHandle(statement, keyspace string, info *gocql.QueryInfo, defaultIdempotent bool) *PreparedHandle {
	h := &PreparedHandle{
		statement:         statement,
		keyspace:          keyspace,
		defaultIdempotent: defaultIdempotent,
		preparedAt:        time.Now(),
	}
	if info != nil {
		h.id = append([]byte(nil), info.Id...)
		h.bindColumns = columnSpecs(info.Args)
		h.resultColumns = columnSpecs(info.Rval)
		h.partitionKey = append([]int(nil), info.PKeyColumns...)
	}
	return h
}

func columnSpecs(cols []gocql.ColumnInfo) []ColumnSpec {
	if len(cols) == 0 {
		return nil
	}
	specs := make([]ColumnSpec, len(cols))
	for i, c := range cols {
		specs[i] = ColumnSpec{Keyspace: c.Keyspace, Table: c.Table, Name: c.Name}
		if c.TypeInfo != nil {
			specs[i].Type = c.TypeInfo.Type().String()
		}
	}
	return specs
}

func (h *PreparedHandle) Statement() string {
	return h.statement
}

func (h *PreparedHandle) Keyspace() string {
	return h.keyspace
}

// ID is the server-side prepared statement id.
func (h *PreparedHandle) ID() []byte {
	return append([]byte(nil), h.id...)
}

func (h *PreparedHandle) BindColumns() []ColumnSpec {
	return append([]ColumnSpec(nil), h.bindColumns...)
}

func (h *PreparedHandle) ResultColumns() []ColumnSpec {
	return append([]ColumnSpec(nil), h.resultColumns...)
}

// PartitionKeyIndexes are the bind marker positions forming the partition key.
func (h *PreparedHandle) PartitionKeyIndexes() []int {
	return append([]int(nil), h.partitionKey...)
}

// DefaultIdempotent is the idempotence a statement built from this handle
// has when the query definition does not declare one.
func (h *PreparedHandle) DefaultIdempotent() bool {
	return h.defaultIdempotent
}

func (h *PreparedHandle) PreparedAt() time.Time {
	return h.preparedAt
}
