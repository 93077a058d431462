package types

import (
	"fmt"
	"strings"

	"github.com/gocql/gocql"
	"github.com/scylladb/gocqlx/v2/qb"
)

// QueryDefinition is a CQL statement plus the execution attributes declared
// for it. It is immutable: options apply only while constructing, and With
// returns a modified copy. Attributes left unset report ok == false from
// their getters.
type QueryDefinition struct {
	statement   string
	names       []string
	idempotent  *bool
	consistency *gocql.Consistency
	tracing     *bool
	fetchSize   *int
}

// QueryOption sets one attribute on a QueryDefinition under construction.
type QueryOption func(*QueryDefinition)

func WithIdempotent(idempotent bool) QueryOption {
	return func(d *QueryDefinition) {
		d.idempotent = &idempotent
	}
}

func WithConsistency(consistency gocql.Consistency) QueryOption {
	return func(d *QueryDefinition) {
		d.consistency = &consistency
	}
}

func WithTracing(tracing bool) QueryOption {
	return func(d *QueryDefinition) {
		d.tracing = &tracing
	}
}

// WithFetchSize sets the page size. Non-positive sizes are ignored.
func WithFetchSize(size int) QueryOption {
	return func(d *QueryDefinition) {
		if size > 0 {
			d.fetchSize = &size
		}
	}
}

// WithNames sets the bind marker names used for struct and map binding.
func WithNames(names ...string) QueryOption {
	return func(d *QueryDefinition) {
		d.names = append([]string(nil), names...)
	}
}

func NewQueryDefinition(statement string, opts ...QueryOption) QueryDefinition {
	d := QueryDefinition{statement: statement}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// FromBuilder renders a gocqlx query builder into a definition, keeping the
// bind names the builder produced.
func FromBuilder(builder qb.Builder, opts ...QueryOption) QueryDefinition {
	stmt, names := builder.ToCql()
	return NewQueryDefinition(stmt, append([]QueryOption{WithNames(names...)}, opts...)...)
}

// With returns a copy of d with opts applied on top.
func (d QueryDefinition) With(opts ...QueryOption) QueryDefinition {
	c := d
	c.names = append([]string(nil), d.names...)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (d QueryDefinition) Statement() string {
	return d.statement
}

func (d QueryDefinition) Names() []string {
	return append([]string(nil), d.names...)
}

func (d QueryDefinition) Idempotent() (bool, bool) {
	if d.idempotent == nil {
		return false, false
	}
	return *d.idempotent, true
}

func (d QueryDefinition) Consistency() (gocql.Consistency, bool) {
	if d.consistency == nil {
		return 0, false
	}
	return *d.consistency, true
}

func (d QueryDefinition) Tracing() (bool, bool) {
	if d.tracing == nil {
		return false, false
	}
	return *d.tracing, true
}

func (d QueryDefinition) FetchSize() (int, bool) {
	if d.fetchSize == nil {
		return 0, false
	}
	return *d.fetchSize, true
}

func (d QueryDefinition) String() string {
	var attrs []string
	if v, ok := d.Idempotent(); ok {
		attrs = append(attrs, fmt.Sprintf("idempotent=%t", v))
	}
	if v, ok := d.Consistency(); ok {
		attrs = append(attrs, "consistency="+v.String())
	}
	if v, ok := d.Tracing(); ok {
		attrs = append(attrs, fmt.Sprintf("tracing=%t", v))
	}
	if v, ok := d.FetchSize(); ok {
		attrs = append(attrs, fmt.Sprintf("fetchSize=%d", v))
	}
	if len(attrs) == 0 {
		return d.statement
	}
	return fmt.Sprintf("%s [%s]", d.statement, strings.Join(attrs, " "))
}

// ParseConsistency accepts the names gocql understands, case-insensitively.
func ParseConsistency(s string) (gocql.Consistency, error) {
	c, err := gocql.ParseConsistencyWrapper(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return 0, fmt.Errorf("invalid consistency level %q: %w", s, err)
	}
	return c, nil
}
