package statement

import (
	"github.com/gocql/gocql"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// PreparedStatement is a cached PreparedHandle plus the attributes of one
// QueryDefinition. Several PreparedStatements may share a handle; none of
// them modify it.
type PreparedStatement struct {
	handle *types.PreparedHandle
	def    types.QueryDefinition
}

func newPreparedStatement(handle *types.PreparedHandle, def types.QueryDefinition) *PreparedStatement {
	return &PreparedStatement{handle: handle, def: def}
}

func (s *PreparedStatement) Handle() *types.PreparedHandle {
	return s.handle
}

func (s *PreparedStatement) Statement() string {
	return s.handle.Statement()
}

// Names are the bind marker names declared by the definition.
func (s *PreparedStatement) Names() []string {
	return s.def.Names()
}

// IsIdempotent falls back to the handle default when the definition does
// not declare idempotence.
func (s *PreparedStatement) IsIdempotent() bool {
	if idempotent, ok := s.def.Idempotent(); ok {
		return idempotent
	}
	return s.handle.DefaultIdempotent()
}

func (s *PreparedStatement) Consistency() (gocql.Consistency, bool) {
	return s.def.Consistency()
}

func (s *PreparedStatement) IsTracing() bool {
	tracing, _ := s.def.Tracing()
	return tracing
}

func (s *PreparedStatement) FetchSize() (int, bool) {
	return s.def.FetchSize()
}

// Bind creates an executable query for the statement with values bound
// positionally and the overlay applied.
func (s *PreparedStatement) Bind(session interfaces.QuerySession, values ...interface{}) *gocql.Query {
	return s.Apply(session.Query(s.handle.Statement(), values...), session.Tracer())
}

// Apply sets the attributes the definition declares on q. Attributes the
// definition leaves unset keep the values q already has.
func (s *PreparedStatement) Apply(q *gocql.Query, tracer gocql.Tracer) *gocql.Query {
	if idempotent, ok := s.def.Idempotent(); ok {
		q.Idempotent(idempotent)
	}
	if consistency, ok := s.def.Consistency(); ok {
		q.Consistency(consistency)
	}
	if tracing, ok := s.def.Tracing(); ok {
		if tracing {
			q.Trace(tracer)
		} else {
			q.Trace(nil)
		}
	}
	if size, ok := s.def.FetchSize(); ok {
		q.PageSize(size)
	}
	return q
}
