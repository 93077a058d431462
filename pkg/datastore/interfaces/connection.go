package interfaces

//go:generate mockgen -source=connection.go -destination=../mocks/connection_mocks.go -package=mocks

import (
	"context"

	"github.com/gocql/gocql"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// Connection owns the database session and its lifecycle.
type Connection interface {
	GetSession() Sessioner
	GetGocqlxSession() GocqlxSessioner
	Close()
	HealthCheck(ctx context.Context) error
}

// Preparer performs the PREPARE round trip for a statement.
type Preparer interface {
	Prepare(ctx context.Context, stmt string) (*types.PreparedHandle, error)
}

// QuerySession builds executable queries.
type QuerySession interface {
	Query(stmt string, values ...interface{}) *gocql.Query
	// Tracer receives traces for statements with tracing enabled. Nil
	// means tracing is not configured for this session.
	Tracer() gocql.Tracer
}

// Sessioner is a live CQL session.
type Sessioner interface {
	Preparer
	QuerySession
	Close()
}

// GocqlxSessioner wraps gocql queries for struct and map binding.
type GocqlxSessioner interface {
	Query(stmt string, names []string) GocqlxQueryer
	// Wrap adopts an already configured query. Attributes set on q are kept.
	Wrap(q *gocql.Query, names []string) GocqlxQueryer
	Close()
}

// GocqlxQueryer is the subset of *gocqlx.Queryx used by the template.
// Exec, Get and Select keep the query usable so they can be retried;
// Release must be called once the query is no longer needed.
type GocqlxQueryer interface {
	WithContext(ctx context.Context) GocqlxQueryer
	Bind(values ...interface{}) GocqlxQueryer
	BindStruct(data interface{}) GocqlxQueryer
	BindMap(data map[string]interface{}) GocqlxQueryer
	Exec() error
	Get(dest interface{}) error
	Select(dest interface{}) error
	Release()
}
