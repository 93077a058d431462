package connection

import (
	"context"

	"github.com/gocql/gocql"
	"github.com/scylladb/gocqlx/v2"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
)

// gocqlxSessionWrapper wraps a gocql session to implement the GocqlxSessioner interface
type gocqlxSessionWrapper struct {
	session *gocql.Session
}

// Query creates a new gocqlx query
func (w *gocqlxSessionWrapper) Query(stmt string, names []string) interfaces.GocqlxQueryer {
	return w.Wrap(w.session.Query(stmt), names)
}

// Wrap adopts q, keeping consistency, idempotence and paging already set on it.
func (w *gocqlxSessionWrapper) Wrap(q *gocql.Query, names []string) interfaces.GocqlxQueryer {
	// gocqlx.Query is deprecated in favour of Session.Query, which cannot
	// adopt an existing *gocql.Query.
	return &gocqlxQueryWrapper{query: gocqlx.Query(q, names)}
}

// Close closes the underlying session
func (w *gocqlxSessionWrapper) Close() {
	w.session.Close()
}

// gocqlxQueryWrapper wraps a *gocqlx.Queryx to implement the GocqlxQueryer interface
type gocqlxQueryWrapper struct {
	query *gocqlx.Queryx
}

func (w *gocqlxQueryWrapper) WithContext(ctx context.Context) interfaces.GocqlxQueryer {
	w.query = w.query.WithContext(ctx)
	return w
}

func (w *gocqlxQueryWrapper) Bind(values ...interface{}) interfaces.GocqlxQueryer {
	w.query = w.query.Bind(values...)
	return w
}

func (w *gocqlxQueryWrapper) BindStruct(data interface{}) interfaces.GocqlxQueryer {
	w.query = w.query.BindStruct(data)
	return w
}

func (w *gocqlxQueryWrapper) BindMap(data map[string]interface{}) interfaces.GocqlxQueryer {
	w.query = w.query.BindMap(data)
	return w
}

func (w *gocqlxQueryWrapper) Exec() error {
	return w.query.Exec()
}

func (w *gocqlxQueryWrapper) Get(dest interface{}) error {
	return w.query.Get(dest)
}

func (w *gocqlxQueryWrapper) Select(dest interface{}) error {
	return w.query.Select(dest)
}

func (w *gocqlxQueryWrapper) Release() {
	w.query.Release()
}
