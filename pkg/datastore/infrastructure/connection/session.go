package connection

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gocql/gocql"

	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// errPrepareOnly aborts a query after the driver has prepared it so the
// EXECUTE is never sent.
var errPrepareOnly = errors.New("prepare only")

// Session adapts a gocql session to interfaces.Sessioner.
type Session struct {
	session           *gocql.Session
	keyspace          string
	defaultIdempotent bool
	tracer            gocql.Tracer
}

func NewSession(session *gocql.Session, config *Config, logger logging.Logger) *Session {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Session{
		session:           session,
		keyspace:          config.Keyspace,
		defaultIdempotent: config.DefaultIdempotence,
		tracer:            gocql.NewTraceWriter(session, &traceLogWriter{logger: logger}),
	}
}

func (s *Session) Query(stmt string, values ...interface{}) *gocql.Query {
	return s.session.Query(stmt, values...)
}

// Tracer writes query traces to the session logger at debug level.
func (s *Session) Tracer() gocql.Tracer {
	return s.tracer
}

// Prepare sends PREPARE for stmt and returns the metadata the server
// returned. gocql prepares statements while binding, so the query is bound
// with a callback that records the metadata and then aborts the execution.
func (s *Session) Prepare(ctx context.Context, stmt string) (*types.PreparedHandle, error) {
	if !isPreparable(stmt) {
		return nil, dserrors.NewPreparationFailedError(stmt, fmt.Errorf("statement type cannot be prepared"))
	}

	var info *gocql.QueryInfo
	q := s.session.Bind(stmt, func(qi *gocql.QueryInfo) ([]interface{}, error) {
		info = qi
		return nil, errPrepareOnly
	})
	defer q.Release()

	err := q.WithContext(ctx).RetryPolicy(nil).Idempotent(false).Exec()
	if err != nil && !errors.Is(err, errPrepareOnly) {
		return nil, dserrors.NewPreparationFailedError(stmt, err)
	}
	if info == nil {
		return nil, dserrors.NewPreparationFailedError(stmt, fmt.Errorf("no metadata returned"))
	}

	return types.NewPreparedHandle(stmt, s.keyspace, info, s.defaultIdempotent), nil
}

func (s *Session) Close() {
	s.session.Close()
}

// isPreparable mirrors the statement kinds gocql prepares before executing.
func isPreparable(stmt string) bool {
	fields := strings.Fields(stmt)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToLower(fields[0]) {
	case "select", "insert", "update", "delete", "begin":
		return true
	}
	return false
}

type traceLogWriter struct {
	logger logging.Logger
}

func (w *traceLogWriter) Write(p []byte) (int, error) {
	if line := strings.TrimSpace(string(p)); line != "" {
		w.logger.Debug("cql trace", "event", line)
	}
	return len(p), nil
}
