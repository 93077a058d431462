package repository

import (
	"context"
	"fmt"

	"github.com/scylladb/gocqlx/v2/qb"
	"github.com/scylladb/gocqlx/v2/table"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// statements are built once per repository. None use lightweight
// transactions or counters, so all are safe to retry.
type statements struct {
	insert      types.QueryDefinition
	update      types.QueryDefinition
	delete      types.QueryDefinition
	get         types.QueryDefinition
	list        types.QueryDefinition
	count       types.QueryDefinition
	countByID   types.QueryDefinition
	keyColumns  int
	hasNonKeyed bool
}

// genericRepository implements the GenericRepository interface
type genericRepository[T any] struct {
	executor interfaces.QueryExecutor
	logger   logging.Logger
	table    *table.Table
	stmts    statements
}

// NewGenericRepository creates a repository for the table described by meta.
// Columns must map onto the db tags of T.
func NewGenericRepository[T any](
	executor interfaces.QueryExecutor,
	logger logging.Logger,
	meta table.Metadata,
) interfaces.GenericRepository[T] {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	t := table.New(meta)
	logger.Debugf("Repository for table %s (partition key %v, sort key %v)", meta.Name, meta.PartKey, meta.SortKey)
	return &genericRepository[T]{
		executor: executor,
		logger:   logger,
		table:    t,
		stmts:    buildStatements(t),
	}
}

func buildStatements(t *table.Table) statements {
	meta := t.Metadata()
	keys := make(map[string]bool, len(meta.PartKey)+len(meta.SortKey))
	for _, k := range append(append([]string(nil), meta.PartKey...), meta.SortKey...) {
		keys[k] = true
	}
	var valueColumns []string
	for _, c := range meta.Columns {
		if !keys[c] {
			valueColumns = append(valueColumns, c)
		}
	}

	idempotent := types.WithIdempotent(true)
	s := statements{
		insert:      definition(idempotent)(t.Insert()),
		delete:      definition(idempotent)(t.Delete()),
		get:         definition(idempotent)(t.Get()),
		list:        types.FromBuilder(qb.Select(meta.Name).Columns(meta.Columns...), idempotent),
		count:       types.FromBuilder(qb.Select(meta.Name).CountAll(), idempotent),
		countByID:   types.FromBuilder(qb.Select(meta.Name).CountAll().Where(t.PrimaryKeyCmp()...), idempotent),
		keyColumns:  len(keys),
		hasNonKeyed: len(valueColumns) > 0,
	}
	if s.hasNonKeyed {
		s.update = definition(idempotent)(t.Update(valueColumns...))
	}
	return s
}

func definition(opts ...types.QueryOption) func(stmt string, names []string) types.QueryDefinition {
	return func(stmt string, names []string) types.QueryDefinition {
		return types.NewQueryDefinition(stmt, append(opts, types.WithNames(names...))...)
	}
}

func (r *genericRepository[T]) Insert(ctx context.Context, entity *T) error {
	if err := r.executor.ExecuteStruct(ctx, r.stmts.insert, entity); err != nil {
		return fmt.Errorf("insert into %s: %w", r.TableName(), err)
	}
	return nil
}

// Update writes every non-key column of entity.
func (r *genericRepository[T]) Update(ctx context.Context, entity *T) error {
	if !r.stmts.hasNonKeyed {
		return fmt.Errorf("%w: table %s has no non-key columns to update", dserrors.ErrInvalidQuery, r.TableName())
	}
	if err := r.executor.ExecuteStruct(ctx, r.stmts.update, entity); err != nil {
		return fmt.Errorf("update %s: %w", r.TableName(), err)
	}
	return nil
}

func (r *genericRepository[T]) Delete(ctx context.Context, entity *T) error {
	if err := r.executor.ExecuteStruct(ctx, r.stmts.delete, entity); err != nil {
		return fmt.Errorf("delete from %s: %w", r.TableName(), err)
	}
	return nil
}

// SelectOneByID returns ErrRecordNotFound when no row has the given key.
func (r *genericRepository[T]) SelectOneByID(ctx context.Context, id ...interface{}) (*T, error) {
	if err := r.checkKey(id); err != nil {
		return nil, err
	}
	var entity T
	if err := r.executor.Get(ctx, r.stmts.get, &entity, id...); err != nil {
		return nil, fmt.Errorf("select from %s: %w", r.TableName(), err)
	}
	return &entity, nil
}

func (r *genericRepository[T]) List(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.executor.Select(ctx, r.stmts.list, &entities); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.TableName(), err)
	}
	return entities, nil
}

func (r *genericRepository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.executor.Get(ctx, r.stmts.count, &count); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.TableName(), err)
	}
	return count, nil
}

func (r *genericRepository[T]) Exists(ctx context.Context, id ...interface{}) (bool, error) {
	if err := r.checkKey(id); err != nil {
		return false, err
	}
	var count int64
	if err := r.executor.Get(ctx, r.stmts.countByID, &count, id...); err != nil {
		return false, fmt.Errorf("exists in %s: %w", r.TableName(), err)
	}
	return count > 0, nil
}

func (r *genericRepository[T]) TableName() string {
	return r.table.Name()
}

func (r *genericRepository[T]) checkKey(id []interface{}) error {
	if len(id) != r.stmts.keyColumns {
		return fmt.Errorf("%w: %s expects %d key values, got %d",
			dserrors.ErrInvalidQuery, r.TableName(), r.stmts.keyColumns, len(id))
	}
	return nil
}
