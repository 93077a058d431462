package interfaces

//go:generate mockgen -destination=../mocks/repository_mocks.go -package=mocks . QueryExecutor

import (
	"context"

	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// QueryExecutor runs query definitions through a prepared statement cache.
type QueryExecutor interface {
	ExecuteStruct(ctx context.Context, def types.QueryDefinition, arg interface{}) error
	Get(ctx context.Context, def types.QueryDefinition, dest interface{}, values ...interface{}) error
	Select(ctx context.Context, def types.QueryDefinition, dest interface{}, values ...interface{}) error
}

// GenericRepository maps entities of type T onto one table. Key values are
// given in partition key then clustering key order.
type GenericRepository[T any] interface {
	Insert(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
	SelectOneByID(ctx context.Context, id ...interface{}) (*T, error)
	List(ctx context.Context) ([]T, error)
	Count(ctx context.Context) (int64, error)
	Exists(ctx context.Context, id ...interface{}) (bool, error)
	TableName() string
}
