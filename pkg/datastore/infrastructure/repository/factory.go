package repository

import (
	"github.com/scylladb/gocqlx/v2/table"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// UserTable is the schema of the user table:
//
//	CREATE TABLE user (id text PRIMARY KEY, username text)
var UserTable = table.Metadata{
	Name:    "user",
	Columns: []string{"id", "username"},
	PartKey: []string{"id"},
}

// RepositoryFactory creates repositories sharing one executor.
type RepositoryFactory struct {
	executor interfaces.QueryExecutor
	logger   logging.Logger
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(executor interfaces.QueryExecutor, logger logging.Logger) *RepositoryFactory {
	return &RepositoryFactory{executor: executor, logger: logger}
}

// CreateUserRepository returns the user repository
func (rf *RepositoryFactory) CreateUserRepository() interfaces.GenericRepository[types.UserEntity] {
	return NewGenericRepository[types.UserEntity](rf.executor, rf.logger, UserTable)
}
