// Package datastore wires the CQL connection, the prepared statement cache
// and the repositories into one service.
package datastore

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/cache"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/infrastructure/connection"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/infrastructure/repository"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/infrastructure/template"
	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// DatastoreService is the main service interface for database operations
type DatastoreService interface {
	// Template executes query definitions through the statement cache.
	Template() *template.Template
	// Cache is the prepared statement cache of the current session.
	Cache() *cache.PreparedStatementCache

	Users() interfaces.GenericRepository[types.UserEntity]

	HealthCheck(ctx context.Context) error
	Close()
}

// datastoreService implements the DatastoreService interface
type datastoreService struct {
	connection interfaces.Connection
	template   *template.Template
	users      interfaces.GenericRepository[types.UserEntity]
	logger     logging.Logger
}

// NewService connects to the cluster and builds the service. Cache metrics
// are registered on reg; a nil reg leaves them unregistered.
func NewService(config *connection.Config, logger logging.Logger, reg prometheus.Registerer) (DatastoreService, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	conn, err := connection.NewConnection(config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	return newService(conn, config, logger, reg), nil
}

func newService(conn interfaces.Connection, config *connection.Config, logger logging.Logger, reg prometheus.Registerer) *datastoreService {
	tmpl := template.New(conn, logger,
		template.WithRetryConfig(config.RetryConfig),
		template.WithCacheOptions(cache.WithMetrics(cache.NewMetrics(reg))),
	)
	factory := repository.NewRepositoryFactory(tmpl, logger)

	return &datastoreService{
		connection: conn,
		template:   tmpl,
		users:      factory.CreateUserRepository(),
		logger:     logger,
	}
}

func (ds *datastoreService) Template() *template.Template {
	return ds.template
}

func (ds *datastoreService) Cache() *cache.PreparedStatementCache {
	return ds.template.Cache()
}

// Users returns the user repository
func (ds *datastoreService) Users() interfaces.GenericRepository[types.UserEntity] {
	return ds.users
}

// HealthCheck performs a health check on the database connection
func (ds *datastoreService) HealthCheck(ctx context.Context) error {
	return ds.connection.HealthCheck(ctx)
}

// Close closes the database connection
func (ds *datastoreService) Close() {
	ds.connection.Close()
	ds.logger.Info("Datastore closed")
}
