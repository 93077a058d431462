package connection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/retry"
)

const healthCheckQuery = "SELECT release_version FROM system.local"

// dialer opens a session pair for a configuration.
type dialer func(config *Config, logger logging.Logger) (interfaces.Sessioner, interfaces.GocqlxSessioner, error)

type sessions struct {
	session       interfaces.Sessioner
	gocqlxSession interfaces.GocqlxSessioner
}

// scyllaConnectionManager holds the database session and configuration.
type scyllaConnectionManager struct {
	session       interfaces.Sessioner
	gocqlxSession interfaces.GocqlxSessioner
	config        *Config
	logger        logging.Logger
	dial          dialer
	mu            sync.RWMutex

	reconnectCount int
	healthChecker  *HealthChecker
	ctx            context.Context
	cancel         context.CancelFunc
}

// NewConnection opens a session to the cluster described by config. Each
// call returns an independent connection.
func NewConnection(config *Config, logger logging.Logger) (interfaces.Connection, error) {
	m, err := newConnection(config, logger, dialCluster)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func newConnection(config *Config, logger logging.Logger, dial dialer) (*scyllaConnectionManager, error) {
	if config == nil {
		return nil, fmt.Errorf("invalid configuration: nil config")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	config = config.Clone()
	session, gocqlxSession, err := dial(config, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %v: %w", config.Hosts, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &scyllaConnectionManager{
		session:       session,
		gocqlxSession: gocqlxSession,
		config:        config,
		logger:        logger,
		dial:          dial,
		ctx:           ctx,
		cancel:        cancel,
	}

	if config.HealthCheckInterval > 0 {
		m.healthChecker = NewHealthChecker(m, logger, config.HealthCheckInterval).
			OnFailure(func(err error) {
				m.logger.Warnf("Database health check failed: %v. Attempting to reconnect...", err)
				if err := m.reconnect(); err != nil {
					m.logger.Errorf("Reconnect failed: %v", err)
				}
			})
		go m.healthChecker.Start()
	}

	logger.Infof("Connected to %v (keyspace %s)", config.Hosts, config.Keyspace)
	return m, nil
}

func dialCluster(config *Config, logger logging.Logger) (interfaces.Sessioner, interfaces.GocqlxSessioner, error) {
	session, err := config.clusterConfig().CreateSession()
	if err != nil {
		return nil, nil, err
	}
	return NewSession(session, config, logger), &gocqlxSessionWrapper{session: session}, nil
}

// GetSession returns the current session. The value changes after a
// reconnect.
func (m *scyllaConnectionManager) GetSession() interfaces.Sessioner {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// GetGocqlxSession returns the gocqlx session wrapper.
func (m *scyllaConnectionManager) GetGocqlxSession() interfaces.GocqlxSessioner {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gocqlxSession
}

// Close stops the health checker and closes the database connection.
func (m *scyllaConnectionManager) Close() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.healthChecker != nil {
		m.healthChecker.Stop()
		<-m.healthChecker.Done()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil {
		m.session.Close()
	}
}

// HealthCheck performs a simple query to check the database connection.
func (m *scyllaConnectionManager) HealthCheck(ctx context.Context) error {
	sess := m.GetSession()
	if sess == nil {
		return errors.New("database session is nil")
	}
	return sess.Query(healthCheckQuery).WithContext(ctx).Exec()
}

// ReconnectCount is the number of successful reconnects.
func (m *scyllaConnectionManager) ReconnectCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reconnectCount
}

// reconnect dials a new session with backoff and swaps it in. The old
// session is closed once nothing can obtain it from the manager.
func (m *scyllaConnectionManager) reconnect() error {
	cfg := m.config.RetryConfig
	if cfg == nil {
		cfg = retry.DefaultRetryConfig()
	}

	ctx := m.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	fresh, err := retry.Retry(ctx, func() (sessions, error) {
		session, gocqlxSession, err := m.dial(m.config, m.logger)
		return sessions{session: session, gocqlxSession: gocqlxSession}, err
	}, cfg, m.logger)
	if err != nil {
		return err
	}

	m.mu.Lock()
	old := m.session
	m.session = fresh.session
	m.gocqlxSession = fresh.gocqlxSession
	m.reconnectCount++
	m.mu.Unlock()

	if old != nil {
		old.Close()
	}
	m.logger.Infof("Successfully reconnected to the database.")
	return nil
}
