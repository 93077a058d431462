package connection

import (
	"context"
	"sync"
	"time"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/interfaces"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
)

const healthCheckTimeout = 5 * time.Second

// HealthChecker performs database health checks
type HealthChecker struct {
	connectionManager interfaces.Connection
	logger            logging.Logger
	interval          time.Duration
	onFailure         func(error)

	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// NewHealthChecker creates a new health checker
func NewHealthChecker(connectionManager interfaces.Connection, logger logging.Logger, interval time.Duration) *HealthChecker {
	return &HealthChecker{
		connectionManager: connectionManager,
		logger:            logger,
		interval:          interval,
		stopChan:          make(chan struct{}),
		done:              make(chan struct{}),
	}
}

// OnFailure registers fn to run, on the checker goroutine, after every
// failed check.
func (hc *HealthChecker) OnFailure(fn func(error)) *HealthChecker {
	hc.onFailure = fn
	return hc
}

// Start begins the health checking process. It blocks until Stop is called.
func (hc *HealthChecker) Start() {
	defer close(hc.done)

	ticker := time.NewTicker(hc.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
			err := hc.connectionManager.HealthCheck(ctx)
			cancel()
			if err != nil {
				hc.logger.Errorf("Health check failed: %v", err)
				if hc.onFailure != nil {
					hc.onFailure(err)
				}
			}
		case <-hc.stopChan:
			hc.logger.Info("Health checker stopped")
			return
		}
	}
}

// Stop stops the health checking process. It is safe to call more than once.
func (hc *HealthChecker) Stop() {
	hc.stopOnce.Do(func() { close(hc.stopChan) })
}

// Done is closed when Start returns.
func (hc *HealthChecker) Done() <-chan struct{} {
	return hc.done
}
