package logging

import (
	"errors"
	"sync"
)

// LoggerManager owns the logger a process shares across its packages.
type LoggerManager struct {
	mu            sync.RWMutex
	serviceLogger *ZapLogger
}

var loggerManager = &LoggerManager{}

// Init creates the service logger. Later calls keep the first logger.
func (m *LoggerManager) Init(config LoggerConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.serviceLogger != nil {
		return nil
	}
	logger, err := NewZapLogger(config)
	if err != nil {
		return err
	}
	m.serviceLogger = logger
	return nil
}

func (m *LoggerManager) Get() (Logger, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.serviceLogger == nil {
		return nil, errors.New("logger not initialized")
	}
	return m.serviceLogger, nil
}

// Shutdown flushes and closes the service logger, if one was initialized.
func (m *LoggerManager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.serviceLogger == nil {
		return nil
	}
	err := m.serviceLogger.Close()
	m.serviceLogger = nil
	return err
}

func InitServiceLogger(config LoggerConfig) error {
	return loggerManager.Init(config)
}

func GetServiceLogger() Logger {
	logger, err := loggerManager.Get()
	if err != nil {
		panic(err)
	}
	return logger
}

func Shutdown() error {
	return loggerManager.Shutdown()
}
