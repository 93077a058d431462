package logging

import (
	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock of Logger. Every method records (msg, tags) or
// (template, args) so expectations take exactly two arguments.
type MockLogger struct {
	mock.Mock
}

var _ Logger = (*MockLogger)(nil)

// SetupDefaultExpectations lets every logging call through without assertions.
func (m *MockLogger) SetupDefaultExpectations() {
	for _, method := range []string{
		"Debug", "Info", "Warn", "Error", "Fatal",
		"Debugf", "Infof", "Warnf", "Errorf", "Fatalf",
	} {
		m.On(method, mock.Anything, mock.Anything).Maybe().Return()
	}
	m.On("With", mock.Anything).Maybe().Return(nil)
}

func (m *MockLogger) Debug(msg string, tags ...any) { m.Called(msg, tags) }
func (m *MockLogger) Info(msg string, tags ...any)  { m.Called(msg, tags) }
func (m *MockLogger) Warn(msg string, tags ...any)  { m.Called(msg, tags) }
func (m *MockLogger) Error(msg string, tags ...any) { m.Called(msg, tags) }
func (m *MockLogger) Fatal(msg string, tags ...any) { m.Called(msg, tags) }

func (m *MockLogger) Debugf(template string, args ...interface{}) { m.Called(template, args) }
func (m *MockLogger) Infof(template string, args ...interface{})  { m.Called(template, args) }
func (m *MockLogger) Warnf(template string, args ...interface{})  { m.Called(template, args) }
func (m *MockLogger) Errorf(template string, args ...interface{}) { m.Called(template, args) }
func (m *MockLogger) Fatalf(template string, args ...interface{}) { m.Called(template, args) }

// With returns the mock itself unless the expectation supplies another Logger.
func (m *MockLogger) With(tags ...any) Logger {
	args := m.Called(tags)
	if args.Get(0) == nil {
		return m
	}
	return args.Get(0).(Logger)
}

// NewNoOpLogger creates a logger that does nothing (useful for tests that don't care about logging)
func NewNoOpLogger() Logger {
	return &NoOpLogger{}
}

type NoOpLogger struct{}

func (n *NoOpLogger) Debug(msg string, tags ...any)               {}
func (n *NoOpLogger) Info(msg string, tags ...any)                {}
func (n *NoOpLogger) Warn(msg string, tags ...any)                {}
func (n *NoOpLogger) Error(msg string, tags ...any)               {}
func (n *NoOpLogger) Fatal(msg string, tags ...any)               {}
func (n *NoOpLogger) Debugf(template string, args ...interface{}) {}
func (n *NoOpLogger) Infof(template string, args ...interface{})  {}
func (n *NoOpLogger) Warnf(template string, args ...interface{})  {}
func (n *NoOpLogger) Errorf(template string, args ...interface{}) {}
func (n *NoOpLogger) Fatalf(template string, args ...interface{}) {}
func (n *NoOpLogger) With(tags ...any) Logger                     { return n }
