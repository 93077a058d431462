package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerManager_Get_BeforeInit(t *testing.T) {
	m := &LoggerManager{}

	logger, err := m.Get()
	assert.Error(t, err)
	assert.Nil(t, logger)
}

func TestLoggerManager_Init_KeepsFirstLogger(t *testing.T) {
	m := &LoggerManager{}

	require.NoError(t, m.Init(newTestConfig(t, false)))
	first, err := m.Get()
	require.NoError(t, err)

	require.NoError(t, m.Init(newTestConfig(t, true)))
	second, err := m.Get()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NoError(t, m.Shutdown())
}

func TestLoggerManager_Shutdown(t *testing.T) {
	m := &LoggerManager{}
	assert.NoError(t, m.Shutdown())

	require.NoError(t, m.Init(newTestConfig(t, false)))
	require.NoError(t, m.Shutdown())

	_, err := m.Get()
	assert.Error(t, err)
	assert.NoError(t, m.Shutdown())
}

func TestServiceLogger(t *testing.T) {
	require.NoError(t, InitServiceLogger(newTestConfig(t, false)))
	t.Cleanup(func() { _ = Shutdown() })

	logger := GetServiceLogger()
	require.NotNil(t, logger)
	logger.Info("service logger ready")

	require.NoError(t, Shutdown())
	assert.Panics(t, func() { GetServiceLogger() })
}
