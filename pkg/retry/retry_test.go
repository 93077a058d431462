package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
)

func fastConfig(maxRetries int) *RetryConfig {
	return &RetryConfig{
		MaxRetries:    maxRetries,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}
}

func TestRetry_SucceedsFirstTry(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), func() (string, error) {
		calls++
		return "prepared", nil
	}, fastConfig(3), logging.NewNoOpLogger())

	require.NoError(t, err)
	assert.Equal(t, "prepared", result)
	assert.Equal(t, 1, calls)
}

func TestRetry_SucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("no connections available")
		}
		return calls, nil
	}, fastConfig(5), logging.NewNoOpLogger())

	require.NoError(t, err)
	assert.Equal(t, 3, result)
	assert.Equal(t, 3, calls)
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	cause := errors.New("unavailable")
	calls := 0
	err := RetryFunc(context.Background(), func() error {
		calls++
		return cause
	}, fastConfig(3), logging.NewNoOpLogger())

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestRetry_ShouldRetryStopsEarly(t *testing.T) {
	cause := errors.New("syntax error")
	cfg := fastConfig(5)
	cfg.ShouldRetry = func(err error, attempt int) bool { return false }

	calls := 0
	err := RetryFunc(context.Background(), func() error {
		calls++
		return cause
	}, cfg, logging.NewNoOpLogger())

	assert.Same(t, cause, err)
	assert.Equal(t, 1, calls)
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RetryFunc(ctx, func() error { return nil }, fastConfig(3), logging.NewNoOpLogger())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_InvalidConfig(t *testing.T) {
	err := RetryFunc(context.Background(), func() error { return nil }, &RetryConfig{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid retry config")
}

func TestRetryConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *RetryConfig)
		wantErr string
	}{
		{name: "default is valid", mutate: func(c *RetryConfig) {}},
		{name: "zero attempts", mutate: func(c *RetryConfig) { c.MaxRetries = 0 }, wantErr: "MaxRetries"},
		{name: "zero delay", mutate: func(c *RetryConfig) { c.InitialDelay = 0 }, wantErr: "InitialDelay"},
		{name: "zero max delay", mutate: func(c *RetryConfig) { c.MaxDelay = 0 }, wantErr: "MaxDelay"},
		{name: "shrinking backoff", mutate: func(c *RetryConfig) { c.BackoffFactor = 0.5 }, wantErr: "BackoffFactor"},
		{name: "jitter too large", mutate: func(c *RetryConfig) { c.JitterFactor = 1.5 }, wantErr: "JitterFactor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRetryConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCalculateNextDelay_CapsAtMax(t *testing.T) {
	assert.Equal(t, 2*time.Second, CalculateNextDelay(time.Second, 2.0, 10*time.Second))
	assert.Equal(t, 10*time.Second, CalculateNextDelay(8*time.Second, 2.0, 10*time.Second))
}

func TestCalculateDelayWithJitter_StaysInRange(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		d := CalculateDelayWithJitter(base, 0.5)
		assert.GreaterOrEqual(t, d, base)
		assert.Less(t, d, base+base/2+time.Nanosecond)
	}
	assert.Equal(t, base, CalculateDelayWithJitter(base, 0))
}
