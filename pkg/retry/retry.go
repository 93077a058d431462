package retry

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mathrand "math/rand"
	"time"

	"github.com/trigg3rX/triggerx-cql/pkg/logging"
)

// RetryConfig controls exponential backoff for Retry and RetryFunc.
type RetryConfig struct {
	MaxRetries      int                   // Total attempts, including the first one
	InitialDelay    time.Duration         // Delay before the second attempt
	MaxDelay        time.Duration         // Upper bound for a single delay
	BackoffFactor   float64               // Multiplier applied after every failed attempt
	JitterFactor    float64               // Extra random delay as a fraction of the base delay
	LogRetryAttempt bool                  // Log a warning before each sleep
	ShouldRetry     func(error, int) bool // Returning false stops retrying (error, attempt number)
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:      5,
		InitialDelay:    time.Second,
		MaxDelay:        30 * time.Second,
		BackoffFactor:   2.0,
		JitterFactor:    0.2,
		LogRetryAttempt: true,
	}
}

func (c *RetryConfig) Validate() error {
	if c.MaxRetries < 1 {
		return errors.New("MaxRetries must be >= 1")
	}
	if c.InitialDelay <= 0 {
		return errors.New("InitialDelay must be positive")
	}
	if c.MaxDelay <= 0 {
		return errors.New("MaxDelay must be positive")
	}
	if c.BackoffFactor < 1.0 {
		return errors.New("BackoffFactor must be >= 1.0")
	}
	if c.JitterFactor < 0 || c.JitterFactor > 1.0 {
		return errors.New("JitterFactor must be between 0.0 and 1.0")
	}
	return nil
}

// secureFloat64 returns a random float64 in [0.0,1.0)
func secureFloat64() float64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return mathrand.Float64()
	}
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// CalculateDelayWithJitter adds up to jitterFactor*baseDelay of random delay.
func CalculateDelayWithJitter(baseDelay time.Duration, jitterFactor float64) time.Duration {
	if jitterFactor <= 0 {
		return baseDelay
	}
	return baseDelay + time.Duration(jitterFactor*float64(baseDelay)*secureFloat64())
}

func CalculateNextDelay(currentDelay time.Duration, backoffFactor float64, maxDelay time.Duration) time.Duration {
	nextDelay := time.Duration(float64(currentDelay) * backoffFactor)
	if nextDelay > maxDelay {
		return maxDelay
	}
	return nextDelay
}

// Retry runs operation until it succeeds, ShouldRetry rejects the error, the
// attempts are exhausted or ctx is done. A rejected error is returned as is.
func Retry[T any](ctx context.Context, operation func() (T, error), retryConfig *RetryConfig, logger logging.Logger) (T, error) {
	var zero T

	if retryConfig == nil {
		retryConfig = DefaultRetryConfig()
	} else if err := retryConfig.Validate(); err != nil {
		return zero, fmt.Errorf("invalid retry config: %w", err)
	}

	delay := retryConfig.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= retryConfig.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := operation()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if retryConfig.ShouldRetry != nil && !retryConfig.ShouldRetry(err, attempt) {
			return zero, err
		}
		if attempt == retryConfig.MaxRetries {
			break
		}

		sleep := CalculateDelayWithJitter(delay, retryConfig.JitterFactor)
		if retryConfig.LogRetryAttempt && logger != nil {
			logger.Warnf("Attempt %d/%d failed: %v. Retrying in %v...", attempt, retryConfig.MaxRetries, err, sleep)
		}

		timer := time.NewTimer(sleep)
		select {
		case <-timer.C:
			delay = CalculateNextDelay(delay, retryConfig.BackoffFactor, retryConfig.MaxDelay)
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		}
	}

	return zero, fmt.Errorf("operation failed after %d attempts: %w", retryConfig.MaxRetries, lastErr)
}

// RetryFunc is Retry for operations that only return an error.
func RetryFunc(ctx context.Context, operation func() error, config *RetryConfig, logger logging.Logger) error {
	_, err := Retry(ctx, func() (struct{}, error) {
		return struct{}{}, operation()
	}, config, logger)
	return err
}
