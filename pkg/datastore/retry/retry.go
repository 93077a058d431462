// Package retry retries CQL operations that are safe to repeat.
package retry

import (
	"context"

	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/retry"
)

// Policy retries idempotent operations on transient errors using the
// generic backoff in pkg/retry.
type Policy struct {
	config retry.RetryConfig
	logger logging.Logger
}

// NewPolicy copies cfg; a nil cfg uses retry.DefaultRetryConfig. The
// ShouldRetry predicate of cfg is replaced by the CQL classifier.
func NewPolicy(cfg *retry.RetryConfig, logger logging.Logger) *Policy {
	if cfg == nil {
		cfg = retry.DefaultRetryConfig()
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	p := &Policy{config: *cfg, logger: logger}
	p.config.ShouldRetry = func(err error, attempt int) bool {
		return ShouldRetry(err)
	}
	return p
}

// Do runs op once when idempotent is false. Otherwise op is retried while
// it fails with a transient error, until attempts run out or ctx ends.
func (p *Policy) Do(ctx context.Context, idempotent bool, op func() error) error {
	if !idempotent {
		return op()
	}
	return retry.RetryFunc(ctx, op, &p.config, p.logger)
}
