package retry

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/gocql/gocql"

	dserrors "github.com/trigg3rX/triggerx-cql/pkg/errors"
)

// CQL protocol error codes that mean the request itself is wrong.
const (
	codeSyntaxError  = 0x2000
	codeUnauthorized = 0x2100
	codeInvalid      = 0x2200
	codeConfigError  = 0x2300
)

var retryableMessages = []string{
	"no connections available",
	"connection reset by peer",
	"i/o timeout",
	"broken pipe",
	"connection timed out",
	"connection refused",
}

// ShouldRetry reports whether err is a transient gocql or network failure.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, gocql.ErrNotFound),
		errors.Is(err, dserrors.ErrRecordNotFound),
		errors.Is(err, dserrors.ErrInvalidQuery),
		errors.Is(err, dserrors.ErrCacheUnavailable),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}

	var reqErr gocql.RequestError
	if errors.As(err, &reqErr) {
		switch reqErr.Code() {
		case codeSyntaxError, codeUnauthorized, codeInvalid, codeConfigError:
			return false
		}
	}

	var (
		writeTimeout *gocql.RequestErrWriteTimeout
		readTimeout  *gocql.RequestErrReadTimeout
		unavailable  *gocql.RequestErrUnavailable
		readFailure  *gocql.RequestErrReadFailure
		writeFailure *gocql.RequestErrWriteFailure
	)
	if errors.As(err, &writeTimeout) || errors.As(err, &readTimeout) || errors.As(err, &unavailable) ||
		errors.As(err, &readFailure) || errors.As(err, &writeFailure) {
		return true
	}

	if errors.Is(err, gocql.ErrNoConnections) || errors.Is(err, gocql.ErrTimeoutNoResponse) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, msg := range retryableMessages {
		if strings.Contains(errMsg, msg) {
			return true
		}
	}

	return false
}
