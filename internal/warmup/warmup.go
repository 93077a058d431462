// Package warmup prepares a list of query definitions ahead of traffic.
package warmup

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trigg3rX/triggerx-cql/pkg/datastore/statement"
	"github.com/trigg3rX/triggerx-cql/pkg/logging"
	"github.com/trigg3rX/triggerx-cql/pkg/types"
)

// Preparer prepares a definition on the current session.
type Preparer interface {
	Prepare(ctx context.Context, def types.QueryDefinition) (*statement.PreparedStatement, error)
}

type Result struct {
	Name     string
	Duration time.Duration
	Err      error
}

type Report struct {
	Results []Result
}

func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

func (r *Report) Prepared() int {
	return len(r.Results) - len(r.Failed())
}

// Run prepares queries with at most parallelism concurrent prepares. A
// failing query does not stop the others; failures are in the report.
// Run returns ctx.Err() if ctx ended before every query was attempted.
func Run(ctx context.Context, p Preparer, queries []Query, parallelism int, logger logging.Logger) (*Report, error) {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	if parallelism < 1 {
		parallelism = 1
	}

	report := &Report{Results: make([]Result, len(queries))}
	var g errgroup.Group
	g.SetLimit(parallelism)

	for i, q := range queries {
		i, q := i, q
		if ctx.Err() != nil {
			report.Results[i] = Result{Name: q.Name, Err: ctx.Err()}
			continue
		}
		g.Go(func() error {
			start := time.Now()
			_, err := p.Prepare(ctx, q.Definition)
			report.Results[i] = Result{Name: q.Name, Duration: time.Since(start), Err: err}
			if err != nil {
				logger.Warn("Warm-up prepare failed", "query", q.Name, "error", err)
			} else {
				logger.Debug("Warm-up prepared", "query", q.Name, "duration", time.Since(start))
			}
			return nil
		})
	}
	_ = g.Wait()

	logger.Infof("Warm-up prepared %d/%d queries", report.Prepared(), len(queries))
	return report, ctx.Err()
}
