package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/datanautics/amortization-service/internal/domain/model"
)

// BatchResult is the outcome for one loan of a batch: either a schedule or
// the error that rejected the loan. Exactly one of the two is set.
type BatchResult struct {
	Schedule model.Schedule
	Err      error
}

// BatchCalculator expands a batch of independent loans into schedules.
// The per-loan recurrence is sequential, but loans share no state, so the
// batch fans out across a bounded number of goroutines while results are
// collected in input order.
type BatchCalculator struct {
	concurrency int
}

// NewBatchCalculator creates a calculator running at most concurrency
// loans at once. Values below one fall back to serial execution.
func NewBatchCalculator(concurrency int) *BatchCalculator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &BatchCalculator{concurrency: concurrency}
}

// Run computes one schedule per spec. A failing spec produces an error
// entry for its own slot only; the rest of the batch is unaffected. The
// returned slice always has len(specs) entries, ordered as the input.
func (c *BatchCalculator) Run(ctx context.Context, specs []model.LoanSpec) []BatchResult {
	results := make([]BatchResult, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, spec := range specs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = BatchResult{Err: err}
				return nil
			}
			sched, err := model.GenerateSchedule(spec)
			results[i] = BatchResult{Schedule: sched, Err: err}
			return nil
		})
	}

	// Goroutines never return errors; per-loan failures live in their slot.
	_ = g.Wait() //nolint:errcheck

	return results
}
