package search

import (
	"context"
	"time"

	"credprobe/internal/errors"
)

// WithTimeout wraps an oracle with a per-call deadline.  A call that
// outlives d is reported as an Error outcome carrying
// [errors.ErrOracleTimeout], so a hung endpoint cannot stall a worker
// slot for the rest of the run.
//
// The abandoned call is left to finish in the background — there is no
// preemption — so oracles wrapped here must tolerate their result
// being discarded.
func WithTimeout(o Oracle, d time.Duration) Oracle {
	if d <= 0 {
		return o
	}
	return &timeoutOracle{next: o, limit: d}
}

type timeoutOracle struct {
	next  Oracle
	limit time.Duration
}

func (t *timeoutOracle) Test(ctx context.Context, c Candidate) Outcome {
	callCtx, cancel := context.WithTimeout(ctx, t.limit)
	defer cancel()

	done := make(chan Outcome, 1)
	go func() {
		done <- t.next.Test(callCtx, c)
	}()

	select {
	case out := <-done:
		return out
	case <-callCtx.Done():
		return Fault(errors.ErrOracleTimeout)
	}
}
