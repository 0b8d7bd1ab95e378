package search

import (
	"context"
	"sync"

	"credprobe/internal/metrics"
	"credprobe/util"
)

// defaultWorkers bounds simultaneous oracle calls when the caller does
// not set an explicit pool size.
const defaultWorkers = 10

// Result is the terminal state of one run: either a claimed winner or
// an exhausted space.
type Result struct {
	Found  bool
	Winner Candidate
}

// workItem pairs a candidate with its submission order.  Owned by the
// pool from submission until its outcome has been observed.
type workItem struct {
	seq  int
	cand Candidate
}

// Pool dispatches candidates to a fixed number of workers and
// coordinates early termination once a winner is claimed.
//
// Cancellation is cooperative: on a claim the feeder stops submitting
// and queued-but-unstarted candidates are dropped, but an oracle call
// already in flight runs to completion and its outcome is discarded.
// When several candidates would each satisfy the oracle, the winner is
// whichever completes and claims first — nondeterministic across runs.
type Pool struct {
	Workers  int                // 0 → defaultWorkers
	Oracle   Oracle             // required
	Reporter *Reporter          // nil → no per-candidate output
	Metrics  *metrics.Collector // nil is a valid no-op collector
	Logger   *util.Logger       // nil → no diagnostics
}

// Run feeds every candidate from src through the pool until a worker
// claims a success or the space is exhausted.  A non-nil error is
// returned only when ctx is cancelled before either terminal state.
func (p *Pool) Run(ctx context.Context, src Source) (Result, error) {
	workers := p.Workers
	if workers < 1 {
		workers = defaultWorkers
	}
	reporter := p.Reporter
	if reporter == nil {
		reporter = NewReporter(nil)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	state := NewSharedOutcome()
	jobs := make(chan workItem)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go p.worker(runCtx, &wg, jobs, state, reporter, cancel)
	}

	// Feeder: submit in enumeration order, stopping outright once a
	// winner is claimed or the run is cancelled.  The rest of the
	// source is abandoned unread; one aggregate skip records the drop.
	seq := 0
feed:
	for {
		c, ok := src.Next()
		if !ok {
			break
		}
		if state.Found() {
			p.Metrics.Skipped()
			break
		}
		select {
		case jobs <- workItem{seq: seq, cand: c}:
			seq++
		case <-runCtx.Done():
			p.Metrics.Skipped()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if winner, ok := state.Winner(); ok {
		return Result{Found: true, Winner: winner}, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if p.Logger != nil {
		p.Logger.Verbose("space exhausted after %d oracle call(s)", p.Metrics.Invocations())
	}
	return Result{}, nil
}

// worker drains the job channel, testing one candidate at a time.
// Every per-candidate failure is absorbed here; nothing a single
// oracle call does can terminate the run.
func (p *Pool) worker(ctx context.Context, wg *sync.WaitGroup, jobs <-chan workItem,
	state *SharedOutcome, reporter *Reporter, cancel context.CancelFunc) {
	defer wg.Done()

	for it := range jobs {
		// Re-check after the channel hand-off: the claim may have landed
		// while this item sat in the queue.
		if state.Found() {
			p.Metrics.Skipped()
			continue
		}

		if p.Logger != nil {
			p.Logger.Debug("worker: testing #%d %q", it.seq, it.cand)
		}
		p.Metrics.OracleInvoked()
		out := p.Oracle.Test(ctx, it.cand)

		switch out.Kind {
		case OutcomeSuccess:
			if state.TryClaim(it.cand) {
				p.Metrics.Claimed()
				reporter.Win(it.cand)
				cancel()
			}
			// Claim lost: another worker won first.  Not an error —
			// discard silently.
		case OutcomeRejected:
			p.Metrics.Rejected()
			reporter.Attempt(it.cand)
		case OutcomeError:
			// Tolerate oracles that fault without a cause; the worker
			// boundary absorbs whatever a single call does.
			msg := "oracle fault"
			if out.Err != nil {
				msg = out.Err.Error()
			}
			p.Metrics.Fault(msg)
			reporter.Fault(it.cand, out.Err)
		}
	}
}
