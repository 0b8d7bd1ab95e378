// Package search implements the concurrent credential-search engine: a
// bounded worker pool that feeds candidates to an oracle and stops as
// soon as one worker claims a winner.
//
// The package defines the oracle contract but never implements it;
// concrete oracles (HTTP form login, SSH password auth) live in
// credprobe/internal/oracle.
package search

import "context"

// Candidate is one value drawn from the search space.  Produced once
// by a Source, never mutated.
type Candidate string

// OutcomeKind classifies the result of testing one candidate.
type OutcomeKind int

const (
	// OutcomeRejected means the oracle explicitly denied the candidate.
	// Expected and non-fatal; the common case.
	OutcomeRejected OutcomeKind = iota
	// OutcomeSuccess means the candidate satisfied the oracle.
	OutcomeSuccess
	// OutcomeError means the oracle invocation itself faulted (transport
	// failure, timeout).  Logged and treated as a non-match; never
	// terminates the run.
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeRejected:
		return "rejected"
	case OutcomeSuccess:
		return "success"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the tri-state result of one oracle invocation.
type Outcome struct {
	Kind OutcomeKind
	Err  error // set only for OutcomeError
}

// Success reports that the candidate satisfied the oracle.
func Success() Outcome { return Outcome{Kind: OutcomeSuccess} }

// Rejected reports that the oracle denied the candidate.
func Rejected() Outcome { return Outcome{Kind: OutcomeRejected} }

// Fault reports that the invocation itself failed.
func Fault(err error) Outcome { return Outcome{Kind: OutcomeError, Err: err} }

// Oracle decides whether a single candidate is correct.  Implementations
// must be safe to call concurrently from every worker with no external
// synchronisation, and should honour ctx cancellation where the
// underlying transport allows it.
type Oracle interface {
	Test(ctx context.Context, c Candidate) Outcome
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(ctx context.Context, c Candidate) Outcome

// Test calls f.
func (f OracleFunc) Test(ctx context.Context, c Candidate) Outcome { return f(ctx, c) }
