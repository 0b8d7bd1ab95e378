package search

import "sync"

// SharedOutcome is the mutually-exclusive "found" state for one run.
// It is created at run start, handed to every worker, and discarded
// when the run returns — never module-level.
//
// Invariant: once found transitions to true it never reverts, and the
// winner is written at most once.  Both happen inside a single
// critical section, so at most one TryClaim call per run returns true.
type SharedOutcome struct {
	mu     sync.Mutex
	found  bool
	winner Candidate
}

// NewSharedOutcome returns the unclaimed state for a fresh run.
func NewSharedOutcome() *SharedOutcome {
	return &SharedOutcome{}
}

// TryClaim atomically claims the win for c.  It returns true for
// exactly one caller across the whole run; every later caller gets
// false and the state is left untouched.
func (s *SharedOutcome) TryClaim(c Candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.found {
		return false
	}
	s.found = true
	s.winner = c
	return true
}

// Found reports whether a winner has been claimed.  A cheap hint used
// to skip work; callers must not treat a false result as a guarantee
// that no claim is in flight.
func (s *SharedOutcome) Found() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.found
}

// Winner returns the claimed candidate, if any.
func (s *SharedOutcome) Winner() (Candidate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winner, s.found
}
