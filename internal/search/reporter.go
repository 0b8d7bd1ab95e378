package search

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Reporter serialises per-candidate result lines so concurrent workers
// never interleave partial output.  After the winning line has been
// emitted, all further attempt and fault lines are dropped.
//
// Suppression is best-effort: a worker that completed just before the
// claim may still get a trailing line out.  That is accepted behaviour
// — tightening it would put another lock acquisition on the hot path
// for a purely cosmetic guarantee.
type Reporter struct {
	mu   sync.Mutex
	out  io.Writer
	done bool
}

// NewReporter returns a Reporter writing to w.  A nil w selects stdout.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{out: w}
}

// Attempt reports a rejected candidate.  Suppressed after a win.
func (r *Reporter) Attempt(c Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	fmt.Fprintf(r.out, "[-] attempted: %s\n", c)
}

// Fault reports a candidate whose oracle call failed.  Suppressed
// after a win.
func (r *Reporter) Fault(c Candidate, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	fmt.Fprintf(r.out, "[!] error with %s: %v\n", c, err)
}

// Win reports the claimed winner.  Printed exactly once and never
// suppressed; every line after it is.
func (r *Reporter) Win(c Candidate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done {
		return
	}
	r.done = true
	fmt.Fprintf(r.out, "[+] found: %s\n", c)
}
