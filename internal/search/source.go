package search

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Source produces the finite sequence of candidates for one run.  It
// is consumed by a single goroutine (the pool's feeder) and is not
// restartable mid-run; a fresh run builds a fresh Source from the same
// parameters.
//
// Enumeration order only influences which worker is likely to win when
// several candidates would satisfy the oracle; it carries no other
// guarantee.
type Source interface {
	// Next returns the next candidate, or ok=false once the space is
	// exhausted.
	Next() (c Candidate, ok bool)
}

// ── Cross product ────────────────────────────────────────────────────

// CrossProduct enumerates a zero-padded numeric prefix crossed with a
// single trailing character, suffix fastest: 000A, 000B, …, 001A, ….
type CrossProduct struct {
	max      int // exclusive upper bound of the prefix
	width    int
	alphabet []rune
	num      int
	pos      int
}

// NewCrossProduct builds the prefix × alphabet enumeration.
func NewCrossProduct(max, width int, alphabet string) *CrossProduct {
	return &CrossProduct{max: max, width: width, alphabet: []rune(alphabet)}
}

// Size returns the total number of candidates in the space.
func (s *CrossProduct) Size() int { return s.max * len(s.alphabet) }

// Next implements Source.
func (s *CrossProduct) Next() (Candidate, bool) {
	if s.num >= s.max || len(s.alphabet) == 0 {
		return "", false
	}
	c := Candidate(fmt.Sprintf("%0*d%c", s.width, s.num, s.alphabet[s.pos]))
	s.pos++
	if s.pos == len(s.alphabet) {
		s.pos = 0
		s.num++
	}
	return c, true
}

// ── Slice ────────────────────────────────────────────────────────────

// Slice enumerates an in-memory list of candidates in order.
type Slice struct {
	items []Candidate
	next  int
}

// NewSlice wraps an explicit candidate list.
func NewSlice(items ...Candidate) *Slice {
	return &Slice{items: items}
}

// Next implements Source.
func (s *Slice) Next() (Candidate, bool) {
	if s.next >= len(s.items) {
		return "", false
	}
	c := s.items[s.next]
	s.next++
	return c, true
}

// ── Wordlist ─────────────────────────────────────────────────────────

// Wordlist lazily reads candidates from a newline-separated file.
// Blank lines are skipped.  The file is closed when the list is
// exhausted; callers should check Err afterwards.
type Wordlist struct {
	f       *os.File
	scanner *bufio.Scanner
	err     error
	closed  bool
}

// OpenWordlist opens path for lazy enumeration.
func OpenWordlist(path string) (*Wordlist, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	return &Wordlist{f: f, scanner: bufio.NewScanner(f)}, nil
}

// Next implements Source.
func (w *Wordlist) Next() (Candidate, bool) {
	if w.closed {
		return "", false
	}
	for w.scanner.Scan() {
		line := strings.TrimSpace(w.scanner.Text())
		if line == "" {
			continue
		}
		return Candidate(line), true
	}
	w.err = w.scanner.Err()
	w.close()
	return "", false
}

// Err returns the first read error encountered, if any.
func (w *Wordlist) Err() error { return w.err }

// Close releases the underlying file early (e.g. when the run is
// cancelled before exhaustion).  Safe to call more than once.
func (w *Wordlist) Close() error {
	if w.closed {
		return nil
	}
	return w.close()
}

func (w *Wordlist) close() error {
	w.closed = true
	return w.f.Close()
}
