package search

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
)

func TestReporter_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Attempt("000A")
	r.Fault("000B", io.ErrUnexpectedEOF)
	r.Win("000C")

	got := buf.String()
	for _, want := range []string{
		"[-] attempted: 000A\n",
		"[!] error with 000B: unexpected EOF\n",
		"[+] found: 000C\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

// TestReporter_SuppressesAfterWin verifies that attempt and fault lines
// stop once the winning line has been written, and that a second win is
// never printed.
func TestReporter_SuppressesAfterWin(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	r.Win("000B")
	r.Attempt("000C")
	r.Fault("000D", io.EOF)
	r.Win("999Z")

	got := buf.String()
	if got != "[+] found: 000B\n" {
		t.Errorf("expected only the first win line, got:\n%s", got)
	}
}

// TestReporter_ConcurrentWholeLines floods the reporter from many
// goroutines and checks that no line was split or interleaved.
func TestReporter_ConcurrentWholeLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Attempt(Candidate(fmt.Sprintf("%03dX", n)))
			}
		}(i)
	}
	wg.Wait()

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if !strings.HasPrefix(line, "[-] attempted: ") || len(line) != len("[-] attempted: 000X") {
			t.Fatalf("malformed line %q", line)
		}
	}
}
