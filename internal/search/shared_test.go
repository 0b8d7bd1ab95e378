package search

import (
	"sync"
	"testing"
)

// TestSharedOutcome_SingleClaim verifies the basic claim transition.
func TestSharedOutcome_SingleClaim(t *testing.T) {
	s := NewSharedOutcome()

	if s.Found() {
		t.Fatal("fresh state should not be found")
	}
	if _, ok := s.Winner(); ok {
		t.Fatal("fresh state should have no winner")
	}

	if !s.TryClaim("000B") {
		t.Fatal("first claim should succeed")
	}
	if !s.Found() {
		t.Error("state should be found after claim")
	}
	if w, ok := s.Winner(); !ok || w != "000B" {
		t.Errorf("winner = %q, %v; want \"000B\", true", w, ok)
	}

	if s.TryClaim("999Z") {
		t.Error("second claim should fail")
	}
	if w, _ := s.Winner(); w != "000B" {
		t.Errorf("winner changed to %q after failed claim", w)
	}
}

// TestSharedOutcome_ConcurrentClaims races many claimants and checks
// that exactly one wins and the winner matches that claimant.
func TestSharedOutcome_ConcurrentClaims(t *testing.T) {
	s := NewSharedOutcome()

	const n = 64
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []Candidate
	)
	start := make(chan struct{})

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(c Candidate) {
			defer wg.Done()
			<-start
			if s.TryClaim(c) {
				mu.Lock()
				winners = append(winners, c)
				mu.Unlock()
			}
		}(Candidate(rune('A' + i%26)))
	}
	close(start)
	wg.Wait()

	if len(winners) != 1 {
		t.Fatalf("expected exactly 1 successful claim, got %d", len(winners))
	}
	if w, ok := s.Winner(); !ok || w != winners[0] {
		t.Errorf("winner = %q, want the claimant's candidate %q", w, winners[0])
	}
}
