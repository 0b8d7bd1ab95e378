package guard

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestBackoff_SucceedsFirstTry(t *testing.T) {
	b := &Backoff{InitialDelay: time.Millisecond, MaxAttempts: 3}

	calls := 0
	err := b.Do(context.Background(), func(attempt int) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBackoff_RetriesThenSucceeds(t *testing.T) {
	b := &Backoff{InitialDelay: time.Millisecond, MaxAttempts: 5}

	calls := 0
	err := b.Do(context.Background(), func(attempt int) error {
		calls++
		if attempt < 3 {
			return fmt.Errorf("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestBackoff_ExhaustsAttempts(t *testing.T) {
	b := &Backoff{InitialDelay: time.Millisecond, MaxAttempts: 3}

	calls := 0
	err := b.Do(context.Background(), func(int) error {
		calls++
		return fmt.Errorf("still broken")
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestBackoff_PermanentStopsImmediately(t *testing.T) {
	b := &Backoff{InitialDelay: time.Millisecond, MaxAttempts: 10}

	inner := fmt.Errorf("bad request")
	calls := 0
	err := b.Do(context.Background(), func(int) error {
		calls++
		return Permanent(inner)
	})
	if err != inner {
		t.Errorf("err = %v, want the inner error", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBackoff_ContextCancellation(t *testing.T) {
	b := &Backoff{InitialDelay: time.Hour, MaxAttempts: 0}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := b.Do(ctx, func(int) error { return fmt.Errorf("fail") })
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestIsPermanent(t *testing.T) {
	if IsPermanent(fmt.Errorf("plain")) {
		t.Error("plain error should not be permanent")
	}
	if !IsPermanent(Permanent(fmt.Errorf("wrapped"))) {
		t.Error("wrapped error should be permanent")
	}
	if Permanent(nil) != nil {
		t.Error("Permanent(nil) should be nil")
	}
}
