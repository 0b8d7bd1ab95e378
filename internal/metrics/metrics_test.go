package metrics

import (
	"encoding/json"
	"sync"
	"testing"
)

func TestCollector_Counters(t *testing.T) {
	c := New()

	c.OracleInvoked()
	c.OracleInvoked()
	c.Rejected()
	c.Fault("connection reset")
	c.Skipped()
	c.Skipped()
	c.Skipped()

	if c.Invocations() != 2 {
		t.Errorf("invocations = %d, want 2", c.Invocations())
	}
	if c.RejectedCount() != 1 {
		t.Errorf("rejected = %d, want 1", c.RejectedCount())
	}
	if c.FaultCount() != 1 {
		t.Errorf("faults = %d, want 1", c.FaultCount())
	}
	if c.SkippedCount() != 3 {
		t.Errorf("skipped = %d, want 3", c.SkippedCount())
	}
}

func TestCollector_NilIsNoOp(t *testing.T) {
	var c *Collector

	// None of these may panic.
	c.OracleInvoked()
	c.Rejected()
	c.Fault("x")
	c.Skipped()
	c.Claimed()

	if c.Invocations() != 0 || c.FaultCount() != 0 {
		t.Error("nil collector should read as zero")
	}
	if s := c.Snapshot(); s.Invocations != 0 {
		t.Error("nil snapshot should be empty")
	}
}

func TestCollector_SnapshotJSON(t *testing.T) {
	c := New()
	c.OracleInvoked()
	c.Fault("last fault message")
	c.Claimed()

	var s Snapshot
	if err := json.Unmarshal([]byte(c.JSON()), &s); err != nil {
		t.Fatalf("snapshot is not valid JSON: %v", err)
	}
	if s.Invocations != 1 {
		t.Errorf("invocations = %d, want 1", s.Invocations)
	}
	if s.LastFaultMessage != "last fault message" {
		t.Errorf("last fault = %q", s.LastFaultMessage)
	}
	if s.ClaimedAt == "" {
		t.Error("claimed_at should be set after Claimed")
	}
}

func TestCollector_ConcurrentUse(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.OracleInvoked()
				c.Rejected()
			}
		}()
	}
	wg.Wait()

	if c.Invocations() != 1600 {
		t.Errorf("invocations = %d, want 1600", c.Invocations())
	}
	if c.RejectedCount() != 1600 {
		t.Errorf("rejected = %d, want 1600", c.RejectedCount())
	}
}
