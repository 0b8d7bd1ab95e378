// Package metrics provides lightweight counters for tracking the
// progress of one credential-search run.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so the search core never needs to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks per-run statistics for the worker pool.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	invocations atomic.Int64 // oracle calls actually made
	rejected    atomic.Int64 // Rejected outcomes
	faults      atomic.Int64 // Error outcomes
	skipped     atomic.Int64 // candidates dropped without an oracle call

	mu           sync.RWMutex
	startTime    time.Time
	claimTime    time.Time
	lastFault    time.Time
	lastFaultMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Oracle metrics ───────────────────────────────────────────────────

// OracleInvoked records one real call to the oracle.
func (c *Collector) OracleInvoked() {
	if c == nil {
		return
	}
	c.invocations.Add(1)
}

// Rejected records an explicit denial from the oracle.
func (c *Collector) Rejected() {
	if c == nil {
		return
	}
	c.rejected.Add(1)
}

// Fault records a transport-level oracle failure.
func (c *Collector) Fault(msg string) {
	if c == nil {
		return
	}
	c.faults.Add(1)
	c.mu.Lock()
	c.lastFault = time.Now()
	c.lastFaultMsg = msg
	c.mu.Unlock()
}

// Skipped records a candidate dropped without an oracle call because a
// winner had already been claimed.
func (c *Collector) Skipped() {
	if c == nil {
		return
	}
	c.skipped.Add(1)
}

// Claimed records the moment the winning candidate was accepted.
func (c *Collector) Claimed() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.claimTime = time.Now()
	c.mu.Unlock()
}

// ── Accessors ────────────────────────────────────────────────────────

// Invocations returns the number of oracle calls made.
func (c *Collector) Invocations() int64 {
	if c == nil {
		return 0
	}
	return c.invocations.Load()
}

// RejectedCount returns the number of Rejected outcomes.
func (c *Collector) RejectedCount() int64 {
	if c == nil {
		return 0
	}
	return c.rejected.Load()
}

// FaultCount returns the number of Error outcomes.
func (c *Collector) FaultCount() int64 {
	if c == nil {
		return 0
	}
	return c.faults.Load()
}

// SkippedCount returns the number of candidates never offered to the
// oracle.
func (c *Collector) SkippedCount() int64 {
	if c == nil {
		return 0
	}
	return c.skipped.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Elapsed          string `json:"elapsed"`
	Invocations      int64  `json:"invocations"`
	Rejected         int64  `json:"rejected"`
	Faults           int64  `json:"faults"`
	Skipped          int64  `json:"skipped"`
	ClaimedAt        string `json:"claimed_at,omitempty"`
	LastFault        string `json:"last_fault,omitempty"`
	LastFaultMessage string `json:"last_fault_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Elapsed:     time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Invocations: c.invocations.Load(),
		Rejected:    c.rejected.Load(),
		Faults:      c.faults.Load(),
		Skipped:     c.skipped.Load(),
	}
	if !c.claimTime.IsZero() {
		s.ClaimedAt = c.claimTime.Format(time.RFC3339)
	}
	if !c.lastFault.IsZero() {
		s.LastFault = c.lastFault.Format(time.RFC3339)
		s.LastFaultMessage = c.lastFaultMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
