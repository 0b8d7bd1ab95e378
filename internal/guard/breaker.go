package guard

import (
	"sync"
	"time"

	cperrors "credprobe/internal/errors"
)

// State represents the breaker's operational state.
type State int

const (
	// StateClosed is normal operation — probes pass through.
	StateClosed State = iota
	// StateOpen means the endpoint is failing — probes are rejected
	// without touching the network.
	StateOpen
	// StateHalfOpen allows a limited number of probes to test recovery.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a [Breaker].
type BreakerConfig struct {
	// MaxFailures is the number of consecutive transport failures
	// before opening the circuit (default 5).  Rejected credentials do
	// not count — only faults reach the breaker.
	MaxFailures int
	// ResetTimeout is how long the circuit stays open before moving to
	// half-open (default 10s).
	ResetTimeout time.Duration
	// HalfOpenMax is the number of consecutive successes in half-open
	// state required to close the circuit (default 2).
	HalfOpenMax int
	// OnStateChange is called whenever the state transitions.  It runs
	// under the lock, so keep it fast.
	OnStateChange func(from, to State)
}

// DefaultBreakerConfig returns sensible defaults for an HTTP login
// endpoint.
func DefaultBreakerConfig() *BreakerConfig {
	return &BreakerConfig{
		MaxFailures:  5,
		ResetTimeout: 10 * time.Second,
		HalfOpenMax:  2,
	}
}

// Breaker prevents a worker pool from repeatedly probing a dead
// endpoint by tracking consecutive transport failures and
// short-circuiting once a threshold is crossed.  Safe for concurrent
// use by all workers.
type Breaker struct {
	mu            sync.Mutex
	state         State
	failures      int
	successes     int
	maxFailures   int
	resetTimeout  time.Duration
	halfOpenMax   int
	lastFailure   time.Time
	onStateChange func(from, to State)
}

// NewBreaker creates a circuit breaker with the given config.  A nil
// config selects the defaults.
func NewBreaker(cfg *BreakerConfig) *Breaker {
	if cfg == nil {
		cfg = DefaultBreakerConfig()
	}
	maxF := cfg.MaxFailures
	if maxF <= 0 {
		maxF = 5
	}
	rt := cfg.ResetTimeout
	if rt <= 0 {
		rt = 10 * time.Second
	}
	hom := cfg.HalfOpenMax
	if hom <= 0 {
		hom = 2
	}
	return &Breaker{
		state:         StateClosed,
		maxFailures:   maxF,
		resetTimeout:  rt,
		halfOpenMax:   hom,
		onStateChange: cfg.OnStateChange,
	}
}

// Execute runs fn through the breaker.  When the circuit is open, fn
// is not called and [cperrors.ErrCircuitOpen] is returned immediately.
func (b *Breaker) Execute(fn func() error) error {
	if err := b.beforeRequest(); err != nil {
		return err
	}
	err := fn()
	b.afterRequest(err)
	return err
}

// CurrentState returns the current breaker state.
func (b *Breaker) CurrentState() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Failures returns the current consecutive failure count.
func (b *Breaker) Failures() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.failures
}

// Reset forces the breaker back to closed state.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.successes = 0
	b.transition(StateClosed)
}

// ── internal ─────────────────────────────────────────────────────────

func (b *Breaker) beforeRequest() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return nil
	case StateOpen:
		if time.Since(b.lastFailure) > b.resetTimeout {
			b.transition(StateHalfOpen)
			return nil
		}
		return cperrors.ErrCircuitOpen
	case StateHalfOpen:
		return nil
	}
	return nil
}

func (b *Breaker) afterRequest(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.failures++
		b.successes = 0
		b.lastFailure = time.Now()

		switch b.state {
		case StateClosed:
			if b.failures >= b.maxFailures {
				b.transition(StateOpen)
			}
		case StateHalfOpen:
			// One failed probe sends us straight back to open.
			b.transition(StateOpen)
		}
		return
	}

	switch b.state {
	case StateClosed:
		b.failures = 0
	case StateHalfOpen:
		b.successes++
		if b.successes >= b.halfOpenMax {
			b.failures = 0
			b.successes = 0
			b.transition(StateClosed)
		}
	}
}

// transition changes state and fires the callback.  Caller holds mu.
func (b *Breaker) transition(to State) {
	if b.state == to {
		return
	}
	from := b.state
	b.state = to
	if b.onStateChange != nil {
		b.onStateChange(from, to)
	}
}
