// Package errors provides domain-specific error types for credprobe.
//
// These types carry structured context (operation, target, retryability)
// that lets the oracle layer decide whether a transport fault is worth
// another attempt and keeps diagnostics richer than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
	"net"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrOracleTimeout  = errors.New("oracle call timed out")
	ErrCircuitOpen    = errors.New("circuit breaker is open")
	ErrMarkerNotFound = errors.New("failure marker never seen in response")
	ErrSpaceExhausted = errors.New("candidate space exhausted")
)

// ── Structured error types ───────────────────────────────────────────

// ProbeError represents a failure while testing one candidate against
// the remote oracle.
type ProbeError struct {
	Op        string // operation: "post", "dial", "handshake", "read"
	Target    string // URL or host:port being probed
	Err       error  // underlying error
	Retryable bool   // whether the transport fault is likely transient
}

func (e *ProbeError) Error() string {
	s := fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
	if e.Retryable {
		s += " (retryable)"
	}
	return s
}

func (e *ProbeError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates a ProbeError, automatically detecting retryability from
// the underlying error.
func Wrap(op, target string, err error) *ProbeError {
	return &ProbeError{
		Op:        op,
		Target:    target,
		Err:       err,
		Retryable: classifyRetryable(err),
	}
}

// ── Classification helpers ───────────────────────────────────────────

// IsRetryable reports whether err is worth retrying.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var pe *ProbeError
	if errors.As(err, &pe) {
		return pe.Retryable
	}
	return classifyRetryable(err)
}

// classifyRetryable inspects standard library error types.
func classifyRetryable(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return opErr.Temporary() //nolint:staticcheck // Temporary is deprecated but still useful
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() //nolint:staticcheck
	}
	return false
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use credprobe/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }
