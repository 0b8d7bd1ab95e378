package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultWorkers bounds the number of simultaneous oracle calls.
	DefaultWorkers = 10

	// DefaultOracleTimeout is the per-call deadline for one oracle
	// invocation.  A hung call would otherwise stall a worker slot for
	// the rest of the run.
	DefaultOracleTimeout = 10 * time.Second

	// DefaultFailureMarker is the substring whose presence in a login
	// response marks the candidate as rejected.
	DefaultFailureMarker = "Invalid"

	// DefaultPrefixMax is the exclusive upper bound of the numeric
	// prefix range (0..999).
	DefaultPrefixMax = 1000

	// DefaultPrefixWidth is the zero-padded width of the numeric prefix.
	DefaultPrefixWidth = 3

	// DefaultAlphabet supplies the trailing character of each candidate.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// DefaultSSHPort is the standard SSH port.
	DefaultSSHPort = 22

	// DefaultUsernameField and DefaultPasswordField are the form field
	// names posted by the HTTP oracle.
	DefaultUsernameField = "username"
	DefaultPasswordField = "password"
)
