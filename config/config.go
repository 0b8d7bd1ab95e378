// Package config defines the runtime configuration for credprobe and
// provides helpers for parsing target and candidate-space specs.
package config

import (
	"net/url"
	"strings"
	"time"

	"credprobe/internal/errors"
)

// Mode selects which oracle the run is built against.
type Mode int

const (
	// ModeHTTP posts a login form to a URL and inspects the body.
	ModeHTTP Mode = iota
	// ModeSSH attempts password authentication against an SSH endpoint.
	ModeSSH
)

func (m Mode) String() string {
	switch m {
	case ModeHTTP:
		return "http"
	case ModeSSH:
		return "ssh"
	default:
		return "unknown"
	}
}

// Config holds every tuneable for a single credprobe run.
type Config struct {
	// ── Target ───────────────────────────────────────────────────────
	Mode          Mode
	TargetURL     string // http mode: login form endpoint
	SSHHost       string // ssh mode
	SSHPort       int
	Username      string
	FailureMarker string // http mode: substring marking a rejected login

	// ── Candidate space ──────────────────────────────────────────────
	PrefixMax   int    // numeric prefix runs 0..PrefixMax-1
	PrefixWidth int    // zero-padded width of the prefix
	Alphabet    string // one trailing character per candidate
	Wordlist    string // path to a newline-separated candidate file; overrides the cross product

	// ── Execution ────────────────────────────────────────────────────
	Workers   int
	Timeout   time.Duration // per-oracle-call deadline; 0 disables
	Calibrate bool          // pre-flight check of the failure marker

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
}

// ── SSH target parser ────────────────────────────────────────────────

// ParseSSHTarget extracts host and port from "host[:port]".  Port
// defaults to 22.
func ParseSSHTarget(spec string) (host string, port int, err error) {
	host = spec
	port = DefaultSSHPort
	if i := strings.LastIndex(spec, ":"); i >= 0 {
		host = spec[:i]
		pr, perr := parsePort(spec[i+1:])
		if perr != nil {
			return "", 0, &errors.ConfigError{
				Field:   "ssh",
				Value:   spec,
				Message: "invalid port in ssh target",
				Hint:    "expected host[:port]",
			}
		}
		port = pr
	}
	if host == "" {
		return "", 0, &errors.ConfigError{
			Field:   "ssh",
			Value:   spec,
			Message: "ssh host is required",
		}
	}
	return host, port, nil
}

func parsePort(s string) (int, error) {
	n := 0
	if s == "" {
		return 0, errors.New("empty port")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errors.New("non-numeric port")
		}
		n = n*10 + int(r-'0')
		if n > 65535 {
			return 0, errors.New("port out of range")
		}
	}
	if n < 1 {
		return 0, errors.New("port out of range")
	}
	return n, nil
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeHTTP:
		if c.TargetURL == "" {
			return &errors.ConfigError{
				Field:   "url",
				Message: "target URL is required in http mode",
			}
		}
		u, err := url.Parse(c.TargetURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return &errors.ConfigError{
				Field:   "url",
				Value:   c.TargetURL,
				Message: "not a valid http(s) URL",
			}
		}
		if c.FailureMarker == "" {
			return &errors.ConfigError{
				Field:   "failure-marker",
				Message: "failure marker must not be empty",
				Hint:    "the marker is how a rejected login is recognised; an empty marker would claim every candidate",
			}
		}
	case ModeSSH:
		if c.SSHHost == "" {
			return &errors.ConfigError{
				Field:   "ssh",
				Message: "ssh host is required in ssh mode",
			}
		}
		if c.SSHPort < 1 || c.SSHPort > 65535 {
			return &errors.ConfigError{
				Field:   "ssh",
				Value:   c.SSHPort,
				Message: "ssh port out of range 1-65535",
			}
		}
	}

	if c.Username == "" {
		return &errors.ConfigError{
			Field:   "username",
			Message: "username is required",
		}
	}

	if c.Workers < 1 {
		return &errors.ConfigError{
			Field:   "workers",
			Value:   c.Workers,
			Message: "worker count must be at least 1",
		}
	}

	if c.Wordlist == "" {
		if c.PrefixMax < 1 {
			return &errors.ConfigError{
				Field:   "prefix-max",
				Value:   c.PrefixMax,
				Message: "numeric prefix range must be at least 1",
			}
		}
		if c.PrefixWidth < 1 {
			return &errors.ConfigError{
				Field:   "prefix-width",
				Value:   c.PrefixWidth,
				Message: "prefix width must be at least 1",
			}
		}
		if c.Alphabet == "" {
			return &errors.ConfigError{
				Field:   "alphabet",
				Message: "suffix alphabet must not be empty",
				Hint:    "use --wordlist to search an explicit list instead",
			}
		}
	}

	return nil
}
