package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the CREDPROBE_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("CREDPROBE_URL"); v != "" {
		cfg.TargetURL = v
	}
	if v := os.Getenv("CREDPROBE_USERNAME"); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv("CREDPROBE_FAILURE_MARKER"); v != "" {
		cfg.FailureMarker = v
	}
	if v := os.Getenv("CREDPROBE_WORDLIST"); v != "" {
		cfg.Wordlist = v
	}
	if v := os.Getenv("CREDPROBE_ALPHABET"); v != "" {
		cfg.Alphabet = v
	}
	if v := envInt("CREDPROBE_PREFIX_MAX"); v > 0 {
		cfg.PrefixMax = v
	}
	if v := envInt("CREDPROBE_PREFIX_WIDTH"); v > 0 {
		cfg.PrefixWidth = v
	}
	if v := envInt("CREDPROBE_WORKERS"); v > 0 {
		cfg.Workers = v
	}
	if v := envInt("CREDPROBE_TIMEOUT"); v > 0 {
		cfg.Timeout = secondsDuration(v)
	}
	if v := envInt("CREDPROBE_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
	if envBool("CREDPROBE_CALIBRATE") {
		cfg.Calibrate = true
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func secondsDuration(sec int) time.Duration {
	return time.Duration(sec) * time.Second
}
