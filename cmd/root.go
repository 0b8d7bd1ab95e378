// Package cmd wires up the CLI flags and dispatches to the search core.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"credprobe/config"
	"credprobe/internal/metrics"
	"credprobe/internal/oracle"
	"credprobe/internal/search"
	"credprobe/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X credprobe/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Exit codes returned by Execute.  Found and Exhausted are distinct so
// scripts can tell "cracked" from "space empty" without parsing output.
const (
	ExitFound     = 0
	ExitError     = 1
	ExitExhausted = 2
)

// Execute parses args, builds the oracle and candidate source, and
// runs the search.  The returned int is the process exit code.
func Execute(ctx context.Context, args []string) (int, error) {
	cfg := &config.Config{
		FailureMarker: config.DefaultFailureMarker,
		PrefixMax:     config.DefaultPrefixMax,
		PrefixWidth:   config.DefaultPrefixWidth,
		Alphabet:      config.DefaultAlphabet,
		Workers:       config.DefaultWorkers,
		Timeout:       config.DefaultOracleTimeout,
		SSHPort:       config.DefaultSSHPort,
	}
	config.LoadFromEnv(cfg)

	fs := flag.NewFlagSet("credprobe", flag.ContinueOnError)

	// ── target ───────────────────────────────────────────────────
	var sshTarget string
	fs.StringVarP(&cfg.Username, "username", "U", cfg.Username, "Username to test candidates against")
	fs.StringVar(&sshTarget, "ssh", "", "Probe SSH password auth at host[:port] instead of an HTTP form")
	fs.StringVarP(&cfg.FailureMarker, "failure-marker", "F", cfg.FailureMarker,
		"Substring marking a rejected HTTP login")

	// ── candidate space ──────────────────────────────────────────
	fs.IntVar(&cfg.PrefixMax, "prefix-max", cfg.PrefixMax, "Exclusive upper bound of the numeric prefix")
	fs.IntVar(&cfg.PrefixWidth, "prefix-width", cfg.PrefixWidth, "Zero-padded width of the numeric prefix")
	fs.StringVar(&cfg.Alphabet, "alphabet", cfg.Alphabet, "Trailing-character alphabet")
	fs.StringVarP(&cfg.Wordlist, "wordlist", "W", cfg.Wordlist,
		"Newline-separated candidate file (overrides the cross product)")

	// ── execution ────────────────────────────────────────────────
	fs.IntVarP(&cfg.Workers, "workers", "j", cfg.Workers, "Concurrent oracle calls")
	var timeoutSec int
	fs.IntVarP(&timeoutSec, "timeout", "w", 0, "Per-oracle-call timeout in seconds")
	fs.BoolVar(&cfg.Calibrate, "calibrate", cfg.Calibrate,
		"Verify the failure marker with a known-wrong password before the run")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	// ── parse ────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return ExitError, err
	}

	if showHelp || len(args) == 0 {
		printUsage(fs)
		return ExitFound, nil
	}
	if showVersion {
		fmt.Printf("credprobe %s\n", version)
		return ExitFound, nil
	}

	if timeoutSec > 0 {
		cfg.Timeout = time.Duration(timeoutSec) * time.Second
	}

	// ── positional arguments ─────────────────────────────────────
	if sshTarget != "" {
		cfg.Mode = config.ModeSSH
		host, port, err := config.ParseSSHTarget(sshTarget)
		if err != nil {
			return ExitError, err
		}
		cfg.SSHHost = host
		cfg.SSHPort = port
		if fs.NArg() > 0 {
			return ExitError, fmt.Errorf("unexpected argument %q in ssh mode", fs.Arg(0))
		}
	} else {
		cfg.Mode = config.ModeHTTP
		switch fs.NArg() {
		case 0:
			if cfg.TargetURL == "" {
				return ExitError, fmt.Errorf("target URL required (use --help for usage)")
			}
		case 1:
			cfg.TargetURL = fs.Arg(0)
		default:
			return ExitError, fmt.Errorf("too many arguments")
		}
	}

	// ── validate ─────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return ExitError, err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbose)

	var probe search.Oracle
	switch cfg.Mode {
	case config.ModeSSH:
		probe = oracle.NewSSHPassword(cfg, logger)
	default:
		probe = oracle.NewHTTPForm(cfg, logger)
	}
	probe = search.WithTimeout(probe, cfg.Timeout)

	if cfg.Calibrate {
		if err := calibrate(ctx, probe, logger); err != nil {
			return ExitError, err
		}
	}

	src, finish, err := buildSource(cfg, logger)
	if err != nil {
		return ExitError, err
	}

	collector := metrics.New()
	pool := &search.Pool{
		Workers:  cfg.Workers,
		Oracle:   probe,
		Reporter: search.NewReporter(os.Stdout),
		Metrics:  collector,
		Logger:   logger,
	}

	logger.Info("searching with %d worker(s), mode %s", cfg.Workers, cfg.Mode)

	result, err := pool.Run(ctx, src)
	if err != nil {
		finish() //nolint:errcheck
		return ExitError, err
	}
	// A source that died mid-enumeration must not masquerade as clean
	// exhaustion: only part of the space was ever offered.
	if err := finish(); err != nil && !result.Found {
		return ExitError, fmt.Errorf("candidate source: %w", err)
	}

	if logger.Level() >= util.LogVerbose {
		logger.Verbose("run metrics:\n%s", collector.JSON())
	}

	if result.Found {
		fmt.Printf("%s:%s\n", cfg.Username, result.Winner)
		return ExitFound, nil
	}
	logger.Info("candidate space exhausted, no valid credentials")
	return ExitExhausted, nil
}

// ── helpers ──────────────────────────────────────────────────────────

// buildSource picks the wordlist when one is configured, otherwise the
// numeric-prefix × alphabet cross product.  The returned finish func
// releases the source and reports any read error that cut the
// enumeration short.
func buildSource(cfg *config.Config, logger *util.Logger) (search.Source, func() error, error) {
	if cfg.Wordlist != "" {
		wl, err := search.OpenWordlist(cfg.Wordlist)
		if err != nil {
			return nil, nil, err
		}
		logger.Verbose("candidates from wordlist %s", cfg.Wordlist)
		return wl, func() error {
			wl.Close()
			return wl.Err()
		}, nil
	}
	cp := search.NewCrossProduct(cfg.PrefixMax, cfg.PrefixWidth, cfg.Alphabet)
	logger.Verbose("candidate space: %d prefixes × %d suffixes = %d",
		cfg.PrefixMax, len(cfg.Alphabet), cp.Size())
	return cp, func() error { return nil }, nil
}

// calibrate sends one password that is known to be wrong and checks
// that the oracle reports it as rejected.  Catches a bad failure
// marker before the whole space is burned on it.  Needs a terminal to
// read the throwaway password; skipped otherwise.
func calibrate(ctx context.Context, probe search.Oracle, logger *util.Logger) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		logger.Verbose("calibration skipped: stdin is not a terminal")
		return nil
	}

	fmt.Fprint(os.Stderr, "known-wrong password for calibration: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("calibration: %w", err)
	}

	switch out := probe.Test(ctx, search.Candidate(raw)); out.Kind {
	case search.OutcomeRejected:
		logger.Info("calibration ok: marker matched the rejected login")
		return nil
	case search.OutcomeSuccess:
		return fmt.Errorf("calibration: known-wrong password was accepted — failure marker is wrong")
	default:
		return fmt.Errorf("calibration: oracle fault: %w", out.Err)
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `credprobe – concurrent credential-search engine v%s

Enumerates a candidate space and tests each candidate against a remote
oracle with a bounded worker pool, stopping at the first valid hit.

Usage:
  credprobe -U user [options] <login-url>        HTTP form mode
  credprobe -U user --ssh host[:port] [options]  SSH password mode

Exit codes: 0 found, 2 exhausted, 1 error.

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  credprobe -U mark -v http://lab.example/login.php
  credprobe -U root --ssh 10.0.0.5:2222 -W passwords.txt -j 20
`)
}
