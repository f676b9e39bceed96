package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/clientdesk/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. Only the flags
// handled here are passed to the flag set (see flagx.FilterArgs), so -c is
// left to parseJson. Invalid values and non-positive intervals panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the REST API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	interval := fs.Int("i", int(cfg.ExpiryCheckInterval.Seconds()), "session expiry check interval (in seconds)")
	fs.StringVar(&cfg.LogBackend, "l", cfg.LogBackend, "log backend: slog or zap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	if *timeout <= 0 {
		panic(fmt.Errorf("request timeout must be positive, got %d", *timeout))
	}
	if *interval <= 0 {
		panic(fmt.Errorf("expiry check interval must be positive, got %d", *interval))
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	cfg.ExpiryCheckInterval = time.Duration(*interval) * time.Second
}
