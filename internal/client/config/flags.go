package config

import (
	"flag"
	"os"
	"time"

	"github.com/murilodk/campushub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the primary backend (overrides the prod URL)
//	-u string   base URL of the campus system
//	-d string   sqlite DSN of the local store
//	-t int      HTTP timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ProdAPIURL, "a", cfg.ProdAPIURL, "base URL of the primary backend")
	fs.StringVar(&cfg.CuAPIURL, "u", cfg.CuAPIURL, "base URL of the campus system")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN of the local store")
	httpTimeout := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
