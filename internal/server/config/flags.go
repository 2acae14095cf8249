package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/contacthub/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     HTTP bind address (e.g., ":8080")
//	-d string     PostgreSQL DSN
//	-t duration   graceful shutdown timeout (e.g., "10s")
//
// os.Args is first filtered to only the flags handled here using
// flagx.FilterArgs, avoiding collisions with flags owned by other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
