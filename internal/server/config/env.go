package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config with env tags so the overlay can distinguish
// "variable not set" from a zero value.
type envConfig struct {
	EndpointAddrHTTP string        `env:"ADDRESS"`
	DatabaseDSN      string        `env:"DATABASE_DSN"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// parseEnv overlays values from environment variables onto config.
// A malformed variable (for example an unparseable SHUTDOWN_TIMEOUT)
// panics, same as a broken JSON file.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.ShutdownTimeout != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout
	}
}
