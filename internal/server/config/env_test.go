package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overlays set variables", func(t *testing.T) {
		t.Setenv("ADDRESS", "127.0.0.1:9090")
		t.Setenv("DATABASE_DSN", "postgres://env")
		t.Setenv("SHUTDOWN_TIMEOUT", "45s")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "127.0.0.1:9090", cfg.EndpointAddrHTTP)
		assert.Equal(t, "postgres://env", cfg.DatabaseDSN)
		assert.Equal(t, 45*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("unset variables keep defaults", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})
}
