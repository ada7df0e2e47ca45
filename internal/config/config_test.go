package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
password = "from-file"
dbname = "fieldops"

[scheduling]
default_timezone = "Europe/Moscow"
vip_revenue_threshold = 2500.0

[segment_cache]
size = 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 2500.0, cfg.Scheduling.VIPRevenueThreshold)
	assert.Equal(t, 0, cfg.SegmentCache.Size)
	assert.Equal(t, 15*time.Second, cfg.Metrics.PoolStatsInterval())

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoadPasswordFromEnv(t *testing.T) {
	t.Setenv(passwordEnv, "secret")
	path := writeConfig(t, "[database]\npassword = \"from-file\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=secret")
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("broken toml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server\nhttp_port = "))
		assert.Error(t, err)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[scheduling]\ndefault_timezone = \"Mars/Olympus\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("bad port", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[server]\nhttp_port = 70000\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("cache without ttl", func(t *testing.T) {
		_, err := Load(writeConfig(t, "[segment_cache]\nsize = 10\nttl_seconds = 0\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestDSN(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "host=localhost port=5432 user=postgres password= dbname=availability sslmode=disable", cfg.Database.DSN())
}
