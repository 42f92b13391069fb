package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "trades.db", cfg.DBPath)
	assert.Equal(t, uint(200), cfg.QueryLimit)

	ttl, err := cfg.CacheTTLDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, ttl)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tracker.yaml", `
db_path: /var/lib/tracker/trades.db
cache_ttl: 90s
query_limit: 50
log_level: debug
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tracker/trades.db", cfg.DBPath)
	assert.Equal(t, uint(50), cfg.QueryLimit)

	ttl, err := cfg.CacheTTLDuration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, ttl)
}

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tracker.json", `{"db_path": "x.db", "log_level": "warn"}`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	// Unset fields keep defaults.
	assert.Equal(t, uint(200), cfg.QueryLimit)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tracker.yaml", "db_path: only.db\n")
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "only.db", cfg.DBPath)
	assert.Equal(t, "5m", cfg.CacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty db path", Config{CacheTTL: "5m"}},
		{"bad ttl", Config{DBPath: "x.db", CacheTTL: "soon"}},
		{"negative ttl", Config{DBPath: "x.db", CacheTTL: "-5m"}},
		{"bad level", Config{DBPath: "x.db", LogLevel: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
