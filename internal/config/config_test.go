package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netresearch/go-cronnext"
)

const fullYAML = `
location: Europe/Berlin
search_limit: 10080

log:
  level: debug
  format: json

server:
  addr: 127.0.0.1:9090
  max_count: 10
  rate_per_sec: 2.5
  watch: true
`

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Berlin", cfg.Location)
	assert.Equal(t, 10080, cfg.SearchLimit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Server.MaxCount)
	assert.InDelta(t, 2.5, cfg.Server.RatePerSec, 0)
	assert.Equal(t, 3, cfg.Server.Burst, "burst defaults to the rounded-up rate")
	assert.True(t, cfg.Server.Watch)
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)

	assert.Empty(t, cfg.Location)
	assert.Equal(t, cronnext.DefaultSearchLimit, cfg.SearchLimit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 50, cfg.Server.MaxCount)
	assert.Equal(t, Default(), cfg)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown location", "location: Mars/Olympus", `location "Mars/Olympus"`},
		{"negative limit", "search_limit: -1", "search_limit must be positive"},
		{"unknown level", "log: {level: loud}", `log.level "loud"`},
		{"unknown format", "log: {format: xml}", `log.format "xml" must be console or json`},
		{"negative max count", "server: {max_count: -3}", "server.max_count must be positive"},
		{"negative rate", "server: {rate_per_sec: -1}", "server.rate_per_sec must not be negative"},
		{"negative burst", "server: {burst: -1}", "server.burst must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config: validation failed")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_CollectsAllErrors(t *testing.T) {
	_, err := Parse([]byte("search_limit: -1\nlog: {format: xml}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_limit must be positive; log.format")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("location: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cronnext.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.Location)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {format: xml}"), 0o644))
	_, err = LoadOrDefault(path)
	assert.Error(t, err)
}

func TestTimeLocation(t *testing.T) {
	assert.Equal(t, time.Local, Default().TimeLocation())

	cfg, err := Parse([]byte("location: UTC"))
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.TimeLocation().String())
}
