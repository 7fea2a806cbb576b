package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[metrics]
enabled = true
service_name = "salon-stub"

[salon]
opens_at = 10
closes_at = 12
timezone = "UTC"
services = ["Cut", "Blow-dry"]
stylists = ["Ashley", "Jo"]

[salon.service_stylists]
"Cut" = ["Ashley"]

[client]
base_url = "http://salon.local"
timeout = 3
requests_per_second = 2.5
burst = 2
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Salon.OpensAt)
	assert.Equal(t, 12, cfg.Salon.ClosesAt)
	assert.Equal(t, []string{"Cut", "Blow-dry"}, cfg.Salon.Services)
	assert.Equal(t, []string{"Ashley"}, cfg.Salon.Catalog().Stylists("Cut"))
	assert.Empty(t, cfg.Salon.Catalog().Stylists("Beard trim"))
	assert.Equal(t, "http://salon.local", cfg.Client.BaseURL)
	assert.Equal(t, 2.5, cfg.Client.RequestsPerSecond)

	loc, err := cfg.Salon.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, Default().Salon.OpensAt, cfg.Salon.OpensAt)
	assert.Equal(t, []string{"Ashley", "Jo", "Pat", "Sam"}, cfg.Salon.Stylists)
	assert.Equal(t, []string{"Ashley", "Jo"}, cfg.Salon.Catalog().Stylists("Cut & color"))
}

func TestLoad_CustomCatalogReplacesDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
[salon]
services = ["Perm"]
stylists = ["Jo"]

[salon.service_stylists]
"Perm" = ["Jo"]
`))
	require.NoError(t, err)

	catalog := cfg.Salon.Catalog()
	assert.Len(t, catalog, 1)
	assert.Equal(t, []string{"Jo"}, catalog.Stylists("Perm"))
	assert.Empty(t, catalog.Stylists("Cut & color"))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvSalonAPIURL, "http://override:1234")
	t.Setenv(EnvHTTPPort, "7070")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "http://override:1234", cfg.Client.BaseURL)
	assert.Equal(t, 7070, cfg.Server.HTTPPort)
	assert.Equal(t, "warn", cfg.Logs.Level)
}

func TestLoad_InvalidPortEnv(t *testing.T) {
	t.Setenv(EnvHTTPPort, "eighty")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_InvalidHours(t *testing.T) {
	_, err := Load(writeConfig(t, "[salon]\nopens_at = 19\ncloses_at = 9\n"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}

func TestValidate_BadTimezone(t *testing.T) {
	cfg := Default()
	cfg.Salon.Timezone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}
