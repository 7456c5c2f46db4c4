package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.List.PerPage)
	assert.Equal(t, ":8090", cfg.Console.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Zero(t, cfg.API.Timeout)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "gtc.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
api:
  base_url: http://api.example.com/api/v1/
  timeout: 5s
list:
  per_page: 20
log:
  format: json
`), 0o644))
	t.Setenv("GTC_LOG_LEVEL", "debug")

	cfg, err := Load(New(), file)
	require.NoError(t, err)
	assert.Equal(t, "http://api.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 20, cfg.List.PerPage)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBindFlagOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("GTC_LIST_PER_PAGE", "30")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("per-page", 10, "")
	require.NoError(t, fs.Parse([]string{"--per-page", "25"}))

	v := New()
	require.NoError(t, BindFlag(v, "list.per_page", fs.Lookup("per-page")))
	assert.Error(t, BindFlag(v, "log.level", fs.Lookup("missing")))

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.List.PerPage)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.List.PerPage = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.API.BaseURL = ""
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.API.Timeout = -time.Second
	assert.Error(t, bad.Validate())
}
