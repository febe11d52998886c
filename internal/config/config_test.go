package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
servers:
  - quake.se:28501
  - berlin2.qwsv.net:27500
query:
  timeout: 500ms
output:
  json: true
  interval: 10s
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"quake.se:28501", "berlin2.qwsv.net:27500"}, cfg.Servers)
	assert.Equal(t, 500*time.Millisecond, cfg.Query.Timeout)
	assert.True(t, cfg.Output.JSON)
	assert.Equal(t, 10*time.Second, cfg.Output.Interval)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `servers: [quake.se:28501]`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Query.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Output.Interval)
	assert.Equal(t, "warning", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "servers: [unbalanced")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Query.Timeout = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output.Interval = 100 * time.Millisecond
	assert.Error(t, cfg.Validate())
}
