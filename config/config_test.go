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
	path := filepath.Join(t.TempDir(), "azprune.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 5, cfg.FailFastThreshold)
	assert.Equal(t, time.Hour, cfg.Watch.Interval)
	assert.Equal(t, ":2113", cfg.Watch.MetricsAddr)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
subscription_id: sub-42
export_dir: /tmp/exports
watch:
  interval: 30m
  metrics_addr: ":9999"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sub-42", cfg.SubscriptionID)
	assert.Equal(t, "/tmp/exports", cfg.ExportDir)
	assert.Equal(t, 30*time.Minute, cfg.Watch.Interval)
	assert.Equal(t, ":9999", cfg.Watch.MetricsAddr)
	// unset fields keep defaults
	assert.Equal(t, 5, cfg.FailFastThreshold)
	assert.NotEmpty(t, cfg.HistoryDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/azprune.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
export_dir: /tmp/exports
fail_fast_threshold: -1
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "fail_fast_threshold")

	path = writeConfig(t, `
export_dir: /tmp/exports
watch:
  interval: 5s
`)
	_, err = Load(path)
	assert.ErrorContains(t, err, "watch interval")
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "watch: [not: a: map")
	_, err := Load(path)
	assert.ErrorContains(t, err, "parse")
}
