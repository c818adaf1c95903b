package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	d, err := cfg.PlayInterval()
	require.NoError(t, err)
	assert.Equal(t, 400*time.Millisecond, d)
}

func TestLoadConfig_YAMLAndJSON(t *testing.T) {
	cfg, err := LoadConfig(writeFile(t, "c.yaml", "log_level: debug\ninterval: 50ms\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "50ms", cfg.Interval)
	assert.Equal(t, formatTable, cfg.Format)

	cfg, err = LoadConfig(writeFile(t, "c.json", `{"format": "json", "interval": "1s"}`))
	require.NoError(t, err)
	assert.Equal(t, formatJSON, cfg.Format)
	assert.Equal(t, "1s", cfg.Interval)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "c.yaml", "interval: 50ms\nlog_level: warn\n")
	t.Setenv("PATHTRACE_INTERVAL", "75ms")
	t.Setenv("PATHTRACE_LOG_LEVEL", "error")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "75ms", cfg.Interval)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "c.yaml", "interval: soon\n"))
	require.ErrorContains(t, err, "interval")

	_, err = LoadConfig(writeFile(t, "c.yaml", "log_level: chatty\n"))
	require.ErrorContains(t, err, "log level")

	_, err = LoadConfig(writeFile(t, "c.yaml", "[not: a: map"))
	require.ErrorContains(t, err, "parse config")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
