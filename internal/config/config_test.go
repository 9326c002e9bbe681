package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hdrkit.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Log.Outputs.File.Enabled)
	assert.Equal(t, 10, cfg.Log.Outputs.File.Rotation.MaxSizeMB)
	assert.Equal(t, "headers", cfg.Generate.Package)
	assert.Equal(t, "zz_generated.go", cfg.Generate.Output)
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `
hdrkit:
  log:
    level: debug
    format: json
    outputs:
      file:
        enabled: true
        path: /tmp/hdrkit-test.log
        rotation:
          max_backups: 9
  generate:
    package: proto
    output: proto_gen.go
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Outputs.File.Enabled)
	assert.Equal(t, "/tmp/hdrkit-test.log", cfg.Log.Outputs.File.Path)
	assert.Equal(t, 9, cfg.Log.Outputs.File.Rotation.MaxBackups)
	// untouched keys keep their defaults
	assert.Equal(t, 7, cfg.Log.Outputs.File.Rotation.MaxAgeDays)
	assert.Equal(t, "proto", cfg.Generate.Package)
	assert.Equal(t, "proto_gen.go", cfg.Generate.Output)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HDRKIT_LOG_LEVEL", "warn")
	t.Setenv("HDRKIT_GENERATE_PACKAGE", "envpkg")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "envpkg", cfg.Generate.Package)
}

func TestLoadInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
hdrkit:
  log:
    level: loud
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoadInvalidLogFormat(t *testing.T) {
	path := writeConfig(t, `
hdrkit:
  log:
    format: xml
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidateFileOutputNeedsPath(t *testing.T) {
	cfg := Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Outputs: LogOutputsConfig{
				File: FileOutputConfig{Enabled: true},
			},
		},
		Generate: GenerateConfig{Package: "headers"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is required")
}
