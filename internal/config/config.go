// Package config handles hdrkit tool configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the tool configuration.
// Maps to the `hdrkit:` root key in YAML.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Generate GenerateConfig `mapstructure:"generate"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level   string           `mapstructure:"level"`  // trace / debug / info / warn / error
	Format  string           `mapstructure:"format"` // json / text
	Outputs LogOutputsConfig `mapstructure:"outputs"`
}

// LogOutputsConfig contains log output destinations besides stderr.
type LogOutputsConfig struct {
	File FileOutputConfig `mapstructure:"file"`
}

// FileOutputConfig configures file log output.
type FileOutputConfig struct {
	Enabled  bool           `mapstructure:"enabled"`
	Path     string         `mapstructure:"path"`
	Rotation RotationConfig `mapstructure:"rotation"`
}

// RotationConfig configures log file rotation.
type RotationConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

// GenerateConfig holds code generator defaults.
type GenerateConfig struct {
	Package string `mapstructure:"package"`
	Output  string `mapstructure:"output"`
}

// configRoot is the top-level wrapper matching the YAML structure `hdrkit: ...`.
type configRoot struct {
	Hdrkit Config `mapstructure:"hdrkit"`
}

// Load loads configuration from path. An empty path yields the defaults,
// still subject to HDRKIT_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// key "hdrkit.log.level" maps to env "HDRKIT_LOG_LEVEL"
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var root configRoot
	if err := v.Unmarshal(&root); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg := root.Hdrkit

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("hdrkit.log.level", "info")
	v.SetDefault("hdrkit.log.format", "text")
	v.SetDefault("hdrkit.log.outputs.file.enabled", false)
	v.SetDefault("hdrkit.log.outputs.file.path", "hdrkit.log")
	v.SetDefault("hdrkit.log.outputs.file.rotation.max_size_mb", 10)
	v.SetDefault("hdrkit.log.outputs.file.rotation.max_age_days", 7)
	v.SetDefault("hdrkit.log.outputs.file.rotation.max_backups", 3)
	v.SetDefault("hdrkit.log.outputs.file.rotation.compress", false)

	v.SetDefault("hdrkit.generate.package", "headers")
	v.SetDefault("hdrkit.generate.output", "zz_generated.go")
}

// Validate checks enumerated settings.
func (cfg *Config) Validate() error {
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be trace/debug/info/warn/error)", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" && cfg.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json/text)", cfg.Log.Format)
	}
	if cfg.Log.Outputs.File.Enabled && cfg.Log.Outputs.File.Path == "" {
		return fmt.Errorf("log.outputs.file.path is required when log.outputs.file.enabled=true")
	}
	if cfg.Generate.Package == "" {
		return fmt.Errorf("generate.package must not be empty")
	}
	return nil
}
