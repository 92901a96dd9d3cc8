// Package config resolves where tasks are stored and how the CLI behaves.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"todo/internal/log"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// DefaultTaskFile is the task file used when nothing else is configured.
	// It is relative to the working directory.
	DefaultTaskFile = "todo.json"

	// ConfigFile is the optional YAML configuration filename.
	ConfigFile = "config.yaml"

	// EnvTaskFile overrides the task file path.
	EnvTaskFile = "TODO_FILE"

	// EnvLogLevel overrides the log level.
	EnvLogLevel = "TODO_LOG_LEVEL"
)

// fileConfig is the on-disk shape of config.yaml.
type fileConfig struct {
	File     string `yaml:"file"`
	LogLevel string `yaml:"logLevel"`
}

// Config holds resolved settings.
type Config struct {
	// TaskFile is the path of the JSON task file.
	TaskFile string

	// LogLevel is the diagnostic log threshold name.
	LogLevel string

	// Debug forces debug logging.
	Debug bool

	// Quiet suppresses confirmation messages.
	Quiet bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TaskFile: DefaultTaskFile,
		LogLevel: "warn",
	}
}

// Load reads the YAML config file at path and applies environment overrides.
// If path is empty, DefaultConfigPath is used and a missing file yields defaults.
// An explicitly named file must exist.
// A relative file entry is resolved against the config file's directory.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("invalid config %s: %w", path, err)
		}
		if f := strings.TrimSpace(fc.File); f != "" {
			if !filepath.IsAbs(f) {
				f = filepath.Join(filepath.Dir(path), f)
			}
			cfg.TaskFile = f
		}
		if fc.LogLevel != "" {
			cfg.LogLevel = fc.LogLevel
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// no config file; defaults apply
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvTaskFile)); v != "" {
		cfg.TaskFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultConfigPath returns the path of the default YAML config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFile)
}

// Level returns the effective log level. Debug wins over LogLevel.
func (c *Config) Level() log.Level {
	if c.Debug {
		return log.Debug
	}
	return log.ParseLevel(c.LogLevel)
}
