package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/tacogips/skadd/internal/debug"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// ViperLoader layers defaults, a YAML file and SKADD_* environment
// variables, in increasing precedence.
type ViperLoader struct{}

// NewLoader creates a new ViperLoader instance.
func NewLoader() Loader {
	return &ViperLoader{}
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load loads configuration from the specified file path. The file must exist.
func (l *ViperLoader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
		}
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid YAML syntax", err)
	}
	return l.decode(v, path)
}

// LoadOrDefault loads configuration or returns defaults (with environment
// overrides) if the file doesn't exist. An empty path means
// DefaultConfigPath.
func (l *ViperLoader) LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if path != "" {
		cfg, err := l.Load(path)
		if err == nil {
			return cfg, nil
		}
		if cfgErr, ok := err.(*ConfigError); !ok || cfgErr.Type != ConfigNotFound {
			return nil, err
		}
		debug.Debug("[config] No configuration file at %s, using defaults", path)
	}
	return l.decode(newViper(), "")
}

// FromEnv returns the defaults with SKADD_* environment overrides applied,
// ignoring any configuration file.
func FromEnv() (*Config, error) {
	l := &ViperLoader{}
	return l.decode(newViper(), "")
}

func (l *ViperLoader) decode(v *viper.Viper, path string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to decode configuration", err)
	}
	if err := l.Validate(&cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}
	debug.DebugValue("config.catalog.timeout", cfg.Catalog.Timeout)
	debug.DebugValue("config.output.dir", cfg.Output.Dir)
	return &cfg, nil
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
