package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config carries the tunables that are not worth a flag on every call.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Push     PushConfig     `yaml:"push"`

	// LockWaitSeconds bounds the wait on the document writer lock.
	LockWaitSeconds int `yaml:"lock_wait_seconds"`
}

type ProviderConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type PushConfig struct {
	IntervalMinutes int `yaml:"interval_minutes"`
}

func loadConfig(path string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		setDefaults(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(cfg)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Provider.TimeoutSeconds == 0 {
		cfg.Provider.TimeoutSeconds = 10
	}
	if cfg.Push.IntervalMinutes == 0 {
		cfg.Push.IntervalMinutes = 30
	}
	if cfg.LockWaitSeconds == 0 {
		cfg.LockWaitSeconds = 5
	}
}

func (c *Config) validate() error {
	if c.Provider.TimeoutSeconds < 0 {
		return fmt.Errorf("provider.timeout_seconds must not be negative")
	}
	if c.Push.IntervalMinutes < 0 {
		return fmt.Errorf("push.interval_minutes must not be negative")
	}
	if c.LockWaitSeconds < 0 {
		return fmt.Errorf("lock_wait_seconds must not be negative")
	}
	return nil
}

var loadConfigOnce = sync.OnceValues(func() (*Config, error) {
	path := *configFile
	if path == "" {
		path = filepath.Join(*dataDir, "config.yaml")
	}
	return loadConfig(path)
})

// LoadedConfig returns the process-wide config, loading it on first use. A
// broken config file is reported once and replaced by the defaults.
func LoadedConfig() *Config {
	cfg, err := loadConfigOnce()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = &Config{}
		setDefaults(cfg)
	}
	return cfg
}
