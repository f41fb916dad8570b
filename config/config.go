package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration
type Config struct {
	// SubscriptionID overrides the Azure CLI default subscription.
	SubscriptionID string `yaml:"subscription_id,omitempty"`
	// ExportDir is where CSV exports land.
	ExportDir string `yaml:"export_dir"`
	// HistoryDir is where the scan history database lives.
	HistoryDir string `yaml:"history_dir"`
	// Watch configures the daemon mode.
	Watch Watch `yaml:"watch,omitempty"`
	// FailFastThreshold is how many consecutive detector failures
	// abort a scan before any detector has succeeded.
	FailFastThreshold int `yaml:"fail_fast_threshold"`
}

// Watch defines daemon mode behavior
type Watch struct {
	Interval    time.Duration `yaml:"interval"`
	MetricsAddr string        `yaml:"metrics_addr"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		ExportDir:         filepath.Join(home, ".azprune", "exports"),
		HistoryDir:        filepath.Join(home, ".azprune"),
		FailFastThreshold: 5,
		Watch: Watch{
			Interval:    time.Hour,
			MetricsAddr: ":2113",
		},
	}
}

// Load loads configuration from file, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate ensures config has usable values
func (c *Config) Validate() error {
	if c.ExportDir == "" {
		return fmt.Errorf("export_dir is required")
	}
	if c.HistoryDir == "" {
		return fmt.Errorf("history_dir is required")
	}
	if c.FailFastThreshold <= 0 {
		return fmt.Errorf("fail_fast_threshold must be positive")
	}
	if c.Watch.Interval < time.Minute {
		return fmt.Errorf("watch interval must be at least one minute")
	}
	return nil
}
