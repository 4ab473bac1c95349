package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API     APIConfig     `yaml:"api"`
	Overlay OverlayConfig `yaml:"overlay"`
	Toast   ToastConfig   `yaml:"toast"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type OverlayConfig struct {
	Watchdog time.Duration `yaml:"watchdog"`
}

type ToastConfig struct {
	TTL  time.Duration `yaml:"ttl"`
	Exit time.Duration `yaml:"exit"`
}

type SessionConfig struct {
	// Dir holds session.json. Empty means the XDG state directory.
	Dir string `yaml:"dir"`
	// Ephemeral keeps the session in memory only.
	Ephemeral bool `yaml:"ephemeral"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives log output; the terminal belongs to the UI.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8080/api",
			Timeout: 15 * time.Second,
		},
		Overlay: OverlayConfig{
			Watchdog: 10 * time.Second,
		},
		Toast: ToastConfig{
			TTL:  3 * time.Second,
			Exit: 300 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/storefront/config.yaml, falling back
// to ~/.config.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "storefront", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks durations and the base URL.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: api.base_url must be an absolute http(s) URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("config: api.timeout must be positive, got %s", c.API.Timeout)
	}
	if c.Overlay.Watchdog <= 0 {
		return fmt.Errorf("config: overlay.watchdog must be positive, got %s", c.Overlay.Watchdog)
	}
	if c.Toast.TTL <= 0 {
		return fmt.Errorf("config: toast.ttl must be positive, got %s", c.Toast.TTL)
	}
	if c.Toast.Exit < 0 {
		return fmt.Errorf("config: toast.exit must not be negative, got %s", c.Toast.Exit)
	}
	return nil
}
