package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	def := Default()
	if cfg.API.BaseURL != def.API.BaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, def.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v, want 15s", cfg.API.Timeout)
	}
	if cfg.Overlay.Watchdog != 10*time.Second {
		t.Errorf("Watchdog = %v, want 10s", cfg.Overlay.Watchdog)
	}
	if cfg.Toast.TTL != 3*time.Second {
		t.Errorf("TTL = %v, want 3s", cfg.Toast.TTL)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: https://shop.example.com/api
  timeout: 10s
overlay:
  watchdog: 15s
toast:
  ttl: 4s
session:
  ephemeral: true
log:
  level: debug
  file: /tmp/storefront.log
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.BaseURL != "https://shop.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.Overlay.Watchdog != 15*time.Second {
		t.Errorf("Watchdog = %v, want 15s", cfg.Overlay.Watchdog)
	}
	if cfg.Toast.TTL != 4*time.Second {
		t.Errorf("TTL = %v, want 4s", cfg.Toast.TTL)
	}
	// Unset keys keep their defaults.
	if cfg.Toast.Exit != 300*time.Millisecond {
		t.Errorf("Exit = %v, want 300ms", cfg.Toast.Exit)
	}
	if !cfg.Session.Ephemeral {
		t.Error("Session.Ephemeral should be true")
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "text" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad yaml", "api: [", "parsing config"},
		{"relative url", "api:\n  base_url: /api\n", "base_url"},
		{"ftp url", "api:\n  base_url: ftp://x/api\n", "base_url"},
		{"zero timeout", "api:\n  timeout: 0s\n", "api.timeout"},
		{"negative watchdog", "overlay:\n  watchdog: -1s\n", "overlay.watchdog"},
		{"zero ttl", "toast:\n  ttl: 0s\n", "toast.ttl"},
		{"negative exit", "toast:\n  exit: -5ms\n", "toast.exit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestDefaultPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	want := filepath.Join("/tmp/xdg-config", "storefront", "config.yaml")
	if got := DefaultPath(); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "storefront.example.yaml"))
	if err != nil {
		t.Fatalf("Load(example) error: %v", err)
	}
	if cfg.Toast.Exit != 300*time.Millisecond {
		t.Errorf("Toast.Exit = %v, want 300ms", cfg.Toast.Exit)
	}
}
