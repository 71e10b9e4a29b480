package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme 'solarized-dark', got %q", cfg.Theme)
	}
	if cfg.SuccessInterval != time.Second {
		t.Errorf("expected success interval 1s, got %v", cfg.SuccessInterval)
	}
	if cfg.FailureInterval != 2*time.Second {
		t.Errorf("expected failure interval 2s, got %v", cfg.FailureInterval)
	}
	if cfg.MaxHistory != 0 {
		t.Errorf("expected unbounded history, got %d", cfg.MaxHistory)
	}
	if !cfg.TrackLoss || !cfg.AutoScale {
		t.Error("expected loss tracking and auto scale on by default")
	}
}

func TestConfigSaveLoad(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	cfg := DefaultConfig()
	cfg.Theme = "dracula"
	cfg.FailureInterval = 3 * time.Second
	cfg.BackoffCap = 30 * time.Second
	cfg.AutoScale = false
	cfg.ManualMax = 250

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.Theme != "dracula" {
		t.Errorf("expected theme 'dracula', got %q", loaded.Theme)
	}
	if loaded.FailureInterval != 3*time.Second {
		t.Errorf("expected failure interval 3s, got %v", loaded.FailureInterval)
	}
	if loaded.BackoffCap != 30*time.Second {
		t.Errorf("expected backoff cap 30s, got %v", loaded.BackoffCap)
	}
	if loaded.AutoScale {
		t.Error("expected auto scale off after reload")
	}
	if loaded.ManualMax != 250 {
		t.Errorf("expected manual max 250, got %v", loaded.ManualMax)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadConfig() should return defaults for missing file, got error: %v", err)
	}
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}

func TestConfigLoadNormalizes(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	data := `
success_interval = "5s"
failure_interval = "1s"
backoff_cap = "bogus"
probe_timeout = "1m"
manual_max = 5000.0
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.FailureInterval != 5*time.Second {
		t.Errorf("failure interval should be raised to success interval, got %v", cfg.FailureInterval)
	}
	if cfg.BackoffCap != 5*time.Second {
		t.Errorf("backoff cap should be raised to failure interval, got %v", cfg.BackoffCap)
	}
	if cfg.ProbeTimeout != MaxProbeTimeout {
		t.Errorf("expected probe timeout clamped to %v, got %v", MaxProbeTimeout, cfg.ProbeTimeout)
	}
	if cfg.ManualMax != 2000 {
		t.Errorf("expected manual max clamped to 2000, got %v", cfg.ManualMax)
	}
}

func TestConfigLoadMalformed(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")
	os.WriteFile(path, []byte("theme = "), 0644)

	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for malformed TOML")
	}
}
