package config

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, zap.NewNop(), func(c *Config) { changes <- c })
	}()

	cfg := DefaultConfig()
	cfg.Theme = "dracula"

	// The watcher registers asynchronously, so keep writing until it reports.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(500 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case got := <-changes:
			if got.Theme != "dracula" {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() returned error: %v", err)
			}
			return
		case <-tick.C:
			if err := SaveConfig(cfg, path); err != nil {
				t.Fatalf("SaveConfig() error: %v", err)
			}
		case <-deadline:
			t.Fatal("no reload observed within 5s")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/dir/config.toml", zap.NewNop(), func(*Config) {})
	if err == nil {
		t.Error("expected error watching a missing directory")
	}
}
