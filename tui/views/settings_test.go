package views

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tonhe/pinggraph/internal/config"
	"github.com/tonhe/pinggraph/tui/styles"
)

func newTestSettings(t *testing.T) (SettingsView, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pinggraph", "config.toml")
	return NewSettingsView(styles.DefaultTheme, config.DefaultConfig(), path), path
}

func TestSettingsSave(t *testing.T) {
	s, path := newTestSettings(t)
	s.inputs[settingsFieldSuccess].SetValue("500ms")
	s.inputs[settingsFieldCap].SetValue("8s")
	s.inputs[settingsFieldHistory].SetValue("600")

	s, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if action != SettingsSaved {
		t.Fatalf("expected SettingsSaved, got %v (err %q)", action, s.err)
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.SuccessInterval != 500*time.Millisecond {
		t.Errorf("expected 500ms success interval, got %v", loaded.SuccessInterval)
	}
	if loaded.BackoffCap != 8*time.Second {
		t.Errorf("expected 8s backoff cap, got %v", loaded.BackoffCap)
	}
	if loaded.MaxHistory != 600 {
		t.Errorf("expected max history 600, got %d", loaded.MaxHistory)
	}
	if s.Config().SuccessInterval != 500*time.Millisecond {
		t.Error("Config() should return the saved values")
	}
}

func TestSettingsValidation(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
	}{
		{"malformed", settingsFieldSuccess, "soon"},
		{"failure below success", settingsFieldFailure, "100ms"},
		{"cap below failure", settingsFieldCap, "1s"},
		{"timeout too long", settingsFieldTimeout, "30s"},
		{"negative history", settingsFieldHistory, "-1"},
	}
	for _, tt := range tests {
		s, path := newTestSettings(t)
		s.inputs[tt.field].SetValue(tt.value)
		s, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
		if action != SettingsNone {
			t.Errorf("%s: expected SettingsNone, got %v", tt.name, action)
		}
		if s.err == "" {
			t.Errorf("%s: expected a validation message", tt.name)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("%s: config should not be written", tt.name)
		}
	}
}

func TestSettingsThemeCycle(t *testing.T) {
	s, path := newTestSettings(t)
	start := s.selectedThemeSlug()
	s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyRight})
	if s.selectedThemeSlug() == start {
		t.Fatal("right should select another theme")
	}
	s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if s.selectedThemeSlug() != start {
		t.Error("left should undo right")
	}
	s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyLeft})
	want := s.selectedThemeSlug()
	s, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if action != SettingsSaved {
		t.Fatalf("expected SettingsSaved, got %v", action)
	}
	loaded, _ := config.LoadConfig(path)
	if loaded.Theme != want {
		t.Errorf("expected theme %q, got %q", want, loaded.Theme)
	}
}

func TestSettingsCancel(t *testing.T) {
	s, _ := newTestSettings(t)
	_, _, action := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if action != SettingsClose {
		t.Errorf("expected SettingsClose, got %v", action)
	}
}
