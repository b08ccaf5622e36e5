package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	t.Setenv("TERMINALSENTIMENT_BACKEND_URL", "https://sentiment.example/")
	t.Setenv("TERMINALSENTIMENT_STATE", filepath.Join(t.TempDir(), "ui_state.json"))
	t.Setenv("TERMINALSENTIMENT_LOG_LEVEL", "debug")
	t.Setenv("TERMINALSENTIMENT_METRICS_ADDR", "127.0.0.1:9464")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.BackendBaseURL != "https://sentiment.example" {
		t.Fatalf("backend must be normalized: %q", cfg.BackendBaseURL)
	}
	if cfg.LogLevel != logrus.DebugLevel || cfg.MetricsAddr != "127.0.0.1:9464" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoad_DefaultsBackend(t *testing.T) {
	t.Setenv("TERMINALSENTIMENT_BACKEND_URL", "")
	t.Setenv("TERMINALSENTIMENT_STATE", filepath.Join(t.TempDir(), "ui_state.json"))
	t.Setenv("TERMINALSENTIMENT_LOG_LEVEL", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.BackendBaseURL != DefaultBackendURL || cfg.LogLevel != logrus.InfoLevel {
		t.Fatalf("unexpected defaults: %#v", cfg)
	}
}

func TestLoad_RejectsBadBackend(t *testing.T) {
	for _, raw := range []string{"localhost:5000", "ftp://host", "/relative"} {
		t.Setenv("TERMINALSENTIMENT_BACKEND_URL", raw)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestUIState_LoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "ui_state.json")

	st, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if st != (UIState{}) {
		t.Fatalf("expected empty state for missing file")
	}

	want := UIState{Theme: "dark"}
	if err := SaveUIState(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded state got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	if _, err := LoadUIState(path); err == nil {
		t.Fatalf("expected parse error for invalid json")
	}
}

func TestFileThemeStore_RoundTrip(t *testing.T) {
	store := FileThemeStore{Path: filepath.Join(t.TempDir(), "ui_state.json")}
	if got, err := store.LoadTheme(); err != nil || got != "" {
		t.Fatalf("expected empty theme, got %q err=%v", got, err)
	}
	if err := store.SaveTheme("dark"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got, _ := store.LoadTheme(); got != "dark" {
		t.Fatalf("expected dark, got %q", got)
	}
}
