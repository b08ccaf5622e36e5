package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultBackendURL is the backend origin used when none is configured.
const DefaultBackendURL = "http://localhost:5000"

// Config holds application-level configuration.
type Config struct {
	BackendBaseURL string       // e.g. "http://localhost:5000"
	UIStatePath    string       // Path to the persisted UI state (theme)
	LogPath        string       // Log file; empty disables logging
	LogLevel       logrus.Level // Minimum log level
	MetricsAddr    string       // Optional listen address for /metrics
}

// Load reads configuration from environment variables.
//
//	TERMINALSENTIMENT_BACKEND_URL   backend origin (default: http://localhost:5000)
//	TERMINALSENTIMENT_STATE         UI state file (default: ~/.config/terminalsentiment/ui_state.json)
//	TERMINALSENTIMENT_LOG_FILE      log file (default: none)
//	TERMINALSENTIMENT_LOG_LEVEL     logrus level (default: info)
//	TERMINALSENTIMENT_METRICS_ADDR  e.g. "127.0.0.1:9464" (default: disabled)
func Load() (Config, error) {
	backend, err := NormalizeBackendURL(loadOptional("TERMINALSENTIMENT_BACKEND_URL", DefaultBackendURL))
	if err != nil {
		return Config{}, err
	}

	statePath := os.Getenv("TERMINALSENTIMENT_STATE")
	if statePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		statePath = filepath.Join(home, ".config", "terminalsentiment", "ui_state.json")
	}

	level, err := logrus.ParseLevel(loadOptional("TERMINALSENTIMENT_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid TERMINALSENTIMENT_LOG_LEVEL: %w", err)
	}

	return Config{
		BackendBaseURL: backend,
		UIStatePath:    statePath,
		LogPath:        strings.TrimSpace(os.Getenv("TERMINALSENTIMENT_LOG_FILE")),
		LogLevel:       level,
		MetricsAddr:    strings.TrimSpace(os.Getenv("TERMINALSENTIMENT_METRICS_ADDR")),
	}, nil
}

// NormalizeBackendURL validates an absolute http(s) origin and strips trailing slashes.
func NormalizeBackendURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid backend url %q: must be an absolute URL", raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid backend url %q: only http and https are allowed", raw)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func loadOptional(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// UIState is the persisted client preference file.
type UIState struct {
	Theme string `json:"theme,omitempty"`
}

// LoadUIState reads the state file. A missing file yields the zero state.
func LoadUIState(path string) (UIState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return UIState{}, nil
		}
		return UIState{}, fmt.Errorf("reading ui state: %w", err)
	}
	var st UIState
	if err := json.Unmarshal(data, &st); err != nil {
		return UIState{}, fmt.Errorf("parsing ui state: %w", err)
	}
	return st, nil
}

// SaveUIState writes the state file, creating its directory.
func SaveUIState(path string, st UIState) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating state dir: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ui state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing ui state: %w", err)
	}
	return nil
}

// FileThemeStore persists the theme under the "theme" key of the UI state file.
type FileThemeStore struct {
	Path string
}

// LoadTheme returns the stored theme name, "" when unset.
func (s FileThemeStore) LoadTheme() (string, error) {
	st, err := LoadUIState(s.Path)
	if err != nil {
		return "", err
	}
	return st.Theme, nil
}

// SaveTheme stores the theme name, preserving other state.
func (s FileThemeStore) SaveTheme(theme string) error {
	st, err := LoadUIState(s.Path)
	if err != nil {
		st = UIState{}
	}
	st.Theme = theme
	return SaveUIState(s.Path, st)
}
