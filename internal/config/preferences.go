package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Preferences is the cosmetic theme state the console keeps between runs.
// Nothing in the business domain depends on it.
type Preferences struct {
	DarkMode    bool   `json:"darkMode"`
	AccentColor string `json:"accentColor"`
}

// DefaultPreferences mirrors the console's first-run look.
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:    false,
		AccentColor: "#6366f1",
	}
}

// preferencesPath returns ~/.invento/preferences.json.
func preferencesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".invento", "preferences.json"), nil
}

// LoadPreferences reads the preferences file, falling back to defaults when it
// does not exist or cannot be parsed.
func LoadPreferences() Preferences {
	path, err := preferencesPath()
	if err != nil {
		return DefaultPreferences()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultPreferences()
	}

	prefs := DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return DefaultPreferences()
	}
	return prefs
}

// SavePreferences writes the preferences file, creating ~/.invento if needed.
func SavePreferences(prefs Preferences) error {
	path, err := preferencesPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
