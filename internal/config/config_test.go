package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INVENTO_API_BASE_URL", "")
	t.Setenv("INVENTO_API_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Development)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INVENTO_API_BASE_URL", "http://localhost:5000/Api/V1")
	t.Setenv("INVENTO_API_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "http://localhost:5000/Api/V1", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Development)
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("INVENTO_API_TIMEOUT", "soon")

	assert.Equal(t, 30*time.Second, Load().Timeout)
}

func TestPreferencesRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	prefs := Preferences{DarkMode: true, AccentColor: "#ff8800"}
	require.NoError(t, SavePreferences(prefs))

	got := LoadPreferences()
	assert.Equal(t, prefs, got)
}

func TestLoadPreferencesMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Equal(t, DefaultPreferences(), LoadPreferences())
}

func TestLoadPreferencesMalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".invento")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.json"), []byte("{nope"), 0o644))

	assert.Equal(t, DefaultPreferences(), LoadPreferences())
}
