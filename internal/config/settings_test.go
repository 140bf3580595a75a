package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	t.Setenv("TASKTIMERS_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.Equal(t, DefaultTickInterval, settings.TickInterval())
	assert.True(t, settings.NotificationsEnabled())
}

func TestLoadSettings_ParsesFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKTIMERS_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(`{
		"debug": true,
		"max_log_files": 5,
		"db_path": "/tmp/custom.db",
		"tick_interval_ms": 250,
		"notifications": false
	}`), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
	assert.Equal(t, "/tmp/custom.db", settings.DBPath)
	assert.Equal(t, 250*time.Millisecond, settings.TickInterval())
	assert.False(t, settings.NotificationsEnabled())
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TASKTIMERS_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	t.Setenv("TASKTIMERS_HOME", filepath.Join(t.TempDir(), "fresh"))
	notifications := false
	in := &Settings{Notifications: &notifications}

	require.NoError(t, SaveSettings(in))
	out, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTickInterval_HasFloor(t *testing.T) {
	ms := 5
	settings := &Settings{TickIntervalMs: &ms}

	assert.Equal(t, 100*time.Millisecond, settings.TickInterval())
}

func TestGetHome_ExpandsTilde(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	t.Setenv("TASKTIMERS_HOME", "~/timers")

	assert.Equal(t, filepath.Join(homeDir, "timers"), GetHome())
	assert.Equal(t, filepath.Join(homeDir, "timers", "state.db"), GetDBPath())
	assert.Equal(t, filepath.Join(homeDir, "timers", "tasktimers.lock"), GetLockPath(GetDBPath()))
}

func TestGetSettingsExample_CoversEveryField(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 5)
	assert.Equal(t, true, example["notifications"])
	assert.Equal(t, false, example["debug"])
	assert.Equal(t, 1000, example["tick_interval_ms"])
}
