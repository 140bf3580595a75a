package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultTickInterval is how often a live timer refreshes
const DefaultTickInterval = time.Second

// Settings represents the structure of $TASKTIMERS_HOME/settings.json.
// Unset fields fall back to defaults.
type Settings struct {
	DBPath         string `json:"db_path,omitempty"`
	Debug          *bool  `json:"debug,omitempty"`
	MaxLogFiles    *int   `json:"max_log_files,omitempty"`
	Notifications  *bool  `json:"notifications,omitempty"`
	TickIntervalMs *int   `json:"tick_interval_ms,omitempty"`
}

// TickInterval returns the configured refresh period, never below 100ms
func (s *Settings) TickInterval() time.Duration {
	if s == nil || s.TickIntervalMs == nil {
		return DefaultTickInterval
	}
	return max(100*time.Millisecond, time.Duration(*s.TickIntervalMs)*time.Millisecond)
}

// NotificationsEnabled defaults to true
func (s *Settings) NotificationsEnabled() bool {
	if s == nil || s.Notifications == nil {
		return true
	}
	return *s.Notifications
}

// LoadSettings loads settings from $TASKTIMERS_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TASKTIMERS_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
