package services

import (
	"context"
	"fmt"
	"sync"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
)

// SettingsProvider exposes the current user preferences
type SettingsProvider interface {
	Current() domain.Settings
}

// SettingsService owns the user preferences and writes every change through
type SettingsService struct {
	mu       sync.RWMutex
	settings domain.Settings
	store    ports.SettingsStore
}

var _ SettingsProvider = (*SettingsService)(nil)

// NewSettingsService creates a SettingsService holding the defaults until Load runs
func NewSettingsService(store ports.SettingsStore) *SettingsService {
	return &SettingsService{
		settings: domain.DefaultSettings(),
		store:    store,
	}
}

// Load reads the persisted preferences.
// Missing or unreadable preferences leave the defaults in place.
func (s *SettingsService) Load(ctx context.Context) {
	stored, err := s.store.ReadSettings(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read settings, using defaults", "error", err)
		return
	}
	if stored == nil {
		logging.Logger.Debug("No persisted settings, using defaults")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = *stored
	s.settings.Pomodoro = s.settings.Pomodoro.Normalize()
	logging.Logger.Debug("Settings loaded", "mode", s.settings.TimerMode, "sound", s.settings.Sound)
}

// Current returns a copy of the preferences
func (s *SettingsService) Current() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetTimerMode changes the display mode used by sessions started afterwards
func (s *SettingsService) SetTimerMode(ctx context.Context, mode domain.TimerMode) error {
	return s.update(ctx, func(settings *domain.Settings) {
		settings.TimerMode = mode
	})
}

// SetTheme changes the accent palette
func (s *SettingsService) SetTheme(ctx context.Context, theme domain.Theme) error {
	return s.update(ctx, func(settings *domain.Settings) {
		settings.Theme = theme
	})
}

// SetSound changes the completion sound
func (s *SettingsService) SetSound(ctx context.Context, sound domain.SoundChoice) error {
	return s.update(ctx, func(settings *domain.Settings) {
		settings.Sound = sound
	})
}

// SetPomodoro replaces the Pomodoro configuration
func (s *SettingsService) SetPomodoro(ctx context.Context, pomodoro domain.PomodoroSettings) error {
	if pomodoro.WorkSeconds < 0 || pomodoro.BreakSeconds < 0 {
		return domain.ErrInvalidDuration
	}
	return s.update(ctx, func(settings *domain.Settings) {
		settings.Pomodoro = pomodoro.Normalize()
	})
}

// update applies fn in memory first; the write failure is reported but the change is kept
func (s *SettingsService) update(ctx context.Context, fn func(*domain.Settings)) error {
	s.mu.Lock()
	fn(&s.settings)
	snapshot := s.settings
	s.mu.Unlock()

	if err := s.store.WriteSettings(ctx, snapshot); err != nil {
		logging.Logger.Error("Failed to persist settings", "error", err)
		return fmt.Errorf("failed to persist settings: %w", err)
	}

	logging.Logger.Info("Settings updated",
		"mode", snapshot.TimerMode,
		"theme", snapshot.Theme,
		"sound", snapshot.Sound)
	return nil
}
