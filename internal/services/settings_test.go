package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktimers/internal/adapters/storage"
	"tasktimers/internal/domain"
)

func TestSettings_DefaultsWhenNothingStored(t *testing.T) {
	svc := NewSettingsService(storage.NewMemoryRepository())

	svc.Load(context.Background())

	assert.Equal(t, domain.DefaultSettings(), svc.Current())
}

func TestSettings_DefaultsWhenStoreFails(t *testing.T) {
	store := storage.NewMemoryRepository()
	store.LoadErr = errors.New("locked")
	svc := NewSettingsService(store)

	svc.Load(context.Background())

	assert.Equal(t, domain.DefaultSettings(), svc.Current())
}

func TestSettings_ChangesAreWrittenThrough(t *testing.T) {
	store := storage.NewMemoryRepository()
	ctx := context.Background()
	svc := NewSettingsService(store)
	svc.Load(ctx)

	require.NoError(t, svc.SetTimerMode(ctx, domain.ModeCountup))
	require.NoError(t, svc.SetTheme(ctx, domain.ThemeGreen))
	require.NoError(t, svc.SetSound(ctx, domain.SoundChime))
	require.NoError(t, svc.SetPomodoro(ctx, domain.PomodoroSettings{WorkSeconds: 50 * 60, BreakSeconds: 600, Cycles: 0}))

	reloaded := NewSettingsService(store)
	reloaded.Load(ctx)
	want := domain.Settings{
		Pomodoro:  domain.PomodoroSettings{WorkSeconds: 50 * 60, BreakSeconds: 600, Cycles: 1},
		Sound:     domain.SoundChime,
		Theme:     domain.ThemeGreen,
		TimerMode: domain.ModeCountup,
	}
	assert.Equal(t, want, svc.Current())
	assert.Equal(t, want, reloaded.Current())
}

func TestSettings_RejectsNegativePomodoroDurations(t *testing.T) {
	svc := NewSettingsService(storage.NewMemoryRepository())

	err := svc.SetPomodoro(context.Background(), domain.PomodoroSettings{WorkSeconds: -1, Cycles: 2})

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Equal(t, domain.DefaultPomodoroSettings(), svc.Current().Pomodoro)
}

func TestSettings_WriteFailureKeepsChangeInMemory(t *testing.T) {
	store := storage.NewMemoryRepository()
	store.SaveErr = errors.New("disk full")
	svc := NewSettingsService(store)

	err := svc.SetSound(context.Background(), domain.SoundSilent)

	assert.ErrorIs(t, err, store.SaveErr)
	assert.Equal(t, domain.SoundSilent, svc.Current().Sound)
}
