package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktimers/internal/domain"
)

func TestMemoryRepository_InjectedErrors(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	boom := errors.New("boom")

	repo.SaveErr = boom
	assert.ErrorIs(t, repo.WriteLastTaskName(ctx, "x"), boom)

	repo.LoadErr = boom
	_, err := repo.ReadSessionSnapshot(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestMemoryRepository_UndecodableCatalog(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SetRaw(KeyTasks, "{not json")

	tasks, err := repo.ReadTaskCatalog(context.Background())

	assert.Error(t, err)
	assert.Nil(t, tasks)
}

func TestMemoryRepository_CatalogWithBadID(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SetRaw(KeyTasks, `[{"id":"nope","name":"A","duration":60}]`)

	_, err := repo.ReadTaskCatalog(context.Background())

	assert.Error(t, err)
}

func TestMemoryRepository_UnknownEnumsDecodeToDefaults(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SetRaw(KeyTimerMode, "sideways")
	repo.SetRaw(KeyTheme, "neon")
	repo.SetRaw(KeySound, "kazoo")
	repo.SetRaw(KeyPomodoro, "garbage")

	settings, err := repo.ReadSettings(context.Background())

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestMemoryRepository_PomodoroSettingsWithoutFinalBreak(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SetRaw(KeyPomodoro, `{"work":60,"break":30,"cycles":0}`)

	settings, err := repo.ReadSettings(context.Background())

	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, domain.PomodoroSettings{
		BreakAfterFinalCycle: true,
		BreakSeconds:         30,
		Cycles:               1,
		WorkSeconds:          60,
	}, settings.Pomodoro)
}

func TestMemoryRepository_LegacySnapshotWithoutOptionalKeys(t *testing.T) {
	repo := NewMemoryRepository()
	repo.SetRaw(KeySessionTaskName, "Journaling")
	repo.SetRaw(KeySessionTaskDuration, "300")
	repo.SetRaw(KeySessionEndAt, "1700000000.5")

	snapshot, err := repo.ReadSessionSnapshot(context.Background())

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "", snapshot.TaskID)
	assert.Equal(t, 300, snapshot.TaskDurationSeconds)
	assert.Equal(t, 0, snapshot.TotalSeconds)
	assert.Equal(t, domain.ModeCountdown, snapshot.Mode)
	assert.False(t, snapshot.Paused)
	assert.True(t, snapshot.DisplayAbsent)
	assert.Nil(t, snapshot.Pomodoro)
	assert.True(t, time.UnixMilli(1700000000500).Equal(snapshot.EndAt))
}

func TestMemoryRepository_CorruptSnapshotIsAnError(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "end at", key: KeySessionEndAt, value: "soon"},
		{name: "paused", key: KeySessionPaused, value: "maybe"},
		{name: "display", key: KeySessionDisplay, value: "12.5"},
		{name: "pomodoro", key: KeySessionPomodoro, value: "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMemoryRepository()
			repo.SetRaw(KeySessionTaskID, "x")
			repo.SetRaw(tt.key, tt.value)

			_, err := repo.ReadSessionSnapshot(context.Background())

			assert.Error(t, err)
		})
	}
}
