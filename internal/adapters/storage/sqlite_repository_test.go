package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktimers/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_EmptyStoreReadsAsAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	snapshot, err := repo.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	tasks, err := repo.ReadTaskCatalog(ctx)
	require.NoError(t, err)
	assert.Nil(t, tasks)

	settings, err := repo.ReadSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, settings)

	name, err := repo.ReadLastTaskName(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestSQLiteRepository_SessionSnapshotRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	endAt := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

	in := domain.SessionSnapshot{
		DisplaySeconds:      1199,
		EndAt:               endAt,
		Mode:                domain.ModeCountup,
		Paused:              true,
		Pomodoro:            &domain.PomodoroState{Active: true, CurrentCycle: 2, OnBreak: true},
		TaskDurationSeconds: 1200,
		TaskID:              "0b6f3a5e-8c1d-4b8a-9a7e-5d8f7e1c2b3a",
		TaskName:            "Reading Time",
		TotalSeconds:        1500,
	}
	require.NoError(t, repo.WriteSessionSnapshot(ctx, in))

	out, err := repo.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, endAt.Equal(out.EndAt))
	out.EndAt = in.EndAt
	assert.Equal(t, in, *out)
}

func TestSQLiteRepository_OverwriteDropsPomodoroOverlay(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		TaskID:   "a",
		TaskName: "Work",
		Pomodoro: &domain.PomodoroState{Active: true, CurrentCycle: 1},
	}))
	require.NoError(t, repo.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		TaskID:   "b",
		TaskName: "Plain",
	}))

	out, err := repo.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "b", out.TaskID)
	assert.Nil(t, out.Pomodoro)
}

func TestSQLiteRepository_ZeroDisplayIsNotAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		DisplaySeconds: 0,
		Paused:         true,
		TaskID:         "a",
		TaskName:       "Work",
	}))
	out, err := repo.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.DisplayAbsent)
	assert.Equal(t, 0, out.DisplaySeconds)

	require.NoError(t, repo.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		DisplayAbsent: true,
		Paused:        true,
		TaskID:        "a",
		TaskName:      "Work",
	}))
	out, err = repo.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.DisplayAbsent)
}

func TestSQLiteRepository_ClearSessionSnapshot(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.WriteSessionSnapshot(ctx, domain.SessionSnapshot{TaskID: "a", TaskName: "A"}))
	require.NoError(t, repo.WriteLastTaskName(ctx, "A"))
	require.NoError(t, repo.ClearSessionSnapshot(ctx))

	out, err := repo.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, out)

	name, err := repo.ReadLastTaskName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", name)
}

func TestSQLiteRepository_TaskCatalogKeepsOrder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	tasks := domain.DefaultTasks()

	require.NoError(t, repo.WriteTaskCatalog(ctx, tasks))

	out, err := repo.ReadTaskCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, tasks, out)
}

func TestSQLiteRepository_EmptyCatalogIsNotAbsent(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.WriteTaskCatalog(ctx, nil))

	out, err := repo.ReadTaskCatalog(ctx)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSQLiteRepository_SettingsRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	in := domain.Settings{
		Pomodoro: domain.PomodoroSettings{
			BreakAfterFinalCycle: false,
			BreakSeconds:         120,
			Cycles:               2,
			WorkSeconds:          600,
		},
		Sound:     domain.SoundBell,
		Theme:     domain.ThemePurple,
		TimerMode: domain.ModeCountup,
	}

	require.NoError(t, repo.WriteSettings(ctx, in))

	out, err := repo.ReadSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in, *out)
}

func TestSQLiteRepository_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.WriteLastTaskName(ctx, "Meditation"))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	name, err := reopened.ReadLastTaskName(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Meditation", name)
}
