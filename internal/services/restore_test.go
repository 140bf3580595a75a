package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktimers/internal/adapters/storage"
	"tasktimers/internal/domain"
)

func TestRestore_PausedKeepsExactDisplay(t *testing.T) {
	for _, mode := range []domain.TimerMode{domain.ModeCountdown, domain.ModeCountup} {
		t.Run(string(mode), func(t *testing.T) {
			h := newHarness(t)
			ctx := context.Background()
			require.NoError(t, h.settings.SetTimerMode(ctx, mode))
			task := h.catalog.List()[0]

			first := h.newTimer(t)
			first.Start(ctx, task)
			h.advance(first, 7*time.Second+300*time.Millisecond)
			first.Pause(ctx)
			before := first.View()
			first.Close()

			h.clock.Set(h.clock.Now().Add(36 * time.Hour))
			second := h.newTimer(t)
			after := second.View()

			assert.Equal(t, domain.StatePaused, after.State)
			assert.Equal(t, before.DisplayedSeconds, after.DisplayedSeconds)
			assert.Equal(t, before.RemainingSeconds, after.RemainingSeconds)
			assert.Equal(t, task.Name, after.TaskName)

			second.Resume(ctx)
			view := h.advance(second, time.Second)
			assert.Equal(t, before.RemainingSeconds-1, view.RemainingSeconds)
		})
	}
}

func TestRestore_RunningContinuesFromEndTime(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	task := h.catalog.List()[1]

	first := h.newTimer(t)
	first.Start(ctx, task)
	first.Close()

	h.clock.Set(testStart.Add(100 * time.Second))
	second := h.newTimer(t)
	view := second.View()

	assert.Equal(t, domain.StateRunning, view.State)
	assert.Equal(t, task.DurationSeconds-100, view.RemainingSeconds)
	assert.Equal(t, 1, h.clock.ActiveTickers())
}

func TestRestore_ElapsedWhileAwayIsDiscardedSilently(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	task := h.catalog.List()[0]
	require.NoError(t, h.store.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		EndAt:               testStart.Add(-5 * time.Second),
		Mode:                domain.ModeCountdown,
		TaskDurationSeconds: task.DurationSeconds,
		TaskID:              task.ID.String(),
		TaskName:            task.Name,
		TotalSeconds:        task.DurationSeconds,
	}))

	// No completion expectations: any notification, sound or success haptic fails the test
	svc := h.newTimer(t)
	view := svc.View()

	assert.Equal(t, domain.StateIdle, view.State)
	assert.Equal(t, 0, view.RemainingSeconds)
	snapshot, err := h.store.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestRestore_StaleTaskIsDiscarded(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		EndAt:               testStart.Add(time.Minute),
		TaskDurationSeconds: 120,
		TaskID:              uuid.NewString(),
		TaskName:            "Deleted Task",
	}))

	svc := h.newTimer(t)

	assert.Equal(t, domain.StateIdle, svc.View().State)
	assert.Equal(t, 1, h.store.clears)
}

func TestRestore_LegacyNameAndDurationFallback(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	task := h.catalog.List()[3]
	require.NoError(t, h.store.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		DisplaySeconds:      100,
		EndAt:               testStart.Add(time.Minute),
		Mode:                domain.ModeCountdown,
		Paused:              true,
		TaskDurationSeconds: task.DurationSeconds,
		TaskID:              "not-a-uuid",
		TaskName:            task.Name,
	}))

	svc := h.newTimer(t)
	view := svc.View()

	assert.Equal(t, domain.StatePaused, view.State)
	assert.Equal(t, task.Name, view.TaskName)
	assert.Equal(t, 100, view.DisplayedSeconds)
	assert.Equal(t, task.DurationSeconds, view.TotalSeconds)
}

func TestRestore_PausedWithoutDisplayShowsFullTime(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	task := h.catalog.List()[2]
	require.NoError(t, h.store.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		DisplayAbsent:       true,
		Mode:                domain.ModeCountdown,
		Paused:              true,
		TaskDurationSeconds: task.DurationSeconds,
		TaskID:              task.ID.String(),
		TaskName:            task.Name,
	}))

	svc := h.newTimer(t)

	assert.Equal(t, task.DurationSeconds, svc.View().DisplayedSeconds)
}

func TestRestore_PausedAtZeroStaysAtZero(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	task := h.catalog.List()[2]
	require.NoError(t, h.store.WriteSessionSnapshot(ctx, domain.SessionSnapshot{
		DisplaySeconds:      0,
		EndAt:               testStart.Add(-2 * time.Second),
		Mode:                domain.ModeCountdown,
		Paused:              true,
		TaskDurationSeconds: task.DurationSeconds,
		TaskID:              task.ID.String(),
		TaskName:            task.Name,
		TotalSeconds:        task.DurationSeconds,
	}))

	svc := h.newTimer(t)
	view := svc.View()

	assert.Equal(t, domain.StatePaused, view.State)
	assert.Equal(t, 0, view.DisplayedSeconds)
	assert.Equal(t, 0, view.RemainingSeconds)
	assert.Equal(t, task.DurationSeconds, view.ElapsedSeconds)
}

func TestRestore_PausedAfterEndTimeBeforeTick(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	task := testTask(5)
	svc := h.newTimer(t)
	svc.Start(ctx, task)

	// Pause lands after the end time but before the ticker has completed the run
	h.clock.Set(testStart.Add(6 * time.Second))
	svc.Pause(ctx)
	before := svc.View()
	svc.Close()

	snapshot, err := h.store.ReadSessionSnapshot(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.False(t, snapshot.DisplayAbsent)
	assert.Equal(t, 0, snapshot.DisplaySeconds)

	restored := h.newTimer(t).View()
	assert.Equal(t, domain.StatePaused, restored.State)
	assert.Equal(t, before.DisplayedSeconds, restored.DisplayedSeconds)
	assert.Equal(t, 0, restored.DisplayedSeconds)
}

func TestRestore_AdjustedTotalSurvives(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	task := h.catalog.List()[2]

	first := h.newTimer(t)
	first.Start(ctx, task)
	first.AdjustTime(ctx, 120)
	first.Pause(ctx)
	first.Close()

	second := h.newTimer(t)
	view := second.View()

	assert.Equal(t, task.DurationSeconds+120, view.TotalSeconds)
	assert.Equal(t, task.DurationSeconds+120, view.RemainingSeconds)
}

func TestRestore_PomodoroSegment(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	first := h.newTimer(t)
	first.StartPomodoro(ctx)
	h.advance(first, 25*time.Minute)
	first.Close()

	h.clock.Set(h.clock.Now().Add(time.Minute))
	second := h.newTimer(t)
	view := second.View()

	assert.Equal(t, domain.StateRunning, view.State)
	assert.Equal(t, domain.PomodoroBreakTaskName, view.TaskName)
	assert.Equal(t, domain.PomodoroState{Active: true, CurrentCycle: 1, OnBreak: true}, view.Pomodoro)
	assert.Equal(t, 4*60, view.RemainingSeconds)
}

func TestRestore_UnreadableSnapshotIsNoPriorState(t *testing.T) {
	h := newHarness(t)
	h.store.SetRaw(storage.KeySessionTaskID, uuid.NewString())
	h.store.SetRaw(storage.KeySessionEndAt, "tomorrow")

	svc := h.newTimer(t)

	assert.Equal(t, domain.StateIdle, svc.View().State)
	_, ok := h.store.Raw(storage.KeySessionEndAt)
	assert.False(t, ok)
}
