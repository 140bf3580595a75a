package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)

func runningSession(total int, endIn time.Duration) *Session {
	endAt := baseTime.Add(endIn)
	return &Session{
		EndAt:                &endAt,
		Mode:                 ModeCountdown,
		StartedAt:            baseTime,
		Task:                 NewTask("Reading", total),
		TotalDurationSeconds: total,
	}
}

func TestSession_RemainingAndElapsed(t *testing.T) {
	s := runningSession(600, 10*time.Minute)

	assert.Equal(t, 600, s.RemainingSeconds(baseTime))
	assert.Equal(t, 0, s.ElapsedSeconds(baseTime))

	later := baseTime.Add(90 * time.Second)
	assert.Equal(t, 510, s.RemainingSeconds(later))
	assert.Equal(t, 90, s.ElapsedSeconds(later))
}

func TestSession_RemainingFloorsPartialSeconds(t *testing.T) {
	s := runningSession(60, time.Minute)

	assert.Equal(t, 59, s.RemainingSeconds(baseTime.Add(500*time.Millisecond)))
}

func TestSession_RemainingClampsAfterEnd(t *testing.T) {
	s := runningSession(60, time.Minute)
	after := baseTime.Add(2 * time.Minute)

	assert.Equal(t, -60, s.SecondsUntilEnd(after))
	assert.Equal(t, 0, s.RemainingSeconds(after))
	assert.Equal(t, 60, s.ElapsedSeconds(after))
	assert.Equal(t, 1.0, s.Progress(after))
}

func TestSession_PausedUsesSnapshot(t *testing.T) {
	s := runningSession(300, 5*time.Minute)
	s.IsPaused = true
	s.PausedElapsedSeconds = 120

	farFuture := baseTime.Add(24 * time.Hour)
	assert.Equal(t, 180, s.RemainingSeconds(farFuture))
	assert.Equal(t, 120, s.ElapsedSeconds(farFuture))
	assert.Equal(t, StatePaused, s.State())
}

func TestSession_DisplayDependsOnMode(t *testing.T) {
	s := runningSession(100, 100*time.Second)
	now := baseTime.Add(30 * time.Second)

	assert.Equal(t, 70, s.DisplaySeconds(now))

	s.Mode = ModeCountup
	assert.Equal(t, 30, s.DisplaySeconds(now))
}

func TestSession_ZeroDurationHasNoProgress(t *testing.T) {
	s := runningSession(0, 0)

	assert.Equal(t, 0, s.ElapsedSeconds(baseTime))
	assert.Equal(t, 0.0, s.Progress(baseTime))
}

func TestSnapshotOf(t *testing.T) {
	s := runningSession(100, 100*time.Second)
	s.Pomodoro = PomodoroState{Active: true, CurrentCycle: 2, OnBreak: true}

	snap := SnapshotOf(s, baseTime.Add(40*time.Second))

	assert.Equal(t, s.Task.ID.String(), snap.TaskID)
	assert.Equal(t, "Reading", snap.TaskName)
	assert.Equal(t, 60, snap.DisplaySeconds)
	assert.Equal(t, 100, snap.TotalSeconds)
	assert.True(t, snap.EndAt.Equal(*s.EndAt))
	if assert.NotNil(t, snap.Pomodoro) {
		assert.Equal(t, 2, snap.Pomodoro.CurrentCycle)
	}
}

func TestViewOf_Idle(t *testing.T) {
	view := ViewOf(nil, ModeCountup, baseTime)

	assert.Equal(t, StateIdle, view.State)
	assert.False(t, view.IsRunning)
	assert.Equal(t, ModeCountup, view.Mode)
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{37230, "10:20:30"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.seconds))
		})
	}
}
