package domain

import (
	"math"
	"time"
)

// TimerState is the engine state observed by the UI
type TimerState string

const (
	StateIdle    TimerState = "idle"
	StatePaused  TimerState = "paused"
	StateRunning TimerState = "running"
)

// PomodoroState is the work/break overlay on top of a session
type PomodoroState struct {
	Active       bool
	CurrentCycle int // 1-indexed work segment, 0 when inactive
	OnBreak      bool
}

// Session is the single live timer instance.
// A nil *Session means the engine is idle.
type Session struct {
	EndAt                *time.Time // Moment the countdown reaches zero at current pace
	IsPaused             bool
	Mode                 TimerMode
	PausedElapsedSeconds int
	Pomodoro             PomodoroState
	StartedAt            time.Time // Start of the current run segment
	Task                 Task      // Copy taken at start
	TotalDurationSeconds int
}

// SecondsUntilEnd returns floor(endAt - now), which is negative once the end has passed
func (s *Session) SecondsUntilEnd(now time.Time) int {
	if s.EndAt == nil {
		return 0
	}
	return int(math.Floor(s.EndAt.Sub(now).Seconds()))
}

// RemainingSeconds returns the non-negative time left
func (s *Session) RemainingSeconds(now time.Time) int {
	if s.IsPaused {
		return max(0, s.TotalDurationSeconds-s.PausedElapsedSeconds)
	}
	return max(0, s.SecondsUntilEnd(now))
}

// ElapsedSeconds derives elapsed time from the end timestamp
func (s *Session) ElapsedSeconds(now time.Time) int {
	if s.IsPaused {
		return max(0, s.PausedElapsedSeconds)
	}
	if s.TotalDurationSeconds <= 0 {
		return 0
	}
	return max(0, s.TotalDurationSeconds-s.RemainingSeconds(now))
}

// DisplaySeconds is the remaining time in countdown mode and the elapsed time in countup mode
func (s *Session) DisplaySeconds(now time.Time) int {
	if s.Mode == ModeCountup {
		return s.ElapsedSeconds(now)
	}
	return s.RemainingSeconds(now)
}

// Progress returns the completed fraction in [0,1]
func (s *Session) Progress(now time.Time) float64 {
	if s.TotalDurationSeconds <= 0 {
		return 0
	}
	progress := float64(s.ElapsedSeconds(now)) / float64(s.TotalDurationSeconds)
	return math.Min(1, math.Max(0, progress))
}

// State reports running or paused
func (s *Session) State() TimerState {
	if s.IsPaused {
		return StatePaused
	}
	return StateRunning
}
