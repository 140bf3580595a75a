package domain

import (
	"fmt"
	"time"
)

// TimerView is the observable state of the engine
type TimerView struct {
	DisplayedSeconds int
	ElapsedSeconds   int
	IsPaused         bool
	IsRunning        bool
	Mode             TimerMode
	Pomodoro         PomodoroState
	Progress         float64
	RemainingSeconds int
	State            TimerState
	TaskName         string
	TotalSeconds     int
}

// IdleView is the view of an engine without a session
func IdleView(mode TimerMode) TimerView {
	return TimerView{Mode: mode, State: StateIdle}
}

// ViewOf renders the session at now; a nil session yields the idle view
func ViewOf(s *Session, mode TimerMode, now time.Time) TimerView {
	if s == nil {
		return IdleView(mode)
	}
	return TimerView{
		DisplayedSeconds: s.DisplaySeconds(now),
		ElapsedSeconds:   s.ElapsedSeconds(now),
		IsPaused:         s.IsPaused,
		IsRunning:        true,
		Mode:             s.Mode,
		Pomodoro:         s.Pomodoro,
		Progress:         s.Progress(now),
		RemainingSeconds: s.RemainingSeconds(now),
		State:            s.State(),
		TaskName:         s.Task.Name,
		TotalSeconds:     s.TotalDurationSeconds,
	}
}

// FormatClock renders seconds as MM:SS, or HH:MM:SS from one hour up
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
