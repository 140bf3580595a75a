package domain

import "time"

// SessionSnapshot is the durable copy of a session written to the state store
type SessionSnapshot struct {
	DisplayAbsent       bool // no display entry was stored; paused countdowns fall back to the total
	DisplaySeconds      int
	EndAt               time.Time
	Mode                TimerMode
	Paused              bool
	Pomodoro            *PomodoroState // nil when the snapshot predates overlay persistence
	TaskDurationSeconds int
	TaskID              string
	TaskName            string
	TotalSeconds        int // 0 when absent; fall back to TaskDurationSeconds
}

// SnapshotOf captures the session as seen at now
func SnapshotOf(s *Session, now time.Time) SessionSnapshot {
	snapshot := SessionSnapshot{
		DisplaySeconds:      s.DisplaySeconds(now),
		Mode:                s.Mode,
		Paused:              s.IsPaused,
		TaskDurationSeconds: s.Task.DurationSeconds,
		TaskID:              s.Task.ID.String(),
		TaskName:            s.Task.Name,
		TotalSeconds:        s.TotalDurationSeconds,
	}
	if s.EndAt != nil {
		snapshot.EndAt = *s.EndAt
	}
	if s.Pomodoro.Active {
		pomodoro := s.Pomodoro
		snapshot.Pomodoro = &pomodoro
	}
	return snapshot
}
