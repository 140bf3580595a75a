package services

import (
	"context"

	"github.com/google/uuid"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
)

// restoreLocked rebuilds the session persisted by an earlier process.
// Unreadable snapshots, unknown tasks and sessions that ran out while the
// process was gone are discarded without feedback.
func (s *TimerService) restoreLocked(ctx context.Context) {
	snapshot, err := s.store.ReadSessionSnapshot(ctx)
	if err != nil {
		logging.Logger.Warn("Discarding unreadable session snapshot", "error", err)
		s.discardLocked(ctx)
		return
	}
	if snapshot == nil {
		return
	}

	task, ok := s.resolveTask(snapshot)
	if !ok {
		logging.Logger.Info("Discarding session for unknown task", "task_id", snapshot.TaskID, "task", snapshot.TaskName)
		s.discardLocked(ctx)
		return
	}

	now := s.clock.Now()
	total := snapshot.TotalSeconds
	if total <= 0 {
		total = max(0, task.DurationSeconds)
	}
	session := &domain.Session{
		Mode:                 snapshot.Mode,
		StartedAt:            now,
		Task:                 task,
		TotalDurationSeconds: total,
	}
	if snapshot.Pomodoro != nil {
		session.Pomodoro = *snapshot.Pomodoro
	}

	if snapshot.Paused {
		display := max(0, snapshot.DisplaySeconds)
		if snapshot.DisplayAbsent && session.Mode == domain.ModeCountdown {
			display = total
		}
		pausedElapsed := display
		if session.Mode == domain.ModeCountdown {
			pausedElapsed = max(0, total-display)
		}
		checkpoint := now.Add(seconds(total - pausedElapsed))
		session.EndAt = &checkpoint
		session.IsPaused = true
		session.PausedElapsedSeconds = pausedElapsed
		s.session = session
		s.emitLocked(now)

		logging.Logger.Info("Restored paused session", "task", task.Name, "display", display)
		return
	}

	if snapshot.EndAt.IsZero() {
		logging.Logger.Info("Discarding running session without end time", "task", task.Name)
		s.discardLocked(ctx)
		return
	}
	endAt := snapshot.EndAt
	session.EndAt = &endAt
	if session.SecondsUntilEnd(now) <= 0 {
		logging.Logger.Info("Session ended while away, discarding", "task", task.Name, "end_at", endAt)
		s.discardLocked(ctx)
		return
	}

	s.session = session
	s.scheduleLocked(ctx)
	s.startTickerLocked()
	s.emitLocked(now)

	logging.Logger.Info("Restored running session", "task", task.Name, "remaining", session.RemainingSeconds(now))
}

// resolveTask looks the task up by id, then by name and duration. Pomodoro
// segments are not in the catalog and are rebuilt from the snapshot.
func (s *TimerService) resolveTask(snapshot *domain.SessionSnapshot) (domain.Task, bool) {
	id, idErr := uuid.Parse(snapshot.TaskID)
	if idErr == nil {
		if task, ok := s.tasks.Get(id); ok {
			return task, true
		}
	}

	if snapshot.TaskName != "" && snapshot.TaskDurationSeconds > 0 {
		if task, ok := s.tasks.FindByNameAndDuration(snapshot.TaskName, snapshot.TaskDurationSeconds); ok {
			return task, true
		}
	}

	if snapshot.Pomodoro != nil && snapshot.Pomodoro.Active && snapshot.TaskName != "" {
		if idErr != nil {
			id = uuid.New()
		}
		return domain.Task{
			DurationSeconds: snapshot.TaskDurationSeconds,
			ID:              id,
			Name:            snapshot.TaskName,
		}, true
	}

	return domain.Task{}, false
}

func (s *TimerService) discardLocked(ctx context.Context) {
	s.session = nil
	if err := s.store.ClearSessionSnapshot(ctx); err != nil {
		logging.Logger.Warn("Failed to clear session snapshot", "error", err)
	}
}
