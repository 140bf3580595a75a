package services

import (
	"context"

	"github.com/google/uuid"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
)

// StartPomodoro starts the first work segment of a Pomodoro session,
// replacing any running session
func (s *TimerService) StartPomodoro(ctx context.Context) {
	s.mu.Lock()
	defer s.unlock()

	settings := s.settings.Current()
	pomodoro := settings.Pomodoro.Normalize()
	logging.Logger.Info("Starting pomodoro",
		"work", pomodoro.WorkSeconds,
		"break", pomodoro.BreakSeconds,
		"cycles", pomodoro.Cycles)

	s.configureLocked(ctx, pomodoroTask(domain.PomodoroWorkTaskName, pomodoro.WorkSeconds), settings.TimerMode,
		domain.PomodoroState{Active: true, CurrentCycle: 1})
	s.effects = append(s.effects, s.haptics.Impact)
}

// advancePomodoroLocked moves a finished segment to the next one:
// work goes to break, break goes to the next work cycle or ends the session
func (s *TimerService) advancePomodoroLocked(ctx context.Context) {
	pomodoro := s.settings.Current().Pomodoro.Normalize()
	mode := s.session.Mode
	state := s.session.Pomodoro

	if state.OnBreak {
		if state.CurrentCycle >= pomodoro.Cycles {
			s.finishPomodoroLocked(ctx, state.CurrentCycle)
			return
		}
		state.CurrentCycle++
		state.OnBreak = false
		logging.Logger.Info("Pomodoro work segment", "cycle", state.CurrentCycle)
		s.configureLocked(ctx, pomodoroTask(domain.PomodoroWorkTaskName, pomodoro.WorkSeconds), mode, state)
		return
	}

	if state.CurrentCycle >= pomodoro.Cycles && !pomodoro.BreakAfterFinalCycle {
		s.finishPomodoroLocked(ctx, state.CurrentCycle)
		return
	}
	state.OnBreak = true
	logging.Logger.Info("Pomodoro break segment", "cycle", state.CurrentCycle)
	s.configureLocked(ctx, pomodoroTask(domain.PomodoroBreakTaskName, pomodoro.BreakSeconds), mode, state)
}

func (s *TimerService) finishPomodoroLocked(ctx context.Context, cycles int) {
	s.clearLocked(ctx)
	s.emitLocked(s.clock.Now())
	logging.Logger.Info("Pomodoro finished", "cycles", cycles)
}

// pomodoroTask builds a synthetic segment task that lives outside the catalog
func pomodoroTask(name string, durationSeconds int) domain.Task {
	return domain.Task{
		DurationSeconds: durationSeconds,
		ID:              uuid.New(),
		Name:            name,
	}
}
