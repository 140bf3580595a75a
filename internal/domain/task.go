package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Names of the synthetic tasks driving a Pomodoro session
const (
	PomodoroWorkTaskName  = "Pomodoro • Work"
	PomodoroBreakTaskName = "Pomodoro • Break"
)

// Task is a reusable named duration from the catalog
type Task struct {
	DurationSeconds int
	ID              uuid.UUID
	Name            string
}

// NewTask creates a task with a freshly generated id
func NewTask(name string, durationSeconds int) Task {
	return Task{
		DurationSeconds: durationSeconds,
		ID:              uuid.New(),
		Name:            name,
	}
}

// Validate checks the fields a user can edit
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTaskName
	}
	if t.DurationSeconds < 0 {
		return ErrInvalidDuration
	}
	return nil
}

// DefaultTasks returns the catalog seeded on first run
func DefaultTasks() []Task {
	return []Task{
		NewTask("Reading Time", 20*60),
		NewTask("Meditation", 10*60),
		NewTask("Journaling", 5*60),
		NewTask("Stretching", 8*60),
		NewTask("Study Session", 30*60),
	}
}
