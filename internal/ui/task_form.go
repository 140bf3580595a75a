package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
)

// TaskFormResult contains the values entered in the task form
type TaskFormResult struct {
	DurationInput string
	Name          string
}

// DurationSeconds parses the entered duration
func (r TaskFormResult) DurationSeconds() (int, error) {
	return ParseDurationInput(r.DurationInput)
}

// NewTaskForm builds the form used to add or edit a task.
// Pass nil to start from empty fields.
func NewTaskForm(initial *domain.Task, result *TaskFormResult) *huh.Form {
	title := "New task"
	if initial != nil {
		title = "Edit task"
		result.Name = initial.Name
		result.DurationInput = FormatDurationInput(initial.DurationSeconds)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description("Task name").
				Value(&result.Name).
				Validate(validateTaskName),
			huh.NewInput().
				Title("Duration").
				Description("Minutes, or a Go duration such as 1h30m or 90s").
				Placeholder("25").
				Value(&result.DurationInput).
				Validate(func(s string) error {
					_, err := ParseDurationInput(s)
					return err
				}),
		),
	)
}

// RunTaskForm shows the task form in the terminal and returns the validated task fields
func RunTaskForm(initial *domain.Task) (string, int, error) {
	var result TaskFormResult
	if err := NewTaskForm(initial, &result).Run(); err != nil {
		return "", 0, fmt.Errorf("failed to run task form: %w", err)
	}

	seconds, err := result.DurationSeconds()
	if err != nil {
		return "", 0, err
	}
	logging.Logger.Debug("Task form completed", "name", result.Name, "duration_seconds", seconds)
	return strings.TrimSpace(result.Name), seconds, nil
}

// ParseDurationInput accepts a whole number of minutes or a Go duration string.
// Zero is allowed; partial seconds are dropped.
func ParseDurationInput(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("duration required")
	}

	if minutes, err := strconv.Atoi(s); err == nil {
		if minutes < 0 {
			return 0, domain.ErrInvalidDuration
		}
		return minutes * 60, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	if d < 0 {
		return 0, domain.ErrInvalidDuration
	}
	return int(d / time.Second), nil
}

// FormatDurationInput renders seconds the way ParseDurationInput reads them back
func FormatDurationInput(seconds int) string {
	if seconds%60 == 0 {
		return strconv.Itoa(seconds / 60)
	}
	return (time.Duration(seconds) * time.Second).String()
}

func validateTaskName(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrEmptyTaskName
	}
	return nil
}
