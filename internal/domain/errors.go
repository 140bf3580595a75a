package domain

import "errors"

var (
	ErrEmptyTaskName   = errors.New("task name required")
	ErrInvalidDuration = errors.New("duration must not be negative")
	ErrInvalidPosition = errors.New("position out of range")
	ErrTaskNotFound    = errors.New("task not found")
)
