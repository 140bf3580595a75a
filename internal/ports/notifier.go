package ports

import (
	"context"
	"time"
)

// Notifier schedules and delivers completion notifications
type Notifier interface {
	// IsAuthorized reports whether notifications can be shown
	IsAuthorized(ctx context.Context) bool

	// OnSessionComplete fires a completion notification immediately
	OnSessionComplete(ctx context.Context, taskName string) error

	// OnSessionPauseOrCancel cancels any pending notification
	OnSessionPauseOrCancel(ctx context.Context) error

	// OnSessionStart replaces any pending notification with one firing at fireAt
	OnSessionStart(ctx context.Context, taskName string, fireAt time.Time) error
}
