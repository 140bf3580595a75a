package notify

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"tasktimers/internal/logging"
	"tasktimers/internal/ports"
)

const notificationTitle = "Timer finished"

// sendFunc delivers one notification
type sendFunc func(title, body string) error

// DesktopNotifier implements ports.Notifier with the OS notification tool.
// Scheduled notifications live only as long as the process.
type DesktopNotifier struct {
	clock     ports.Clock
	enabled   bool
	mu        sync.Mutex
	pending   *time.Timer
	pendingAt time.Time
	send      sendFunc
}

var _ ports.Notifier = (*DesktopNotifier)(nil)

// NewDesktopNotifier creates a notifier; when enabled is false nothing is ever shown
func NewDesktopNotifier(clock ports.Clock, enabled bool) *DesktopNotifier {
	return &DesktopNotifier{
		clock:   clock,
		enabled: enabled,
		send:    sendDesktop,
	}
}

// IsAuthorized reports whether notifications are enabled and the OS tool exists
func (n *DesktopNotifier) IsAuthorized(ctx context.Context) bool {
	if !n.enabled {
		return false
	}
	name, _, ok := notificationCommand(notificationTitle, "")
	if !ok {
		return false
	}
	_, err := exec.LookPath(name)
	return err == nil
}

// OnSessionStart replaces the pending notification with one firing at fireAt.
// Fire times that are not in the future are skipped.
func (n *DesktopNotifier) OnSessionStart(ctx context.Context, taskName string, fireAt time.Time) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cancelLocked()
	if !n.enabled {
		return nil
	}

	delay := fireAt.Sub(n.clock.Now())
	if delay <= 0 {
		logging.Logger.Debug("Skipping notification in the past", "task", taskName, "fire_at", fireAt)
		return nil
	}

	body := completionBody(taskName)
	n.pendingAt = fireAt
	n.pending = time.AfterFunc(delay, func() {
		if err := n.send(notificationTitle, body); err != nil {
			logging.Logger.Warn("Failed to deliver scheduled notification", "error", err)
		}
	})
	logging.Logger.Debug("Notification scheduled", "task", taskName, "delay", delay)
	return nil
}

// OnSessionPauseOrCancel drops the pending notification
func (n *DesktopNotifier) OnSessionPauseOrCancel(ctx context.Context) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelLocked()
	return nil
}

// OnSessionComplete shows the completion notification now.
// Only a pending notification that is already due is dropped; a later one
// was scheduled by a newer session.
func (n *DesktopNotifier) OnSessionComplete(ctx context.Context, taskName string) error {
	n.mu.Lock()
	if n.pending != nil && !n.pendingAt.After(n.clock.Now()) {
		n.cancelLocked()
	}
	n.mu.Unlock()

	if !n.enabled {
		return nil
	}
	if err := n.send(notificationTitle, completionBody(taskName)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}

func (n *DesktopNotifier) cancelLocked() {
	if n.pending != nil {
		n.pending.Stop()
		n.pending = nil
	}
}

func completionBody(taskName string) string {
	return fmt.Sprintf("%s is complete.", taskName)
}

func sendDesktop(title, body string) error {
	name, args, ok := notificationCommand(title, body)
	if !ok {
		return fmt.Errorf("desktop notifications are not supported on this platform")
	}
	if err := exec.Command(name, args...).Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}
