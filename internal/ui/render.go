package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"

	"tasktimers/internal/domain"
	"tasktimers/internal/theme"
)

const defaultBarWidth = 40

// newProgressBar creates a progress bar filled with the theme accent
func newProgressBar(th domain.Theme) progress.Model {
	bar := progress.New(
		progress.WithSolidFill(string(theme.AccentColor(th))),
		progress.WithoutPercentage(),
	)
	bar.Width = defaultBarWidth
	return bar
}

// RenderStatus renders a one-shot summary of the view, used by non-interactive commands
func RenderStatus(view domain.TimerView, th domain.Theme) string {
	bar := newProgressBar(th)
	return renderTimer(view, th, bar)
}

func renderTimer(view domain.TimerView, th domain.Theme, bar progress.Model) string {
	if view.State == domain.StateIdle {
		return theme.MutedStyle.Render(fmt.Sprintf("No timer running (%s mode)", view.Mode))
	}

	var b strings.Builder
	b.WriteString(theme.TaskNameStyle(th).Render(view.TaskName))
	b.WriteString("  ")
	b.WriteString(theme.StateStyle(view).Render(stateLabel(view)))
	b.WriteString("\n")
	b.WriteString(theme.ClockStyle(th).Render(domain.FormatClock(view.DisplayedSeconds)))
	b.WriteString("\n")
	b.WriteString(bar.ViewAs(view.Progress))
	b.WriteString("\n")
	b.WriteString(theme.LabelStyle.Render(fmt.Sprintf("%s elapsed, %s remaining of %s",
		domain.FormatClock(view.ElapsedSeconds),
		domain.FormatClock(view.RemainingSeconds),
		domain.FormatClock(view.TotalSeconds))))
	return b.String()
}

func stateLabel(view domain.TimerView) string {
	switch {
	case view.State == domain.StateIdle:
		return "IDLE"
	case view.IsPaused:
		return "PAUSED"
	case view.Pomodoro.Active && view.Pomodoro.OnBreak:
		return fmt.Sprintf("BREAK %d", view.Pomodoro.CurrentCycle)
	case view.Pomodoro.Active:
		return fmt.Sprintf("WORK %d", view.Pomodoro.CurrentCycle)
	default:
		return "RUNNING"
	}
}
