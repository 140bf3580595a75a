package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tasktimers/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// ClockStyle renders the large time readout in the theme accent
func ClockStyle(t domain.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor(t)).
		Padding(1, 2)
}

// TaskNameStyle renders the active task name in the theme accent
func TaskNameStyle(t domain.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(AccentColor(t))
}

// StateStyle returns the style for the state badge of a view
func StateStyle(view domain.TimerView) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(StateColor(view)).
		Bold(true)
}
