package theme

import (
	"github.com/charmbracelet/lipgloss"

	"tasktimers/internal/domain"
)

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Timer state colors
const (
	ColorIdle    Color = "8" // Gray - no session
	ColorPaused  Color = "3" // Yellow - paused
	ColorRunning Color = "2" // Green - running
	ColorBreak   Color = "6" // Cyan - pomodoro break
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors per user theme
const (
	ColorAccentBlue   Color = "33"
	ColorAccentGreen  Color = "35"
	ColorAccentOrange Color = "208"
	ColorAccentPurple Color = "141"
	ColorAccentSystem Color = "250" // Follows the terminal's default text
)

// AccentColor returns the accent for a user theme
func AccentColor(t domain.Theme) Color {
	switch t {
	case domain.ThemeBlue:
		return ColorAccentBlue
	case domain.ThemeGreen:
		return ColorAccentGreen
	case domain.ThemeOrange:
		return ColorAccentOrange
	case domain.ThemePurple:
		return ColorAccentPurple
	default:
		return ColorAccentSystem
	}
}

// StateColor returns the indicator color for a timer view
func StateColor(view domain.TimerView) Color {
	switch {
	case view.State == domain.StateIdle:
		return ColorIdle
	case view.IsPaused:
		return ColorPaused
	case view.Pomodoro.OnBreak:
		return ColorBreak
	default:
		return ColorRunning
	}
}
