package domain

// TimerMode selects whether the displayed time counts down or up
type TimerMode string

const (
	ModeCountdown TimerMode = "countdown"
	ModeCountup   TimerMode = "countup"
)

// ParseTimerMode decodes a persisted mode, falling back to countdown
func ParseTimerMode(s string) TimerMode {
	switch TimerMode(s) {
	case ModeCountdown, ModeCountup:
		return TimerMode(s)
	default:
		return ModeCountdown
	}
}

// Theme is the accent palette used by the timer view
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeBlue   Theme = "blue"
	ThemeGreen  Theme = "green"
	ThemePurple Theme = "purple"
	ThemeOrange Theme = "orange"
)

// Themes lists every theme in display order
var Themes = []Theme{ThemeSystem, ThemeBlue, ThemeGreen, ThemePurple, ThemeOrange}

// ParseTheme decodes a persisted theme, falling back to system
func ParseTheme(s string) Theme {
	for _, t := range Themes {
		if string(t) == s {
			return t
		}
	}
	return ThemeSystem
}

// SoundChoice is the completion sound
type SoundChoice string

const (
	SoundSystemDefault SoundChoice = "systemDefault"
	SoundChime         SoundChoice = "chime"
	SoundBell          SoundChoice = "bell"
	SoundTick          SoundChoice = "tick"
	SoundSilent        SoundChoice = "silent"
)

// Sounds lists every sound choice in display order
var Sounds = []SoundChoice{SoundSystemDefault, SoundChime, SoundBell, SoundTick, SoundSilent}

// ParseSoundChoice decodes a persisted sound, falling back to the system default
func ParseSoundChoice(s string) SoundChoice {
	for _, c := range Sounds {
		if string(c) == s {
			return c
		}
	}
	return SoundSystemDefault
}

// PomodoroSettings configures the work/break cycle
type PomodoroSettings struct {
	BreakAfterFinalCycle bool // Run a break after the last work segment before ending
	BreakSeconds         int
	Cycles               int
	WorkSeconds          int
}

// DefaultPomodoroSettings returns 25 minutes of work, 5 of break, 4 cycles
func DefaultPomodoroSettings() PomodoroSettings {
	return PomodoroSettings{
		BreakAfterFinalCycle: true,
		BreakSeconds:         5 * 60,
		Cycles:               4,
		WorkSeconds:          25 * 60,
	}
}

// Normalize clamps durations to zero and cycles to at least one
func (p PomodoroSettings) Normalize() PomodoroSettings {
	if p.WorkSeconds < 0 {
		p.WorkSeconds = 0
	}
	if p.BreakSeconds < 0 {
		p.BreakSeconds = 0
	}
	if p.Cycles < 1 {
		p.Cycles = 1
	}
	return p
}

// Settings holds the user preferences
type Settings struct {
	Pomodoro  PomodoroSettings
	Sound     SoundChoice
	Theme     Theme
	TimerMode TimerMode
}

// DefaultSettings returns the preferences used before anything is persisted
func DefaultSettings() Settings {
	return Settings{
		Pomodoro:  DefaultPomodoroSettings(),
		Sound:     SoundSystemDefault,
		Theme:     ThemeSystem,
		TimerMode: ModeCountdown,
	}
}
