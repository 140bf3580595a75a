package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"tasktimers/internal/domain"
	"tasktimers/internal/ui"
)

// SettingsCmd shows and changes the timer preferences
type SettingsCmd struct {
	Mode     SettingsModeCmd     `cmd:"mode" help:"Set the display mode (countdown or countup)"`
	Pomodoro SettingsPomodoroCmd `cmd:"pomodoro" help:"Configure the Pomodoro cycle"`
	Show     SettingsShowCmd     `cmd:"show" help:"Show the current preferences" default:"1"`
	Sound    SettingsSoundCmd    `cmd:"sound" help:"Set the completion sound"`
	Theme    SettingsThemeCmd    `cmd:"theme" help:"Set the accent theme"`
}

// SettingsShowCmd prints the preferences
type SettingsShowCmd struct{}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	current := cli.Container.SettingsService.Current()

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "mode\t%s\n", current.TimerMode)
	fmt.Fprintf(w, "theme\t%s\n", current.Theme)
	fmt.Fprintf(w, "sound\t%s\n", current.Sound)
	fmt.Fprintf(w, "pomodoro.work\t%s\n", domain.FormatClock(current.Pomodoro.WorkSeconds))
	fmt.Fprintf(w, "pomodoro.break\t%s\n", domain.FormatClock(current.Pomodoro.BreakSeconds))
	fmt.Fprintf(w, "pomodoro.cycles\t%d\n", current.Pomodoro.Cycles)
	fmt.Fprintf(w, "pomodoro.final_break\t%t\n", current.Pomodoro.BreakAfterFinalCycle)
	return w.Flush()
}

// SettingsModeCmd sets the display mode of future sessions
type SettingsModeCmd struct {
	Mode string `arg:"" enum:"countdown,countup" help:"countdown or countup"`
}

// Run executes the mode command
func (s *SettingsModeCmd) Run(cli *CLI) error {
	return cli.Container.SettingsService.SetTimerMode(context.Background(), domain.ParseTimerMode(s.Mode))
}

// SettingsThemeCmd sets the accent theme
type SettingsThemeCmd struct {
	Theme string `arg:"" enum:"system,blue,green,purple,orange" help:"Accent theme"`
}

// Run executes the theme command
func (s *SettingsThemeCmd) Run(cli *CLI) error {
	return cli.Container.SettingsService.SetTheme(context.Background(), domain.ParseTheme(s.Theme))
}

// SettingsSoundCmd sets the completion sound
type SettingsSoundCmd struct {
	Sound string `arg:"" enum:"systemDefault,chime,bell,tick,silent" help:"Completion sound"`
}

// Run executes the sound command
func (s *SettingsSoundCmd) Run(cli *CLI) error {
	return cli.Container.SettingsService.SetSound(context.Background(), domain.ParseSoundChoice(s.Sound))
}

// SettingsPomodoroCmd changes the fields given; the others keep their value
type SettingsPomodoroCmd struct {
	Break      string `help:"Break length" name:"break"`
	Cycles     int    `help:"Work segments per run (0 keeps the current value)"`
	FinalBreak string `help:"Run a break after the final work segment" enum:"keep,on,off" default:"keep"`
	Work       string `help:"Work length"`
}

// Run executes the pomodoro settings command
func (s *SettingsPomodoroCmd) Run(cli *CLI) error {
	pomodoro := cli.Container.SettingsService.Current().Pomodoro

	if s.Work != "" {
		seconds, err := ui.ParseDurationInput(s.Work)
		if err != nil {
			return fmt.Errorf("invalid work length: %w", err)
		}
		pomodoro.WorkSeconds = seconds
	}
	if s.Break != "" {
		seconds, err := ui.ParseDurationInput(s.Break)
		if err != nil {
			return fmt.Errorf("invalid break length: %w", err)
		}
		pomodoro.BreakSeconds = seconds
	}
	if s.Cycles > 0 {
		pomodoro.Cycles = s.Cycles
	}
	switch s.FinalBreak {
	case "on":
		pomodoro.BreakAfterFinalCycle = true
	case "off":
		pomodoro.BreakAfterFinalCycle = false
	}

	if err := cli.Container.SettingsService.SetPomodoro(context.Background(), pomodoro); err != nil {
		return err
	}
	return (&SettingsShowCmd{}).Run(cli)
}
