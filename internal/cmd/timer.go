package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
	"tasktimers/internal/ui"
)

// StartCmd starts a timer for a catalog task
type StartCmd struct {
	Task  string `arg:"" help:"Task id, position in the list, or name"`
	Watch bool   `help:"Open the live view after starting" short:"w"`
}

// Run executes the start command
func (s *StartCmd) Run(cli *CLI) error {
	ctx := context.Background()
	logging.Logger.Info("Executing start command", "task", s.Task)

	task, err := cli.Container.CatalogService.Resolve(s.Task)
	if err != nil {
		return fmt.Errorf("cannot start %q: %w", s.Task, err)
	}

	cli.Container.TimerService.Start(ctx, task)
	return showAfterCommand(ctx, cli, s.Watch)
}

// PomodoroCmd starts a Pomodoro run with the configured cycle
type PomodoroCmd struct {
	Watch bool `help:"Open the live view after starting" short:"w"`
}

// Run executes the pomodoro command
func (p *PomodoroCmd) Run(cli *CLI) error {
	ctx := context.Background()
	pomodoro := cli.Container.SettingsService.Current().Pomodoro
	logging.Logger.Info("Executing pomodoro command",
		"work_seconds", pomodoro.WorkSeconds,
		"break_seconds", pomodoro.BreakSeconds,
		"cycles", pomodoro.Cycles)

	cli.Container.TimerService.StartPomodoro(ctx)
	return showAfterCommand(ctx, cli, p.Watch)
}

// LastCmd restarts the last used task
type LastCmd struct {
	Watch bool `help:"Open the live view after starting" short:"w"`
}

// Run executes the last command
func (l *LastCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cli.Container.TimerService.StartLastTask(ctx)
	if cli.Container.TimerService.View().State == domain.StateIdle {
		fmt.Fprintln(cli.out(), "No last task to start")
		return nil
	}
	return showAfterCommand(ctx, cli, l.Watch)
}

// PauseCmd pauses the running timer
type PauseCmd struct{}

// Run executes the pause command
func (p *PauseCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cli.Container.TimerService.Pause(ctx)
	return showAfterCommand(ctx, cli, false)
}

// ResumeCmd resumes a paused timer
type ResumeCmd struct {
	Watch bool `help:"Open the live view after resuming" short:"w"`
}

// Run executes the resume command
func (r *ResumeCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cli.Container.TimerService.Resume(ctx)
	return showAfterCommand(ctx, cli, r.Watch)
}

// CancelCmd discards the current timer
type CancelCmd struct{}

// Run executes the cancel command
func (c *CancelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	cli.Container.TimerService.Cancel(ctx)
	return showAfterCommand(ctx, cli, false)
}

// AdjustCmd shifts the end of the current timer
type AdjustCmd struct {
	Amount   string `arg:"" help:"Minutes, or a duration such as 90s or 1h"`
	Subtract bool   `help:"Remove the amount instead of adding it" short:"s"`
}

// Run executes the adjust command
func (a *AdjustCmd) Run(cli *CLI) error {
	ctx := context.Background()

	seconds, err := ui.ParseDurationInput(a.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if a.Subtract {
		seconds = -seconds
	}

	logging.Logger.Info("Executing adjust command", "delta_seconds", seconds)
	cli.Container.TimerService.AdjustTime(ctx, seconds)
	return showAfterCommand(ctx, cli, false)
}

// StatusCmd prints the current timer
type StatusCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// statusJSON is the machine readable form of a timer view
type statusJSON struct {
	DisplayedSeconds int     `json:"displayed_seconds"`
	ElapsedSeconds   int     `json:"elapsed_seconds"`
	Mode             string  `json:"mode"`
	PomodoroActive   bool    `json:"pomodoro_active"`
	PomodoroCycle    int     `json:"pomodoro_cycle,omitempty"`
	PomodoroOnBreak  bool    `json:"pomodoro_on_break,omitempty"`
	Progress         float64 `json:"progress"`
	RemainingSeconds int     `json:"remaining_seconds"`
	State            string  `json:"state"`
	TaskName         string  `json:"task_name,omitempty"`
	TotalSeconds     int     `json:"total_seconds"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	view := cli.Container.TimerService.View()

	if s.Format == "json" {
		data, err := json.MarshalIndent(statusJSON{
			DisplayedSeconds: view.DisplayedSeconds,
			ElapsedSeconds:   view.ElapsedSeconds,
			Mode:             string(view.Mode),
			PomodoroActive:   view.Pomodoro.Active,
			PomodoroCycle:    view.Pomodoro.CurrentCycle,
			PomodoroOnBreak:  view.Pomodoro.OnBreak,
			Progress:         view.Progress,
			RemainingSeconds: view.RemainingSeconds,
			State:            string(view.State),
			TaskName:         view.TaskName,
			TotalSeconds:     view.TotalSeconds,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(cli.out(), string(data))
		return nil
	}

	fmt.Fprintln(cli.out(), ui.RenderStatus(view, cli.Container.SettingsService.Current().Theme))
	return nil
}

// showAfterCommand prints the resulting state or hands over to the live view
func showAfterCommand(ctx context.Context, cli *CLI, watch bool) error {
	if watch {
		return runWatch(ctx, cli.Container)
	}
	view := cli.Container.TimerService.View()
	fmt.Fprintln(cli.out(), ui.RenderStatus(view, cli.Container.SettingsService.Current().Theme))
	return nil
}
