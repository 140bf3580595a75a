package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"tasktimers/internal/logging"
	"tasktimers/internal/ui"
)

// updatesBuffer bounds the views queued between the engine and the live view
const updatesBuffer = 16

// WatchCmd hosts the live timer view
type WatchCmd struct{}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	return runWatch(context.Background(), cli.Container)
}

// runWatch runs the Bubble Tea program and forwards engine views into it until either side stops
func runWatch(ctx context.Context, container *Container) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	updates := container.TimerService.Subscribe(updatesBuffer)
	model := ui.NewWatchModel(ctx, container.TimerService, container.SettingsService.Current().Theme)
	p := tea.NewProgram(model, tea.WithAltScreen())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		logging.Logger.Info("Starting live view")
		if _, err := p.Run(); err != nil {
			logging.Logger.Error("Live view error", "error", err)
			return fmt.Errorf("error running program: %w", err)
		}
		logging.Logger.Info("Live view exited normally")
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case view, ok := <-updates:
				if !ok {
					p.Quit()
					return nil
				}
				p.Send(ui.TimerViewMsg(view))
			}
		}
	})

	return g.Wait()
}
