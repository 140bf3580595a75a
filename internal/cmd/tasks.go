package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"tasktimers/internal/domain"
	"tasktimers/internal/logging"
	"tasktimers/internal/ui"
)

// TasksCmd manages the task catalog
type TasksCmd struct {
	Add    TasksAddCmd    `cmd:"add" help:"Add a task"`
	Del    TasksDelCmd    `cmd:"del" aliases:"rm" help:"Delete tasks by position"`
	Edit   TasksEditCmd   `cmd:"edit" help:"Rename a task or change its duration"`
	Export TasksExportCmd `cmd:"export" help:"Write the task list as YAML"`
	Import TasksImportCmd `cmd:"import" help:"Read tasks from a YAML file"`
	List   TasksListCmd   `cmd:"list" aliases:"ls" help:"List all tasks" default:"1"`
	Move   TasksMoveCmd   `cmd:"move" aliases:"mv" help:"Reorder tasks"`
}

// TasksListCmd lists the catalog
type TasksListCmd struct {
	IDs bool `help:"Show task ids" name:"ids"`
}

// Run executes the list command
func (l *TasksListCmd) Run(cli *CLI) error {
	tasks := cli.Container.CatalogService.List()
	if len(tasks) == 0 {
		fmt.Fprintln(cli.out(), "No tasks")
		return nil
	}

	w := tabwriter.NewWriter(cli.out(), 0, 0, 2, ' ', 0)
	if l.IDs {
		fmt.Fprintln(w, "#\tNAME\tDURATION\tID")
	} else {
		fmt.Fprintln(w, "#\tNAME\tDURATION")
	}
	for i, task := range tasks {
		if l.IDs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, task.Name, domain.FormatClock(task.DurationSeconds), task.ID)
		} else {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, task.Name, domain.FormatClock(task.DurationSeconds))
		}
	}
	return w.Flush()
}

// TasksAddCmd adds a task; without arguments an interactive form is shown.
// Positional order is name then duration.
type TasksAddCmd struct {
	Name     string `arg:"" optional:"" help:"Task name"`
	Duration string `arg:"" optional:"" help:"Minutes, or a duration such as 90s or 1h30m"`
}

// Run executes the add command
func (a *TasksAddCmd) Run(cli *CLI) error {
	ctx := context.Background()

	name, seconds, err := a.values()
	if err != nil {
		return err
	}

	task, err := cli.Container.CatalogService.Add(ctx, name, seconds)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	logging.Logger.Info("Task added via CLI", "task_id", task.ID, "name", task.Name)
	fmt.Fprintf(cli.out(), "Added %s (%s)\n", task.Name, domain.FormatClock(task.DurationSeconds))
	return nil
}

func (a *TasksAddCmd) values() (string, int, error) {
	if a.Name == "" && a.Duration == "" {
		return ui.RunTaskForm(nil)
	}
	if a.Name == "" {
		return "", 0, domain.ErrEmptyTaskName
	}
	seconds, err := ui.ParseDurationInput(a.Duration)
	if err != nil {
		return "", 0, err
	}
	return a.Name, seconds, nil
}

// TasksEditCmd changes a task in place
type TasksEditCmd struct {
	Duration string `help:"New duration"`
	Name     string `help:"New name" short:"n"`
	Task     string `arg:"" help:"Task id, position or name"`
}

// Run executes the edit command
func (e *TasksEditCmd) Run(cli *CLI) error {
	ctx := context.Background()

	task, err := cli.Container.CatalogService.Resolve(e.Task)
	if err != nil {
		return fmt.Errorf("cannot edit %q: %w", e.Task, err)
	}

	if e.Name == "" && e.Duration == "" {
		name, seconds, err := ui.RunTaskForm(&task)
		if err != nil {
			return err
		}
		task.Name, task.DurationSeconds = name, seconds
	} else {
		if e.Name != "" {
			task.Name = strings.TrimSpace(e.Name)
		}
		if e.Duration != "" {
			seconds, err := ui.ParseDurationInput(e.Duration)
			if err != nil {
				return err
			}
			task.DurationSeconds = seconds
		}
	}

	if err := cli.Container.CatalogService.Update(ctx, task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	fmt.Fprintf(cli.out(), "Updated %s (%s)\n", task.Name, domain.FormatClock(task.DurationSeconds))
	return nil
}

// TasksDelCmd deletes tasks by 1-based position
type TasksDelCmd struct {
	Positions []int `arg:"" help:"Positions as shown by tasks list"`
}

// Run executes the del command
func (d *TasksDelCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if err := cli.Container.CatalogService.Delete(ctx, toOffsets(d.Positions)); err != nil {
		return fmt.Errorf("failed to delete tasks: %w", err)
	}
	fmt.Fprintf(cli.out(), "Deleted %d task(s)\n", len(d.Positions))
	return nil
}

// TasksMoveCmd moves tasks to a new 1-based position
type TasksMoveCmd struct {
	Positions []int `arg:"" help:"Positions to move"`
	To        int   `help:"Destination position; the moved tasks are inserted before it" required:"" short:"t"`
}

// Run executes the move command
func (m *TasksMoveCmd) Run(cli *CLI) error {
	ctx := context.Background()

	if err := cli.Container.CatalogService.Move(ctx, toOffsets(m.Positions), m.To-1); err != nil {
		return fmt.Errorf("failed to move tasks: %w", err)
	}
	return (&TasksListCmd{}).Run(cli)
}

// TasksExportCmd writes the catalog as YAML
type TasksExportCmd struct {
	Output string `help:"File to write (default stdout)" short:"o"`
}

// Run executes the export command
func (e *TasksExportCmd) Run(cli *CLI) error {
	if e.Output == "" {
		return cli.Container.CatalogService.Export(cli.out())
	}

	file, err := os.Create(e.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", e.Output, err)
	}
	defer file.Close()

	if err := cli.Container.CatalogService.Export(file); err != nil {
		return err
	}
	fmt.Fprintf(cli.out(), "Exported %d task(s) to %s\n", len(cli.Container.CatalogService.List()), e.Output)
	return nil
}

// TasksImportCmd merges tasks from a YAML file
type TasksImportCmd struct {
	File string `arg:"" help:"YAML file produced by tasks export" type:"existingfile"`
}

// Run executes the import command
func (i *TasksImportCmd) Run(cli *CLI) error {
	ctx := context.Background()

	file, err := os.Open(i.File)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", i.File, err)
	}
	defer file.Close()

	added, updated, err := cli.Container.CatalogService.Import(ctx, file)
	if err != nil {
		return fmt.Errorf("failed to import tasks: %w", err)
	}
	fmt.Fprintf(cli.out(), "Imported %d new and %d updated task(s)\n", added, updated)
	return nil
}

// toOffsets converts 1-based list positions to catalog offsets
func toOffsets(positions []int) []int {
	offsets := make([]int, len(positions))
	for i, p := range positions {
		offsets[i] = p - 1
	}
	return offsets
}
