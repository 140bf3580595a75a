package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"tasktimers/internal/config"
	"tasktimers/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DBPath      string           `help:"Path to the state database (overrides settings.json)" name:"db-path"`
	Ephemeral   bool             `help:"Keep all state in memory for this run"`

	Watch       WatchCmd       `cmd:"" help:"Show the live timer (default)" default:"1"`
	Start       StartCmd       `cmd:"start" help:"Start a timer for a task"`
	Pomodoro    PomodoroCmd    `cmd:"pomodoro" help:"Start a Pomodoro run"`
	Last        LastCmd        `cmd:"last" help:"Start the last used task again"`
	Pause       PauseCmd       `cmd:"pause" help:"Pause the running timer"`
	Resume      ResumeCmd      `cmd:"resume" help:"Resume the paused timer"`
	Cancel      CancelCmd      `cmd:"cancel" help:"Cancel the current timer"`
	Adjust      AdjustCmd      `cmd:"adjust" help:"Add or remove time from the current timer"`
	Status      StatusCmd      `cmd:"status" help:"Show the current timer"`
	Tasks       TasksCmd       `cmd:"tasks" help:"Manage tasks (list, add, edit, del, move, export, import)"`
	Settings    SettingsCmd    `cmd:"settings" help:"Show or change timer preferences"`
	Config      ConfigCmd      `cmd:"config" help:"Inspect settings.json (meta)"`
	VersionInfo VersionCmd     `cmd:"" name:"version" help:"Print version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Stdout    io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// commands that run without opening the state store
var storelessCommands = []string{"config", "version"}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	logging.Logger.Debug("Logging initialized", "file", logFilePath, "command", kctx.Command())

	if !needsContainer(kctx.Command()) {
		return nil
	}

	// Container is created after logging so GORM's logger has a live handler
	container, err := NewContainer(context.Background(), c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container
	return nil
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("TASKTIMERS_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("TASKTIMERS_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}

	if c.DBPath == "" {
		if env := os.Getenv("TASKTIMERS_DB_PATH"); env != "" {
			c.DBPath = env
		} else {
			c.DBPath = c.settings.DBPath
		}
	}
}

func (c *CLI) containerOptions() ContainerOptions {
	opts := ContainerOptions{
		DBPath:        config.ExpandPath(c.DBPath),
		Ephemeral:     c.Ephemeral,
		Notifications: c.settings.NotificationsEnabled(),
		TickInterval:  c.settings.TickInterval(),
	}
	if opts.DBPath == "" {
		opts.DBPath = config.GetDBPath()
	}
	return opts
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func (c *CLI) out() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}

func needsContainer(command string) bool {
	for _, name := range storelessCommands {
		if command == name || strings.HasPrefix(command, name+" ") {
			return false
		}
	}
	return true
}
