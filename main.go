package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"tasktimers/internal/cmd"
	"tasktimers/internal/config"
	"tasktimers/version"
)

func main() {
	// Load settings from $TASKTIMERS_HOME/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("tasktimers"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)
	defer cli.Close()

	if err := ctx.Run(); err != nil {
		cli.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
