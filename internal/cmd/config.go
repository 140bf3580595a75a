package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"tasktimers/internal/config"
)

// ConfigCmd inspects settings.json
type ConfigCmd struct {
	Meta ConfigMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// ConfigMetaCmd displays settings metadata
type ConfigMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *ConfigMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()
	out := cli.out()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure tasktimers.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	return nil
}
