package cmd

import (
	"fmt"

	"tasktimers/version"
)

// VersionCmd prints build information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(cli *CLI) error {
	fmt.Fprintln(cli.out(), version.Info())
	return nil
}
