package cmd

import (
	"github.com/mitchellh/cli"
)

// Version is the version of the binary, set at build time
var Version = "0.1.0-dev"

// VersionCommand is the command to show the version of the agent
type VersionCommand struct {
	UI cli.Ui
}

// Help implements the cli.Command interface
func (c *VersionCommand) Help() string {
	return `Usage: batchdeposit version

  Display the batchdeposit version`
}

// Synopsis implements the cli.Command interface
func (c *VersionCommand) Synopsis() string {
	return "Display the batchdeposit version"
}

// Run implements the cli.Command interface
func (c *VersionCommand) Run(args []string) int {
	c.UI.Output(Version)
	return 0
}
