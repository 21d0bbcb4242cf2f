// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cola-complete configuration",
		Long: `Commands for inspecting the cola-complete configuration.

cola-complete works without any configuration; the config file only
overrides the git executable and the default install shell.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdPath())

	return cmd
}
