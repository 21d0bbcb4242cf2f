// Package scriptcmd provides the commands that generate git-cola completion
// scripts for each supported shell.
package scriptcmd

import (
	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/schema"
	"github.com/living180/cola-complete/internal/script"
)

// NewCmdScript creates the script command.
func NewCmdScript() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Generate git-cola completion scripts",
		Long: `Generate shell completion scripts for git-cola.

These scripts enable tab-completion of git-cola subcommands, flags, and
ref arguments. See each sub-command's help for installation instructions,
or use "cola-complete install" to install interactively.`,
	}

	cmd.AddCommand(NewCmdFish())
	cmd.AddCommand(NewCmdBash())
	cmd.AddCommand(NewCmdZsh())

	return cmd
}

func runScript(cmd *cobra.Command, sh script.Shell) error {
	return script.Render(cmd.OutOrStdout(), sh, schema.Commands(), schema.CommonFlags())
}
