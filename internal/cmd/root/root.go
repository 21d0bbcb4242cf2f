// Package root provides the root command for the cola-complete CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/cmd/completion"
	"github.com/living180/cola-complete/internal/cmd/configcmd"
	"github.com/living180/cola-complete/internal/cmd/install"
	"github.com/living180/cola-complete/internal/cmd/query"
	"github.com/living180/cola-complete/internal/cmd/scriptcmd"
	"github.com/living180/cola-complete/internal/cmd/show"
	"github.com/living180/cola-complete/internal/version"
)

// NewCmdRoot creates the root command for cola-complete.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cola-complete",
		Short: "Shell completion for git-cola",
		Long: `cola-complete provides tab-completion for the git-cola suite.

It knows every git-cola subcommand, the flags each one takes, and which
arguments are repository refs, and it generates completion scripts for
fish, bash, and zsh from that single schema.

Get started by running: cola-complete install`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("cola-complete version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(query.NewCmdQuery())
	cmd.AddCommand(scriptcmd.NewCmdScript())
	cmd.AddCommand(show.NewCmdShow())
	cmd.AddCommand(install.NewCmdInstall())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
