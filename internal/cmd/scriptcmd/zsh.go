package scriptcmd

import (
	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/script"
)

// NewCmdZsh creates the zsh script command.
func NewCmdZsh() *cobra.Command {
	return &cobra.Command{
		Use:   "zsh",
		Short: "Generate the git-cola completion script for zsh",
		Long: `Generate the git-cola completion script for zsh.

The script delegates candidate computation to "cola-complete query", so the
cola-complete binary must stay on PATH.

To install, write the script to a directory on your fpath:

  cola-complete script zsh > ~/.zfunc/_git-cola

and make sure ~/.zfunc precedes compinit in your .zshrc:

  fpath=(~/.zfunc $fpath)
  autoload -Uz compinit && compinit`,
		Example: `  # Install permanently
  cola-complete script zsh > ~/.zfunc/_git-cola`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScript(cmd, script.Zsh)
		},
	}
}
