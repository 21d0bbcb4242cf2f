package scriptcmd

import (
	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/script"
)

// NewCmdBash creates the bash script command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate the git-cola completion script for bash",
		Long: `Generate the git-cola completion script for bash.

The script delegates candidate computation to "cola-complete query", so the
cola-complete binary must stay on PATH.

To load completions in your current shell session:

  source <(cola-complete script bash)

To load completions for every new session:

  cola-complete script bash > ~/.local/share/bash-completion/completions/git-cola`,
		Example: `  # Load in current session
  source <(cola-complete script bash)

  # Install permanently
  cola-complete script bash > ~/.local/share/bash-completion/completions/git-cola`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScript(cmd, script.Bash)
		},
	}
}
