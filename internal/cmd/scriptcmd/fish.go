package scriptcmd

import (
	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/script"
)

// NewCmdFish creates the fish script command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate the git-cola completion script for fish",
		Long: `Generate the git-cola completion script for fish.

The script is fully self-contained; ref candidates are produced by an
inline helper that queries git directly.

To install for every new session:

  cola-complete script fish > ~/.config/fish/completions/git-cola.fish`,
		Example: `  # Load in current session
  cola-complete script fish | source

  # Install permanently
  cola-complete script fish > ~/.config/fish/completions/git-cola.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScript(cmd, script.Fish)
		},
	}
}
