package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for cola-complete.

To load completions in your current shell session:

  cola-complete completion fish | source

To load completions for every new session:

  cola-complete completion fish > ~/.config/fish/completions/cola-complete.fish`,
		Example: `  # Load in current session
  cola-complete completion fish | source

  # Install permanently
  cola-complete completion fish > ~/.config/fish/completions/cola-complete.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
