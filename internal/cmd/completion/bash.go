package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for cola-complete.

To load completions in your current shell session:

  source <(cola-complete completion bash)

To load completions for every new session:

  # Linux
  cola-complete completion bash > /etc/bash_completion.d/cola-complete

  # macOS (requires bash-completion)
  cola-complete completion bash > $(brew --prefix)/etc/bash_completion.d/cola-complete`,
		Example: `  # Load in current session
  source <(cola-complete completion bash)

  # Install permanently (Linux)
  cola-complete completion bash | sudo tee /etc/bash_completion.d/cola-complete > /dev/null

  # Install permanently (macOS with Homebrew)
  cola-complete completion bash > $(brew --prefix)/etc/bash_completion.d/cola-complete`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
