// Package install provides the install command for cola-complete.
package install

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/config"
	"github.com/living180/cola-complete/internal/schema"
	"github.com/living180/cola-complete/internal/script"
	"github.com/living180/cola-complete/internal/view"
)

type installOptions struct {
	shell   string
	path    string
	force   bool
	noColor bool
}

// NewCmdInstall creates the install command.
func NewCmdInstall() *cobra.Command {
	opts := &installOptions{}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the git-cola completion script",
		Long: `Install the git-cola completion script for your shell.

Without flags this command asks which shell to install for and writes the
script to that shell's conventional completion directory. The default shell
can also be set in the config file or via COLA_COMPLETE_SHELL.`,
		Example: `  # Interactive
  cola-complete install

  # Non-interactive
  cola-complete install --shell fish

  # Custom location
  cola-complete install --shell bash --path /etc/bash_completion.d/git-cola`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runInstall(opts, nil)
		},
	}

	cmd.Flags().StringVar(&opts.shell, "shell", "", "shell to install for: fish, bash, or zsh")
	cmd.Flags().StringVar(&opts.path, "path", "", "write the script to this path instead of the default")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an existing script without asking")

	return cmd
}

func runInstall(opts *installOptions, w io.Writer) error {
	renderer := view.NewRenderer(view.FormatTable, opts.noColor)
	if w == nil {
		w = os.Stdout
	}
	renderer.SetWriter(w)

	cfg := config.LoadWithEnv(config.DefaultConfigPath())

	shellName := opts.shell
	if shellName == "" {
		shellName = cfg.Shell
	}

	// Flags (or config) make the run non-interactive.
	interactive := shellName == ""
	if interactive {
		err := huh.NewSelect[string]().
			Title("Shell").
			Description("Which shell should git-cola completion be installed for?").
			Options(huh.NewOptions(script.Shells()...)...).
			Value(&shellName).
			Run()
		if err != nil {
			return err
		}
	}

	sh, err := script.ParseShell(shellName)
	if err != nil {
		return err
	}

	path := opts.path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = script.DefaultPath(sh, home)
	}

	if _, err := os.Stat(path); err == nil && !opts.force {
		if !interactive {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Completion script already exists").
			Description(fmt.Sprintf("Overwrite %s?", path)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			renderer.RenderText("Installation cancelled.")
			return nil
		}
	}

	var buf bytes.Buffer
	if err := script.Render(&buf, sh, schema.Commands(), schema.CommonFlags()); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create completion directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write completion script: %w", err)
	}

	renderer.Success(fmt.Sprintf("Installed %s completion to %s", sh, path))
	if sh == script.Zsh {
		renderer.RenderText("\nMake sure the directory is on your fpath before compinit runs.")
	}

	return nil
}
