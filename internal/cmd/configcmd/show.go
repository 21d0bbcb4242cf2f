package configcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the resolved cola-complete configuration and where each value came from.`,
		Example: `  # Show current config
  cola-complete config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			return runShow(cmd.OutOrStdout(), noColor)
		},
	}

	return cmd
}

func runShow(w io.Writer, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	configPath := config.DefaultConfigPath()

	// File config may not exist; that is the normal case.
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-8s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "- (default)")
			return
		}

		fmt.Fprint(w, value)

		source := "config"
		if v := os.Getenv(envVar); v != "" && v == value {
			source = envVar
		} else if fileErr != nil || fileValue != value {
			source = "-"
		}
		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Git", cfg.GitPath, fileCfg.GitPath, "COLA_COMPLETE_GIT")
	printField("Shell", cfg.Shell, fileCfg.Shell, "COLA_COMPLETE_SHELL")

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
