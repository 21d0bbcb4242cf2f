// Package show provides the show command for inspecting the completion
// schema.
package show

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/schema"
	"github.com/living180/cola-complete/internal/view"
)

type showOptions struct {
	name    string
	output  string
	noColor bool
}

// NewCmdShow creates the show command.
func NewCmdShow() *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show [subcommand]",
		Short: "Show the git-cola completion schema",
		Long: `Show the completion schema cola-complete knows about.

Without arguments, lists every git-cola subcommand. With a subcommand name,
shows its flags (including closed value sets) and positional argument kinds.`,
		Example: `  # List all subcommands
  cola-complete show

  # Inspect one subcommand
  cola-complete show rebase

  # Machine-readable
  cola-complete show rebase -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.name = args[0]
			}
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			return runShow(opts, nil)
		},
	}

	return cmd
}

func runShow(opts *showOptions, w io.Writer) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if w != nil {
		renderer.SetWriter(w)
	}

	if opts.name == "" {
		headers := []string{"NAME", "DESCRIPTION"}
		var rows [][]string
		for _, cmd := range schema.Commands() {
			rows = append(rows, []string{cmd.Name, cmd.Description})
		}
		renderer.RenderTable(headers, rows)
		return nil
	}

	cmd, ok := schema.Lookup(opts.name)
	if !ok {
		return fmt.Errorf("unknown subcommand %q (run 'cola-complete show' for the full list)", opts.name)
	}

	if opts.output == string(view.FormatJSON) {
		return renderer.RenderJSON(describe(cmd))
	}

	renderer.RenderKeyValue("name", cmd.Name)
	renderer.RenderKeyValue("description", cmd.Description)

	if len(cmd.Flags) > 0 {
		renderer.RenderText("")
		headers := []string{"FLAG", "VALUES", "DESCRIPTION"}
		var rows [][]string
		for _, f := range cmd.Flags {
			values := strings.Join(f.Values, ", ")
			if values == "" && f.Placeholder != "" {
				values = "<" + f.Placeholder + ">"
			}
			rows = append(rows, []string{"--" + f.Name, values, f.Description})
		}
		renderer.RenderTable(headers, rows)
	}

	if len(cmd.Positionals) > 0 {
		var kinds []string
		for _, pos := range cmd.Positionals {
			kind := pos.Kind.String()
			if pos.Pattern != "" {
				kind += " (" + pos.Pattern + ")"
			}
			kinds = append(kinds, kind)
		}
		renderer.RenderText("")
		renderer.RenderKeyValue("arguments", strings.Join(kinds, ", "))
	}

	return nil
}

// description of a subcommand in JSON-friendly form.
type flagJSON struct {
	Name        string   `json:"name"`
	Placeholder string   `json:"placeholder,omitempty"`
	Values      []string `json:"values,omitempty"`
	Description string   `json:"description"`
}

type subcommandJSON struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Flags       []flagJSON `json:"flags,omitempty"`
	Arguments   []string   `json:"arguments,omitempty"`
}

func describe(cmd schema.Subcommand) subcommandJSON {
	out := subcommandJSON{Name: cmd.Name, Description: cmd.Description}
	for _, f := range cmd.Flags {
		out.Flags = append(out.Flags, flagJSON{
			Name:        f.Name,
			Placeholder: f.Placeholder,
			Values:      f.Values,
			Description: f.Description,
		})
	}
	for _, pos := range cmd.Positionals {
		out.Arguments = append(out.Arguments, pos.Kind.String())
	}
	return out
}
