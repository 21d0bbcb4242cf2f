// Package query provides the hidden completion backend command.
//
// Generated bash and zsh scripts call it with the tokens of the current
// command line; it prints candidate lines and always exits zero, because a
// completion keystroke must never surface an error.
package query

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/living180/cola-complete/internal/config"
	"github.com/living180/cola-complete/internal/engine"
	"github.com/living180/cola-complete/internal/gitrepo"
)

type queryOptions struct {
	cwd string
}

// NewCmdQuery creates the query command.
func NewCmdQuery() *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query -- [token...]",
		Short: "Compute completion candidates for a git-cola command line",
		Long: `Compute completion candidates for a partially typed git-cola command line.

The tokens after "--" are the words following "git-cola" on the line being
completed; the last token is the word under the cursor (pass an empty token
when completing a fresh word). Candidates are printed one per line as
"value<TAB>description".

This is plumbing for the generated shell scripts, not meant to be typed by
hand.`,
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.cwd, "cwd", "", "directory probed for a git repository")

	return cmd
}

func runQuery(ctx context.Context, w io.Writer, opts *queryOptions, tokens []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := config.LoadWithEnv(config.DefaultConfigPath())
	lister := gitrepo.NewLister(opts.cwd)
	lister.GitPath = cfg.Git()

	args, toComplete := splitTokens(tokens)

	eng := engine.NewDefault(lister.ListRefs)
	for _, c := range eng.Complete(ctx, args, toComplete) {
		if c.Description != "" {
			fmt.Fprintf(w, "%s\t%s\n", c.Value, c.Description)
		} else {
			fmt.Fprintln(w, c.Value)
		}
	}

	// Worst case is zero candidates, never an error.
	return nil
}

// splitTokens separates the completed tokens from the word under the cursor.
func splitTokens(tokens []string) ([]string, string) {
	if len(tokens) == 0 {
		return nil, ""
	}
	return tokens[:len(tokens)-1], tokens[len(tokens)-1]
}
