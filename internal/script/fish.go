package script

import (
	"fmt"
	"strings"

	"github.com/living180/cola-complete/internal/schema"
)

const fishHeader = `# fish completion for git-cola
# generated by cola-complete; do not edit by hand

function __cola_refs
    if command git rev-parse --verify --quiet HEAD >/dev/null 2>&1
        command git for-each-ref --format='%(refname:short)'
    end
end
`

// renderFish produces a self-contained fish completion script. Dynamic ref
// candidates come from the inline __cola_refs helper; everything else is
// static data rendered from the schema.
func renderFish(table []schema.Subcommand, common []schema.Flag) string {
	var b strings.Builder
	b.WriteString(fishHeader)

	b.WriteString("\n# global options\n")
	for _, f := range common {
		b.WriteString(fishFlag("", f))
	}

	b.WriteString("\n# subcommands\n")
	for _, cmd := range table {
		fmt.Fprintf(&b, "complete -c git-cola -n __fish_use_subcommand -a %s -d %s\n",
			cmd.Name, fishQuote(cmd.Description))
	}

	for _, cmd := range table {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n# %s options\n", cmd.Name)
		for _, f := range cmd.Flags {
			b.WriteString(fishFlag(cmd.Name, f))
		}
	}

	if refCmds := commandsWithArg(table, schema.ArgRef); len(refCmds) > 0 {
		b.WriteString("\n# ref arguments\n")
		fmt.Fprintf(&b, "complete -c git-cola -n '__fish_seen_subcommand_from %s' -a '(__cola_refs)'\n",
			strings.Join(refCmds, " "))
	}

	b.WriteString("\n# patch files\n")
	for _, cmd := range table {
		for _, pos := range cmd.Positionals {
			if pos.Kind == schema.ArgPath && strings.HasPrefix(pos.Pattern, "*") {
				fmt.Fprintf(&b, "complete -c git-cola -n '__fish_seen_subcommand_from %s' -k -a '(__fish_complete_suffix %s)'\n",
					cmd.Name, strings.TrimPrefix(pos.Pattern, "*"))
			}
		}
	}

	return b.String()
}

// fishFlag renders one "complete" line for a flag. sub is empty for global
// options.
func fishFlag(sub string, f schema.Flag) string {
	var b strings.Builder
	b.WriteString("complete -c git-cola")
	if sub != "" {
		fmt.Fprintf(&b, " -n '__fish_seen_subcommand_from %s'", sub)
	}
	fmt.Fprintf(&b, " -l %s", f.Name)
	if len(f.Values) > 0 {
		fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
	} else if f.Placeholder != "" {
		b.WriteString(" -r")
	}
	fmt.Fprintf(&b, " -d %s\n", fishQuote(f.Description))
	return b.String()
}

// commandsWithArg lists subcommand names having at least one positional of
// the given kind.
func commandsWithArg(table []schema.Subcommand, kind schema.ArgKind) []string {
	var names []string
	for _, cmd := range table {
		for _, pos := range cmd.Positionals {
			if pos.Kind == kind {
				names = append(names, cmd.Name)
				break
			}
		}
	}
	return names
}

func fishQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
