package schema

// rebaseStrategies are the merge strategies "git rebase --strategy" accepts.
var rebaseStrategies = []string{"recursive", "resolve", "octopus", "ort", "ours", "subtree"}

// commonFlags are accepted by every git-cola invocation, with or without a
// subcommand. Unknown subcommands complete against this set and nothing else.
var commonFlags = []Flag{
	{Name: "help", Description: "show help and exit"},
	{Name: "icon-theme", Placeholder: "theme", Values: []string{"default", "light", "dark"}, Description: "specify an icon theme"},
	{Name: "theme", Placeholder: "name", Description: "specify a GUI theme"},
	{Name: "prompt", Description: "prompt for a repository"},
	{Name: "repo", Placeholder: "path", Description: "open the specified repository"},
	{Name: "version", Description: "print version and exit"},
}

// commands is the full git-cola subcommand table, in help order.
var commands = []Subcommand{
	{
		Name:        "am",
		Description: `apply patches using "git am"`,
		Positionals: []Positional{{Kind: ArgPath, Pattern: "*.patch"}},
	},
	{
		Name:        "archive",
		Description: "save an archive",
		Positionals: []Positional{{Kind: ArgRef}},
	},
	{
		Name:        "branch",
		Description: "create a branch",
	},
	{
		Name:        "browse",
		Description: "browse repository",
		Positionals: []Positional{{Kind: ArgRef}},
	},
	{
		Name:        "clone",
		Description: "clone repository",
		Positionals: []Positional{{Kind: ArgText}},
	},
	{
		Name:        "config",
		Description: "configure settings",
	},
	{
		Name:        "dag",
		Description: "start git-dag",
		Flags: []Flag{
			{Name: "count", Placeholder: "count", Description: "number of commits to display"},
		},
		Positionals: []Positional{{Kind: ArgRef}},
	},
	{
		Name:        "diff",
		Description: "view diffs",
		Positionals: []Positional{{Kind: ArgRef}, {Kind: ArgPath}},
	},
	{
		Name:        "fetch",
		Description: "fetch remotes",
	},
	{
		Name:        "find",
		Description: "find files",
		Positionals: []Positional{{Kind: ArgPath}},
	},
	{
		Name:        "grep",
		Description: "grep source",
		Positionals: []Positional{{Kind: ArgText}},
	},
	{
		Name:        "merge",
		Description: "merge branches",
		Positionals: []Positional{{Kind: ArgRef}},
	},
	{
		Name:        "pull",
		Description: "pull remote branches",
		Flags: []Flag{
			{Name: "rebase", Description: "rebase local branches"},
		},
	},
	{
		Name:        "push",
		Description: "push remote branches",
	},
	{
		Name:        "rebase",
		Description: "interactive rebase",
		Flags: []Flag{
			{Name: "autosquash", Description: "move commits that begin with squash!/fixup!"},
			{Name: "autostash", Description: "automatically stash/stash pop before and after"},
			{Name: "fork-point", Description: "use 'merge-base --fork-point' to refine upstream"},
			{Name: "onto", Placeholder: "ref", Description: "rebase onto given branch instead of upstream"},
			{Name: "preserve-merges", Description: "try to recreate merges instead of ignoring them"},
			{Name: "root", Description: "rebase all reachable commits up to the root(s)"},
			{Name: "strategy", Placeholder: "strategy", Values: rebaseStrategies, Description: "use the given merge strategy"},
			{Name: "verify", Description: "allow pre-rebase hook to run"},
			{Name: "continue", Description: "continue"},
			{Name: "abort", Description: "abort and check out the original branch"},
			{Name: "skip", Description: "skip current patch and continue"},
			{Name: "edit-todo", Description: "edit the todo list during an interactive rebase"},
		},
		// Upstream and branch slots; both complete against the same refs.
		Positionals: []Positional{{Kind: ArgRef}, {Kind: ArgRef}},
	},
	{
		Name:        "recent",
		Description: "edit recent files",
	},
	{
		Name:        "remote",
		Description: "edit remotes",
	},
	{
		Name:        "search",
		Description: "search commits",
		Positionals: []Positional{{Kind: ArgText}},
	},
	{
		Name:        "stash",
		Description: "stash changes",
	},
	{
		Name:        "tag",
		Description: "create tags",
		Flags: []Flag{
			{Name: "sign", Description: "annotated and GPG-signed tag"},
		},
		Positionals: []Positional{{Kind: ArgText}, {Kind: ArgRef}},
	},
	{
		Name:        "version",
		Description: "print the version",
	},
}

// Commands returns the ordered subcommand table.
func Commands() []Subcommand {
	return commands
}

// CommonFlags returns the flags shared by every invocation.
func CommonFlags() []Flag {
	return commonFlags
}

// Lookup returns the schema for the named subcommand.
func Lookup(name string) (Subcommand, bool) {
	for _, c := range commands {
		if c.Name == name {
			return c, true
		}
	}
	return Subcommand{}, false
}
