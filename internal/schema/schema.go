// Package schema defines the static completion schema for the git-cola CLI:
// every subcommand, the flags each one accepts, and the kinds of positional
// arguments that follow. The tables are build-time data and never change at
// runtime.
package schema

// ArgKind describes what a positional argument slot accepts.
type ArgKind int

const (
	// ArgNone means the subcommand takes no positional argument in this slot.
	ArgNone ArgKind = iota
	// ArgRef is a branch or tag short name from the current repository.
	ArgRef
	// ArgPath is a file path, optionally restricted by a glob pattern.
	ArgPath
	// ArgText is free-form text (e.g. a new tag name or a search pattern).
	ArgText
)

// String returns the kind name used in human-facing output.
func (k ArgKind) String() string {
	switch k {
	case ArgRef:
		return "ref"
	case ArgPath:
		return "path"
	case ArgText:
		return "text"
	default:
		return "none"
	}
}

// Flag describes a single flag a subcommand accepts.
type Flag struct {
	// Name is the long flag name without the leading dashes.
	Name string
	// Placeholder names the value the flag expects; empty for boolean flags.
	Placeholder string
	// Values is the closed set of literal values the flag accepts.
	// Nil when the value is free-form or the flag is boolean.
	Values []string
	// Description is the short help shown next to the candidate.
	Description string
}

// TakesValue reports whether the flag consumes a separate value token.
func (f Flag) TakesValue() bool {
	return f.Placeholder != "" || len(f.Values) > 0
}

// Positional describes one positional argument slot.
type Positional struct {
	Kind ArgKind
	// Pattern restricts ArgPath slots to matching files (e.g. "*.patch").
	Pattern string
}

// Subcommand describes one git-cola subcommand and its argument schema.
type Subcommand struct {
	Name        string
	Description string
	Flags       []Flag
	Positionals []Positional
}

// Flag returns the named flag and whether it exists on the subcommand.
func (s Subcommand) Flag(name string) (Flag, bool) {
	for _, f := range s.Flags {
		if f.Name == name {
			return f, true
		}
	}
	return Flag{}, false
}
