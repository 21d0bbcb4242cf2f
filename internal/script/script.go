// Package script renders per-shell completion scripts for git-cola from the
// static schema tables. The fish script is fully self-contained; bash and
// zsh scripts delegate candidate computation to "cola-complete query".
package script

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/living180/cola-complete/internal/schema"
)

// Shell identifies a supported shell.
type Shell string

const (
	Fish Shell = "fish"
	Bash Shell = "bash"
	Zsh  Shell = "zsh"
)

// Shells returns the supported shell names.
func Shells() []string {
	return []string{string(Fish), string(Bash), string(Zsh)}
}

// ParseShell validates a shell name.
func ParseShell(name string) (Shell, error) {
	switch Shell(name) {
	case Fish, Bash, Zsh:
		return Shell(name), nil
	default:
		return "", fmt.Errorf("unsupported shell %q (expected fish, bash, or zsh)", name)
	}
}

// Render writes the completion script for the given shell.
func Render(w io.Writer, sh Shell, table []schema.Subcommand, common []schema.Flag) error {
	var out string
	switch sh {
	case Fish:
		out = renderFish(table, common)
	case Bash:
		out = renderBash()
	case Zsh:
		out = renderZsh()
	default:
		return fmt.Errorf("unsupported shell %q", sh)
	}

	_, err := io.WriteString(w, out)
	return err
}

// DefaultPath returns the conventional install location for the script.
func DefaultPath(sh Shell, home string) string {
	switch sh {
	case Fish:
		return filepath.Join(home, ".config", "fish", "completions", "git-cola.fish")
	case Bash:
		return filepath.Join(home, ".local", "share", "bash-completion", "completions", "git-cola")
	case Zsh:
		return filepath.Join(home, ".zfunc", "_git-cola")
	default:
		return ""
	}
}
