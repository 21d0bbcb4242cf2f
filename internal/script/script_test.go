package script

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/living180/cola-complete/internal/schema"
)

func render(t *testing.T, sh Shell) string {
	t.Helper()
	var buf bytes.Buffer
	err := Render(&buf, sh, schema.Commands(), schema.CommonFlags())
	require.NoError(t, err)
	return buf.String()
}

func TestParseShell(t *testing.T) {
	for _, name := range Shells() {
		sh, err := ParseShell(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(sh))
	}

	_, err := ParseShell("powershell")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported shell")
}

func TestRenderFish(t *testing.T) {
	out := render(t, Fish)

	assert.Contains(t, out, "function __cola_refs")
	assert.Contains(t, out, "git for-each-ref --format='%(refname:short)'")
	assert.Contains(t, out, "complete -c git-cola -n __fish_use_subcommand -a rebase -d 'interactive rebase'")
	assert.Contains(t, out, "-l strategy -x -a 'recursive resolve octopus ort ours subtree'")
	assert.Contains(t, out, "-l icon-theme -x -a 'default light dark'")
	assert.Contains(t, out, "(__cola_refs)")
	assert.Contains(t, out, "__fish_complete_suffix .patch")
}

func TestRenderFishRefCommands(t *testing.T) {
	out := render(t, Fish)

	// Every subcommand with a ref slot shares one candidate line.
	line := ""
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, "(__cola_refs)") {
			line = l
		}
	}
	require.NotEmpty(t, line)
	for _, name := range []string{"archive", "browse", "dag", "diff", "merge", "rebase", "tag"} {
		assert.Contains(t, line, name)
	}
}

func TestRenderBash(t *testing.T) {
	out := render(t, Bash)

	assert.Contains(t, out, "_git_cola()")
	assert.Contains(t, out, "cola-complete query --cwd")
	assert.Contains(t, out, "complete -o default -F _git_cola git-cola")
}

func TestRenderZsh(t *testing.T) {
	out := render(t, Zsh)

	assert.True(t, strings.HasPrefix(out, "#compdef git-cola"))
	assert.Contains(t, out, "cola-complete query --cwd")
}

func TestDefaultPath(t *testing.T) {
	home := "/home/u"

	assert.Equal(t,
		filepath.Join(home, ".config", "fish", "completions", "git-cola.fish"),
		DefaultPath(Fish, home))
	assert.Equal(t,
		filepath.Join(home, ".local", "share", "bash-completion", "completions", "git-cola"),
		DefaultPath(Bash, home))
	assert.Equal(t,
		filepath.Join(home, ".zfunc", "_git-cola"),
		DefaultPath(Zsh, home))
}
