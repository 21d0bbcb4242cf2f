package root

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	// Keep the user's real config out of the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("COLA_COMPLETE_GIT", "")
	t.Setenv("COLA_COMPLETE_SHELL", "")

	cmd := NewCmdRoot()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestRootHasExpectedSubcommands(t *testing.T) {
	cmd := NewCmdRoot()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, strings.Fields(sub.Use)[0])
	}

	for _, want := range []string{"query", "script", "show", "install", "config", "completion"} {
		assert.Contains(t, names, want)
	}
}

func TestQueryPartialSubcommand(t *testing.T) {
	out := execute(t, "query", "--cwd", t.TempDir(), "--", "reb")

	assert.Equal(t, "rebase\tinteractive rebase\n", out)
}

func TestQueryStrategyValues(t *testing.T) {
	out := execute(t, "query", "--cwd", t.TempDir(), "--", "rebase", "--strategy", "")

	assert.Equal(t,
		[]string{"recursive", "resolve", "octopus", "ort", "ours", "subtree"},
		strings.Fields(out))
}

func TestQueryUnknownSubcommandOffersCommonOptions(t *testing.T) {
	out := execute(t, "query", "--cwd", t.TempDir(), "--", "wat", "")

	for _, flag := range []string{"--help", "--icon-theme", "--theme", "--prompt", "--repo", "--version"} {
		assert.Contains(t, out, flag)
	}
}

func TestScriptFishThroughRoot(t *testing.T) {
	out := execute(t, "script", "fish")

	assert.Contains(t, out, "complete -c git-cola")
}
