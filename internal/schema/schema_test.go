package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonFlags(t *testing.T) {
	var names []string
	for _, f := range CommonFlags() {
		names = append(names, f.Name)
	}

	assert.ElementsMatch(t,
		[]string{"help", "icon-theme", "theme", "prompt", "repo", "version"},
		names)
}

func TestLookup(t *testing.T) {
	cmd, ok := Lookup("rebase")
	require.True(t, ok)
	assert.Equal(t, "rebase", cmd.Name)

	_, ok = Lookup("bogus")
	assert.False(t, ok)
}

func TestRebaseFlags(t *testing.T) {
	cmd, ok := Lookup("rebase")
	require.True(t, ok)

	var names []string
	for _, f := range cmd.Flags {
		names = append(names, f.Name)
	}

	assert.ElementsMatch(t, []string{
		"autosquash", "autostash", "fork-point", "onto", "preserve-merges",
		"root", "strategy", "verify", "continue", "abort", "skip", "edit-todo",
	}, names)
}

func TestRebaseStrategyValues(t *testing.T) {
	cmd, ok := Lookup("rebase")
	require.True(t, ok)

	strategy, ok := cmd.Flag("strategy")
	require.True(t, ok)
	assert.Equal(t,
		[]string{"recursive", "resolve", "octopus", "ort", "ours", "subtree"},
		strategy.Values)
	assert.True(t, strategy.TakesValue())
}

func TestRebasePositionals(t *testing.T) {
	cmd, ok := Lookup("rebase")
	require.True(t, ok)

	// Upstream and branch, both plain ref slots.
	require.Len(t, cmd.Positionals, 2)
	assert.Equal(t, ArgRef, cmd.Positionals[0].Kind)
	assert.Equal(t, ArgRef, cmd.Positionals[1].Kind)
}

func TestTagSchema(t *testing.T) {
	cmd, ok := Lookup("tag")
	require.True(t, ok)

	_, ok = cmd.Flag("sign")
	assert.True(t, ok)

	require.Len(t, cmd.Positionals, 2)
	assert.Equal(t, ArgText, cmd.Positionals[0].Kind)
	assert.Equal(t, ArgRef, cmd.Positionals[1].Kind)
}

func TestAmTakesPatchFiles(t *testing.T) {
	cmd, ok := Lookup("am")
	require.True(t, ok)

	require.Len(t, cmd.Positionals, 1)
	assert.Equal(t, ArgPath, cmd.Positionals[0].Kind)
	assert.Equal(t, "*.patch", cmd.Positionals[0].Pattern)
}

func TestEveryCommandHasDescription(t *testing.T) {
	for _, cmd := range Commands() {
		assert.NotEmpty(t, cmd.Description, "subcommand %q", cmd.Name)
	}
}

func TestIconThemeValues(t *testing.T) {
	var iconTheme Flag
	for _, f := range CommonFlags() {
		if f.Name == "icon-theme" {
			iconTheme = f
		}
	}
	assert.Equal(t, []string{"default", "light", "dark"}, iconTheme.Values)
}

func TestArgKindString(t *testing.T) {
	assert.Equal(t, "ref", ArgRef.String())
	assert.Equal(t, "path", ArgPath.String())
	assert.Equal(t, "text", ArgText.String())
	assert.Equal(t, "none", ArgNone.String())
}
