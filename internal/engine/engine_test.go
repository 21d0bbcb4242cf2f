package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/living180/cola-complete/internal/dispatch"
)

func values(cands []dispatch.Candidate) []string {
	var out []string
	for _, c := range cands {
		out = append(out, c.Value)
	}
	return out
}

func TestClassify(t *testing.T) {
	assert.Equal(t, StateCommand, Classify(nil))
	assert.Equal(t, StateCommand, Classify([]string{}))
	assert.Equal(t, StateOptions, Classify([]string{"rebase"}))
	assert.Equal(t, StateOptions, Classify([]string{"rebase", "--onto"}))
}

func TestCompleteSubcommandPrefix(t *testing.T) {
	e := NewDefault(nil)

	cands := e.Complete(context.Background(), nil, "reb")
	assert.Equal(t, []string{"rebase"}, values(cands))
}

func TestCompleteEmptyLineListsAllSubcommands(t *testing.T) {
	e := NewDefault(nil)

	cands := e.Complete(context.Background(), nil, "")
	got := values(cands)
	assert.Contains(t, got, "am")
	assert.Contains(t, got, "rebase")
	assert.Contains(t, got, "version")
	assert.Len(t, got, 21)
}

func TestCompleteSubcommandDescriptions(t *testing.T) {
	e := NewDefault(nil)

	cands := e.Complete(context.Background(), nil, "dag")
	assert.Equal(t, []dispatch.Candidate{{Value: "dag", Description: "start git-dag"}}, cands)
}

func TestCompleteCommonFlagsAtTopLevel(t *testing.T) {
	e := NewDefault(nil)

	cands := e.Complete(context.Background(), nil, "--")
	assert.ElementsMatch(t, []string{
		"--help", "--icon-theme", "--theme", "--prompt", "--repo", "--version",
	}, values(cands))
}

func TestCompleteStrategyValues(t *testing.T) {
	e := NewDefault(nil)

	cands := e.Complete(context.Background(), []string{"rebase", "--strategy"}, "")
	assert.Equal(t,
		[]string{"recursive", "resolve", "octopus", "ort", "ours", "subtree"},
		values(cands))
}

func TestCompleteStrategyValuePrefix(t *testing.T) {
	e := NewDefault(nil)

	cands := e.Complete(context.Background(), []string{"rebase", "--strategy"}, "o")
	assert.Equal(t, []string{"octopus", "ort", "ours"}, values(cands))
}

func TestCompleteUnknownSubcommandFallsBack(t *testing.T) {
	e := NewDefault(nil)

	cands := e.Complete(context.Background(), []string{"frobnicate"}, "")
	assert.ElementsMatch(t, []string{
		"--help", "--icon-theme", "--theme", "--prompt", "--repo", "--version",
	}, values(cands))
}

func TestCompleteRefArguments(t *testing.T) {
	e := NewDefault(func(context.Context) []string {
		return []string{"main", "v1.0", "feature/x"}
	})

	cands := e.Complete(context.Background(), []string{"merge"}, "")
	assert.Equal(t, []string{"main", "v1.0", "feature/x"}, values(cands))

	cands = e.Complete(context.Background(), []string{"merge"}, "fe")
	assert.Equal(t, []string{"feature/x"}, values(cands))
}

func TestCompleteRefsNotQueriedForFlags(t *testing.T) {
	e := NewDefault(func(context.Context) []string {
		t.Fatal("refs queried while completing a flag")
		return nil
	})

	cands := e.Complete(context.Background(), []string{"rebase"}, "--auto")
	assert.ElementsMatch(t, []string{"--autosquash", "--autostash"}, values(cands))
}

func TestCompleteNeverFails(t *testing.T) {
	e := NewDefault(nil)

	// Nonsense input still yields a (possibly empty) candidate list.
	cands := e.Complete(context.Background(), []string{"tag", "v2.0", "main", "extra"}, "zzz")
	assert.Empty(t, cands)
}
