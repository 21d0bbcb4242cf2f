// Package engine answers completion requests for a partially typed git-cola
// command line. It models the line as two states: completing the subcommand
// itself, then completing that subcommand's flags and arguments. The
// transition is one-directional; once a subcommand token is complete the
// engine only ever dispatches into its provider.
package engine

import (
	"context"
	"strings"

	"github.com/samber/lo"

	"github.com/living180/cola-complete/internal/dispatch"
	"github.com/living180/cola-complete/internal/schema"
)

// State identifies which part of the command line is being completed.
type State int

const (
	// StateCommand means the subcommand token is still being typed.
	StateCommand State = iota
	// StateOptions means a subcommand is present and its arguments follow.
	StateOptions
)

// Classify returns the completion state for the completed tokens so far.
// args excludes the word currently being typed.
func Classify(args []string) State {
	if len(args) == 0 {
		return StateCommand
	}
	return StateOptions
}

// RefsFunc supplies repository reference names on demand.
type RefsFunc func(ctx context.Context) []string

// Engine produces completion candidates for git-cola command lines.
type Engine struct {
	table    []schema.Subcommand
	registry *dispatch.Registry
	refs     RefsFunc
}

// New creates an Engine. refs may be nil, in which case ref-typed slots
// simply produce no candidates.
func New(table []schema.Subcommand, registry *dispatch.Registry, refs RefsFunc) *Engine {
	return &Engine{table: table, registry: registry, refs: refs}
}

// NewDefault creates an Engine over the full git-cola schema.
func NewDefault(refs RefsFunc) *Engine {
	return New(schema.Commands(), dispatch.NewRegistry(schema.Commands(), schema.CommonFlags()), refs)
}

// Complete returns the candidates for the current word. args are the
// completed tokens after the program name; toComplete is the partial word
// being typed (empty when starting a fresh word). The result may be empty
// but the call never fails.
func (e *Engine) Complete(ctx context.Context, args []string, toComplete string) []dispatch.Candidate {
	switch Classify(args) {
	case StateCommand:
		if strings.HasPrefix(toComplete, "-") {
			// Resolving an empty name lands on the common-options fallback.
			cands := e.registry.Resolve("").Complete(dispatch.Request{ToComplete: toComplete})
			return filterPrefix(cands, toComplete)
		}
		cands := lo.Map(e.table, func(cmd schema.Subcommand, _ int) dispatch.Candidate {
			return dispatch.Candidate{Value: cmd.Name, Description: cmd.Description}
		})
		return filterPrefix(cands, toComplete)

	default:
		req := dispatch.Request{
			Args:       args[1:],
			ToComplete: toComplete,
			Refs:       e.refsFor(ctx),
		}
		cands := e.registry.Resolve(args[0]).Complete(req)
		return filterPrefix(cands, toComplete)
	}
}

func (e *Engine) refsFor(ctx context.Context) func() []string {
	if e.refs == nil {
		return nil
	}
	return func() []string { return e.refs(ctx) }
}

func filterPrefix(cands []dispatch.Candidate, prefix string) []dispatch.Candidate {
	if prefix == "" {
		return cands
	}
	return lo.Filter(cands, func(c dispatch.Candidate, _ int) bool {
		return strings.HasPrefix(c.Value, prefix)
	})
}
