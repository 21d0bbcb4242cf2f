// Package dispatch resolves a subcommand name to the provider that produces
// its completion candidates. Resolution never fails: names without a
// registered provider fall back to the common-options provider, so every
// input yields some candidate set.
package dispatch

import (
	"strings"

	"github.com/samber/lo"

	"github.com/living180/cola-complete/internal/schema"
)

// Candidate is one completion suggestion.
type Candidate struct {
	Value       string
	Description string
}

// Request carries the completion context for a single invocation.
type Request struct {
	// Args are the completed tokens after the subcommand name.
	Args []string
	// ToComplete is the partial word currently being typed.
	ToComplete string
	// Refs lists the repository's reference short names. Providers call it
	// lazily, only when a ref-typed slot is being completed. May be nil.
	Refs func() []string
}

func (r Request) listRefs() []string {
	if r.Refs == nil {
		return nil
	}
	return r.Refs()
}

// Provider produces completion candidates for one subcommand.
type Provider interface {
	Complete(req Request) []Candidate
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(req Request) []Candidate

// Complete implements Provider.
func (f ProviderFunc) Complete(req Request) []Candidate { return f(req) }

// Registry maps subcommand names to providers, with a fallback for names it
// does not know.
type Registry struct {
	providers map[string]Provider
	fallback  Provider
}

// NewRegistry builds a registry with a schema-driven provider for every
// subcommand in the table and a fallback offering exactly the common flags.
func NewRegistry(table []schema.Subcommand, common []schema.Flag) *Registry {
	r := &Registry{
		providers: make(map[string]Provider, len(table)),
		fallback:  commonProvider{flags: common},
	}
	for _, cmd := range table {
		r.providers[cmd.Name] = schemaProvider{cmd: cmd}
	}
	return r
}

// Register adds or replaces the provider for a subcommand.
func (r *Registry) Register(name string, p Provider) {
	r.providers[name] = p
}

// Known reports whether the name has its own provider.
func (r *Registry) Known(name string) bool {
	_, ok := r.providers[name]
	return ok
}

// Resolve returns the provider for the named subcommand, or the fallback
// provider when the name is unknown. Never returns nil.
func (r *Registry) Resolve(name string) Provider {
	if p, ok := r.providers[name]; ok {
		return p
	}
	return r.fallback
}

// schemaProvider derives candidates from a subcommand's static schema.
type schemaProvider struct {
	cmd schema.Subcommand
}

// Complete implements Provider.
func (p schemaProvider) Complete(req Request) []Candidate {
	// Value position: the previous token was a flag expecting a value.
	if f, ok := pendingValueFlag(p.cmd.Flags, req.Args); ok {
		return valueCandidates(f, "")
	}

	// Inline "--flag=value" form.
	if name, _, ok := splitInlineValue(req.ToComplete); ok {
		if f, ok := p.cmd.Flag(name); ok && len(f.Values) > 0 {
			return valueCandidates(f, "--"+f.Name+"=")
		}
		return nil
	}

	if strings.HasPrefix(req.ToComplete, "-") {
		return flagCandidates(p.cmd.Flags)
	}

	slot, ok := nextPositional(p.cmd, req.Args)
	if !ok {
		return nil
	}
	switch slot.Kind {
	case schema.ArgRef:
		return lo.Map(req.listRefs(), func(ref string, _ int) Candidate {
			return Candidate{Value: ref}
		})
	default:
		// Path slots are left to the shell's file completion; text slots
		// have nothing to offer.
		return nil
	}
}

// commonProvider serves the generic option set used when no subcommand
// matches. Its output is the fixed common flag list, nothing more.
type commonProvider struct {
	flags []schema.Flag
}

// Complete implements Provider.
func (p commonProvider) Complete(req Request) []Candidate {
	if f, ok := pendingValueFlag(p.flags, req.Args); ok {
		return valueCandidates(f, "")
	}
	if name, _, ok := splitInlineValue(req.ToComplete); ok {
		if f, ok := lookupFlag(p.flags, name); ok && len(f.Values) > 0 {
			return valueCandidates(f, "--"+f.Name+"=")
		}
		return nil
	}
	return flagCandidates(p.flags)
}

// pendingValueFlag reports whether the last completed token is a flag that
// still needs its value.
func pendingValueFlag(flags []schema.Flag, args []string) (schema.Flag, bool) {
	if len(args) == 0 {
		return schema.Flag{}, false
	}
	prev := args[len(args)-1]
	name, ok := strings.CutPrefix(prev, "--")
	if !ok || strings.Contains(name, "=") {
		return schema.Flag{}, false
	}
	f, ok := lookupFlag(flags, name)
	if !ok || !f.TakesValue() {
		return schema.Flag{}, false
	}
	return f, true
}

// splitInlineValue splits a "--flag=partial" word being typed.
func splitInlineValue(word string) (name, partial string, ok bool) {
	rest, found := strings.CutPrefix(word, "--")
	if !found {
		return "", "", false
	}
	name, partial, ok = strings.Cut(rest, "=")
	return name, partial, ok
}

// nextPositional returns the first unfilled positional slot.
func nextPositional(cmd schema.Subcommand, args []string) (schema.Positional, bool) {
	consumed := 0
	for i := 0; i < len(args); i++ {
		name, isFlag := strings.CutPrefix(args[i], "--")
		if isFlag {
			if f, ok := cmd.Flag(name); ok && f.TakesValue() {
				i++ // the flag's value token
			}
			continue
		}
		consumed++
	}
	if consumed >= len(cmd.Positionals) {
		return schema.Positional{}, false
	}
	return cmd.Positionals[consumed], true
}

func lookupFlag(flags []schema.Flag, name string) (schema.Flag, bool) {
	for _, f := range flags {
		if f.Name == name {
			return f, true
		}
	}
	return schema.Flag{}, false
}

func flagCandidates(flags []schema.Flag) []Candidate {
	return lo.Map(flags, func(f schema.Flag, _ int) Candidate {
		return Candidate{Value: "--" + f.Name, Description: f.Description}
	})
}

func valueCandidates(f schema.Flag, prefix string) []Candidate {
	return lo.Map(f.Values, func(v string, _ int) Candidate {
		return Candidate{Value: prefix + v}
	})
}
