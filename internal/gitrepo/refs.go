// Package gitrepo queries the surrounding git repository for completion
// candidates. Every failure mode (no repository, no commits, git missing)
// degrades to an empty result; completion must never error at the user.
package gitrepo

import (
	"context"
	"os/exec"
	"strings"
)

// Lister produces reference short names from a repository.
type Lister struct {
	// GitPath is the git executable to invoke.
	GitPath string
	// Dir is the directory probed for a repository; empty means the
	// process working directory.
	Dir string
}

// NewLister creates a Lister for the given directory using git from PATH.
func NewLister(dir string) *Lister {
	return &Lister{GitPath: "git", Dir: dir}
}

// HasCommits reports whether dir is inside a repository with at least one
// commit. Any probe failure counts as false.
func (l *Lister) HasCommits(ctx context.Context) bool {
	cmd := exec.CommandContext(ctx, l.GitPath, "rev-parse", "--verify", "--quiet", "HEAD")
	cmd.Dir = l.Dir
	return cmd.Run() == nil
}

// ListRefs returns all branch and tag short names in the order git produces
// them. Outside a commit-bearing repository it returns nil. The result is
// recomputed on every call; nothing is cached between invocations.
func (l *Lister) ListRefs(ctx context.Context) []string {
	if !l.HasCommits(ctx) {
		return nil
	}

	cmd := exec.CommandContext(ctx, l.GitPath, "for-each-ref", "--format=%(refname:short)")
	cmd.Dir = l.Dir
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return parseRefs(out)
}

func parseRefs(out []byte) []string {
	var refs []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			refs = append(refs, line)
		}
	}
	return refs
}
