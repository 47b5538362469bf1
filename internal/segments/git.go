package segments

import (
	"context"
	"strings"

	"github.com/GGPrompts/statusline/internal/host"
)

// Git shows the short branch name (short commit hash when detached) with
// dirty-state markers: * for unstaged changes, + for staged-but-uncommitted.
// All inspection uses --no-optional-locks so a render never blocks on an
// index lock held by another process.
type Git struct {
	Host host.Host
	Dir  string
}

func (g Git) Name() string { return "git" }

func (g Git) Collect(ctx context.Context) (Segment, bool) {
	if g.Dir == "" {
		return Segment{}, false
	}

	head, ok := g.head(ctx)
	if !ok {
		return Segment{}, false
	}

	return Segment{Kind: KindGit, Text: "⎇ " + head + g.dirtyMarkers(ctx)}, true
}

// head returns the short branch name, or the short commit hash when detached.
// Both commands failing means the directory is not inside a repository.
func (g Git) head(ctx context.Context) (string, bool) {
	branch, err := g.run(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if branch = strings.TrimSpace(branch); err == nil && branch != "" {
		return branch, true
	}
	hash, err := g.run(ctx, "rev-parse", "--short", "HEAD")
	if hash = strings.TrimSpace(hash); err == nil && hash != "" {
		return hash, true
	}
	return "", false
}

// dirtyMarkers inspects porcelain status. The output is consumed untrimmed:
// the first two columns are significant, and a leading space means the index
// side is clean. A failed status command degrades to no markers rather than
// suppressing the branch.
func (g Git) dirtyMarkers(ctx context.Context) string {
	out, err := g.run(ctx, "status", "--porcelain")
	if err != nil {
		return ""
	}

	var unstaged, staged bool
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 2 {
			continue
		}
		x, y := line[0], line[1]
		if x == '?' || y != ' ' {
			unstaged = true
		}
		if x != ' ' && x != '?' {
			staged = true
		}
	}

	var markers string
	if unstaged {
		markers += "*"
	}
	if staged {
		markers += "+"
	}
	return markers
}

func (g Git) run(ctx context.Context, args ...string) (string, error) {
	argv := append([]string{"-C", g.Dir, "--no-optional-locks"}, args...)
	return g.Host.Run(ctx, "git", argv...)
}
