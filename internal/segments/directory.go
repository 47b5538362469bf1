package segments

import (
	"context"
	"strings"

	"github.com/GGPrompts/statusline/internal/host"
)

// Directory shows the working directory with the home prefix collapsed to ~.
type Directory struct {
	Host host.Host
	Dir  string
}

func (d Directory) Name() string { return "directory" }

func (d Directory) Collect(_ context.Context) (Segment, bool) {
	if d.Dir == "" {
		return Segment{}, false
	}
	return Segment{Kind: KindDirectory, Text: collapseHome(d.Dir, d.Host.HomeDir())}, true
}

func collapseHome(dir, home string) string {
	if home == "" {
		return dir
	}
	if dir == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(dir, home+"/"); ok {
		return "~/" + rest
	}
	return dir
}
