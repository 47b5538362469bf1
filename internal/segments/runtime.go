package segments

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/GGPrompts/statusline/internal/host"
)

// VirtualEnvVar marks an active Python virtual environment.
const VirtualEnvVar = "VIRTUAL_ENV"

// VirtualEnv shows the base name of an active virtual environment.
type VirtualEnv struct {
	Host host.Host
}

func (v VirtualEnv) Name() string { return "virtualenv" }

func (v VirtualEnv) Collect(_ context.Context) (Segment, bool) {
	venv := v.Host.Getenv(VirtualEnvVar)
	if venv == "" {
		return Segment{}, false
	}
	return Segment{Kind: KindRuntime, Text: "🐍 " + filepath.Base(venv)}, true
}

// NodeVersion shows the node version when the directory has a package.json
// and node is installed.
type NodeVersion struct {
	Host host.Host
	Dir  string
}

func (n NodeVersion) Name() string { return "node" }

func (n NodeVersion) Collect(ctx context.Context) (Segment, bool) {
	if n.Dir == "" {
		return Segment{}, false
	}
	if _, err := n.Host.Stat(filepath.Join(n.Dir, "package.json")); err != nil {
		return Segment{}, false
	}
	if _, err := n.Host.LookPath("node"); err != nil {
		return Segment{}, false
	}
	out, err := n.Host.Run(ctx, "node", "--version")
	if out = strings.TrimSpace(out); err != nil || out == "" {
		return Segment{}, false
	}
	return Segment{Kind: KindRuntime, Text: "⬢ " + strings.TrimPrefix(out, "v")}, true
}
