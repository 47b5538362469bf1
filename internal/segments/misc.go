package segments

import (
	"context"
	"strconv"
	"strings"

	"github.com/GGPrompts/statusline/internal/host"
	"github.com/GGPrompts/statusline/internal/snapshot"
)

// LastExitCodeVar carries the previous command's exit code when the invoking
// shell exports it.
const LastExitCodeVar = "LAST_EXIT_CODE"

// loadAvgPath is the Linux load-average pseudo-file.
const loadAvgPath = "/proc/loadavg"

// loadThreshold is the 1-minute load average above which the segment appears.
const loadThreshold = 1.0

// OutputStyle shows the output style when it differs from the default.
type OutputStyle struct {
	StyleName string
}

func (o OutputStyle) Name() string { return "output-style" }

func (o OutputStyle) Collect(_ context.Context) (Segment, bool) {
	if o.StyleName == "" || o.StyleName == snapshot.DefaultStyleName {
		return Segment{}, false
	}
	return Segment{Kind: KindOutputStyle, Text: "✎ " + o.StyleName}, true
}

// ExitCode shows the last command's exit code when set and non-zero.
type ExitCode struct {
	Host host.Host
}

func (e ExitCode) Name() string { return "exit-code" }

func (e ExitCode) Collect(_ context.Context) (Segment, bool) {
	raw := e.Host.Getenv(LastExitCodeVar)
	if raw == "" {
		return Segment{}, false
	}
	code, err := strconv.Atoi(raw)
	if err != nil || code == 0 {
		return Segment{}, false
	}
	return Segment{Kind: KindExitCode, Text: "✗ " + raw}, true
}

// LoadAverage shows the 1-minute load average when it exceeds loadThreshold.
// Platforms without /proc/loadavg simply omit the segment.
type LoadAverage struct {
	Host host.Host
}

func (l LoadAverage) Name() string { return "load" }

func (l LoadAverage) Collect(_ context.Context) (Segment, bool) {
	data, err := l.Host.ReadFile(loadAvgPath)
	if err != nil {
		return Segment{}, false
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return Segment{}, false
	}
	avg, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || avg <= loadThreshold {
		return Segment{}, false
	}
	return Segment{Kind: KindLoad, Text: "⚡ " + fields[0]}, true
}

// DockerContext shows a non-default docker context when the CLI is present.
type DockerContext struct {
	Host host.Host
}

func (d DockerContext) Name() string { return "docker" }

func (d DockerContext) Collect(ctx context.Context) (Segment, bool) {
	if _, err := d.Host.LookPath("docker"); err != nil {
		return Segment{}, false
	}
	out, err := d.Host.Run(ctx, "docker", "context", "show")
	if out = strings.TrimSpace(out); err != nil || out == "" || out == "default" {
		return Segment{}, false
	}
	return Segment{Kind: KindContainer, Text: "🐳 " + out}, true
}
