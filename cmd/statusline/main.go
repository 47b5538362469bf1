// Status line renderer for the agent host runtime.
//
// Reads one JSON status snapshot on stdin, augments it with locally
// observable host facts (session state, git, runtime versions, system load,
// container context), and prints exactly one formatted line on stdout.
//
// Usage:
//
//	echo '{"model":{"display_name":"Claude 3.5 Sonnet"},"cwd":"/home/u/proj"}' | statusline
//	statusline --no-color < snapshot.json
//	statusline --state-dir /var/run/claude < snapshot.json
//
// The renderer never fails: every lookup is best-effort, and under total
// failure of every external source it prints an empty line and exits 0.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/GGPrompts/statusline/internal/host"
	"github.com/GGPrompts/statusline/internal/render"
	"github.com/GGPrompts/statusline/internal/segments"
	"github.com/GGPrompts/statusline/internal/session"
	"github.com/GGPrompts/statusline/internal/snapshot"
	"github.com/GGPrompts/statusline/internal/version"
)

// renderBudget bounds the whole render. The line sits on an interactive
// display path, so a stuck external tool must not stall the prompt.
const renderBudget = 500 * time.Millisecond

// debugEnv enables debug logging on stderr. Stdout carries only the line.
const debugEnv = "STATUSLINE_DEBUG"

func main() {
	noColor := flag.Bool("no-color", false, "Disable colored output")
	stateDir := flag.String("state-dir", "", "Session state directory (default: $CLAUDE_STATUS_DIR or <tmp>/claude-status)")
	cmdTimeout := flag.Duration("cmd-timeout", host.DefaultCommandTimeout, "Timeout per external metadata command")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GitCommit)
		return
	}

	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if os.Getenv(debugEnv) != "" {
		logger.SetLevel(log.DebugLevel)
	}

	h := host.NewSystemHost(*cmdTimeout, logger)

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Debug("reading stdin failed", "err", err)
	}
	snap, err := snapshot.Parse(data)
	if err != nil {
		logger.Debug("snapshot decode failed", "err", err)
	}

	dir := snap.CurrentDir()
	stDir := *stateDir
	if stDir == "" {
		stDir = session.DefaultStateDir(h.Getenv)
	}
	sessionID := session.DeriveID(h.Getenv, dir, h.PID())
	logger.Debug("render", "session", sessionID, "dir", dir, "state_dir", stDir)

	providers := []segments.Provider{
		segments.Status{
			Host:           h,
			Source:         session.FileSource{Dir: stDir, Host: h},
			SessionID:      sessionID,
			TranscriptPath: snap.TranscriptPath,
		},
		segments.Directory{Host: h, Dir: dir},
		segments.Git{Host: h, Dir: dir},
		segments.VirtualEnv{Host: h},
		segments.NodeVersion{Host: h, Dir: dir},
		segments.Model{DisplayName: snap.ModelName()},
		segments.OutputStyle{StyleName: snap.StyleName()},
		segments.ExitCode{Host: h},
		segments.LoadAverage{Host: h},
		segments.DockerContext{Host: h},
	}

	ctx, cancel := context.WithTimeout(context.Background(), renderBudget)
	defer cancel()

	styles := render.DefaultStyles()
	if *noColor {
		styles = render.NoColorStyles()
	}

	line := render.NewLineRenderer(styles).Render(segments.CollectAll(ctx, providers))
	fmt.Println(line)
}
