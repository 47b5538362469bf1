// Package host provides read-only access to the local machine for segment
// providers: environment variables, files, and short-lived metadata commands.
//
// Everything is best-effort. The status line sits on an interactive display
// path, so every subprocess call is bounded by a per-call timeout and its
// output is capped.
package host

import (
	"context"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultCommandTimeout bounds a single metadata command (git, node, docker).
const DefaultCommandTimeout = 80 * time.Millisecond

// CommandOutputMaxBytes is the hard cap on bytes retained from a metadata
// command. These commands print a branch name or a version string; anything
// bigger is discarded.
const CommandOutputMaxBytes = 64 * 1024

// Host is the read-only view of the machine that segment providers consume.
// Injecting it keeps every provider a pure function of host state, so tests
// run against FakeHost without touching the real environment.
type Host interface {
	// Getenv returns the value of an environment variable, empty if unset.
	Getenv(key string) string

	// LookPath reports whether an executable is on PATH.
	LookPath(name string) (string, error)

	// Run executes a metadata command and returns its stdout with the
	// trailing newline removed. Leading whitespace is preserved: porcelain
	// output is column-significant. The call is bounded by the host's
	// per-command timeout on top of ctx.
	Run(ctx context.Context, name string, args ...string) (string, error)

	// Stat stats a path.
	Stat(path string) (fs.FileInfo, error)

	// ReadFile reads a small file such as a state file or /proc/loadavg.
	ReadFile(path string) ([]byte, error)

	// HomeDir returns the user's home directory, empty if unknown.
	HomeDir() string

	// PID returns the current process id.
	PID() int

	// Now returns the current wall-clock time.
	Now() time.Time
}

// SystemHost is the real Host backed by os and os/exec.
type SystemHost struct {
	CommandTimeout time.Duration
	Logger         *log.Logger
}

// NewSystemHost creates a SystemHost with the given per-command timeout.
// A zero timeout selects DefaultCommandTimeout.
func NewSystemHost(timeout time.Duration, logger *log.Logger) *SystemHost {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &SystemHost{CommandTimeout: timeout, Logger: logger}
}

func (h *SystemHost) Getenv(key string) string { return os.Getenv(key) }

func (h *SystemHost) LookPath(name string) (string, error) { return exec.LookPath(name) }

// Run executes name with args under the per-command timeout and returns
// capped stdout with the trailing newline removed. Stderr is discarded:
// these are metadata lookups whose failures degrade to segment omission.
func (h *SystemHost) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, h.CommandTimeout)
	defer cancel()

	var buf cappedBuffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		h.Logger.Debug("command failed", "cmd", name, "args", strings.Join(args, " "), "err", err)
		return "", err
	}
	if buf.truncated {
		h.Logger.Debug("command output truncated", "cmd", name)
	}
	return strings.TrimRight(string(buf.data), "\n"), nil
}

func (h *SystemHost) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

func (h *SystemHost) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (h *SystemHost) HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func (h *SystemHost) PID() int { return os.Getpid() }

func (h *SystemHost) Now() time.Time { return time.Now() }

// cappedBuffer retains at most CommandOutputMaxBytes of what is written to
// it, applying the cap as the command streams so a runaway command never
// buffers unbounded output in memory.
type cappedBuffer struct {
	data      []byte
	truncated bool
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	remaining := CommandOutputMaxBytes - len(b.data)
	if remaining <= 0 {
		if len(p) > 0 {
			b.truncated = true
		}
		return len(p), nil
	}
	if len(p) > remaining {
		b.data = append(b.data, p[:remaining]...)
		b.truncated = true
	} else {
		b.data = append(b.data, p...)
	}
	return len(p), nil
}
