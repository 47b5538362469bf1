package host

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"time"
)

// ErrNotFound is returned by FakeHost for unknown executables, commands and files.
var ErrNotFound = errors.New("host: not found")

// FakeFile is an in-memory file for FakeHost.
type FakeFile struct {
	Content string
	ModTime time.Time
}

// FakeHost is an in-memory Host for tests. Zero value is usable: no env vars,
// no executables, no files, every command fails.
type FakeHost struct {
	Env   map[string]string
	Path  map[string]string // executable name -> resolved path
	Cmds  map[string]string // "name arg arg" -> stdout
	Files map[string]FakeFile
	Home  string
	Pid   int
	Clock time.Time
}

// NewFakeHost returns an empty FakeHost with a fixed clock.
func NewFakeHost() *FakeHost {
	return &FakeHost{
		Env:   map[string]string{},
		Path:  map[string]string{},
		Cmds:  map[string]string{},
		Files: map[string]FakeFile{},
		Home:  "/home/u",
		Pid:   4242,
		Clock: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func (h *FakeHost) Getenv(key string) string { return h.Env[key] }

func (h *FakeHost) LookPath(name string) (string, error) {
	if p, ok := h.Path[name]; ok {
		return p, nil
	}
	return "", ErrNotFound
}

// Run matches SystemHost.Run: trailing newline removed, leading columns kept.
func (h *FakeHost) Run(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	if out, ok := h.Cmds[key]; ok {
		return strings.TrimRight(out, "\n"), nil
	}
	return "", ErrNotFound
}

func (h *FakeHost) Stat(path string) (fs.FileInfo, error) {
	f, ok := h.Files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return fakeFileInfo{name: path, size: int64(len(f.Content)), mtime: f.ModTime}, nil
}

func (h *FakeHost) ReadFile(path string) ([]byte, error) {
	f, ok := h.Files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(f.Content), nil
}

func (h *FakeHost) HomeDir() string { return h.Home }

func (h *FakeHost) PID() int { return h.Pid }

func (h *FakeHost) Now() time.Time { return h.Clock }

type fakeFileInfo struct {
	name  string
	size  int64
	mtime time.Time
}

func (f fakeFileInfo) Name() string       { return f.name }
func (f fakeFileInfo) Size() int64        { return f.size }
func (f fakeFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f fakeFileInfo) ModTime() time.Time { return f.mtime }
func (f fakeFileInfo) IsDir() bool        { return false }
func (f fakeFileInfo) Sys() any           { return nil }
