// Package session locates and reads per-session state written by the host
// runtime. The state file is externally owned: this package only reads it and
// tolerates absence.
package session

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
)

// SessionIDEnv names the environment variable carrying an explicit session id.
const SessionIDEnv = "CLAUDE_SESSION_ID"

// StateDirEnv overrides the directory holding session state files.
const StateDirEnv = "CLAUDE_STATUS_DIR"

// hashedIDLength is the length of the hashed working-directory session id.
const hashedIDLength = 8

// DeriveID computes the session identifier used to locate the state file.
// Preference order: explicit env var, hash of the working directory, pid.
func DeriveID(getenv func(string) string, workDir string, pid int) string {
	if id := getenv(SessionIDEnv); id != "" {
		return id
	}
	if workDir != "" {
		sum := sha256.Sum256([]byte(workDir))
		return hex.EncodeToString(sum[:])[:hashedIDLength]
	}
	return strconv.Itoa(pid)
}

// DefaultStateDir returns the directory holding session state files:
// $CLAUDE_STATUS_DIR when set, else <tmp>/claude-status.
func DefaultStateDir(getenv func(string) string) string {
	if dir := getenv(StateDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(os.TempDir(), "claude-status")
}

// StatePath returns the state file path for a session id within dir.
func StatePath(dir, sessionID string) string {
	return filepath.Join(dir, sessionID+".json")
}
