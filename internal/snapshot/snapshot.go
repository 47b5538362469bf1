// Package snapshot defines the JSON status snapshot the host runtime pipes to
// the renderer on stdin.
package snapshot

import "encoding/json"

// DefaultStyleName is the output style treated as "nothing to show".
const DefaultStyleName = "default"

// ModelInfo identifies the active model.
type ModelInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// WorkspaceInfo carries workspace paths.
type WorkspaceInfo struct {
	CurrentDir string `json:"current_dir"`
}

// OutputStyle carries the active output style.
type OutputStyle struct {
	Name string `json:"name"`
}

// Snapshot is one status snapshot supplied by the host runtime. Every field
// is optional; the renderer degrades to omission for anything missing.
type Snapshot struct {
	Model          ModelInfo     `json:"model"`
	Workspace      WorkspaceInfo `json:"workspace"`
	Cwd            string        `json:"cwd"`
	OutputStyle    OutputStyle   `json:"output_style"`
	TranscriptPath string        `json:"transcript_path"`
}

// Parse decodes a snapshot from raw JSON. Malformed input yields a zero
// snapshot and the decode error; callers render whatever segments remain
// derivable rather than failing.
func Parse(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// CurrentDir returns workspace.current_dir, falling back to cwd.
func (s Snapshot) CurrentDir() string {
	if s.Workspace.CurrentDir != "" {
		return s.Workspace.CurrentDir
	}
	return s.Cwd
}

// ModelName returns the display name, falling back to the model id.
func (s Snapshot) ModelName() string {
	if s.Model.DisplayName != "" {
		return s.Model.DisplayName
	}
	return s.Model.ID
}

// StyleName returns output_style.name, defaulting to DefaultStyleName.
func (s Snapshot) StyleName() string {
	if s.OutputStyle.Name == "" {
		return DefaultStyleName
	}
	return s.OutputStyle.Name
}
