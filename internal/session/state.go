package session

import (
	"encoding/json"

	"github.com/GGPrompts/statusline/internal/host"
)

// Activity states written by the host runtime.
const (
	StatusIdle          = "idle"
	StatusAwaitingInput = "awaiting_input"
	StatusProcessing    = "processing"
	StatusToolUse       = "tool_use"
	StatusWorking       = "working"
)

// State is the session state file schema: {status, current_tool?}.
type State struct {
	Status      string `json:"status"`
	CurrentTool string `json:"current_tool,omitempty"`
}

// Source loads session state. A nil state with a nil error means the state is
// simply absent; callers fall back to the transcript liveness heuristic.
type Source interface {
	Load(sessionID string) (*State, error)
}

// FileSource reads <Dir>/<id>.json through a Host. Missing or unparseable
// files resolve to absence, never to a hard failure.
type FileSource struct {
	Dir  string
	Host host.Host
}

// Load reads and decodes the state file for a session.
func (s FileSource) Load(sessionID string) (*State, error) {
	data, err := s.Host.ReadFile(StatePath(s.Dir, sessionID))
	if err != nil {
		return nil, nil
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, nil
	}
	if st.Status == "" {
		return nil, nil
	}
	return &st, nil
}
