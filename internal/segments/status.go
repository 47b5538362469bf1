package segments

import (
	"context"
	"time"

	"github.com/GGPrompts/statusline/internal/host"
	"github.com/GGPrompts/statusline/internal/session"
)

// livenessWindow is how recently the transcript must have been written for
// the fallback heuristic to consider the session busy.
const livenessWindow = 2 * time.Second

// Status labels.
const (
	labelReady     = "Ready"
	labelWorking   = "Working..."
	labelUsingTool = "Using tool..."
)

// Status maps session state to a badge. The state file is authoritative when
// present; otherwise the transcript modification time decides between
// Working and the default Ready.
type Status struct {
	Host           host.Host
	Source         session.Source
	SessionID      string
	TranscriptPath string
}

func (s Status) Name() string { return "status" }

func (s Status) Collect(_ context.Context) (Segment, bool) {
	if st, err := s.Source.Load(s.SessionID); err == nil && st != nil {
		if seg, ok := fromState(st); ok {
			return seg, true
		}
	}
	return s.fromLiveness(), true
}

// fromState maps a state file status to a badge. Unknown statuses report
// !ok so the caller falls through to the liveness heuristic.
func fromState(st *session.State) (Segment, bool) {
	switch st.Status {
	case session.StatusIdle, session.StatusAwaitingInput:
		return Segment{Kind: KindStatusReady, Text: labelReady}, true
	case session.StatusProcessing, session.StatusWorking:
		return Segment{Kind: KindStatusBusy, Text: labelWorking}, true
	case session.StatusToolUse:
		if st.CurrentTool != "" {
			return Segment{Kind: KindStatusBusy, Text: "Using " + st.CurrentTool + "..."}, true
		}
		return Segment{Kind: KindStatusBusy, Text: labelUsingTool}, true
	}
	return Segment{}, false
}

// fromLiveness labels the session Working when the transcript was modified
// within livenessWindow of now, Ready otherwise.
func (s Status) fromLiveness() Segment {
	if s.TranscriptPath != "" {
		if info, err := s.Host.Stat(s.TranscriptPath); err == nil {
			if s.Host.Now().Sub(info.ModTime()) < livenessWindow {
				return Segment{Kind: KindStatusBusy, Text: labelWorking}
			}
		}
	}
	return Segment{Kind: KindStatusReady, Text: labelReady}
}
