package segments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GGPrompts/statusline/internal/host"
	"github.com/GGPrompts/statusline/internal/session"
)

func statusProvider(h *host.FakeHost, stateDir, transcript string) Status {
	return Status{
		Host:           h,
		Source:         session.FileSource{Dir: stateDir, Host: h},
		SessionID:      "abc",
		TranscriptPath: transcript,
	}
}

func TestStatus_StateFile(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		wantKind Kind
		wantText string
	}{
		{"idle", `{"status":"idle"}`, KindStatusReady, "Ready"},
		{"awaiting input", `{"status":"awaiting_input"}`, KindStatusReady, "Ready"},
		{"processing", `{"status":"processing"}`, KindStatusBusy, "Working..."},
		{"working", `{"status":"working"}`, KindStatusBusy, "Working..."},
		{"tool use with tool", `{"status":"tool_use","current_tool":"Read"}`, KindStatusBusy, "Using Read..."},
		{"tool use without tool", `{"status":"tool_use"}`, KindStatusBusy, "Using tool..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := host.NewFakeHost()
			h.Files["/state/abc.json"] = host.FakeFile{Content: tt.state}

			seg, ok := statusProvider(h, "/state", "").Collect(context.Background())
			require.True(t, ok)
			assert.Equal(t, tt.wantKind, seg.Kind)
			assert.Equal(t, tt.wantText, seg.Text)
		})
	}
}

func TestStatus_UnknownStateFallsThrough(t *testing.T) {
	h := host.NewFakeHost()
	h.Files["/state/abc.json"] = host.FakeFile{Content: `{"status":"rebooting"}`}

	seg, ok := statusProvider(h, "/state", "").Collect(context.Background())
	require.True(t, ok)
	assert.Equal(t, "Ready", seg.Text)
}

func TestStatus_TranscriptLiveness_Recent(t *testing.T) {
	h := host.NewFakeHost()
	h.Files["/tmp/transcript.jsonl"] = host.FakeFile{ModTime: h.Clock.Add(-1 * time.Second)}

	seg, ok := statusProvider(h, "/state", "/tmp/transcript.jsonl").Collect(context.Background())
	require.True(t, ok)
	assert.Equal(t, KindStatusBusy, seg.Kind)
	assert.Equal(t, "Working...", seg.Text)
}

func TestStatus_TranscriptLiveness_Stale(t *testing.T) {
	h := host.NewFakeHost()
	h.Files["/tmp/transcript.jsonl"] = host.FakeFile{ModTime: h.Clock.Add(-10 * time.Second)}

	seg, ok := statusProvider(h, "/state", "/tmp/transcript.jsonl").Collect(context.Background())
	require.True(t, ok)
	assert.Equal(t, KindStatusReady, seg.Kind)
	assert.Equal(t, "Ready", seg.Text)
}

func TestStatus_NoStateNoTranscript_DefaultsReady(t *testing.T) {
	seg, ok := statusProvider(host.NewFakeHost(), "/state", "").Collect(context.Background())
	require.True(t, ok)
	assert.Equal(t, "Ready", seg.Text)
}

func TestStatus_CorruptStateFallsBackToLiveness(t *testing.T) {
	h := host.NewFakeHost()
	h.Files["/state/abc.json"] = host.FakeFile{Content: `{broken`}
	h.Files["/tmp/transcript.jsonl"] = host.FakeFile{ModTime: h.Clock.Add(-500 * time.Millisecond)}

	seg, ok := statusProvider(h, "/state", "/tmp/transcript.jsonl").Collect(context.Background())
	require.True(t, ok)
	assert.Equal(t, "Working...", seg.Text)
}
