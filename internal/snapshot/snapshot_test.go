package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullSnapshot(t *testing.T) {
	data := []byte(`{
		"model": {"id": "claude-3-5-sonnet", "display_name": "Claude 3.5 Sonnet"},
		"workspace": {"current_dir": "/home/u/proj"},
		"cwd": "/home/u",
		"output_style": {"name": "explanatory"},
		"transcript_path": "/tmp/transcript.jsonl"
	}`)

	s, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "Claude 3.5 Sonnet", s.ModelName())
	assert.Equal(t, "/home/u/proj", s.CurrentDir())
	assert.Equal(t, "explanatory", s.StyleName())
	assert.Equal(t, "/tmp/transcript.jsonl", s.TranscriptPath)
}

func TestParse_EmptyObject(t *testing.T) {
	s, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, s.ModelName())
	assert.Empty(t, s.CurrentDir())
	assert.Equal(t, DefaultStyleName, s.StyleName())
}

func TestParse_Malformed(t *testing.T) {
	s, err := Parse([]byte(`{not json`))
	assert.Error(t, err)
	assert.Equal(t, Snapshot{}, s)
}

func TestCurrentDir_FallsBackToCwd(t *testing.T) {
	s, err := Parse([]byte(`{"cwd": "/home/u/proj"}`))
	require.NoError(t, err)
	assert.Equal(t, "/home/u/proj", s.CurrentDir())
}

func TestModelName_FallsBackToID(t *testing.T) {
	s, err := Parse([]byte(`{"model": {"id": "claude-3-5-haiku"}}`))
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku", s.ModelName())
}
