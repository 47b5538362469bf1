package host

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCappedBuffer_UnderCap(t *testing.T) {
	var b cappedBuffer
	n, err := b.Write([]byte("main\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.False(t, b.truncated)
	assert.Equal(t, "main\n", string(b.data))
}

func TestCappedBuffer_CapsWhileWriting(t *testing.T) {
	var b cappedBuffer
	_, err := b.Write([]byte(strings.Repeat("x", CommandOutputMaxBytes+100)))
	require.NoError(t, err)
	assert.True(t, b.truncated)
	assert.Len(t, b.data, CommandOutputMaxBytes)

	// Further writes are discarded without growing the buffer.
	_, err = b.Write([]byte("more"))
	require.NoError(t, err)
	assert.Len(t, b.data, CommandOutputMaxBytes)
}

func TestNewSystemHost_DefaultTimeout(t *testing.T) {
	h := NewSystemHost(0, nil)
	assert.Equal(t, DefaultCommandTimeout, h.CommandTimeout)
}

// Leading columns are significant for porcelain-style output; only the
// trailing newline may be removed.
func TestSystemHost_Run_PreservesLeadingColumns(t *testing.T) {
	h := NewSystemHost(0, nil)
	out, err := h.Run(context.Background(), "sh", "-c", `printf ' M app.go\n'`)
	require.NoError(t, err)
	assert.Equal(t, " M app.go", out)
}

func TestFakeHost_Run_PreservesLeadingColumns(t *testing.T) {
	h := NewFakeHost()
	h.Cmds["git status"] = " M app.go\n?? notes.txt\n"

	out, err := h.Run(context.Background(), "git", "status")
	require.NoError(t, err)
	assert.Equal(t, " M app.go\n?? notes.txt", out)
}
