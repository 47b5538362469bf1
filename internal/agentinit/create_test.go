package agentinit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		agent   string
		wantErr bool
	}{
		{"simple", "code-reviewer", false},
		{"with digits", "agent2", false},
		{"single letter", "a", false},
		{"uppercase", "CodeReviewer", true},
		{"leading digit", "2fast", true},
		{"leading hyphen", "-agent", true},
		{"underscore", "code_reviewer", true},
		{"empty", "", true},
		{"spaces", "code reviewer", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.agent)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("reviewer")
	require.True(t, ok)
	assert.Equal(t, "reviewer", p.Name)
	assert.Equal(t, "sonnet", p.Model)
	assert.Contains(t, p.Tools, "Read")

	_, ok = Lookup("no-such-pattern")
	assert.False(t, ok)
}

func TestLookup_DefaultExists(t *testing.T) {
	_, ok := Lookup(DefaultPatternName)
	assert.True(t, ok)
}

func TestRenderFile_Frontmatter(t *testing.T) {
	p, _ := Lookup("quick")
	content := RenderFile("quick-search", p)

	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "name: quick-search\n")
	assert.Contains(t, content, "model: haiku\n")
	assert.Contains(t, content, "  - Grep\n")
	assert.Contains(t, content, "description: \"TODO: Describe when to use this agent\"")

	// Prompt body follows the closing frontmatter fence.
	_, body, found := strings.Cut(content, "---\n\n")
	require.True(t, found)
	assert.Contains(t, body, "fast, efficient assistant")
}

func TestCreate_WritesFile(t *testing.T) {
	dir := t.TempDir()
	p, _ := Lookup("specialist")

	path, err := Create("frontend-dev", dir, p)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "frontend-dev.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: frontend-dev")
}

func TestCreate_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	p, _ := Lookup("specialist")

	_, err := Create("frontend-dev", dir, p)
	require.NoError(t, err)

	_, err = Create("frontend-dev", dir, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCreate_RejectsBadName(t *testing.T) {
	p, _ := Lookup("specialist")
	_, err := Create("Bad Name", t.TempDir(), p)
	assert.Error(t, err)
}

func TestCreate_MakesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "agents")
	p, _ := Lookup("builder")

	path, err := Create("api-builder", dir, p)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
