package agentinit

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// namePattern constrains agent names to lowercase letters, digits and hyphens,
// starting with a letter. Agent names become file names and CLI arguments.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateName checks that name is a legal agent name.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("agent name must be lowercase with hyphens only (got: %s)", name)
	}
	return nil
}

// DefaultDir returns the default agent directory, ~/.claude/agents.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".claude", "agents")
	}
	return filepath.Join(home, ".claude", "agents")
}

// RenderFile produces the agent markdown: YAML frontmatter followed by the
// pattern's system prompt.
func RenderFile(name string, p Pattern) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("name: " + name + "\n")
	b.WriteString("description: \"TODO: Describe when to use this agent\"\n")
	b.WriteString("tools:\n")
	for _, tool := range p.Tools {
		b.WriteString("  - " + tool + "\n")
	}
	b.WriteString("model: " + p.Model + "\n")
	b.WriteString("---\n\n")
	b.WriteString(p.Prompt)
	b.WriteString("\n")
	return b.String()
}

// Create writes <dir>/<name>.md from the pattern, creating dir as needed.
// It refuses to overwrite an existing agent file.
func Create(name, dir string, p Pattern) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating agent directory: %w", err)
	}

	path := filepath.Join(dir, name+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("agent file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(RenderFile(name, p)), 0o644); err != nil {
		return "", fmt.Errorf("writing agent file: %w", err)
	}
	return path, nil
}
