// Agent scaffolder for the plugin host.
//
// Creates a new agent definition file (YAML frontmatter + system prompt)
// from a built-in pattern.
//
// Usage:
//
//	agent-init code-reviewer                         Create with the default pattern
//	agent-init -path .claude/agents frontend-dev     Create in a specific directory
//	agent-init -pattern quick quick-search           Use a specific pattern
//	agent-init -preview my-agent                     Render without writing
//	agent-init                                       Interactive name/pattern picker
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/GGPrompts/statusline/internal/agentinit"
	"github.com/GGPrompts/statusline/internal/version"
)

func main() {
	path := flag.String("path", agentinit.DefaultDir(), "Directory to create the agent in")
	pattern := flag.String("pattern", agentinit.DefaultPatternName, "Agent pattern: "+strings.Join(agentinit.PatternNames(), ", "))
	preview := flag.Bool("preview", false, "Render the agent file to stdout without writing it")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GitCommit)
		return
	}

	name := flag.Arg(0)
	p, ok := agentinit.Lookup(*pattern)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown pattern %q\nAvailable patterns: %s\n",
			*pattern, strings.Join(agentinit.PatternNames(), ", "))
		os.Exit(1)
	}

	// No name given: fall back to the interactive picker on a terminal.
	if name == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: agent name required (or run on a terminal for the interactive picker)")
			os.Exit(1)
		}
		var picked bool
		var err error
		name, p, picked, err = agentinit.RunPicker("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !picked {
			return
		}
	}

	if *preview {
		if err := renderPreview(name, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	agentFile, err := agentinit.Create(name, *path, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created agent: %s\n", agentFile)
	fmt.Printf("Pattern: %s\n\n", p.Name)
	fmt.Println("Next steps:")
	fmt.Printf("  1. Edit %s\n", agentFile)
	fmt.Println("  2. Update the description to specify when to use this agent")
	fmt.Println("  3. Customize the system prompt for your use case")
	fmt.Println("  4. Adjust tools and model as needed")
	fmt.Println()
	fmt.Println("Test your agent:")
	fmt.Printf("  claude --agent %s\n", name)
}

// renderPreview prints the generated agent markdown with glamour, falling
// back to plain text when the terminal renderer cannot be built.
func renderPreview(name string, p agentinit.Pattern) error {
	if err := agentinit.ValidateName(name); err != nil {
		return err
	}
	content := agentinit.RenderFile(name, p)

	width := 80
	if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && tw > 0 {
		width = tw
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		fmt.Print(content)
		return nil
	}

	rendered, err := md.Render(content)
	if err != nil {
		fmt.Print(content)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
