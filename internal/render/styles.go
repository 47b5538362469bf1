package render

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for each segment kind.
type Styles struct {
	// Ready / awaiting input badge
	StatusReady lipgloss.Style
	// Working / tool-use badge
	StatusBusy lipgloss.Style
	// Working directory
	Directory lipgloss.Style
	// Git branch and dirty markers
	Git lipgloss.Style
	// Language runtime badges
	Runtime lipgloss.Style
	// Model name (the one bold segment)
	Model lipgloss.Style
	// Output style name
	OutputStyle lipgloss.Style
	// Non-zero exit code
	ExitCode lipgloss.Style
	// Load average
	Load lipgloss.Style
	// Container context
	Container lipgloss.Style
	// Separator between segments
	Separator lipgloss.Style
}

// DefaultStyles returns styles with colors enabled.
func DefaultStyles() Styles {
	return Styles{
		StatusReady: lipgloss.NewStyle().Foreground(lipgloss.Color("2")), // green
		StatusBusy:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Directory:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")), // blue
		Git:         lipgloss.NewStyle().Foreground(lipgloss.Color("3")), // yellow
		Runtime:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Model:       lipgloss.NewStyle().Bold(true),
		OutputStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("5")), // magenta
		ExitCode:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		Load:        lipgloss.NewStyle().Foreground(lipgloss.Color("1")), // red
		Container:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")), // cyan
		Separator:   lipgloss.NewStyle().Faint(true),
	}
}

// NoColorStyles returns styles with no colors (plain text).
func NoColorStyles() Styles {
	return Styles{
		StatusReady: lipgloss.NewStyle(),
		StatusBusy:  lipgloss.NewStyle(),
		Directory:   lipgloss.NewStyle(),
		Git:         lipgloss.NewStyle(),
		Runtime:     lipgloss.NewStyle(),
		Model:       lipgloss.NewStyle(),
		OutputStyle: lipgloss.NewStyle(),
		ExitCode:    lipgloss.NewStyle(),
		Load:        lipgloss.NewStyle(),
		Container:   lipgloss.NewStyle(),
		Separator:   lipgloss.NewStyle(),
	}
}
