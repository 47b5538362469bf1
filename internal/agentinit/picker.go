package agentinit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Picker phases: agent name entry, then pattern selection.
const (
	phaseName = iota
	phasePattern
)

// PickerStyles holds the lipgloss styles for the interactive picker.
type PickerStyles struct {
	Title    lipgloss.Style
	Chevron  lipgloss.Style
	Selected lipgloss.Style
	Summary  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultPickerStyles returns picker styles with colors enabled.
func DefaultPickerStyles() PickerStyles {
	return PickerStyles{
		Title:    lipgloss.NewStyle().Bold(true),
		Chevron:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Summary:  lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// PickerModel is a small bubbletea model that collects an agent name and a
// pattern. Arrow keys, j/k and number keys navigate the pattern list.
type PickerModel struct {
	input    textinput.Model
	options  []Pattern
	cursor   int
	phase    int
	styles   PickerStyles
	nameErr  string
	name     string
	done     bool
	canceled bool
}

// NewPickerModel creates a picker over the given patterns. A non-empty
// presetName skips the name entry phase.
func NewPickerModel(options []Pattern, presetName string, styles PickerStyles) *PickerModel {
	ti := textinput.New()
	ti.Placeholder = "my-agent-name"
	ti.Focus()

	m := &PickerModel{
		input:   ti,
		options: options,
		styles:  styles,
	}
	if presetName != "" {
		m.name = presetName
		m.phase = phasePattern
	}
	// Default pattern preselected.
	for i, p := range options {
		if p.Name == DefaultPatternName {
			m.cursor = i
			break
		}
	}
	return m
}

func (m *PickerModel) Init() tea.Cmd { return textinput.Blink }

func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.canceled = true
		return m, tea.Quit
	}

	if m.phase == phaseName {
		return m.updateName(key)
	}
	return m.updatePattern(key)
}

func (m *PickerModel) updateName(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.input.Value())
		if err := ValidateName(name); err != nil {
			m.nameErr = err.Error()
			return m, nil
		}
		m.name = name
		m.nameErr = ""
		m.phase = phasePattern
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *PickerModel) updatePattern(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyUp:
		m.moveUp()
	case tea.KeyDown:
		m.moveDown()
	case tea.KeyEnter:
		m.done = true
		return m, tea.Quit
	case tea.KeyRunes:
		if len(key.Runes) != 1 {
			break
		}
		switch r := key.Runes[0]; {
		case r >= '1' && r <= '9':
			if idx := int(r - '1'); idx < len(m.options) {
				m.cursor = idx
				m.done = true
				return m, tea.Quit
			}
		case r == 'j':
			m.moveDown()
		case r == 'k':
			m.moveUp()
		}
	}
	return m, nil
}

func (m *PickerModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	if m.phase == phaseName {
		b.WriteString(m.styles.Title.Render("New agent name:") + "\n\n")
		b.WriteString("  " + m.input.View() + "\n")
		if m.nameErr != "" {
			b.WriteString("\n  " + m.styles.Error.Render(m.nameErr) + "\n")
		}
		return b.String()
	}

	b.WriteString(m.styles.Title.Render("Pattern for "+m.name+":") + "\n\n")
	for i, opt := range m.options {
		chevron := "   "
		if i == m.cursor {
			chevron = m.styles.Chevron.Render(" > ")
		}

		label := fmt.Sprintf("%d. %s", i+1, opt.Name)
		if i == m.cursor {
			label = m.styles.Selected.Render(label)
		}

		b.WriteString(chevron + label + " " + m.styles.Summary.Render(opt.Summary))
		if i < len(m.options)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Result returns the collected name and pattern, and whether the user
// confirmed a selection.
func (m *PickerModel) Result() (string, Pattern, bool) {
	if !m.done || m.canceled {
		return "", Pattern{}, false
	}
	return m.name, m.options[m.cursor], true
}

func (m *PickerModel) moveUp() {
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.options) - 1
	}
}

func (m *PickerModel) moveDown() {
	m.cursor++
	if m.cursor >= len(m.options) {
		m.cursor = 0
	}
}

// RunPicker runs the interactive picker and returns the chosen name and
// pattern. ok is false when the user cancelled.
func RunPicker(presetName string) (name string, p Pattern, ok bool, err error) {
	model := NewPickerModel(Patterns(), presetName, DefaultPickerStyles())
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", Pattern{}, false, fmt.Errorf("running picker: %w", err)
	}
	picker, isPicker := final.(*PickerModel)
	if !isPicker {
		return "", Pattern{}, false, nil
	}
	name, p, ok = picker.Result()
	return name, p, ok, nil
}
