// Package render joins collected segments into the final status line.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GGPrompts/statusline/internal/segments"
)

// separator is the visual divider between segments.
const separator = "│"

// LineRenderer renders collected segments as one styled line.
type LineRenderer struct {
	styles Styles
}

// NewLineRenderer creates a renderer with the given styles.
func NewLineRenderer(styles Styles) *LineRenderer {
	return &LineRenderer{styles: styles}
}

// Render joins the segments in order with the separator. Zero segments yield
// an empty string; the caller still emits the trailing newline.
func (r *LineRenderer) Render(segs []segments.Segment) string {
	if len(segs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(segs))
	for _, seg := range segs {
		parts = append(parts, r.styleFor(seg.Kind).Render(seg.Text))
	}
	sep := " " + r.styles.Separator.Render(separator) + " "
	return strings.Join(parts, sep)
}

func (r *LineRenderer) styleFor(kind segments.Kind) lipgloss.Style {
	switch kind {
	case segments.KindStatusReady:
		return r.styles.StatusReady
	case segments.KindStatusBusy:
		return r.styles.StatusBusy
	case segments.KindDirectory:
		return r.styles.Directory
	case segments.KindGit:
		return r.styles.Git
	case segments.KindRuntime:
		return r.styles.Runtime
	case segments.KindModel:
		return r.styles.Model
	case segments.KindOutputStyle:
		return r.styles.OutputStyle
	case segments.KindExitCode:
		return r.styles.ExitCode
	case segments.KindLoad:
		return r.styles.Load
	case segments.KindContainer:
		return r.styles.Container
	default:
		return lipgloss.NewStyle()
	}
}
