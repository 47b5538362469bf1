package segments

import (
	"context"
	"strings"
)

// modelAbbreviations shortens known long model family names.
var modelAbbreviations = []struct{ long, short string }{
	{"Sonnet", "S"},
	{"Opus", "O"},
	{"Haiku", "H"},
}

// Model shows a shortened display form of the active model identifier.
//
//	Claude 3.5 Sonnet  → 🤖 3.5S
//	claude-3-5-haiku   → 🤖 3-5-haiku
type Model struct {
	DisplayName string
}

func (m Model) Name() string { return "model" }

func (m Model) Collect(_ context.Context) (Segment, bool) {
	if m.DisplayName == "" {
		return Segment{}, false
	}
	return Segment{Kind: KindModel, Text: "🤖 " + shortenModel(m.DisplayName)}, true
}

func shortenModel(name string) string {
	name = strings.TrimPrefix(name, "claude-")
	name = strings.TrimPrefix(name, "Claude ")
	for _, ab := range modelAbbreviations {
		name = strings.ReplaceAll(name, ab.long, ab.short)
	}
	return strings.ReplaceAll(name, " ", "")
}
