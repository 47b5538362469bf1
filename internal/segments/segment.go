// Package segments derives the independently-optional fragments of the status
// line. Each provider is a pure function of injected host state: it either
// yields one segment or reports that its predicate did not hold. Providers
// never depend on each other, so partial failure of one data source cannot
// suppress unrelated segments.
package segments

import "context"

// Kind classifies a segment for styling.
type Kind int

const (
	KindStatusReady Kind = iota
	KindStatusBusy
	KindDirectory
	KindGit
	KindRuntime
	KindModel
	KindOutputStyle
	KindExitCode
	KindLoad
	KindContainer
)

// Segment is one rendered fragment of the status line.
type Segment struct {
	Kind Kind
	Text string
}

// Provider yields an optional segment from host state.
type Provider interface {
	// Name identifies the provider for diagnostics.
	Name() string

	// Collect returns the segment and whether its predicate held.
	Collect(ctx context.Context) (Segment, bool)
}

// CollectAll evaluates providers in order and returns the segments whose
// predicates held. A panicking provider is treated as an omitted segment;
// the render must succeed under total failure of every lookup.
func CollectAll(ctx context.Context, providers []Provider) []Segment {
	segs := make([]Segment, 0, len(providers))
	for _, p := range providers {
		if seg, ok := collectOne(ctx, p); ok {
			segs = append(segs, seg)
		}
	}
	return segs
}

func collectOne(ctx context.Context, p Provider) (seg Segment, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	return p.Collect(ctx)
}
