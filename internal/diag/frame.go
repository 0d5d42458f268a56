package diag

import (
	"fmt"

	"rosh/internal/source"
)

// Frame records one call site in the evaluation chain: where the call
// happened, where the callee was defined, and the callee name when
// known. Frames are built by the evaluator and never mutated here; this
// package only renders and truncates them.
type Frame struct {
	CallSite source.Location
	DefSite  source.Location
	Name     string // "" when the callee is anonymous or unknown
}

// maxTraceFrames bounds how many frames a rendered trace shows.
const maxTraceFrames = 10

// unknownCallee is shown for frames without a callee name.
const unknownCallee = "[unknown function]"

// Render formats a single frame as one trace line.
func (f Frame) Render() string {
	name := f.Name
	if name == "" {
		name = unknownCallee
	}
	return fmt.Sprintf("  in %s from (%s) at (%s)", name, f.DefSite, f.CallSite)
}

// TopOfTrace renders at most maxTraceFrames entries in the order given
// (callers order most-recent-first), appending a single ellipsis marker
// line when frames were dropped. No frame is synthesized or reordered.
func TopOfTrace(frames []Frame) []string {
	shown := len(frames)
	truncated := false
	if shown > maxTraceFrames {
		shown = maxTraceFrames
		truncated = true
	}
	out := make([]string, 0, shown+1)
	for _, f := range frames[:shown] {
		out = append(out, f.Render())
	}
	if truncated {
		out = append(out, "  ...")
	}
	return out
}
