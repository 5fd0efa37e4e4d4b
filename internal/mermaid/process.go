package mermaid

import (
	"strings"

	"github.com/alkime/procflow/pkg/collections"
)

// Process repairs every diagram block in document.
//
// Blocks are rewritten in place, by position, as a normalized fenced block. The
// returned Diagram is the last repaired block, or the Placeholder diagram when the
// document contains none; in that case Document is returned untouched.
func Process(document string) Result {
	blocks := Extract(document)
	if len(blocks) == 0 {
		return Result{
			Document: document,
			Diagram:  Wrap(Placeholder),
		}
	}

	repaired := collections.Apply(blocks, func(b Block) string {
		return Repair(b.Source)
	})

	var sb strings.Builder
	sb.Grow(len(document))

	prev := 0
	for i, b := range blocks {
		sb.WriteString(document[prev:b.Start])
		sb.WriteString(Wrap(repaired[i]))
		prev = b.End
	}
	sb.WriteString(document[prev:])

	last, _ := collections.Last(repaired)

	return Result{
		Document: sb.String(),
		Diagram:  Wrap(last),
	}
}
