// Package mermaid extracts ```mermaid fenced blocks from model output and repairs
// the syntax mistakes language models commonly make in them.
//
// Every function in this package is pure and safe for concurrent use.
package mermaid

const (
	// Fence is the code block delimiter.
	Fence = "```"
	// OpenFence marks the start of a mermaid code block.
	OpenFence = Fence + "mermaid"
	// Placeholder is the diagram source returned when a document has no diagram.
	Placeholder = "flowchart TD\nA[No Mermaid diagram found]:::common"
)

// Result holds the output of Process.
type Result struct {
	// Document is the input document with every diagram block repaired in place.
	Document string
	// Diagram is the last repaired diagram as a standalone fenced block.
	Diagram string
}

// Wrap encloses diagram source in mermaid fences.
func Wrap(source string) string {
	return OpenFence + "\n" + source + "\n" + Fence
}
