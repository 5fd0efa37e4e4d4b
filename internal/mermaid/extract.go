package mermaid

import (
	"regexp"
	"strings"
)

// blockPattern matches from an opening mermaid fence to the nearest closing fence.
var blockPattern = regexp.MustCompile("(?s)```mermaid(.*?)```")

// Block is a fenced diagram located in a document.
type Block struct {
	// Start and End are the byte offsets of Raw within the document.
	Start, End int
	// Raw is the full matched span, fences included.
	Raw string
	// Source is the text between the fences with surrounding whitespace trimmed.
	Source string
}

// Extract returns the mermaid blocks in document, in order of appearance.
// An opening fence without a closing fence does not produce a block.
func Extract(document string) []Block {
	matches := blockPattern.FindAllStringSubmatchIndex(document, -1)
	if len(matches) == 0 {
		return nil
	}

	blocks := make([]Block, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, Block{
			Start:  m[0],
			End:    m[1],
			Raw:    document[m[0]:m[1]],
			Source: strings.TrimSpace(document[m[2]:m[3]]),
		})
	}

	return blocks
}
