package render

import (
	"html"
	"strings"

	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/pkg/collections"
)

// MermaidScriptURL is the mermaid.js bundle loaded by rendered pages.
const MermaidScriptURL = "https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"

// DiagramSelector locates the rendered diagram in the page.
const DiagramSelector = "#diagram svg"

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>body { margin: 0; padding: 16px; background: #fff; } #diagram { display: inline-block; }</style>
<script src="` + MermaidScriptURL + `"></script>
</head>
<body>
<pre id="diagram" class="mermaid">{{SOURCE}}</pre>
<script>mermaid.initialize({ startOnLoad: true, securityLevel: "strict" });</script>
</body>
</html>`

// Source returns the diagram source of a fenced document, or the trimmed input
// when it holds no fenced block. The last block wins.
func Source(diagram string) string {
	last, ok := collections.Last(mermaid.Extract(diagram))
	if !ok {
		return strings.TrimSpace(diagram)
	}

	return last.Source
}

// Page builds a standalone HTML page that renders the diagram with mermaid.js.
func Page(diagram string) string {
	return strings.Replace(pageTemplate, "{{SOURCE}}", html.EscapeString(Source(diagram)), 1)
}
