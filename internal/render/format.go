// Package render turns mermaid diagram source into PNG or PDF documents using a
// headless Chrome instance.
package render

import (
	"errors"
	"fmt"
	"strings"
)

// Format is an export file format.
type Format string

const (
	// PNG renders the diagram element as a PNG screenshot.
	PNG Format = "png"
	// PDF prints the diagram page to PDF.
	PDF Format = "pdf"
)

// ErrUnknownFormat is returned for unsupported export formats.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat parses a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case PNG, PDF:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q: must be 'png' or 'pdf'", ErrUnknownFormat, name)
	}
}

// Ext returns the file extension, without the dot.
func (f Format) Ext() string {
	return string(f)
}

// ContentType returns the MIME type of the rendered output.
func (f Format) ContentType() string {
	if f == PDF {
		return "application/pdf"
	}

	return "image/png"
}
