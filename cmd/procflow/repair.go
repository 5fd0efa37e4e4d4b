package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alkime/procflow/internal/mermaid"
)

// RepairCmd repairs the mermaid blocks of a document and prints the result.
type RepairCmd struct {
	File        string `arg:"" optional:"" help:"Document to repair (default: stdin)"`
	DiagramOnly bool   `flag:"" help:"Print only the last repaired diagram"`
}

// Run executes the repair command.
func (c *RepairCmd) Run() error {
	return c.run(os.Stdin, os.Stdout)
}

func (c *RepairCmd) run(stdin io.Reader, out io.Writer) error {
	doc, err := readText("", documentPath(c.File), stdin)
	if err != nil {
		return err
	}

	res := mermaid.Process(doc)
	slog.Debug("Repaired document", "blocks", len(mermaid.Extract(doc)))

	if c.DiagramOnly {
		_, err = fmt.Fprintln(out, res.Diagram)
	} else {
		_, err = fmt.Fprint(out, res.Document)
	}

	return err
}
