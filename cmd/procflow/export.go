package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/internal/render"
	"github.com/alkime/procflow/internal/tui/style"
	"github.com/alkime/procflow/internal/workdir"
	"github.com/alkime/procflow/pkg/collections"
)

// ExportCmd renders the last diagram of a document to image/PDF files.
type ExportCmd struct {
	File      string        `arg:"" optional:"" help:"Document containing a mermaid diagram (default: stdin)"`
	Formats   []string      `flag:"" name:"format" default:"png,pdf" help:"Export formats (png, pdf)"`
	OutputDir string        `flag:"" optional:"" help:"Output directory (default: ~/Documents/Alkime/ProcFlow/exports)"`
	Name      string        `flag:"" optional:"" help:"Base file name (default: derived from the input file)"`
	ChromeBin string        `flag:"" env:"CHROME_BIN" help:"Chrome/Chromium binary used for rendering"`
	Timeout   time.Duration `flag:"" default:"30s" help:"Render timeout per format"`
}

// Run executes the export command.
func (c *ExportCmd) Run() error {
	path := documentPath(c.File)
	doc, err := readText("", path, os.Stdin)
	if err != nil {
		return err
	}

	name := c.Name
	if name == "" {
		name = workdir.BaseName(path, time.Now())
	}

	renderer := render.NewChromeRenderer(render.Config{Bin: c.ChromeBin, Timeout: c.Timeout}, nil)
	defer func() { _ = renderer.Close() }()

	return exportDiagram(context.Background(), renderer, mermaid.Process(doc).Diagram,
		c.OutputDir, name, c.Formats, os.Stdout)
}

// exportDiagram writes the diagram in each format and reports the saved paths.
func exportDiagram(
	ctx context.Context,
	r render.Renderer,
	diagram, dir, name string,
	formatNames []string,
	out io.Writer,
) error {
	formats, err := parseFormats(formatNames)
	if err != nil {
		return err
	}

	if dir == "" {
		dir, err = workdir.ExportDir()
		if err != nil {
			return fmt.Errorf("failed to determine export directory: %w", err)
		}
	}

	paths, err := render.ExportAll(ctx, r, diagram, dir, name, formats...)
	if err != nil {
		return fmt.Errorf("failed to export diagram: %w", err)
	}

	for _, p := range paths {
		fmt.Fprintf(out, "%s %s\n", style.Label.Render("Saved:"), style.Muted.Render(p))
	}

	return nil
}

func parseFormats(names []string) ([]render.Format, error) {
	trimmed := collections.Compact(collections.Apply(names, strings.TrimSpace))
	if len(trimmed) == 0 {
		return nil, errors.New("at least one export format is required")
	}

	formats := make([]render.Format, 0, len(trimmed))
	for _, name := range trimmed {
		f, err := render.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		formats = append(formats, f)
	}

	return formats, nil
}
