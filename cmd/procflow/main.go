package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

// CLI defines the procflow command structure.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	// Default command (runs when no subcommand given)
	Generate GenerateCmd `cmd:"" default:"withargs" help:"Generate a process flow diagram from a process description"`

	// Subcommands
	Repair RepairCmd `cmd:"" help:"Repair mermaid diagrams in a document"`
	Export ExportCmd `cmd:"" help:"Render the diagram in a document to PNG or PDF"`
	Serve  ServeCmd  `cmd:"" help:"Run the web UI and API server"`
	Config ConfigCmd `cmd:"" help:"Manage configuration"`
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("procflow"),
		kong.Description("Turn business process descriptions into Mermaid flowcharts."),
		kong.UsageOnError(),
	)

	// Text logger for CLI output; quiet unless asked so the TUI stays clean
	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
