package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alkime/procflow/internal/content"
	"github.com/alkime/procflow/internal/keyring"
	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/internal/render"
	"github.com/alkime/procflow/internal/tui/phase/generating"
	"github.com/alkime/procflow/internal/tui/style"
	"github.com/alkime/procflow/internal/workdir"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// GenerateCmd is the default command: describe a process, get a diagram.
type GenerateCmd struct {
	AsIs            string   `flag:"" name:"as-is" help:"As-is process description"`
	AsIsFile        string   `flag:"" name:"as-is-file" help:"Read the as-is description from a file (- for stdin)"`
	Proposed        string   `flag:"" help:"Proposed solution description"`
	ProposedFile    string   `flag:"" help:"Read the proposed solution from a file"`
	Provider        string   `flag:"" env:"LLM_PROVIDER" default:"openai" enum:"openai,anthropic" help:"Model provider (openai or anthropic)"`
	Model           string   `flag:"" env:"LLM_MODEL" help:"Model name (default depends on provider)"`
	OpenAIAPIKey    string   `flag:"" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	AnthropicAPIKey string   `flag:"" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
	Raw             bool     `flag:"" help:"Print the corrected document without terminal rendering"`
	DiagramOnly     bool     `flag:"" help:"Print only the standalone diagram block"`
	Export          []string `flag:"" help:"Also export the diagram (png, pdf)"`
	OutputDir       string   `flag:"" optional:"" help:"Export directory (default: ~/Documents/Alkime/ProcFlow/exports)"`
	ChromeBin       string   `flag:"" env:"CHROME_BIN" help:"Chrome/Chromium binary used for export"`
}

// Run executes the generate command.
func (c *GenerateCmd) Run() error {
	req, err := c.request(os.Stdin)
	if err != nil {
		return err
	}

	apiKey := c.OpenAIAPIKey
	if c.Provider == string(content.ProviderAnthropic) {
		apiKey = c.AnthropicAPIKey
	}

	// Environment variables take priority, fallback to keychain
	apiKey = keyring.Resolve(apiKey, c.Provider)
	if apiKey == "" {
		return fmt.Errorf("missing %s API key: set it via environment or run 'procflow config set-key %s <key>'",
			c.Provider, c.Provider)
	}

	gen, err := content.NewGenerator(c.Provider, apiKey, content.WithModel(c.Model))
	if err != nil {
		return err
	}

	ctx := context.Background()
	model := generating.New(ctx, content.NewFlow(gen, slog.Default()), req, c.Provider)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	res, err := model.Result()
	if err != nil {
		return err
	}

	if err := c.print(os.Stdout, res); err != nil {
		return err
	}

	if len(c.Export) == 0 {
		return nil
	}

	renderer := render.NewChromeRenderer(render.Config{Bin: c.ChromeBin}, nil)
	defer func() { _ = renderer.Close() }()

	return exportDiagram(ctx, renderer, res.Diagram, c.OutputDir,
		workdir.BaseName("", time.Now()), c.Export, os.Stdout)
}

// request assembles and validates the process description.
func (c *GenerateCmd) request(stdin io.Reader) (content.Request, error) {
	asIs, err := readText(c.AsIs, c.AsIsFile, stdin)
	if err != nil {
		return content.Request{}, err
	}

	proposed, err := readText(c.Proposed, c.ProposedFile, stdin)
	if err != nil {
		return content.Request{}, err
	}

	req := content.Request{AsIs: asIs, Proposed: proposed}
	if err := req.Validate(); err != nil {
		return content.Request{}, fmt.Errorf("%w: pass --as-is or --as-is-file", err)
	}

	return req, nil
}

// print writes the result in the requested form.
func (c *GenerateCmd) print(out io.Writer, res mermaid.Result) error {
	if c.DiagramOnly {
		_, err := fmt.Fprintln(out, res.Diagram)
		return err
	}

	if c.Raw {
		_, err := fmt.Fprintln(out, res.Document)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(res.Document)
	if err != nil {
		slog.Debug("Markdown rendering failed, printing raw", "error", err)
		rendered = res.Document
	}

	_, err = fmt.Fprintf(out, "%s\n%s\n", rendered, style.Success.Render("Diagram repaired."))
	return err
}
