package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alkime/procflow/internal/mermaid"
)

// Flow turns a process description into a repaired diagram.
type Flow struct {
	generator Generator
	logger    *slog.Logger
}

// NewFlow creates a Flow around a generator. A nil logger uses slog.Default.
func NewFlow(g Generator, logger *slog.Logger) *Flow {
	if logger == nil {
		logger = slog.Default()
	}

	return &Flow{
		generator: g,
		logger:    logger,
	}
}

// Run validates the request, asks the model for a diagram and repairs the reply.
func (f *Flow) Run(ctx context.Context, req Request) (mermaid.Result, error) {
	if err := req.Validate(); err != nil {
		return mermaid.Result{}, err
	}

	f.logger.Debug("Generating process flow", "proposal", req.HasProposal())

	raw, err := f.generator.Generate(ctx, req)
	if err != nil {
		return mermaid.Result{}, fmt.Errorf("generate diagram: %w", err)
	}

	res := mermaid.Process(raw)
	f.logger.Info("Process flow generated",
		"blocks", len(mermaid.Extract(raw)),
		"bytes", len(res.Document),
	)

	return res, nil
}
