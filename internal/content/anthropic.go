package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultAnthropicModel is used when no model is configured.
// Same value as anthropic.ModelClaudeSonnet4_5_20250929 (SDK >= v1.13.0, which needs Go 1.23).
const DefaultAnthropicModel = "claude-sonnet-4-5-20250929"

// AnthropicGenerator generates diagrams with the Anthropic messages API.
type AnthropicGenerator struct {
	apiKey string
	opts   options
}

// NewAnthropicGenerator creates a new Anthropic-backed generator.
func NewAnthropicGenerator(apiKey string, opts ...Option) *AnthropicGenerator {
	o := buildOptions(opts)
	if o.model == "" {
		o.model = DefaultAnthropicModel
	}

	return &AnthropicGenerator{
		apiKey: apiKey,
		opts:   o,
	}
}

// Generate sends the request prompt and returns the concatenated text blocks of the reply.
func (g *AnthropicGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("API key required: set ANTHROPIC_API_KEY or use --anthropic-api-key")
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(g.apiKey)}
	if g.opts.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(g.opts.baseURL), option.WithMaxRetries(0))
	}
	client := anthropic.NewClient(reqOpts...)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.opts.model),
		MaxTokens: 4096,
		System: []anthropic.TextBlockParam{
			{Text: req.SystemPrompt(g.opts.catalog)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(UserInstruction)),
		},
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate diagram via Anthropic API: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(text.Text)
		}
	}

	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
