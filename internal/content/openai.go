package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultOpenAIModel is used when no model is configured.
const DefaultOpenAIModel = string(openai.ChatModelGPT4o)

// OpenAIGenerator generates diagrams with the OpenAI chat completions API.
type OpenAIGenerator struct {
	apiKey string
	opts   options
}

// NewOpenAIGenerator creates a new OpenAI-backed generator.
func NewOpenAIGenerator(apiKey string, opts ...Option) *OpenAIGenerator {
	o := buildOptions(opts)
	if o.model == "" {
		o.model = DefaultOpenAIModel
	}

	return &OpenAIGenerator{
		apiKey: apiKey,
		opts:   o,
	}
}

// Generate sends the request prompt and returns the model's raw reply.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("API key required: set OPENAI_API_KEY or use --openai-api-key")
	}

	reqOpts := []option.RequestOption{option.WithAPIKey(g.apiKey)}
	if g.opts.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(g.opts.baseURL), option.WithMaxRetries(0))
	}
	client := openai.NewClient(reqOpts...)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.opts.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.SystemPrompt(g.opts.catalog)),
			openai.UserMessage(UserInstruction),
		},
	}

	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate diagram via OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}
