package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider names a language model backend.
type Provider string

const (
	// ProviderOpenAI uses the OpenAI chat completions API.
	ProviderOpenAI Provider = "openai"
	// ProviderAnthropic uses the Anthropic messages API.
	ProviderAnthropic Provider = "anthropic"
)

var (
	// ErrBlankAsIs is returned when a request has no as-is process description.
	ErrBlankAsIs = errors.New("as-is process cannot be blank")
	// ErrUnknownProvider is returned for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown provider")
	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from model")
)

// Request describes the process to diagram.
type Request struct {
	AsIs     string `json:"as_is"`
	Proposed string `json:"proposed"`
}

// Validate checks that the as-is description is present.
func (r Request) Validate() error {
	if strings.TrimSpace(r.AsIs) == "" {
		return ErrBlankAsIs
	}

	return nil
}

// HasProposal reports whether a proposed solution was given.
func (r Request) HasProposal() bool {
	return strings.TrimSpace(r.Proposed) != ""
}

// SystemPrompt selects the comparison prompt when a proposal is present,
// otherwise the as-is prompt.
func (r Request) SystemPrompt(catalog *Catalog) string {
	if r.HasProposal() {
		return ComparisonPrompt(r.AsIs, r.Proposed, catalog)
	}

	return AsIsPrompt(r.AsIs)
}

// Generator produces raw model text for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Option configures a generator.
type Option func(*options)

type options struct {
	model   string
	baseURL string
	catalog *Catalog
}

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithCatalog replaces the embedded feature catalog.
func WithCatalog(c *Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalog == nil {
		o.catalog = DefaultCatalog()
	}

	return o
}

// NewGenerator creates a generator for the named provider.
func NewGenerator(provider, apiKey string, opts ...Option) (Generator, error) {
	switch Provider(provider) {
	case ProviderOpenAI:
		return NewOpenAIGenerator(apiKey, opts...), nil
	case ProviderAnthropic:
		return NewAnthropicGenerator(apiKey, opts...), nil
	default:
		return nil, fmt.Errorf("%w %q: must be 'openai' or 'anthropic'", ErrUnknownProvider, provider)
	}
}
