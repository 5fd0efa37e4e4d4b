package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Renderer converts diagram source into an exported document.
type Renderer interface {
	Render(ctx context.Context, diagram string, format Format) ([]byte, error)
}

// ErrEmptyDiagram is returned when there is nothing to render.
var ErrEmptyDiagram = errors.New("diagram source is empty")

// Config holds headless browser settings.
type Config struct {
	// Bin is the Chrome binary; empty lets the launcher find or download one.
	Bin string
	// ControlURL connects to an already running browser instead of launching.
	ControlURL string
	// Timeout bounds a single render.
	Timeout time.Duration
}

// ChromeRenderer renders diagrams in headless Chrome. The browser is started on
// first use and shared by all renders until Close.
type ChromeRenderer struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	browser *rod.Browser
}

// NewChromeRenderer creates a renderer. A nil logger uses slog.Default.
func NewChromeRenderer(cfg Config, logger *slog.Logger) *ChromeRenderer {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ChromeRenderer{
		cfg:    cfg,
		logger: logger,
	}
}

func (r *ChromeRenderer) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	controlURL := r.cfg.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(true)
		if r.cfg.Bin != "" {
			l = l.Bin(r.cfg.Bin)
		}

		url, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = url
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	r.logger.Debug("Connected to headless browser", "control_url", controlURL)
	r.browser = browser

	return browser, nil
}

// Render loads the diagram in a fresh page and captures it in the given format.
func (r *ChromeRenderer) Render(ctx context.Context, diagram string, format Format) ([]byte, error) {
	if Source(diagram) == "" {
		return nil, ErrEmptyDiagram
	}

	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer func() {
		if err := page.Close(); err != nil {
			r.logger.Debug("Failed to close page", "error", err)
		}
	}()

	p := page.Context(ctx).Timeout(r.cfg.Timeout)

	if err := p.SetDocumentContent(Page(diagram)); err != nil {
		return nil, fmt.Errorf("load diagram page: %w", err)
	}

	el, err := p.Element(DiagramSelector)
	if err != nil {
		return nil, fmt.Errorf("wait for rendered diagram: %w", err)
	}

	switch format {
	case PNG:
		img, err := el.Screenshot(proto.PageCaptureScreenshotFormatPng, 0)
		if err != nil {
			return nil, fmt.Errorf("capture png: %w", err)
		}
		return img, nil

	case PDF:
		stream, err := p.PDF(&proto.PagePrintToPDF{PrintBackground: true})
		if err != nil {
			return nil, fmt.Errorf("print pdf: %w", err)
		}
		doc, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("read pdf stream: %w", err)
		}
		return doc, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
}

// Close shuts the browser down.
func (r *ChromeRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	r.browser = nil

	return err
}
