package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/alkime/procflow/internal/config"
	"github.com/alkime/procflow/internal/content"
	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/internal/render"
	"github.com/alkime/procflow/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFlow implements server.FlowRunner for testing.
type mockFlow struct {
	raw    string
	err    error
	called bool
}

func (m *mockFlow) Run(_ context.Context, req content.Request) (mermaid.Result, error) {
	m.called = true
	if err := req.Validate(); err != nil {
		return mermaid.Result{}, err
	}
	if m.err != nil {
		return mermaid.Result{}, m.err
	}
	return mermaid.Process(m.raw), nil
}

// mockRenderer implements render.Renderer for testing.
type mockRenderer struct {
	err error
}

func (m *mockRenderer) Render(_ context.Context, diagram string, format render.Format) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if render.Source(diagram) == "" {
		return nil, render.ErrEmptyDiagram
	}
	return []byte("rendered " + string(format)), nil
}

func newTestServer(t *testing.T, deps server.Deps) *server.Server {
	t.Helper()

	cfg := &config.Config{
		Env:        "test",
		Port:       "8080",
		HSTSMaxAge: 31536000,
		CSPMode:    "relaxed",
		LogLevel:   "info",
	}

	// Only show errors during tests
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	return server.New(cfg, logger, deps)
}

func do(srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, server.Deps{})

	w := do(srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code, "Health endpoint should return 200 OK")
	assert.Contains(t, w.Body.String(), "healthy")
	assert.Contains(t, w.Body.String(), "procflow")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDPropagation(t *testing.T) {
	srv := newTestServer(t, server.Deps{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestRepairEndpoint(t *testing.T) {
	srv := newTestServer(t, server.Deps{})

	t.Run("repairs diagrams", func(t *testing.T) {
		body := `{"document":"Here:\n` + "```mermaid" + `\nA[Step (one)]-->B\nclassDef x fill=#fff\n` + "```" + `\nDone"}`
		w := do(srv, http.MethodPost, "/api/v1/repair", body)

		require.Equal(t, http.StatusOK, w.Code)
		out := decode(t, w)
		assert.Contains(t, out["document"], "A[Step -one-]-->B")
		assert.Equal(t, "```mermaid\nA[Step -one-]-->B\nclassDef x fill:#fff\n```", out["diagram"])
	})

	t.Run("no diagram returns placeholder", func(t *testing.T) {
		w := do(srv, http.MethodPost, "/api/v1/repair", `{"document":"nothing here"}`)

		require.Equal(t, http.StatusOK, w.Code)
		out := decode(t, w)
		assert.Equal(t, "nothing here", out["document"])
		assert.Equal(t, mermaid.Wrap(mermaid.Placeholder), out["diagram"])
	})

	t.Run("invalid json", func(t *testing.T) {
		w := do(srv, http.MethodPost, "/api/v1/repair", `{"document":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenerateEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		flow := &mockFlow{raw: "```mermaid\nflowchart TD\nA[Claims (rework)]-->B\n```"}
		srv := newTestServer(t, server.Deps{Flow: flow})

		w := do(srv, http.MethodPost, "/api/v1/generate", `{"as_is":"Claims are reworked","proposed":""}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, flow.called)
		assert.Equal(t, "```mermaid\nflowchart TD\nA[Claims -rework-]-->B\n```", decode(t, w)["diagram"])
	})

	t.Run("blank as-is", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{Flow: &mockFlow{}})

		w := do(srv, http.MethodPost, "/api/v1/generate", `{"as_is":"   "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "As-Is solution cannot be blank", decode(t, w)["error"])
	})

	t.Run("model failure", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{Flow: &mockFlow{err: errors.New("upstream timeout")}})

		w := do(srv, http.MethodPost, "/api/v1/generate", `{"as_is":"Claims are reworked"}`)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "There was an error processing your request. Please try again.", decode(t, w)["error"])
		assert.NotContains(t, w.Body.String(), "upstream timeout")
	})

	t.Run("not configured", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{})

		w := do(srv, http.MethodPost, "/api/v1/generate", `{"as_is":"x"}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestExportEndpoint(t *testing.T) {
	diagram := `"` + "```mermaid" + `\nA-->B\n` + "```" + `"`

	t.Run("png", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{Renderer: &mockRenderer{}})

		w := do(srv, http.MethodPost, "/api/v1/export", `{"diagram":`+diagram+`,"format":"png"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "process-flow.png")
		assert.Equal(t, "rendered png", w.Body.String())
	})

	t.Run("pdf", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{Renderer: &mockRenderer{}})

		w := do(srv, http.MethodPost, "/api/v1/export", `{"diagram":`+diagram+`,"format":"pdf"}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	})

	t.Run("unknown format", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{Renderer: &mockRenderer{}})

		w := do(srv, http.MethodPost, "/api/v1/export", `{"diagram":`+diagram+`,"format":"gif"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty diagram", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{Renderer: &mockRenderer{}})

		w := do(srv, http.MethodPost, "/api/v1/export", `{"diagram":"","format":"png"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("renderer failure", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{Renderer: &mockRenderer{err: errors.New("chrome gone")}})

		w := do(srv, http.MethodPost, "/api/v1/export", `{"diagram":`+diagram+`,"format":"png"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("no renderer", func(t *testing.T) {
		srv := newTestServer(t, server.Deps{})

		w := do(srv, http.MethodPost, "/api/v1/export", `{"diagram":`+diagram+`,"format":"png"}`)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestStaticUI(t *testing.T) {
	srv := newTestServer(t, server.Deps{})

	w := do(srv, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Generate Process Flow")

	w = do(srv, http.MethodGet, "/app.js", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/generate")

	w = do(srv, http.MethodGet, "/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
