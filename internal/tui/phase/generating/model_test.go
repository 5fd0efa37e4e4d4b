package generating_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alkime/procflow/internal/content"
	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/internal/tui/phase/generating"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// mockRunner implements generating.Runner for testing.
type mockRunner struct {
	raw   string
	err   error
	block chan struct{}
}

func (m *mockRunner) Run(ctx context.Context, _ content.Request) (mermaid.Result, error) {
	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
			return mermaid.Result{}, ctx.Err()
		}
	}
	if m.err != nil {
		return mermaid.Result{}, m.err
	}
	return mermaid.Process(m.raw), nil
}

func finalModel(t *testing.T, tm *teatest.TestModel) *generating.Model {
	t.Helper()
	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	m, ok := fm.(*generating.Model)
	require.True(t, ok)
	return m
}

func TestGenerating_HappyPath(t *testing.T) {
	runner := &mockRunner{raw: "```mermaid\nA[x (y)]\n```", block: make(chan struct{})}
	m := generating.New(context.Background(), runner, content.Request{AsIs: "x", Proposed: "y"}, "openai")

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		return bytes.Contains(buf, []byte("Generating process flow")) &&
			bytes.Contains(buf, []byte("Comparing the as-is process"))
	}, teatest.WithDuration(3*time.Second))

	close(runner.block)

	res, err := finalModel(t, tm).Result()
	require.NoError(t, err)
	assert.Equal(t, "```mermaid\nA[x -y-]\n```", res.Diagram)
}

func TestGenerating_Error(t *testing.T) {
	runner := &mockRunner{err: errors.New("quota exceeded")}
	m := generating.New(context.Background(), runner, content.Request{AsIs: "x"}, "anthropic")

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	_, err := finalModel(t, tm).Result()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerating_Cancel(t *testing.T) {
	runner := &mockRunner{block: make(chan struct{})}
	m := generating.New(context.Background(), runner, content.Request{AsIs: "x"}, "openai")

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		return bytes.Contains(buf, []byte("esc to cancel"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	_, err := finalModel(t, tm).Result()
	assert.ErrorIs(t, err, generating.ErrCanceled)
}
