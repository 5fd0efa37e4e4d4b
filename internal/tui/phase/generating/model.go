// Package generating provides the TUI model shown while a process flow is generated.
package generating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alkime/procflow/internal/content"
	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/internal/tui/components/labeledspinner"
	"github.com/alkime/procflow/internal/tui/phase/msg"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCanceled is reported when the user aborts generation.
var ErrCanceled = errors.New("generation canceled")

// Runner produces a repaired diagram from a request.
type Runner interface {
	Run(ctx context.Context, req content.Request) (mermaid.Result, error)
}

var cancelKey = key.NewBinding(key.WithKeys("ctrl+c", "esc"))

// Model represents the generating phase UI state.
type Model struct {
	spinner labeledspinner.Model
	runner  Runner
	req     content.Request
	ctx     context.Context
	cancel  context.CancelFunc
	started time.Time

	result mermaid.Result
	err    error
	done   bool
}

// New creates a new generating phase model.
func New(ctx context.Context, runner Runner, req content.Request, provider string) *Model {
	ctx, cancel := context.WithCancel(ctx)

	subtitle := "Diagramming the as-is process"
	if req.HasProposal() {
		subtitle = "Comparing the as-is process with the proposed solution"
	}

	return &Model{
		spinner: labeledspinner.New(
			spinner.Pulse,
			"Generating process flow...",
			subtitle,
			fmt.Sprintf("Waiting for %s", provider),
		),
		runner:  runner,
		req:     req,
		ctx:     ctx,
		cancel:  cancel,
		started: time.Now(),
	}
}

// Init starts the spinner and the generation.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Init(),
		m.generateCmd(),
	)
}

// Update handles messages for the generating phase.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	switch tm := teaMsg.(type) {
	case msg.GenerateCompleteMsg:
		m.result = tm.Result
		m.done = true
		return m, tea.Quit

	case msg.GenerateErrorMsg:
		m.err = tm.Err
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(tm, cancelKey) {
			m.cancel()
			m.err = ErrCanceled
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(teaMsg)

	return m, cmd
}

// View renders the generating phase UI.
func (m *Model) View() string {
	if m.done {
		return ""
	}

	elapsed := time.Since(m.started).Truncate(time.Second)
	return m.spinner.ViewWithHelp(fmt.Sprintf("%s (%s) • esc to cancel", m.spinner.Help, elapsed))
}

// Result returns the outcome once the program has exited.
func (m *Model) Result() (mermaid.Result, error) {
	return m.result, m.err
}

func (m *Model) generateCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.runner.Run(m.ctx, m.req)
		if err != nil {
			return msg.GenerateErrorMsg{Err: fmt.Errorf("failed to generate process flow: %w", err)}
		}

		return msg.GenerateCompleteMsg{Result: res}
	}
}
