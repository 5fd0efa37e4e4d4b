// Package msg defines shared message types for TUI phase transitions.
package msg

import "github.com/alkime/procflow/internal/mermaid"

// GenerateCompleteMsg signals that the diagram was generated and repaired.
type GenerateCompleteMsg struct {
	Result mermaid.Result
}

// GenerateErrorMsg signals a diagram generation failure.
type GenerateErrorMsg struct {
	Err error
}
