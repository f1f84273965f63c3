// Package wizard provides an interactive TUI for configuring claim batch
// generation.
package wizard

import "github.com/mrsinham/claimforge/internal/claim"

// WizardState holds the complete state for the wizard interface.
type WizardState struct {
	Batch   BatchConfig
	Profile claim.Config
}

// BatchConfig holds the batch-level settings collected by the wizard.
type BatchConfig struct {
	Count     int
	OutputDir string
	Seed      int64
	Workers   int
	Phase     string

	// Output formats: json is always written, parquet and pdf are optional.
	Formats  []string
	Template string // claim template PDF, required for the pdf format

	EdgeCasePercentage int
	EdgeCaseTypes      []string

	LogFormat string
}

// NewState returns a wizard state with the standard defaults.
func NewState() *WizardState {
	return &WizardState{
		Batch: BatchConfig{
			Count:     10,
			OutputDir: "claim_forms",
			Phase:     "specialized",
			Formats:   []string{"json"},
			LogFormat: "text",
		},
		Profile: claim.DefaultConfig(),
	}
}
