package wizard

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mrsinham/claimforge/internal/claim"
)

// Config represents the complete wizard configuration for YAML serialization.
type Config struct {
	Batch   BatchConfigYAML `yaml:"batch"`
	Profile claim.Config    `yaml:"profile"`
}

// BatchConfigYAML holds batch settings with YAML tags for serialization.
type BatchConfigYAML struct {
	Count              int      `yaml:"count"`
	OutputDir          string   `yaml:"output_dir"`
	Seed               int64    `yaml:"seed"`
	Workers            int      `yaml:"workers"`
	Phase              string   `yaml:"phase"`
	Formats            []string `yaml:"formats"`
	Template           string   `yaml:"template,omitempty"`
	EdgeCasePercentage int      `yaml:"edge_case_percentage"`
	EdgeCaseTypes      []string `yaml:"edge_case_types,omitempty"`
	LogFormat          string   `yaml:"log_format"`
}

// LoadFromYAML reads a wizard configuration from disk.
func LoadFromYAML(path string) (*WizardState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Config{
		Batch:   toYAML(NewState().Batch),
		Profile: claim.DefaultConfig(),
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return &WizardState{Batch: fromYAML(cfg.Batch), Profile: cfg.Profile}, nil
}

// SaveToYAML writes the wizard state to disk as YAML.
func SaveToYAML(state *WizardState, path string) error {
	cfg := Config{Batch: toYAML(state.Batch), Profile: state.Profile}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func toYAML(b BatchConfig) BatchConfigYAML {
	return BatchConfigYAML{
		Count:              b.Count,
		OutputDir:          b.OutputDir,
		Seed:               b.Seed,
		Workers:            b.Workers,
		Phase:              b.Phase,
		Formats:            b.Formats,
		Template:           b.Template,
		EdgeCasePercentage: b.EdgeCasePercentage,
		EdgeCaseTypes:      b.EdgeCaseTypes,
		LogFormat:          b.LogFormat,
	}
}

func fromYAML(b BatchConfigYAML) BatchConfig {
	return BatchConfig{
		Count:              b.Count,
		OutputDir:          b.OutputDir,
		Seed:               b.Seed,
		Workers:            b.Workers,
		Phase:              b.Phase,
		Formats:            b.Formats,
		Template:           b.Template,
		EdgeCasePercentage: b.EdgeCasePercentage,
		EdgeCaseTypes:      b.EdgeCaseTypes,
		LogFormat:          b.LogFormat,
	}
}
