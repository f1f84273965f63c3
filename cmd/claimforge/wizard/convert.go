package wizard

import (
	"github.com/mrsinham/claimforge/internal/claim"
	"github.com/mrsinham/claimforge/internal/claim/edgecases"
	"github.com/mrsinham/claimforge/internal/claim/fields"
)

// ToGeneratorOptions converts WizardState to GeneratorOptions for generation.
func ToGeneratorOptions(s *WizardState) (claim.GeneratorOptions, error) {
	phase, err := fields.ParsePhase(s.Batch.Phase)
	if err != nil {
		return claim.GeneratorOptions{}, err
	}

	var edgeCfg edgecases.Config
	if s.Batch.EdgeCasePercentage > 0 {
		types := make([]edgecases.EdgeCaseType, 0, len(s.Batch.EdgeCaseTypes))
		for _, t := range s.Batch.EdgeCaseTypes {
			parsed, err := edgecases.ParseTypes(t)
			if err != nil {
				return claim.GeneratorOptions{}, err
			}
			types = append(types, parsed...)
		}
		if len(types) == 0 {
			types = edgecases.AllEdgeCaseTypes()
		}
		edgeCfg = edgecases.Config{
			Percentage: s.Batch.EdgeCasePercentage,
			Types:      types,
		}
		if err := edgeCfg.Validate(); err != nil {
			return claim.GeneratorOptions{}, err
		}
	}

	return claim.GeneratorOptions{
		Count:          s.Batch.Count,
		OutputDir:      s.Batch.OutputDir,
		Seed:           s.Batch.Seed,
		Workers:        s.Batch.Workers,
		Phase:          phase,
		Config:         s.Profile,
		EdgeCaseConfig: edgeCfg,
	}, nil
}

// FromGeneratorOptions creates a WizardState from generator options.
// Used for --save-config to export CLI options as YAML.
func FromGeneratorOptions(opts claim.GeneratorOptions, formats []string, template, logFormat string) *WizardState {
	types := make([]string, len(opts.EdgeCaseConfig.Types))
	for i, t := range opts.EdgeCaseConfig.Types {
		types[i] = string(t)
	}
	return &WizardState{
		Batch: BatchConfig{
			Count:              opts.Count,
			OutputDir:          opts.OutputDir,
			Seed:               opts.Seed,
			Workers:            opts.Workers,
			Phase:              opts.Phase.String(),
			Formats:            formats,
			Template:           template,
			EdgeCasePercentage: opts.EdgeCaseConfig.Percentage,
			EdgeCaseTypes:      types,
			LogFormat:          logFormat,
		},
		Profile: opts.Config,
	}
}
