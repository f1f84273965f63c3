package edgecases

import (
	"math/rand/v2"

	"github.com/mrsinham/claimforge/internal/util"
)

// Applicator applies edge cases to generated claim values
type Applicator struct {
	config Config
	rng    *rand.Rand
}

// NewApplicator creates a new edge case applicator
func NewApplicator(config Config, rng *rand.Rand) *Applicator {
	return &Applicator{config: config, rng: rng}
}

// ShouldApply returns true if edge cases should apply to this claim
func (a *Applicator) ShouldApply() bool {
	return a.rng.IntN(100) < a.config.Percentage
}

// SelectEdgeCaseType randomly selects which edge case type to apply
func (a *Applicator) SelectEdgeCaseType() EdgeCaseType {
	return a.config.Types[a.rng.IntN(len(a.config.Types))]
}

// ApplyToName applies edge cases to a person name
func (a *Applicator) ApplyToName(sex, original string) string {
	switch a.SelectEdgeCaseType() {
	case SpecialChars:
		return GenerateSpecialCharName(sex, a.rng)
	case LongNames:
		return GenerateLongName(a.rng)
	default:
		return original
	}
}

// ApplyToPolicyID applies edge cases to a member ID
func (a *Applicator) ApplyToPolicyID(original string) string {
	switch a.SelectEdgeCaseType() {
	case VariedIDs:
		return GenerateRandomVariedID(a.rng)
	case LongNames:
		return GenerateLongID(a.rng)
	default:
		return original
	}
}

// ApplyToBirthDate applies edge cases to a birth date
func (a *Applicator) ApplyToBirthDate(original util.DateParts) util.DateParts {
	if a.SelectEdgeCaseType() == OldDates {
		return GenerateOldBirthDate(a.rng)
	}
	return original
}
