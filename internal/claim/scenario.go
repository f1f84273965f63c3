package claim

import (
	"math/rand/v2"

	"github.com/mrsinham/claimforge/internal/claim/catalog"
)

// Relationship is the patient-to-insured relationship (box 6). Values are
// the radio export names.
type Relationship string

const (
	RelSelf   Relationship = "S"
	RelSpouse Relationship = "M"
	RelChild  Relationship = "C"
	RelOther  Relationship = "O"
)

// Scenario describes which optional features a claim carries and how much
// content it has. Sampling the scenario up front keeps the binder a pure
// function: every downstream decision traces back to a scenario flag.
type Scenario struct {
	DiagnosisCount int
	LineCount      int

	Program      catalog.Program
	PlanType     string
	Relationship Relationship

	PatientIsInsured   bool
	SecondaryInsurance bool
	Employment         bool
	AutoAccident       bool
	OtherAccident      bool
	IllnessOnset       bool
	SimilarIllness     bool
	WorkLoss           bool
	Hospitalization    bool
	Referral           bool
	Facility           bool
	InsuredAddress     bool
	PriorAuth          bool
	Resubmission       bool
	GroupNumber        bool
	AcceptAssignment   bool
	PatientSignature   bool
	InsPlanName        bool
	InsSignature       bool

	// TaxIDIsSSN picks which box 25 designation the provider's tax ID
	// carries; the identifier itself always renders in EIN format.
	TaxIDIsSSN bool

	// PaidFraction is the share of the total charge already paid,
	// sampled in [0, Config.PaidFractionMax].
	PaidFraction float64
}

// Sampler draws scenarios according to a Config profile.
type Sampler struct {
	cfg Config
}

// NewSampler returns a Sampler for the given profile. The config must have
// been validated.
func NewSampler(cfg Config) *Sampler {
	return &Sampler{cfg: cfg}
}

// Sample draws one scenario from the profile using rng.
func (s *Sampler) Sample(rng *rand.Rand) Scenario {
	p := s.cfg.Probabilities

	sc := Scenario{
		DiagnosisCount: s.sampleDiagnosisCount(rng),
		LineCount:      1 + rng.IntN(6),
		Program:        s.samplePrograms(rng),
		PlanType:       catalog.PlanTypes[rng.IntN(len(catalog.PlanTypes))],

		PatientIsInsured:   chance(rng, p.PatientIsInsured),
		SecondaryInsurance: chance(rng, p.SecondaryInsurance),
		Employment:         chance(rng, p.Employment),
		AutoAccident:       chance(rng, p.AutoAccident),
		OtherAccident:      chance(rng, p.OtherAccident),
		IllnessOnset:       chance(rng, p.IllnessOnset),
		SimilarIllness:     chance(rng, p.SimilarIllness),
		WorkLoss:           chance(rng, p.WorkLoss),
		Hospitalization:    chance(rng, p.Hospitalization),
		Referral:           chance(rng, p.Referral),
		Facility:           chance(rng, p.Facility),
		InsuredAddress:     chance(rng, p.InsuredAddress),
		PriorAuth:          chance(rng, p.PriorAuth),
		Resubmission:       chance(rng, p.Resubmission),
		GroupNumber:        chance(rng, p.GroupNumber),
		AcceptAssignment:   chance(rng, p.AcceptAssignment),
		PatientSignature:   chance(rng, p.PatientSignature),
		InsPlanName:        chance(rng, p.InsPlanName),
		InsSignature:       chance(rng, p.InsSignature),

		TaxIDIsSSN: rng.IntN(2) == 0,

		PaidFraction: rng.Float64() * s.cfg.PaidFractionMax,
	}

	if sc.PatientIsInsured {
		sc.Relationship = RelSelf
	} else {
		switch rng.IntN(3) {
		case 0:
			sc.Relationship = RelSpouse
		case 1:
			sc.Relationship = RelChild
		default:
			sc.Relationship = RelOther
		}
	}

	// Work loss only makes sense on employment-related claims.
	if !sc.Employment {
		sc.WorkLoss = false
	}

	// Medicare and Medicaid participation requires accepting assignment.
	if sc.Program == catalog.ProgramMedicare || sc.Program == catalog.ProgramMedicaid {
		sc.AcceptAssignment = true
	}

	return sc
}

// sampleDiagnosisCount picks a diagnosis count from the bucket weights.
// Single, dual and triple buckets map to exact counts; the complex bucket
// draws uniformly from the configured range.
func (s *Sampler) sampleDiagnosisCount(rng *rand.Rand) int {
	b := s.cfg.DiagnosisBuckets
	roll := rng.IntN(100)
	switch {
	case roll < b.Single:
		return 1
	case roll < b.Single+b.Dual:
		return 2
	case roll < b.Single+b.Dual+b.Triple:
		return 3
	default:
		cr := s.cfg.ComplexRange
		return cr.Min + rng.IntN(cr.Max-cr.Min+1)
	}
}

func (s *Sampler) samplePrograms(rng *rand.Rand) catalog.Program {
	programs := catalog.Programs()
	return programs[rng.IntN(len(programs))]
}

func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}
