// Package claim generates synthetic health insurance claim forms. A claim
// is sampled as a scenario (which coverage features are present), expanded
// into parties, diagnoses and service lines, then bound into a flat
// field-name -> value mapping suitable for filling a form template.
package claim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DiagnosisBuckets holds the percentage weights for how many diagnosis
// codes a claim carries. Single, Dual and Triple pick exactly 1, 2 and 3
// codes; Complex picks uniformly from the complex range.
type DiagnosisBuckets struct {
	Single  int `yaml:"single"`
	Dual    int `yaml:"dual"`
	Triple  int `yaml:"triple"`
	Complex int `yaml:"complex"`
}

// ComplexRange bounds the diagnosis count of a complex claim, inclusive.
type ComplexRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Probabilities holds the per-feature activation chances. All values are
// in [0, 1].
type Probabilities struct {
	SecondaryInsurance float64 `yaml:"secondary_insurance"`
	IllnessOnset       float64 `yaml:"illness_onset"`
	SimilarIllness     float64 `yaml:"similar_illness"`
	WorkLoss           float64 `yaml:"work_loss"`
	Hospitalization    float64 `yaml:"hospitalization"`
	Referral           float64 `yaml:"referral"`
	Facility           float64 `yaml:"facility"`
	Employment         float64 `yaml:"employment"`
	AutoAccident       float64 `yaml:"auto_accident"`
	OtherAccident      float64 `yaml:"other_accident"`
	PatientIsInsured   float64 `yaml:"patient_is_insured"`
	InsuredAddress     float64 `yaml:"insured_address"`
	Modifier           float64 `yaml:"modifier"`
	ExtraModifier      float64 `yaml:"extra_modifier"`
	PriorAuth          float64 `yaml:"prior_auth"`
	Resubmission       float64 `yaml:"resubmission"`
	GroupNumber        float64 `yaml:"group_number"`
	AcceptAssignment   float64 `yaml:"accept_assignment"`
	PatientSignature   float64 `yaml:"patient_signature"`
	InsPlanName        float64 `yaml:"ins_plan_name"`
	InsSignature       float64 `yaml:"ins_signature"`
}

// ChargeRange bounds a single service line charge, in cents, inclusive.
type ChargeRange struct {
	MinCents int64 `yaml:"min_cents"`
	MaxCents int64 `yaml:"max_cents"`
}

// Config tunes claim content generation. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// ReferenceDate anchors all generated dates. Every date on a claim is
	// derived backwards from this anchor, so a fixed seed and config yield
	// identical output regardless of when generation runs.
	ReferenceDate time.Time `yaml:"reference_date"`

	DiagnosisBuckets DiagnosisBuckets `yaml:"diagnosis_buckets"`
	ComplexRange     ComplexRange     `yaml:"complex_range"`
	Probabilities    Probabilities    `yaml:"probabilities"`
	Charges          ChargeRange      `yaml:"charges"`

	// PaidFractionMax caps the fraction of the total charge already paid
	// (box 29). The actual fraction is sampled uniformly in [0, max].
	PaidFractionMax float64 `yaml:"paid_fraction_max"`
}

// DefaultConfig returns the standard generation profile.
func DefaultConfig() Config {
	return Config{
		ReferenceDate: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		DiagnosisBuckets: DiagnosisBuckets{
			Single:  25,
			Dual:    30,
			Triple:  15,
			Complex: 30,
		},
		ComplexRange: ComplexRange{Min: 4, Max: 12},
		Probabilities: Probabilities{
			SecondaryInsurance: 0.30,
			IllnessOnset:       0.60,
			SimilarIllness:     0.20,
			WorkLoss:           0.25,
			Hospitalization:    0.15,
			Referral:           0.40,
			Facility:           0.35,
			Employment:         0.10,
			AutoAccident:       0.08,
			OtherAccident:      0.05,
			PatientIsInsured:   0.70,
			InsuredAddress:     0.85,
			Modifier:           0.20,
			ExtraModifier:      0.10,
			PriorAuth:          0.25,
			Resubmission:       0.10,
			GroupNumber:        0.50,
			AcceptAssignment:   0.80,
			PatientSignature:   0.85,
			InsPlanName:        0.75,
			InsSignature:       0.70,
		},
		Charges:         ChargeRange{MinCents: 5000, MaxCents: 50000},
		PaidFractionMax: 0.8,
	}
}

// Validate checks the config for defects. Called eagerly at generation
// startup so a bad profile fails before any worker starts.
func (c Config) Validate() error {
	if c.ReferenceDate.IsZero() {
		return fmt.Errorf("reference_date must be set")
	}
	b := c.DiagnosisBuckets
	if b.Single < 0 || b.Dual < 0 || b.Triple < 0 || b.Complex < 0 {
		return fmt.Errorf("diagnosis bucket weights must be non-negative")
	}
	if b.Single+b.Dual+b.Triple+b.Complex != 100 {
		return fmt.Errorf("diagnosis bucket weights must sum to 100, got %d",
			b.Single+b.Dual+b.Triple+b.Complex)
	}
	if c.ComplexRange.Min < 4 {
		return fmt.Errorf("complex_range.min must be at least 4, got %d", c.ComplexRange.Min)
	}
	if c.ComplexRange.Max > 12 {
		return fmt.Errorf("complex_range.max must be at most 12, got %d", c.ComplexRange.Max)
	}
	if c.ComplexRange.Min > c.ComplexRange.Max {
		return fmt.Errorf("complex_range.min %d exceeds max %d", c.ComplexRange.Min, c.ComplexRange.Max)
	}
	for name, p := range map[string]float64{
		"secondary_insurance": c.Probabilities.SecondaryInsurance,
		"illness_onset":       c.Probabilities.IllnessOnset,
		"similar_illness":     c.Probabilities.SimilarIllness,
		"work_loss":           c.Probabilities.WorkLoss,
		"hospitalization":     c.Probabilities.Hospitalization,
		"referral":            c.Probabilities.Referral,
		"facility":            c.Probabilities.Facility,
		"employment":          c.Probabilities.Employment,
		"auto_accident":       c.Probabilities.AutoAccident,
		"other_accident":      c.Probabilities.OtherAccident,
		"patient_is_insured":  c.Probabilities.PatientIsInsured,
		"insured_address":     c.Probabilities.InsuredAddress,
		"modifier":            c.Probabilities.Modifier,
		"extra_modifier":      c.Probabilities.ExtraModifier,
		"prior_auth":          c.Probabilities.PriorAuth,
		"resubmission":        c.Probabilities.Resubmission,
		"group_number":        c.Probabilities.GroupNumber,
		"accept_assignment":   c.Probabilities.AcceptAssignment,
		"patient_signature":   c.Probabilities.PatientSignature,
		"ins_plan_name":       c.Probabilities.InsPlanName,
		"ins_signature":       c.Probabilities.InsSignature,
	} {
		if p < 0 || p > 1 {
			return fmt.Errorf("probability %s out of range [0,1]: %v", name, p)
		}
	}
	if c.Charges.MinCents <= 0 {
		return fmt.Errorf("charges.min_cents must be positive, got %d", c.Charges.MinCents)
	}
	if c.Charges.MinCents > c.Charges.MaxCents {
		return fmt.Errorf("charges.min_cents %d exceeds max_cents %d",
			c.Charges.MinCents, c.Charges.MaxCents)
	}
	if c.PaidFractionMax < 0 || c.PaidFractionMax > 1 {
		return fmt.Errorf("paid_fraction_max out of range [0,1]: %v", c.PaidFractionMax)
	}
	return nil
}

// LoadConfig reads a YAML generation profile from disk.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the profile to disk as YAML.
func SaveConfig(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
