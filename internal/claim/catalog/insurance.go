package catalog

import (
	"fmt"
	"math/rand/v2"
)

// Program is the box 1 insurance program. The numeric order matches the
// radio-button export order of the form template.
type Program int

const (
	ProgramMedicare Program = iota
	ProgramMedicaid
	ProgramTricare
	ProgramChampva
	ProgramGroupHealth
	ProgramFECA
	ProgramOther
)

// programNames is indexed by Program.
var programNames = []string{
	"Medicare",
	"Medicaid",
	"Tricare/Champus",
	"Champva",
	"Group Health Plan",
	"FECA BLK LUNG",
	"Other",
}

// programExports is the radio-group export value per Program on the form.
var programExports = []string{
	"Medicare", "Medicaid", "Tricare", "Champva", "Group", "Feca", "Other",
}

// String returns the display name used in records.
func (p Program) String() string {
	if p < 0 || int(p) >= len(programNames) {
		return "Other"
	}
	return programNames[p]
}

// Export returns the radio-button export value for the form template.
func (p Program) Export() string {
	if p < 0 || int(p) >= len(programExports) {
		return "Other"
	}
	return programExports[p]
}

// Programs returns all box 1 programs in form order.
func Programs() []Program {
	return []Program{
		ProgramMedicare, ProgramMedicaid, ProgramTricare, ProgramChampva,
		ProgramGroupHealth, ProgramFECA, ProgramOther,
	}
}

// PlanTypes is the box 11c insurance plan / program name catalog.
var PlanTypes = []string{
	"HMO Basic",
	"PPO Premium",
	"EPO Standard",
	"POS Select",
	"Medicare Supplement Plan F",
	"Medicare Advantage",
	"Medigap Plan G",
	"Employee Health Plan",
	"Family Coverage",
	"Individual Plan",
	"High Deductible Health Plan",
	"Bronze Plan",
	"Silver Plan",
	"Gold Plan",
}

// Payer is an insurance company with its mailing address.
type Payer struct {
	Name    string
	Address string
}

// Payers holds common carriers; the last two entries are the Medicare and
// Medicaid administrative addresses and are selected by program rather than
// at random.
var Payers = []Payer{
	{Name: "Blue Cross Blue Shield", Address: "123 Insurance Way, Hartford, CT 06103"},
	{Name: "Aetna", Address: "151 Farmington Ave, Hartford, CT 06156"},
	{Name: "Cigna", Address: "900 Cottage Grove Rd, Bloomfield, CT 06002"},
	{Name: "UnitedHealth", Address: "9900 Bren Rd E, Minnetonka, MN 55343"},
	{Name: "Humana", Address: "500 W Main St, Louisville, KY 40202"},
	{Name: "Anthem", Address: "220 Virginia Ave, Indianapolis, IN 46204"},
	{Name: "Kaiser Permanente", Address: "1 Kaiser Plaza, Oakland, CA 94612"},
	{Name: "Medicare", Address: "7500 Security Blvd, Baltimore, MD 21244"},
	{Name: "Medicaid", Address: "Centers for Medicare & Medicaid Services, Baltimore, MD 21244"},
}

// PayerForProgram selects the carrier for a program: Medicare and Medicaid
// map to their administrative entries, everything else draws a commercial
// carrier.
func PayerForProgram(p Program, rng *rand.Rand) Payer {
	switch p {
	case ProgramMedicare:
		return Payers[7]
	case ProgramMedicaid:
		return Payers[8]
	default:
		return Payers[rng.IntN(7)]
	}
}

// policyIDPatterns maps a payer or program name to the Bothify pattern its
// member IDs follow. Patterns: '#' digit, '?' uppercase letter.
var policyIDPatterns = map[string]string{
	"Medicare":               "#??######?",
	"Medicaid":               "##########",
	"Blue Cross Blue Shield": "???#########",
	"Aetna":                  "??########",
	"Cigna":                  "##########",
	"UnitedHealth":           "??########",
}

// PolicyIDPattern returns the member-ID pattern for a payer name, falling
// back to a generic alphanumeric format.
func PolicyIDPattern(payerName string) string {
	if p, ok := policyIDPatterns[payerName]; ok {
		return p
	}
	return "??########"
}

// Validate checks the internal consistency of the insurance tables. Called
// once at startup; a failure is a programming defect in the catalog.
func Validate() error {
	if len(programNames) != len(programExports) {
		return fmt.Errorf("program tables out of sync: %d names, %d exports", len(programNames), len(programExports))
	}
	if len(PlanTypes) < 14 {
		return fmt.Errorf("plan type catalog must have at least 14 entries, got %d", len(PlanTypes))
	}
	if len(Diagnoses) < 12 {
		return fmt.Errorf("diagnosis table too small for 12-diagnosis forms: %d entries", len(Diagnoses))
	}
	return nil
}
