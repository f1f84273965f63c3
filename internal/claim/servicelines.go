package claim

import (
	"math/rand/v2"
	"strings"

	"github.com/mrsinham/claimforge/internal/claim/catalog"
	"github.com/mrsinham/claimforge/internal/util"
)

// ServiceLine is one row of the procedure grid (box 24). Charges are in
// integer cents so line charges and totals reconcile exactly.
type ServiceLine struct {
	Procedure catalog.Procedure
	Modifiers [4]string // primary + three additional positions
	// Pointers index into the claim's diagnosis list, 1-based, at most
	// four per line, no repeats. Rendered as letters A-L.
	Pointers  []int
	Place     string
	Type      string
	Emergency bool
	From      util.DateParts
	To        util.DateParts
	Charge    int64 // cents
	Units     int
	Days      int // 0 when the service does not span days
}

// PointerLetters renders the diagnosis pointers as the letter list used in
// box 24E ("A", "AC", ...).
func (l ServiceLine) PointerLetters() string {
	var sb strings.Builder
	for _, p := range l.Pointers {
		sb.WriteByte(byte('A' + p - 1))
	}
	return sb.String()
}

// PickDiagnoses samples count distinct diagnoses from the catalog, walking
// the table in a shuffled order so the selection is deterministic for a
// fixed rng stream.
func PickDiagnoses(count int, rng *rand.Rand) []catalog.Diagnosis {
	if count > len(catalog.Diagnoses) {
		count = len(catalog.Diagnoses)
	}
	perm := rng.Perm(len(catalog.Diagnoses))
	picked := make([]catalog.Diagnosis, count)
	for i := 0; i < count; i++ {
		picked[i] = catalog.Diagnoses[perm[i]]
	}
	return picked
}

// BuildServiceLines generates the procedure grid for a scenario. Procedures
// are drawn without replacement from the set compatible with the claim's
// diagnoses, so a form never repeats a code. Emergency room procedures
// always carry the emergency indicator, and each line points at one to
// four of the claim's diagnoses.
func BuildServiceLines(sc Scenario, cfg Config, diagnoses []catalog.Diagnosis, rng *rand.Rand) []ServiceLine {
	// CompatibleProcedures backfills to at least sc.LineCount codes, so the
	// pool never runs dry.
	pool := catalog.CompatibleProcedures(diagnoses, sc.LineCount)
	lines := make([]ServiceLine, sc.LineCount)

	for i := range lines {
		pick := rng.IntN(len(pool))
		code := pool[pick]
		pool[pick] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		proc, _ := catalog.ProcedureByCode(code)

		line := ServiceLine{
			Procedure: proc,
			Place:     catalog.PlaceOfService[rng.IntN(len(catalog.PlaceOfService))],
			Type:      catalog.TypeOfService(proc),
			Pointers:  samplePointers(len(diagnoses), rng),
			Units:     sampleUnits(proc, rng),
			Charge:    cfg.Charges.MinCents + rng.Int64N(cfg.Charges.MaxCents-cfg.Charges.MinCents+1),
		}

		if chance(rng, cfg.Probabilities.Modifier) {
			line.Modifiers[0] = catalog.Modifiers[rng.IntN(len(catalog.Modifiers))]
		}
		for pos := 1; pos < 4; pos++ {
			if chance(rng, cfg.Probabilities.ExtraModifier) {
				line.Modifiers[pos] = catalog.Modifiers[rng.IntN(len(catalog.Modifiers))]
			}
		}

		// Service date within the 30 days before the anchor; from and to
		// are the same day unless the service spans days.
		day := util.DateBetween(cfg.ReferenceDate.AddDate(0, 0, -30), cfg.ReferenceDate, rng)
		line.From = util.SplitDate(day)
		line.To = line.From

		line.Emergency = proc.Family == catalog.FamilyEmergency || chance(rng, 0.08)

		if chance(rng, 0.15) {
			line.Days = 1 + rng.IntN(30)
		}

		lines[i] = line
	}
	return lines
}

// samplePointers draws one to four distinct 1-based diagnosis indexes.
func samplePointers(diagnosisCount int, rng *rand.Rand) []int {
	max := 4
	if diagnosisCount < max {
		max = diagnosisCount
	}
	n := 1 + rng.IntN(max)
	perm := rng.Perm(diagnosisCount)
	pointers := make([]int, n)
	for i := 0; i < n; i++ {
		pointers[i] = perm[i] + 1
	}
	return pointers
}

// sampleUnits picks a unit count appropriate for the procedure family.
func sampleUnits(p catalog.Procedure, rng *rand.Rand) int {
	switch p.Family {
	case catalog.FamilyEM, catalog.FamilyEmergency, catalog.FamilyPreventive:
		return 1
	case catalog.FamilyLab:
		return 1 + rng.IntN(2)
	default:
		return 1 + rng.IntN(5)
	}
}

// TotalCharge sums line charges in cents.
func TotalCharge(lines []ServiceLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Charge
	}
	return total
}

// HasOutsideLab reports whether any line is a laboratory service (box 20).
func HasOutsideLab(lines []ServiceLine) bool {
	for _, l := range lines {
		if l.Procedure.Family == catalog.FamilyLab {
			return true
		}
	}
	return false
}
