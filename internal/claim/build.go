package claim

import (
	"math/rand/v2"

	"github.com/mrsinham/claimforge/internal/claim/catalog"
	"github.com/mrsinham/claimforge/internal/util"
)

// Timeline holds the clinical condition dates (boxes 14-16, 18). Zero parts
// mean the scenario did not activate the block.
type Timeline struct {
	IllnessOnset   util.DateParts
	SimilarIllness util.DateParts
	WorkFrom       util.DateParts
	WorkTo         util.DateParts
	HospFrom       util.DateParts
	HospTo         util.DateParts
	AccidentState  string
}

// Signatures holds the box 12 and 31 attestation data. A provider always
// signs; the patient signature follows the scenario flag.
type Signatures struct {
	PatientSigned bool
	PatientDate   util.DateParts
	ProviderDate  util.DateParts
}

// References holds the claim reference numbers (boxes 22 and 23).
type References struct {
	ResubCode   string
	OriginalRef string
	PriorAuth   string
}

// Specialized holds the low-volume administrative fields populated only at
// the specialized coverage phase.
type Specialized struct {
	NUCC          string
	Local         [6][2]string
	EPSDT         [6]string
	Plan          [6]string
	Suppl         []string
	PIN           string
	PIN1          string
	Grp1          string
	DocLocation   string
	InsuranceID   string
	InsuranceAdr2 string
	InsuranceCSZ  string
}

// Claim is one fully generated claim, ready for binding. All randomness
// happens during Build; binding a Claim is deterministic.
type Claim struct {
	Scenario    Scenario
	Parties     Parties
	Diagnoses   []catalog.Diagnosis
	Lines       []ServiceLine
	Timeline    Timeline
	Signatures  Signatures
	References  References
	Specialized Specialized
}

// Build generates a complete claim from one rng stream: scenario first,
// then parties, diagnoses, service lines and the remaining blocks, always
// in the same order so a fixed seed yields an identical claim.
func Build(cfg Config, rng *rand.Rand) Claim {
	sampler := NewSampler(cfg)
	sc := sampler.Sample(rng)

	c := Claim{
		Scenario:  sc,
		Parties:   GenerateParties(sc, cfg, rng),
		Diagnoses: PickDiagnoses(sc.DiagnosisCount, rng),
	}
	c.Lines = BuildServiceLines(sc, cfg, c.Diagnoses, rng)
	c.Timeline = buildTimeline(sc, cfg, rng)
	c.Signatures = buildSignatures(sc, cfg, rng)
	c.References = buildReferences(sc, rng)
	c.Specialized = buildSpecialized(rng)
	return c
}

var resubCodes = []string{"6", "7", "8"}

func buildReferences(sc Scenario, rng *rand.Rand) References {
	var r References
	if sc.Resubmission {
		r.ResubCode = resubCodes[rng.IntN(len(resubCodes))]
		r.OriginalRef = util.Bothify("REF#########", rng)
	}
	if sc.PriorAuth {
		r.PriorAuth = util.Bothify("AUTH########", rng)
	}
	return r
}

func buildTimeline(sc Scenario, cfg Config, rng *rand.Rand) Timeline {
	var t Timeline
	anchor := cfg.ReferenceDate

	onsetCeiling := anchor.AddDate(0, 0, -365)
	if sc.IllnessOnset {
		onset := util.DateBetween(anchor.AddDate(0, 0, -365), anchor.AddDate(0, 0, -30), rng)
		t.IllnessOnset = util.SplitDate(onset)
		onsetCeiling = onset
	}

	if sc.SimilarIllness {
		prior := util.DateBetween(anchor.AddDate(0, 0, -730), onsetCeiling, rng)
		t.SimilarIllness = util.SplitDate(prior)
	}

	if sc.WorkLoss {
		from := util.DateBetween(anchor.AddDate(0, 0, -180), anchor, rng)
		to := util.DateBetween(from, anchor, rng)
		t.WorkFrom = util.SplitDate(from)
		t.WorkTo = util.SplitDate(to)
	}

	if sc.Hospitalization {
		admit := util.DateBetween(anchor.AddDate(0, 0, -60), anchor.AddDate(0, 0, -1), rng)
		discharge := util.DateBetween(admit, anchor, rng)
		t.HospFrom = util.SplitDate(admit)
		t.HospTo = util.SplitDate(discharge)
	}

	if sc.AutoAccident || sc.OtherAccident {
		t.AccidentState = util.GenerateAccidentState(rng)
	}

	return t
}

func buildSignatures(sc Scenario, cfg Config, rng *rand.Rand) Signatures {
	anchor := cfg.ReferenceDate
	s := Signatures{
		PatientSigned: sc.PatientSignature,
		ProviderDate:  util.SplitDate(util.DateBetween(anchor.AddDate(0, 0, -7), anchor, rng)),
	}
	if s.PatientSigned {
		s.PatientDate = util.SplitDate(util.DateBetween(anchor.AddDate(0, 0, -30), anchor, rng))
	}
	return s
}

var (
	localCodes = []string{"LOC", "MED", "REG", "SPEC", "PROV", "FAC"}
	planCodes  = []string{"PREV", "THER", "DIAG", "SURG", "EMRG", "ROUT"}
	epsdtVals  = []string{"Y", "N", "P"}
)

// buildSpecialized draws the low-volume administrative blocks. These are
// always generated so the rng stream does not depend on the coverage phase;
// the binder decides whether they appear in the output.
func buildSpecialized(rng *rand.Rand) Specialized {
	var s Specialized

	if chance(rng, 0.20) {
		s.NUCC = util.Bothify("NUCC###", rng)
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 2; j++ {
			if chance(rng, 0.25) {
				s.Local[i][j] = localCodes[rng.IntN(len(localCodes))] + util.Bothify("###", rng)
			}
		}
		if chance(rng, 0.20) {
			s.EPSDT[i] = epsdtVals[rng.IntN(len(epsdtVals))]
		}
		if chance(rng, 0.30) {
			s.Plan[i] = planCodes[rng.IntN(len(planCodes))] + util.Bothify("##", rng)
		}
	}

	n := rng.IntN(4) // 0-3 supplemental lines
	for i := 0; i < n; i++ {
		s.Suppl = append(s.Suppl, util.Bothify("SUP?####", rng))
	}

	if chance(rng, 0.40) {
		s.PIN = util.Bothify("P#####", rng)
		s.PIN1 = util.Bothify("P#####", rng)
	}
	if chance(rng, 0.40) {
		s.Grp1 = util.Bothify("G####", rng)
	}
	if chance(rng, 0.30) {
		s.DocLocation = util.Bothify("LOC##", rng)
	}
	if chance(rng, 0.25) {
		s.InsuranceID = util.Bothify("INS######", rng)
		addr := util.GenerateAddress(rng)
		s.InsuranceAdr2 = addr.Street
		s.InsuranceCSZ = addr.CityStateZip()
	}

	return s
}
