package claim

import (
	"math/rand/v2"
	"reflect"
	"strconv"
	"testing"

	"github.com/mrsinham/claimforge/internal/claim/catalog"
	"github.com/mrsinham/claimforge/internal/util"
)

func TestBuild_Deterministic(t *testing.T) {
	cfg := DefaultConfig()

	a := Build(cfg, rand.New(rand.NewPCG(42, 42)))
	b := Build(cfg, rand.New(rand.NewPCG(42, 42)))

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should build identical claims")
	}

	c := Build(cfg, rand.New(rand.NewPCG(43, 43)))
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should build different claims")
	}
}

func TestBuild_StructuralInvariants(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewPCG(42, 42))

	for i := 0; i < 200; i++ {
		c := Build(cfg, rng)

		if len(c.Diagnoses) != c.Scenario.DiagnosisCount {
			t.Fatalf("claim %d: %d diagnoses, scenario says %d", i, len(c.Diagnoses), c.Scenario.DiagnosisCount)
		}
		if len(c.Lines) != c.Scenario.LineCount {
			t.Fatalf("claim %d: %d lines, scenario says %d", i, len(c.Lines), c.Scenario.LineCount)
		}
		if err := validateClaim(c); err != nil {
			t.Fatalf("claim %d fails validation: %v", i, err)
		}

		seen := make(map[string]bool)
		for _, d := range c.Diagnoses {
			if seen[d.Code] {
				t.Fatalf("claim %d repeats diagnosis %s", i, d.Code)
			}
			seen[d.Code] = true
		}
	}
	t.Logf("✓ 200 built claims pass structural validation")
}

func TestGenerateParties(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewPCG(42, 42))
	sampler := NewSampler(cfg)

	for i := 0; i < 200; i++ {
		sc := sampler.Sample(rng)
		p := GenerateParties(sc, cfg, rng)

		if !util.ValidNPI(p.Provider.NPI) {
			t.Fatalf("provider NPI %q invalid", p.Provider.NPI)
		}
		if p.PolicyID == "" {
			t.Fatal("policy ID empty")
		}
		if sc.PatientIsInsured {
			if p.Insured != p.Patient {
				t.Fatal("self relationship should copy the patient as insured")
			}
		} else if p.Insured.Name() == p.Patient.Name() && p.Insured.Birth == p.Patient.Birth {
			t.Fatalf("dependent claim has identical patient and insured: %s", p.Patient.Name())
		}
		if sc.Program == catalog.ProgramMedicare && p.Payer.Name != "Medicare" {
			t.Fatalf("Medicare claim drew payer %q", p.Payer.Name)
		}
		if sc.SecondaryInsurance && p.Secondary.Name == "" {
			t.Fatal("secondary coverage flagged but not generated")
		}
		if !sc.SecondaryInsurance && p.Secondary.Name != "" {
			t.Fatal("secondary coverage generated without flag")
		}
		if sc.Referral {
			if !util.ValidNPI(p.Referring.NPI) {
				t.Fatalf("referring NPI %q invalid", p.Referring.NPI)
			}
		} else if p.Referring.Name != "" {
			t.Fatal("referring physician generated without flag")
		}
		if sc.Facility != (p.Facility.Name != "") {
			t.Fatalf("facility presence does not match flag: %v vs %q", sc.Facility, p.Facility.Name)
		}
	}
	t.Logf("✓ 200 party sets consistent with their scenarios")
}

func TestBuildServiceLines(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewPCG(42, 42))
	sampler := NewSampler(cfg)

	for i := 0; i < 200; i++ {
		sc := sampler.Sample(rng)
		diagnoses := PickDiagnoses(sc.DiagnosisCount, rng)
		lines := BuildServiceLines(sc, cfg, diagnoses, rng)

		if len(lines) != sc.LineCount {
			t.Fatalf("got %d lines, want %d", len(lines), sc.LineCount)
		}
		codesSeen := make(map[string]bool, len(lines))
		for _, line := range lines {
			if codesSeen[line.Procedure.Code] {
				t.Fatalf("procedure %s repeated within one form", line.Procedure.Code)
			}
			codesSeen[line.Procedure.Code] = true
		}
		for _, line := range lines {
			if line.Charge < cfg.Charges.MinCents || line.Charge > cfg.Charges.MaxCents {
				t.Fatalf("charge %d outside [%d, %d]", line.Charge, cfg.Charges.MinCents, cfg.Charges.MaxCents)
			}
			if line.Procedure.Family == catalog.FamilyEmergency && !line.Emergency {
				t.Fatalf("ER procedure %s without emergency indicator", line.Procedure.Code)
			}
			switch line.Procedure.Family {
			case catalog.FamilyEM, catalog.FamilyEmergency, catalog.FamilyPreventive:
				if line.Units != 1 {
					t.Fatalf("%s procedure has %d units, want 1", line.Procedure.Family, line.Units)
				}
			case catalog.FamilyLab:
				if line.Units < 1 || line.Units > 2 {
					t.Fatalf("lab procedure has %d units, want 1-2", line.Units)
				}
			default:
				if line.Units < 1 || line.Units > 5 {
					t.Fatalf("%s procedure has %d units, want 1-5", line.Procedure.Family, line.Units)
				}
			}
			if line.From != line.To && line.Days == 0 {
				t.Fatalf("multi-day range without day count: %+v", line)
			}
			if line.Type == "" || line.Place == "" {
				t.Fatalf("line missing type or place: %+v", line)
			}
		}
	}
	t.Logf("✓ 200 service line sets honor family and no-repeat rules")
}

func TestPickDiagnoses(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	picked := PickDiagnoses(5, rng)
	if len(picked) != 5 {
		t.Fatalf("got %d diagnoses, want 5", len(picked))
	}

	// Requesting more than the table holds caps at the table size.
	all := PickDiagnoses(1000, rng)
	if len(all) != len(catalog.Diagnoses) {
		t.Errorf("oversized request returned %d, want %d", len(all), len(catalog.Diagnoses))
	}
}

func TestBuildTimeline_Ordering(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewPCG(42, 42))
	sampler := NewSampler(cfg)

	toOrdinal := func(d util.DateParts) int {
		m, _ := strconv.Atoi(d.Month)
		day, _ := strconv.Atoi(d.Day)
		y, _ := strconv.Atoi(d.Year)
		// Two-digit years here are all 20xx; dates never reach back to 1900s.
		return y*10000 + m*100 + day
	}

	for i := 0; i < 500; i++ {
		sc := sampler.Sample(rng)
		tl := buildTimeline(sc, cfg, rng)

		if sc.IllnessOnset != !tl.IllnessOnset.IsZero() {
			t.Fatalf("illness onset presence does not match flag")
		}
		if sc.WorkLoss {
			if toOrdinal(tl.WorkFrom) > toOrdinal(tl.WorkTo) {
				t.Fatalf("work loss range inverted: %+v", tl)
			}
		}
		if sc.Hospitalization {
			if toOrdinal(tl.HospFrom) > toOrdinal(tl.HospTo) {
				t.Fatalf("hospitalization range inverted: %+v", tl)
			}
		}
		if sc.IllnessOnset && sc.SimilarIllness {
			if toOrdinal(tl.SimilarIllness) > toOrdinal(tl.IllnessOnset) {
				t.Fatalf("similar illness %v after onset %v", tl.SimilarIllness, tl.IllnessOnset)
			}
		}
		if (sc.AutoAccident || sc.OtherAccident) != (tl.AccidentState != "") {
			t.Fatalf("accident state presence does not match flags")
		}
	}
	t.Logf("✓ 500 timelines keep date ordering")
}

func TestBuildSignatures(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewPCG(42, 42))

	signed := buildSignatures(Scenario{PatientSignature: true}, cfg, rng)
	if !signed.PatientSigned || signed.PatientDate.IsZero() {
		t.Errorf("signed scenario missing patient date: %+v", signed)
	}
	if signed.ProviderDate.IsZero() {
		t.Error("provider date should always be set")
	}

	unsigned := buildSignatures(Scenario{}, cfg, rng)
	if unsigned.PatientSigned || !unsigned.PatientDate.IsZero() {
		t.Errorf("unsigned scenario has patient date: %+v", unsigned)
	}
}

func TestBuildReferences(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))

	r := buildReferences(Scenario{Resubmission: true, PriorAuth: true}, rng)
	if r.ResubCode != "6" && r.ResubCode != "7" && r.ResubCode != "8" {
		t.Errorf("resubmission code %q not in 6/7/8", r.ResubCode)
	}
	if len(r.OriginalRef) != 12 {
		t.Errorf("original ref %q should be REF plus 9 digits", r.OriginalRef)
	}
	if len(r.PriorAuth) != 12 {
		t.Errorf("prior auth %q should be AUTH plus 8 digits", r.PriorAuth)
	}

	empty := buildReferences(Scenario{}, rng)
	if empty != (References{}) {
		t.Errorf("inactive scenario should produce no references: %+v", empty)
	}
}
