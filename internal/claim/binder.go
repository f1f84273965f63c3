package claim

import (
	"fmt"

	"github.com/mrsinham/claimforge/internal/claim/fields"
)

// FieldMapping is the flat field-name -> value result of binding a claim.
// Fields that do not apply are absent, never empty strings.
type FieldMapping map[string]string

// Box 12 and box 13 carry different on-file attestation texts.
const (
	patientSignatureOnFile = "Patient Signature on File"
	insuredSignatureOnFile = "Signature on File"
)

// Summary holds the reconciled claim financials, in cents.
type Summary struct {
	TotalCents int64
	PaidCents  int64
	DueCents   int64
}

// Bind renders a claim into its field mapping at the requested coverage
// phase. Binding is a pure function of its inputs: the same claim and phase
// always produce the same mapping. Fields above the phase are dropped, and
// every emitted name is checked against the field catalog.
func Bind(c Claim, phase fields.Phase) (FieldMapping, Summary, error) {
	if err := validateClaim(c); err != nil {
		return nil, Summary{}, err
	}

	b := &binder{phase: phase, mapping: make(FieldMapping, 128)}
	sc := c.Scenario
	p := c.Parties

	// Carrier block
	b.set("insurance_company_name", p.Payer.Name)
	b.set("insurance_company_address", p.Payer.Address)
	b.set("insurance_id", c.Specialized.InsuranceID)
	b.set("insurance_address2", c.Specialized.InsuranceAdr2)
	b.set("insurance_city_state_zip", c.Specialized.InsuranceCSZ)

	// Boxes 1-5: program, patient and insured identity
	b.set("insurance_type", sc.Program.Export())
	b.set("ins_policy", p.PolicyID)
	b.set("pt_name", p.Patient.Name())
	b.set("birth_mm", p.Patient.Birth.Month)
	b.set("birth_dd", p.Patient.Birth.Day)
	b.set("birth_yy", p.Patient.Birth.Year)
	b.set("sex", p.Patient.Sex)
	b.set("ins_name", p.Insured.Name())
	b.set("pt_street", p.Patient.Address.Street)
	b.set("pt_city", p.Patient.Address.City)
	b.set("pt_state", p.Patient.Address.State)
	b.set("pt_zip", p.Patient.Address.Zip)
	b.set("pt_AreaCode", p.Patient.Phone.AreaCode)
	b.set("pt_phone", p.Patient.Phone.Number)

	// Boxes 6-7: relationship, insured address
	b.set("rel_to_ins", string(sc.Relationship))
	if sc.InsuredAddress {
		b.set("ins_street", p.Insured.Address.Street)
		b.set("ins_city", p.Insured.Address.City)
		b.set("ins_state", p.Insured.Address.State)
		b.set("ins_zip", p.Insured.Address.Zip)
		b.set("ins_phone area", p.Insured.Phone.AreaCode)
		b.set("ins_phone", p.Insured.Phone.Number)
	}

	// Box 9: other coverage
	if sc.SecondaryInsurance {
		b.set("other_ins_name", p.Secondary.Name)
		b.set("other_ins_policy", p.Secondary.PolicyID)
		b.set("other_ins_plan_name", p.Secondary.PlanName)
	}

	// Box 10: condition relation
	b.set("employment", yesNo(sc.Employment))
	b.set("pt_auto_accident", yesNo(sc.AutoAccident))
	b.set("other_accident", yesNo(sc.OtherAccident))
	if sc.AutoAccident || sc.OtherAccident {
		b.set("accident_place", c.Timeline.AccidentState)
	}

	// Box 11: insured detail
	if sc.GroupNumber {
		b.set("grp", p.GroupNumber)
	}
	b.set("ins_dob_mm", p.Insured.Birth.Month)
	b.set("ins_dob_dd", p.Insured.Birth.Day)
	b.set("ins_dob_yy", p.Insured.Birth.Year)
	b.set("ins_sex", insSexExport(p.Insured.Sex))
	if sc.InsPlanName {
		b.set("ins_plan_name", sc.PlanType)
	}
	b.set("ins_benefit_plan", yesNo(sc.SecondaryInsurance))

	// Boxes 12-13: signatures
	if c.Signatures.PatientSigned {
		b.set("pt_signature", patientSignatureOnFile)
		b.set("pt_date", c.Signatures.PatientDate.MMDDYY())
	}
	if sc.InsSignature {
		b.set("ins_signature", insuredSignatureOnFile)
	}

	// Boxes 14-18: clinical timeline
	if sc.IllnessOnset {
		b.set("cur_ill_mm", c.Timeline.IllnessOnset.Month)
		b.set("cur_ill_dd", c.Timeline.IllnessOnset.Day)
		b.set("cur_ill_yy", c.Timeline.IllnessOnset.Year)
	}
	if sc.SimilarIllness {
		b.set("sim_ill_mm", c.Timeline.SimilarIllness.Month)
		b.set("sim_ill_dd", c.Timeline.SimilarIllness.Day)
		b.set("sim_ill_yy", c.Timeline.SimilarIllness.Year)
	}
	if sc.WorkLoss {
		b.set("work_mm_from", c.Timeline.WorkFrom.Month)
		b.set("work_dd_from", c.Timeline.WorkFrom.Day)
		b.set("work_yy_from", c.Timeline.WorkFrom.Year)
		b.set("work_mm_end", c.Timeline.WorkTo.Month)
		b.set("work_dd_end", c.Timeline.WorkTo.Day)
		b.set("work_yy_end", c.Timeline.WorkTo.Year)
	}
	if sc.Referral {
		b.set("ref_physician", p.Referring.Name)
		b.set("physician number 17a", p.Referring.OtherID)
		b.set("physician number 17a1", p.Referring.NPI)
	}
	if sc.Hospitalization {
		b.set("hosp_mm_from", c.Timeline.HospFrom.Month)
		b.set("hosp_dd_from", c.Timeline.HospFrom.Day)
		b.set("hosp_yy_from", c.Timeline.HospFrom.Year)
		b.set("hosp_mm_end", c.Timeline.HospTo.Month)
		b.set("hosp_dd_end", c.Timeline.HospTo.Day)
		b.set("hosp_yy_end", c.Timeline.HospTo.Year)
	}

	// Boxes 19-23: references
	b.set("NUCC USE", c.Specialized.NUCC)
	b.set("lab", yesNo(HasOutsideLab(c.Lines)))
	if sc.Resubmission {
		b.set("medicaid_resub", c.References.ResubCode)
		b.set("original_ref", c.References.OriginalRef)
	}
	if sc.PriorAuth {
		b.set("prior_auth", c.References.PriorAuth)
	}

	// Box 21: diagnoses
	for i, d := range c.Diagnoses {
		b.set(fmt.Sprintf("diagnosis%d", i+1), d.Code)
	}

	// Box 24: service lines
	for i, line := range c.Lines {
		n := i + 1
		b.set(fmt.Sprintf("sv%d_mm_from", n), line.From.Month)
		b.set(fmt.Sprintf("sv%d_dd_from", n), line.From.Day)
		b.set(fmt.Sprintf("sv%d_yy_from", n), line.From.Year)
		b.set(fmt.Sprintf("sv%d_mm_end", n), line.To.Month)
		b.set(fmt.Sprintf("sv%d_dd_end", n), line.To.Day)
		b.set(fmt.Sprintf("sv%d_yy_end", n), line.To.Year)
		b.set(fmt.Sprintf("place%d", n), line.Place)
		b.set(fmt.Sprintf("type%d", n), line.Type)
		if line.Emergency {
			b.set(fmt.Sprintf("emg%d", n), "Y")
		}
		b.set(fmt.Sprintf("cpt%d", n), line.Procedure.Code)
		b.set(fmt.Sprintf("mod%d", n), line.Modifiers[0])
		b.set(fmt.Sprintf("mod%da", n), line.Modifiers[1])
		b.set(fmt.Sprintf("mod%db", n), line.Modifiers[2])
		b.set(fmt.Sprintf("mod%dc", n), line.Modifiers[3])
		b.set(fmt.Sprintf("diag%d", n), line.PointerLetters())
		b.set(fmt.Sprintf("ch%d", n), FormatCents(line.Charge))
		b.set(fmt.Sprintf("units%d", n), fmt.Sprintf("%d", line.Units))
		if line.Days > 0 {
			b.set(fmt.Sprintf("day%d", n), fmt.Sprintf("%d", line.Days))
		}
		b.set(fmt.Sprintf("local%d", n), c.Specialized.Local[i][0])
		b.set(fmt.Sprintf("local%da", n), c.Specialized.Local[i][1])
		b.set(fmt.Sprintf("epsdt%d", n), c.Specialized.EPSDT[i])
		b.set(fmt.Sprintf("plan%d", n), c.Specialized.Plan[i])
	}

	// Boxes 25-30: billing and totals
	b.set("tax_id", p.Provider.TaxID)
	b.set("ssn", taxIDDesignation(sc))
	b.set("pt_account", p.PatientAccount)
	b.set("assignment", yesNo(sc.AcceptAssignment))

	summary := reconcile(c)
	b.set("t_charge", FormatCents(summary.TotalCents))
	b.set("amt_paid", FormatCents(summary.PaidCents))
	b.set("charge", FormatCents(summary.DueCents))

	// Boxes 31-33: provider
	b.set("physician_signature", p.Provider.Name)
	b.set("physician_date", c.Signatures.ProviderDate.MMDDYY())
	if sc.Facility {
		b.set("fac_name", p.Facility.Name)
		b.set("fac_street", p.Facility.Street)
		b.set("fac_location", p.Facility.Location)
	}
	b.set("doc_name", p.Provider.Name)
	b.set("doc_street", p.Provider.Address.OneLine())
	b.set("doc_phone area", p.Provider.Phone.AreaCode)
	b.set("doc_phone", p.Provider.Phone.Number)
	b.set("id_physician", p.Provider.NPI)
	b.set("doc_location", c.Specialized.DocLocation)
	b.set("pin", c.Specialized.PIN)
	b.set("pin1", c.Specialized.PIN1)
	b.set("grp1", c.Specialized.Grp1)

	// Supplemental block
	supplNames := []string{"Suppl", "Suppla", "Supplb", "Supplc", "Suppld", "Supple"}
	for i, v := range c.Specialized.Suppl {
		if i >= len(supplNames) {
			break
		}
		b.set(supplNames[i], v)
	}

	if b.err != nil {
		return nil, Summary{}, b.err
	}
	if err := checkFeatureConsistency(b.mapping, sc); err != nil {
		return nil, Summary{}, err
	}
	return b.mapping, summary, nil
}

// binder accumulates the mapping, the phase cut and the first catalog error.
type binder struct {
	phase   fields.Phase
	mapping FieldMapping
	err     error
}

// set records a field value. Empty values are skipped entirely, unknown
// names are a binding error, and names above the phase are dropped.
func (b *binder) set(name, value string) {
	if value == "" || b.err != nil {
		return
	}
	info, err := fields.Lookup(name)
	if err != nil {
		b.err = fmt.Errorf("binding: %w", err)
		return
	}
	if info.Phase > b.phase {
		return
	}
	b.mapping[name] = value
}

// reconcile computes the claim financials. The paid amount is the floor of
// total * fraction so total = paid + due holds exactly in cents.
func reconcile(c Claim) Summary {
	total := TotalCharge(c.Lines)
	paid := int64(float64(total) * c.Scenario.PaidFraction)
	return Summary{
		TotalCents: total,
		PaidCents:  paid,
		DueCents:   total - paid,
	}
}

// FormatCents renders cents as a dollar string with two decimals.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

func insSexExport(sex string) string {
	if sex == "M" {
		return "MALE"
	}
	return "FEMALE"
}

// taxIDDesignation renders the box 25 radio for the sampled designation.
func taxIDDesignation(sc Scenario) string {
	if sc.TaxIDIsSSN {
		return "SSN"
	}
	return "EIN"
}

// validateClaim checks structural invariants before binding.
func validateClaim(c Claim) error {
	if n := len(c.Diagnoses); n < 1 || n > 12 {
		return fmt.Errorf("claim has %d diagnoses, want 1-12", n)
	}
	if n := len(c.Lines); n < 1 || n > 6 {
		return fmt.Errorf("claim has %d service lines, want 1-6", n)
	}
	for i, line := range c.Lines {
		if len(line.Pointers) < 1 || len(line.Pointers) > 4 {
			return fmt.Errorf("line %d has %d diagnosis pointers, want 1-4", i+1, len(line.Pointers))
		}
		seen := make(map[int]bool, len(line.Pointers))
		for _, ptr := range line.Pointers {
			if ptr < 1 || ptr > len(c.Diagnoses) {
				return fmt.Errorf("line %d pointer %d out of range 1-%d", i+1, ptr, len(c.Diagnoses))
			}
			if seen[ptr] {
				return fmt.Errorf("line %d repeats diagnosis pointer %d", i+1, ptr)
			}
			seen[ptr] = true
		}
		if line.Charge <= 0 {
			return fmt.Errorf("line %d has non-positive charge %d", i+1, line.Charge)
		}
		if line.Units < 1 {
			return fmt.Errorf("line %d has %d units, want at least 1", i+1, line.Units)
		}
	}
	if f := c.Scenario.PaidFraction; f < 0 || f > 1 {
		return fmt.Errorf("paid fraction out of range [0,1]: %v", f)
	}
	return nil
}

// featureActive maps scenario flags to the declarative feature set table.
func featureActive(f fields.Feature, sc Scenario) bool {
	switch f {
	case fields.FeatureSecondaryInsurance:
		return sc.SecondaryInsurance
	case fields.FeatureAccident:
		return sc.AutoAccident || sc.OtherAccident
	case fields.FeatureIllnessOnset:
		return sc.IllnessOnset
	case fields.FeatureSimilarIllness:
		return sc.SimilarIllness
	case fields.FeatureWorkLoss:
		return sc.WorkLoss
	case fields.FeatureHospitalization:
		return sc.Hospitalization
	case fields.FeatureReferral:
		return sc.Referral
	case fields.FeatureFacility:
		return sc.Facility
	case fields.FeatureInsuredAddress:
		return sc.InsuredAddress
	case fields.FeaturePriorAuth:
		return sc.PriorAuth
	case fields.FeatureResubmission:
		return sc.Resubmission
	default:
		return false
	}
}

// checkFeatureConsistency verifies no inactive feature leaked fields into
// the mapping.
func checkFeatureConsistency(m FieldMapping, sc Scenario) error {
	for _, f := range fields.Features() {
		if featureActive(f, sc) {
			continue
		}
		names, err := fields.FeatureFields(f)
		if err != nil {
			return err
		}
		for _, name := range names {
			if _, present := m[name]; present {
				return fmt.Errorf("inactive feature %s produced field %q", f, name)
			}
		}
	}
	return nil
}
