// Package fields holds the authoritative catalog of form field names the
// binder may populate, the coverage phase each name belongs to, and the
// declarative feature field sets. The catalog is versioned with the form
// template: adding a field is a catalog change plus a binder change, never
// a silent new name.
package fields

import (
	"fmt"
	"sort"
	"strings"
)

// Kind distinguishes how a field is written into the document template.
type Kind int

const (
	// KindText is a plain text field.
	KindText Kind = iota
	// KindRadio is a radio-button group; values are export names
	// ("YES"/"NO", "M"/"F", ...).
	KindRadio
)

// Phase is an incremental tier of field population. A form generated at a
// given phase only carries fields whose phase is at or below it.
type Phase int

const (
	// PhaseCore covers identity, diagnoses, service lines and totals.
	PhaseCore Phase = iota
	// PhaseClinical adds the clinical timeline, referrals, facilities and
	// secondary insurance detail.
	PhaseClinical
	// PhaseSpecialized adds local-use, EPSDT, plan and supplemental codes.
	PhaseSpecialized
)

// String returns the phase name used on the command line.
func (p Phase) String() string {
	switch p {
	case PhaseCore:
		return "core"
	case PhaseClinical:
		return "clinical"
	case PhaseSpecialized:
		return "specialized"
	default:
		return "unknown"
	}
}

// ParsePhase parses a phase name.
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "core":
		return PhaseCore, nil
	case "clinical":
		return PhaseClinical, nil
	case "specialized":
		return PhaseSpecialized, nil
	default:
		return PhaseCore, fmt.Errorf("invalid phase: %s (valid: core, clinical, specialized)", s)
	}
}

// Info describes one recognized field name.
type Info struct {
	Name  string
	Box   string // form box the field belongs to, for documentation
	Kind  Kind
	Phase Phase
}

// registry maps field names to their Info. Built once at init from the
// singles table plus the numbered per-line and per-diagnosis families.
var registry = buildRegistry()

func buildRegistry() map[string]Info {
	m := make(map[string]Info, 256)
	add := func(name, box string, kind Kind, phase Phase) {
		if _, dup := m[name]; dup {
			panic(fmt.Sprintf("fields: duplicate catalog entry %q", name))
		}
		m[name] = Info{Name: name, Box: box, Kind: kind, Phase: phase}
	}

	// Radio-button groups
	add("insurance_type", "1", KindRadio, PhaseCore)
	add("sex", "3", KindRadio, PhaseCore)
	add("rel_to_ins", "6", KindRadio, PhaseCore)
	add("employment", "10a", KindRadio, PhaseCore)
	add("pt_auto_accident", "10b", KindRadio, PhaseCore)
	add("other_accident", "10c", KindRadio, PhaseCore)
	add("ins_sex", "11a", KindRadio, PhaseClinical)
	add("ins_benefit_plan", "11d", KindRadio, PhaseCore)
	add("lab", "20", KindRadio, PhaseCore)
	add("ssn", "25", KindRadio, PhaseCore)
	add("assignment", "27", KindRadio, PhaseCore)

	// Patient identity (boxes 2, 3, 5, 26)
	for _, name := range []string{"pt_name", "pt_street", "pt_city", "pt_state", "pt_zip", "pt_AreaCode", "pt_phone", "pt_account"} {
		add(name, "2-5", KindText, PhaseCore)
	}
	add("birth_mm", "3", KindText, PhaseCore)
	add("birth_dd", "3", KindText, PhaseCore)
	add("birth_yy", "3", KindText, PhaseCore)

	// Insured identity (boxes 1a, 4, 7, 11, 11a)
	add("ins_name", "4", KindText, PhaseCore)
	add("ins_policy", "1a", KindText, PhaseCore)
	add("grp", "11", KindText, PhaseClinical)
	for _, name := range []string{"ins_street", "ins_city", "ins_state", "ins_zip", "ins_phone", "ins_phone area"} {
		add(name, "7", KindText, PhaseClinical)
	}
	add("ins_dob_mm", "11a", KindText, PhaseClinical)
	add("ins_dob_dd", "11a", KindText, PhaseClinical)
	add("ins_dob_yy", "11a", KindText, PhaseClinical)
	add("ins_plan_name", "11c", KindText, PhaseClinical)
	add("ins_signature", "13", KindText, PhaseClinical)

	// Carrier block (top of form)
	add("insurance_company_name", "carrier", KindText, PhaseCore)
	add("insurance_company_address", "carrier", KindText, PhaseCore)
	add("insurance_id", "carrier", KindText, PhaseSpecialized)
	add("insurance_address2", "carrier", KindText, PhaseSpecialized)
	add("insurance_city_state_zip", "carrier", KindText, PhaseSpecialized)

	// Secondary insurance (box 9)
	add("other_ins_name", "9", KindText, PhaseClinical)
	add("other_ins_policy", "9a", KindText, PhaseClinical)
	add("other_ins_plan_name", "9d", KindText, PhaseClinical)

	// Condition context (box 10d)
	add("accident_place", "10d", KindText, PhaseCore)

	// Signatures (boxes 12, 31)
	add("pt_signature", "12", KindText, PhaseCore)
	add("pt_date", "12", KindText, PhaseCore)
	add("physician_signature", "31", KindText, PhaseCore)
	add("physician_date", "31", KindText, PhaseCore)

	// Clinical timeline (boxes 14-16, 18)
	for _, name := range []string{"cur_ill_mm", "cur_ill_dd", "cur_ill_yy"} {
		add(name, "14", KindText, PhaseClinical)
	}
	for _, name := range []string{"sim_ill_mm", "sim_ill_dd", "sim_ill_yy"} {
		add(name, "15", KindText, PhaseClinical)
	}
	for _, name := range []string{"work_mm_from", "work_dd_from", "work_yy_from", "work_mm_end", "work_dd_end", "work_yy_end"} {
		add(name, "16", KindText, PhaseClinical)
	}
	for _, name := range []string{"hosp_mm_from", "hosp_dd_from", "hosp_yy_from", "hosp_mm_end", "hosp_dd_end", "hosp_yy_end"} {
		add(name, "18", KindText, PhaseClinical)
	}

	// Referring provider (box 17)
	add("ref_physician", "17", KindText, PhaseClinical)
	add("physician number 17a", "17a", KindText, PhaseClinical)
	add("physician number 17a1", "17b", KindText, PhaseClinical)

	// References and authorizations (boxes 19, 22, 23)
	add("NUCC USE", "19", KindText, PhaseSpecialized)
	add("medicaid_resub", "22", KindText, PhaseClinical)
	add("original_ref", "22", KindText, PhaseClinical)
	add("prior_auth", "23", KindText, PhaseClinical)

	// Diagnoses (box 21)
	for i := 1; i <= 12; i++ {
		add(fmt.Sprintf("diagnosis%d", i), "21", KindText, PhaseCore)
	}

	// Service lines (box 24, rows 1-6)
	for i := 1; i <= 6; i++ {
		box := "24"
		add(fmt.Sprintf("sv%d_mm_from", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("sv%d_dd_from", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("sv%d_yy_from", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("sv%d_mm_end", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("sv%d_dd_end", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("sv%d_yy_end", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("place%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("type%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("emg%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("cpt%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("mod%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("mod%da", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("mod%db", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("mod%dc", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("diag%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("ch%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("units%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("day%d", i), box, KindText, PhaseCore)
		add(fmt.Sprintf("local%d", i), "24k", KindText, PhaseSpecialized)
		add(fmt.Sprintf("local%da", i), "24k", KindText, PhaseSpecialized)
		add(fmt.Sprintf("epsdt%d", i), "24h", KindText, PhaseSpecialized)
		add(fmt.Sprintf("plan%d", i), "24", KindText, PhaseSpecialized)
	}

	// Provider and billing (boxes 25, 28-30, 32, 33)
	add("tax_id", "25", KindText, PhaseCore)
	add("t_charge", "28", KindText, PhaseCore)
	add("amt_paid", "29", KindText, PhaseCore)
	add("charge", "30", KindText, PhaseCore)
	add("fac_name", "32", KindText, PhaseClinical)
	add("fac_street", "32", KindText, PhaseClinical)
	add("fac_location", "32", KindText, PhaseClinical)
	add("doc_name", "33", KindText, PhaseCore)
	add("doc_street", "33", KindText, PhaseCore)
	add("doc_phone", "33", KindText, PhaseCore)
	add("doc_phone area", "33", KindText, PhaseCore)
	add("id_physician", "33a", KindText, PhaseCore)
	add("doc_location", "33", KindText, PhaseSpecialized)
	add("pin", "33b", KindText, PhaseSpecialized)
	add("pin1", "33b", KindText, PhaseSpecialized)
	add("grp1", "33b", KindText, PhaseSpecialized)

	// Supplemental claim information
	add("Suppl", "suppl", KindText, PhaseSpecialized)
	for _, suffix := range []string{"a", "b", "c", "d", "e"} {
		add("Suppl"+suffix, "suppl", KindText, PhaseSpecialized)
	}

	return m
}

// Lookup returns the Info for a field name. Unknown names return an error
// with the closest catalog name suggested when one is reasonably near.
func Lookup(name string) (Info, error) {
	if info, ok := registry[name]; ok {
		return info, nil
	}
	if suggestion := closestName(name); suggestion != "" {
		return Info{}, fmt.Errorf("unknown field %q, did you mean %q?", name, suggestion)
	}
	return Info{}, fmt.Errorf("unknown field %q", name)
}

// Contains reports whether name is in the catalog.
func Contains(name string) bool {
	_, ok := registry[name]
	return ok
}

// Count returns the number of recognized field names.
func Count() int {
	return len(registry)
}

// Names returns all recognized field names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// closestName finds the nearest catalog name by Levenshtein distance.
// Returns empty string if nothing is within distance 5.
func closestName(input string) string {
	const maxDistance = 5
	bestDistance := maxDistance + 1
	var bestMatch string

	for key := range registry {
		distance := levenshteinDistance(strings.ToLower(input), strings.ToLower(key))
		if distance < bestDistance {
			bestDistance = distance
			bestMatch = key
		}
	}

	if bestDistance <= maxDistance {
		return bestMatch
	}
	return ""
}

// levenshteinDistance calculates the minimum number of single-character
// edits required to change one string into the other.
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}
	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
