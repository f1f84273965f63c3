package catalog

import "fmt"

// Family groups procedures by billing behaviour: it decides the type-of-
// service code, the plausible unit count and the lab/emergency indicators.
type Family string

const (
	FamilyEM         Family = "em"         // evaluation & management
	FamilyEmergency  Family = "emergency"  // ER visit levels
	FamilyPreventive Family = "preventive"
	FamilyLab        Family = "lab"
	FamilyRadiology  Family = "radiology"
	FamilySurgery    Family = "surgery"
	FamilyMedicine   Family = "medicine"
)

// Procedure is one CPT/HCPCS entry.
type Procedure struct {
	Code        string
	Description string
	Family      Family
}

// Procedures is the full CPT/HCPCS table, ordered.
var Procedures = []Procedure{
	{Code: "99213", Description: "Office visit, established patient, moderate complexity", Family: FamilyEM},
	{Code: "99214", Description: "Office visit, established patient, high complexity", Family: FamilyEM},
	{Code: "99203", Description: "Office visit, new patient, moderate complexity", Family: FamilyEM},
	{Code: "99204", Description: "Office visit, new patient, high complexity", Family: FamilyEM},
	{Code: "99282", Description: "Emergency department visit, moderate complexity", Family: FamilyEmergency},
	{Code: "99283", Description: "Emergency department visit, high complexity", Family: FamilyEmergency},
	{Code: "99395", Description: "Periodic comprehensive preventive medicine, 18-39 years", Family: FamilyPreventive},
	{Code: "99396", Description: "Periodic comprehensive preventive medicine, 40-64 years", Family: FamilyPreventive},
	{Code: "99397", Description: "Periodic comprehensive preventive medicine, 65+ years", Family: FamilyPreventive},
	{Code: "80053", Description: "Comprehensive metabolic panel", Family: FamilyLab},
	{Code: "85025", Description: "Complete blood count with differential", Family: FamilyLab},
	{Code: "36415", Description: "Routine venipuncture for collection of specimen", Family: FamilyLab},
	{Code: "80061", Description: "Lipid panel", Family: FamilyLab},
	{Code: "85027", Description: "Complete blood count, automated", Family: FamilyLab},
	{Code: "73030", Description: "Radiologic examination, shoulder, 2 views", Family: FamilyRadiology},
	{Code: "71020", Description: "Radiologic examination, chest, 2 views", Family: FamilyRadiology},
	{Code: "73060", Description: "Radiologic examination, knee, 2 views", Family: FamilyRadiology},
	{Code: "72148", Description: "MRI lumbar spine without contrast", Family: FamilyRadiology},
	{Code: "12001", Description: "Simple repair of superficial wounds of scalp, neck", Family: FamilySurgery},
	{Code: "11042", Description: "Debridement, subcutaneous tissue", Family: FamilySurgery},
	{Code: "20610", Description: "Arthrocentesis, major joint", Family: FamilySurgery},
	{Code: "90471", Description: "Immunization administration", Family: FamilyMedicine},
	{Code: "93000", Description: "Electrocardiogram, routine ECG with interpretation", Family: FamilyMedicine},
	{Code: "94010", Description: "Spirometry", Family: FamilyMedicine},
}

var procedureByCode = func() map[string]Procedure {
	m := make(map[string]Procedure, len(Procedures))
	for _, p := range Procedures {
		m[p.Code] = p
	}
	return m
}()

// ProcedureByCode returns the procedure for a code.
func ProcedureByCode(code string) (Procedure, error) {
	p, ok := procedureByCode[code]
	if !ok {
		return Procedure{}, fmt.Errorf("unknown procedure code %q", code)
	}
	return p, nil
}

// categoryProcedures maps a diagnosis category to the CPT codes that are
// medically plausible for it.
var categoryProcedures = map[Category][]string{
	CategoryDiabetes:        {"99213", "99214", "80053", "85025"},
	CategoryHypertension:    {"99213", "93000", "80053"},
	CategoryRespiratory:     {"99213", "94010", "71020"},
	CategoryMusculoskeletal: {"99213", "73030", "73060", "72148", "20610"},
	CategoryCardiovascular:  {"99213", "99214", "93000", "80061"},
	CategoryMentalHealth:    {"99213", "99214"},
	CategoryInfection:       {"99213", "85025", "36415"},
	CategorySymptoms:        {"99213", "99214", "85025"},
	CategoryInjury:          {"99283", "73060", "12001"},
	CategoryPreventive:      {"99396", "85025", "80053", "90471"},
}

// generalProcedures backfills the candidate pool when the sampled diagnoses
// alone do not cover enough distinct codes for the requested line count.
var generalProcedures = []string{
	"99213", "99214", "99203", "99204", "85025", "80053", "36415",
	"90471", "93000", "94010", "71020", "73030", "12001", "11042",
}

// CompatibleProcedures returns the CPT codes plausible for the given
// diagnoses, deduplicated, in table order. If atLeast distinct codes cannot
// be reached from the diagnosis categories alone, general codes are added.
func CompatibleProcedures(diagnoses []Diagnosis, atLeast int) []string {
	seen := make(map[string]bool)
	for _, d := range diagnoses {
		for _, code := range categoryProcedures[d.Category] {
			seen[code] = true
		}
	}
	if len(seen) < atLeast {
		for _, code := range generalProcedures {
			seen[code] = true
		}
	}

	// Walk the procedure table so the result order is deterministic.
	out := make([]string, 0, len(seen))
	for _, p := range Procedures {
		if seen[p.Code] {
			out = append(out, p.Code)
		}
	}
	return out
}

// TypeOfService returns the box 24c type-of-service code for a procedure.
func TypeOfService(p Procedure) string {
	switch p.Family {
	case FamilyEM, FamilyEmergency, FamilyPreventive:
		return "1" // medical care
	case FamilySurgery:
		return "2" // surgery
	case FamilyRadiology:
		return "4" // diagnostic X-ray
	case FamilyLab:
		return "5" // diagnostic laboratory
	case FamilyMedicine:
		if p.Code == "90471" {
			return "V" // vaccine
		}
		return "4"
	default:
		return "1"
	}
}
