// Package catalog holds the static code tables claim generation draws from:
// ICD-10-CM diagnoses, CPT/HCPCS procedures, modifiers, place-of-service
// codes and insurance programs/plans. All tables are immutable after
// process start and safe for concurrent readers.
package catalog

import "fmt"

// Category groups diagnoses by clinical area; it drives which procedures
// are plausible for a claim (see CompatibleProcedures).
type Category string

const (
	CategoryDiabetes        Category = "diabetes"
	CategoryHypertension    Category = "hypertension"
	CategoryRespiratory     Category = "respiratory"
	CategoryMusculoskeletal Category = "musculoskeletal"
	CategoryCardiovascular  Category = "cardiovascular"
	CategoryMentalHealth    Category = "mental-health"
	CategoryInfection       Category = "infection"
	CategorySymptoms        Category = "symptoms"
	CategoryInjury          Category = "injury"
	CategoryPreventive      Category = "preventive"
)

// Diagnosis is one ICD-10-CM entry.
type Diagnosis struct {
	Code        string
	Description string
	Category    Category
}

// Diagnoses is the full ICD-10-CM table, ordered. The order is stable so a
// fixed seed always samples the same codes.
var Diagnoses = []Diagnosis{
	{Code: "E11.9", Description: "Type 2 diabetes mellitus without complications", Category: CategoryDiabetes},
	{Code: "E11.40", Description: "Type 2 diabetes mellitus with diabetic neuropathy, unspecified", Category: CategoryDiabetes},
	{Code: "E11.65", Description: "Type 2 diabetes mellitus with hyperglycemia", Category: CategoryDiabetes},
	{Code: "I10", Description: "Essential hypertension", Category: CategoryHypertension},
	{Code: "I12.9", Description: "Hypertensive chronic kidney disease, stage 1 through stage 4", Category: CategoryHypertension},
	{Code: "J44.1", Description: "Chronic obstructive pulmonary disease with acute exacerbation", Category: CategoryRespiratory},
	{Code: "J45.9", Description: "Asthma, unspecified", Category: CategoryRespiratory},
	{Code: "J06.9", Description: "Acute upper respiratory infection, unspecified", Category: CategoryRespiratory},
	{Code: "M25.511", Description: "Pain in right shoulder", Category: CategoryMusculoskeletal},
	{Code: "M54.5", Description: "Low back pain", Category: CategoryMusculoskeletal},
	{Code: "M79.3", Description: "Panniculitis, unspecified", Category: CategoryMusculoskeletal},
	{Code: "I25.10", Description: "Atherosclerotic heart disease of native coronary artery without angina pectoris", Category: CategoryCardiovascular},
	{Code: "I48.91", Description: "Unspecified atrial fibrillation", Category: CategoryCardiovascular},
	{Code: "F32.9", Description: "Major depressive disorder, single episode, unspecified", Category: CategoryMentalHealth},
	{Code: "F41.9", Description: "Anxiety disorder, unspecified", Category: CategoryMentalHealth},
	{Code: "A49.9", Description: "Bacterial infection, unspecified", Category: CategoryInfection},
	{Code: "B34.9", Description: "Viral infection, unspecified", Category: CategoryInfection},
	{Code: "R50.9", Description: "Fever, unspecified", Category: CategorySymptoms},
	{Code: "R06.02", Description: "Shortness of breath", Category: CategorySymptoms},
	{Code: "R51", Description: "Headache", Category: CategorySymptoms},
	{Code: "S72.001A", Description: "Fracture of unspecified part of neck of right femur, initial encounter", Category: CategoryInjury},
	{Code: "T14.90XA", Description: "Injury, unspecified, initial encounter", Category: CategoryInjury},
	{Code: "Z00.00", Description: "Encounter for general adult medical examination without abnormal findings", Category: CategoryPreventive},
	{Code: "Z51.11", Description: "Encounter for antineoplastic chemotherapy", Category: CategoryPreventive},
}

var diagnosisByCode = func() map[string]Diagnosis {
	m := make(map[string]Diagnosis, len(Diagnoses))
	for _, d := range Diagnoses {
		m[d.Code] = d
	}
	return m
}()

// DiagnosisByCode returns the diagnosis for a code.
func DiagnosisByCode(code string) (Diagnosis, error) {
	d, ok := diagnosisByCode[code]
	if !ok {
		return Diagnosis{}, fmt.Errorf("unknown diagnosis code %q", code)
	}
	return d, nil
}
