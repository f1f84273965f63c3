package catalog

// PlaceOfService codes for box 24b (CMS place-of-service code set).
var PlaceOfService = []string{
	"11", // Office
	"12", // Home
	"21", // Inpatient Hospital
	"22", // Outpatient Hospital
	"23", // Emergency Room
	"24", // Ambulatory Surgical Center
	"25", // Birthing Center
	"26", // Military Treatment Facility
	"31", // Skilled Nursing Facility
	"32", // Nursing Facility
	"33", // Custodial Care Facility
	"34", // Hospice
	"41", // Ambulance - Land
	"49", // Independent Clinic
	"50", // Federally Qualified Health Center
	"51", // Inpatient Psychiatric Facility
	"52", // Psychiatric Facility - Partial Hospitalization
	"53", // Community Mental Health Center
	"54", // Intermediate Care Facility
	"55", // Residential Substance Abuse Treatment Facility
	"56", // Psychiatric Residential Treatment Center
	"57", // Non-residential Substance Abuse Treatment Facility
	"58", // Non-residential Opioid Treatment Facility
	"60", // Mass Immunization Center
	"61", // Comprehensive Inpatient Rehabilitation Facility
	"62", // Comprehensive Outpatient Rehabilitation Facility
	"65", // End-Stage Renal Disease Treatment Facility
	"71", // Public Health Clinic
	"72", // Rural Health Clinic
	"81", // Independent Laboratory
	"99", // Other Place of Service
}

// Modifiers is the box 24d modifier set sampled for service lines.
var Modifiers = []string{
	"25", // significant, separately identifiable E&M service
	"59", // distinct procedural service
	"RT", // right side
	"LT", // left side
	"50", // bilateral procedure
	"26", // professional component
	"TC", // technical component
}
