package fields

import "fmt"

// Feature identifies an optional scenario feature that contributes a fixed
// set of field names when active. The binder composes a form's field set
// from the always-present base plus the sets of the active features, so
// presence or absence of a field always traces back to a scenario flag.
type Feature string

const (
	FeatureSecondaryInsurance Feature = "secondary_insurance"
	FeatureAccident           Feature = "accident"
	FeatureIllnessOnset       Feature = "illness_onset"
	FeatureSimilarIllness     Feature = "similar_illness"
	FeatureWorkLoss           Feature = "work_loss"
	FeatureHospitalization    Feature = "hospitalization"
	FeatureReferral           Feature = "referral"
	FeatureFacility           Feature = "facility"
	FeatureInsuredAddress     Feature = "insured_address"
	FeaturePriorAuth          Feature = "prior_auth"
	FeatureResubmission       Feature = "resubmission"
)

// featureFields maps each feature to the field names it contributes.
var featureFields = map[Feature][]string{
	FeatureSecondaryInsurance: {
		"other_ins_name", "other_ins_policy", "other_ins_plan_name",
	},
	FeatureAccident: {
		"accident_place",
	},
	FeatureIllnessOnset: {
		"cur_ill_mm", "cur_ill_dd", "cur_ill_yy",
	},
	FeatureSimilarIllness: {
		"sim_ill_mm", "sim_ill_dd", "sim_ill_yy",
	},
	FeatureWorkLoss: {
		"work_mm_from", "work_dd_from", "work_yy_from",
		"work_mm_end", "work_dd_end", "work_yy_end",
	},
	FeatureHospitalization: {
		"hosp_mm_from", "hosp_dd_from", "hosp_yy_from",
		"hosp_mm_end", "hosp_dd_end", "hosp_yy_end",
	},
	FeatureReferral: {
		"ref_physician", "physician number 17a", "physician number 17a1",
	},
	FeatureFacility: {
		"fac_name", "fac_street", "fac_location",
	},
	FeatureInsuredAddress: {
		"ins_street", "ins_city", "ins_state", "ins_zip",
		"ins_phone", "ins_phone area",
	},
	FeaturePriorAuth: {
		"prior_auth",
	},
	FeatureResubmission: {
		"medicaid_resub", "original_ref",
	},
}

// FeatureFields returns the field names contributed by a feature.
func FeatureFields(f Feature) ([]string, error) {
	names, ok := featureFields[f]
	if !ok {
		return nil, fmt.Errorf("unknown feature: %s", f)
	}
	return names, nil
}

// Features returns all known features.
func Features() []Feature {
	fs := make([]Feature, 0, len(featureFields))
	for f := range featureFields {
		fs = append(fs, f)
	}
	return fs
}

// ValidateFieldSets checks every feature field name against the catalog.
// Called by generator startup so a catalog/fieldset drift is caught before
// any form is produced.
func ValidateFieldSets() error {
	for feature, names := range featureFields {
		for _, name := range names {
			if !Contains(name) {
				return fmt.Errorf("feature %s references unknown field %q", feature, name)
			}
		}
	}
	return nil
}
