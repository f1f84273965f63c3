package emit

import (
	"fmt"
	"os"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/mrsinham/claimforge/internal/claim"
)

// ClaimRow mirrors the Parquet schema for one claim. Money is float64
// dollars matching the Parquet convention; the JSON records keep the exact
// cent strings.
type ClaimRow struct {
	RecordID    string `parquet:"record_id"`
	FormNumber  int32  `parquet:"form_number"`
	Program     string `parquet:"program"`
	PlanType    string `parquet:"plan_type"`
	PayerName   string `parquet:"payer_name"`
	PatientName string `parquet:"patient_name"`
	PatientSex  string `parquet:"patient_sex"`
	PatientDOB  string `parquet:"patient_dob"`
	InsuredName string `parquet:"insured_name"`
	PolicyID    string `parquet:"policy_id"`

	DiagnosisCount int32   `parquet:"diagnosis_count"`
	ServiceLines   int32   `parquet:"service_lines"`
	PrimaryDiag    string  `parquet:"primary_diagnosis"`
	PrimaryCPT     string  `parquet:"primary_cpt"`
	TotalCharge    float64 `parquet:"total_charge"`
	AmountPaid     float64 `parquet:"amount_paid"`
	BalanceDue     float64 `parquet:"balance_due"`

	SecondaryInsurance bool `parquet:"secondary_insurance"`
	Hospitalization    bool `parquet:"hospitalization"`
	Referral           bool `parquet:"referral"`
	Facility           bool `parquet:"facility"`
}

// DatasetFilename is the batch-level Parquet file name.
const DatasetFilename = "claims_dataset.parquet"

// WriteDataset writes one row per claim to a Parquet file at path.
func WriteDataset(path string, forms []claim.GeneratedForm) error {
	rows := make([]ClaimRow, len(forms))
	for i, form := range forms {
		rows[i] = toRow(form)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset file: %w", err)
	}
	defer func() { _ = f.Close() }()

	writer := goparquet.NewGenericWriter[ClaimRow](f)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("write dataset rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close dataset writer: %w", err)
	}
	return nil
}

func toRow(form claim.GeneratedForm) ClaimRow {
	c := form.Claim
	row := ClaimRow{
		RecordID:    form.RecordID,
		FormNumber:  int32(form.Index),
		Program:     c.Scenario.Program.String(),
		PlanType:    c.Scenario.PlanType,
		PayerName:   c.Parties.Payer.Name,
		PatientName: c.Parties.Patient.Name(),
		PatientSex:  c.Parties.Patient.Sex,
		PatientDOB:  c.Parties.Patient.Birth.MMDDYY(),
		InsuredName: c.Parties.Insured.Name(),
		PolicyID:    c.Parties.PolicyID,

		DiagnosisCount: int32(len(c.Diagnoses)),
		ServiceLines:   int32(len(c.Lines)),
		TotalCharge:    float64(form.Summary.TotalCents) / 100,
		AmountPaid:     float64(form.Summary.PaidCents) / 100,
		BalanceDue:     float64(form.Summary.DueCents) / 100,

		SecondaryInsurance: c.Scenario.SecondaryInsurance,
		Hospitalization:    c.Scenario.Hospitalization,
		Referral:           c.Scenario.Referral,
		Facility:           c.Scenario.Facility,
	}
	if len(c.Diagnoses) > 0 {
		row.PrimaryDiag = c.Diagnoses[0].Code
	}
	if len(c.Lines) > 0 {
		row.PrimaryCPT = c.Lines[0].Procedure.Code
	}
	return row
}
