// Package emit writes generated claims to disk: per-claim JSON records, a
// batch manifest, an optional Parquet dataset and optionally filled PDF
// templates.
package emit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrsinham/claimforge/internal/claim"
)

// Record is the full per-claim JSON document.
type Record struct {
	FormNumber  int               `json:"form_number"`
	RecordID    string            `json:"record_id"`
	PDFFilename string            `json:"pdf_filename,omitempty"`
	GeneratedAt string            `json:"generated_at"`
	Fields      map[string]string `json:"form_data"`
	Summary     RecordSummary     `json:"summary"`
}

// RecordSummary carries the reconciled financials and content shape.
type RecordSummary struct {
	Program        string `json:"program"`
	DiagnosisCount int    `json:"diagnosis_count"`
	ServiceLines   int    `json:"service_lines"`
	TotalCharge    string `json:"total_charge"`
	AmountPaid     string `json:"amount_paid"`
	BalanceDue     string `json:"balance_due"`
}

// CoreRecord is the simplified per-claim JSON with only the identity and
// financial anchors, for extraction training against the core subset.
type CoreRecord struct {
	FormNumber  int               `json:"form_number"`
	RecordID    string            `json:"record_id"`
	GeneratedAt string            `json:"generated_at"`
	Core        map[string]string `json:"core_data"`
}

// Manifest is the batch-level index document.
type Manifest struct {
	Metadata ManifestMetadata `json:"metadata"`
	Forms    []ManifestEntry  `json:"forms"`
}

// ManifestMetadata describes the batch.
type ManifestMetadata struct {
	TotalForms  int    `json:"total_forms"`
	GeneratedAt string `json:"generated_at"`
	Phase       string `json:"phase"`
	Description string `json:"description"`
}

// ManifestEntry points at one claim's files.
type ManifestEntry struct {
	FormNumber   int    `json:"form_number"`
	RecordID     string `json:"record_id"`
	JSONFilename string `json:"json_filename"`
	PDFFilename  string `json:"pdf_filename,omitempty"`
	TotalCharge  string `json:"total_charge"`
}

// RecordFilename returns the per-claim JSON file name for an index.
func RecordFilename(index int) string {
	return fmt.Sprintf("claim_form_%04d.json", index)
}

// CoreFilename returns the core-subset JSON file name for an index.
func CoreFilename(index int) string {
	return fmt.Sprintf("claim_form_%04d_core.json", index)
}

// PDFFilename returns the filled template file name for an index.
func PDFFilename(index int) string {
	return fmt.Sprintf("claim_form_%04d.pdf", index)
}

// ManifestFilename is the batch index file name.
const ManifestFilename = "claims_data.json"

// WriteRecords writes the per-claim JSON documents, the core subsets and
// the batch manifest under dir. generatedAt is caller-supplied so a fixed
// seed produces byte-identical files. withPDF controls whether record
// entries reference a filled template.
func WriteRecords(dir string, forms []claim.GeneratedForm, phase string, generatedAt string, withPDF bool) error {
	manifest := Manifest{
		Metadata: ManifestMetadata{
			TotalForms:  len(forms),
			GeneratedAt: generatedAt,
			Phase:       phase,
			Description: "synthetic health insurance claim form data",
		},
		Forms: make([]ManifestEntry, 0, len(forms)),
	}

	for _, form := range forms {
		pdfName := ""
		if withPDF {
			pdfName = PDFFilename(form.Index)
		}
		rec := Record{
			FormNumber:  form.Index,
			RecordID:    form.RecordID,
			PDFFilename: pdfName,
			GeneratedAt: generatedAt,
			Fields:      form.Mapping,
			Summary: RecordSummary{
				Program:        form.Claim.Scenario.Program.String(),
				DiagnosisCount: len(form.Claim.Diagnoses),
				ServiceLines:   len(form.Claim.Lines),
				TotalCharge:    claim.FormatCents(form.Summary.TotalCents),
				AmountPaid:     claim.FormatCents(form.Summary.PaidCents),
				BalanceDue:     claim.FormatCents(form.Summary.DueCents),
			},
		}
		if err := writeJSON(filepath.Join(dir, RecordFilename(form.Index)), rec); err != nil {
			return fmt.Errorf("write record %d: %w", form.Index, err)
		}

		core := CoreRecord{
			FormNumber:  form.Index,
			RecordID:    form.RecordID,
			GeneratedAt: generatedAt,
			Core:        coreSubset(form),
		}
		if err := writeJSON(filepath.Join(dir, CoreFilename(form.Index)), core); err != nil {
			return fmt.Errorf("write core record %d: %w", form.Index, err)
		}

		manifest.Forms = append(manifest.Forms, ManifestEntry{
			FormNumber:   form.Index,
			RecordID:     form.RecordID,
			JSONFilename: RecordFilename(form.Index),
			PDFFilename:  pdfName,
			TotalCharge:  claim.FormatCents(form.Summary.TotalCents),
		})
	}

	if err := writeJSON(filepath.Join(dir, ManifestFilename), manifest); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// coreSubset extracts the identity and financial anchors of a claim.
func coreSubset(form claim.GeneratedForm) map[string]string {
	m := form.Mapping
	core := map[string]string{
		"insurance_type":  m["insurance_type"],
		"insured_id":      m["ins_policy"],
		"patient_name":    m["pt_name"],
		"patient_dob":     m["birth_mm"] + "/" + m["birth_dd"] + "/" + m["birth_yy"],
		"patient_sex":     m["sex"],
		"insured_name":    m["ins_name"],
		"patient_address": m["pt_street"] + ", " + m["pt_city"] + ", " + m["pt_state"] + " " + m["pt_zip"],
		"patient_phone":   "(" + m["pt_AreaCode"] + ") " + m["pt_phone"],
		"relationship":    m["rel_to_ins"],
		"provider_tax_id": m["tax_id"],
		"account_number":  m["pt_account"],
		"total_charge":    m["t_charge"],
		"amount_paid":     m["amt_paid"],
		"balance_due":     m["charge"],
	}
	// Up to the first four diagnoses and the first service line.
	for i := 1; i <= 4; i++ {
		if code, ok := m[fmt.Sprintf("diagnosis%d", i)]; ok {
			core[fmt.Sprintf("diagnosis_%d", i)] = code
		}
	}
	if cpt, ok := m["cpt1"]; ok {
		core["primary_cpt"] = cpt
		core["primary_charge"] = m["ch1"]
		core["primary_service_date"] = m["sv1_mm_from"] + "/" + m["sv1_dd_from"] + "/" + m["sv1_yy_from"]
	}
	return core
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
