package emit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrsinham/claimforge/internal/claim"
	"github.com/mrsinham/claimforge/internal/claim/fields"
)

func generateForms(t *testing.T, count int) []claim.GeneratedForm {
	t.Helper()
	forms, err := claim.Generate(claim.GeneratorOptions{
		Count:  count,
		Seed:   42,
		Phase:  fields.PhaseSpecialized,
		Config: claim.DefaultConfig(),
		Quiet:  true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return forms
}

func TestWriteRecords(t *testing.T) {
	dir := t.TempDir()
	forms := generateForms(t, 3)

	if err := WriteRecords(dir, forms, "specialized", "2025-06-30T00:00:00Z", false); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	for i := 1; i <= 3; i++ {
		for _, name := range []string{RecordFilename(i), CoreFilename(i)} {
			if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
				t.Errorf("expected file %s: %v", name, err)
			}
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFilename))
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if manifest.Metadata.TotalForms != 3 {
		t.Errorf("manifest total_forms = %d, want 3", manifest.Metadata.TotalForms)
	}
	if manifest.Metadata.Phase != "specialized" {
		t.Errorf("manifest phase = %q, want specialized", manifest.Metadata.Phase)
	}
	if len(manifest.Forms) != 3 {
		t.Fatalf("manifest lists %d forms, want 3", len(manifest.Forms))
	}
	for i, entry := range manifest.Forms {
		if entry.FormNumber != i+1 {
			t.Errorf("manifest entry %d has form number %d", i, entry.FormNumber)
		}
		if entry.JSONFilename != RecordFilename(i+1) {
			t.Errorf("manifest entry %d JSON filename = %q", i, entry.JSONFilename)
		}
		if entry.PDFFilename != "" {
			t.Errorf("manifest entry %d should have no PDF reference, got %q", i, entry.PDFFilename)
		}
	}

	t.Logf("✓ Wrote %d records plus manifest to %s", len(forms), dir)
}

func TestWriteRecords_RecordContent(t *testing.T) {
	dir := t.TempDir()
	forms := generateForms(t, 1)

	if err := WriteRecords(dir, forms, "specialized", "2025-06-30T00:00:00Z", true); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, RecordFilename(1)))
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		t.Fatalf("record is not valid JSON: %v", err)
	}

	if rec.FormNumber != 1 {
		t.Errorf("form_number = %d, want 1", rec.FormNumber)
	}
	if rec.RecordID != forms[0].RecordID {
		t.Errorf("record_id = %q, want %q", rec.RecordID, forms[0].RecordID)
	}
	if rec.PDFFilename != PDFFilename(1) {
		t.Errorf("pdf_filename = %q, want %q", rec.PDFFilename, PDFFilename(1))
	}
	if len(rec.Fields) != len(forms[0].Mapping) {
		t.Errorf("form_data has %d fields, mapping has %d", len(rec.Fields), len(forms[0].Mapping))
	}
	if rec.Summary.TotalCharge != claim.FormatCents(forms[0].Summary.TotalCents) {
		t.Errorf("summary total = %q, want %q", rec.Summary.TotalCharge, claim.FormatCents(forms[0].Summary.TotalCents))
	}
	if rec.Summary.DiagnosisCount != len(forms[0].Claim.Diagnoses) {
		t.Errorf("diagnosis_count = %d, want %d", rec.Summary.DiagnosisCount, len(forms[0].Claim.Diagnoses))
	}
}

func TestWriteRecords_CoreSubset(t *testing.T) {
	dir := t.TempDir()
	forms := generateForms(t, 1)

	if err := WriteRecords(dir, forms, "core", "2025-06-30T00:00:00Z", false); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, CoreFilename(1)))
	if err != nil {
		t.Fatalf("reading core record: %v", err)
	}
	var core CoreRecord
	if err := json.Unmarshal(data, &core); err != nil {
		t.Fatalf("core record is not valid JSON: %v", err)
	}

	for _, key := range []string{
		"insurance_type", "insured_id", "patient_name", "patient_dob",
		"patient_sex", "relationship", "provider_tax_id", "account_number",
		"total_charge", "amount_paid", "balance_due",
		"diagnosis_1", "primary_cpt", "primary_charge", "primary_service_date",
	} {
		if _, ok := core.Core[key]; !ok {
			t.Errorf("core data missing %q", key)
		}
	}
	if core.Core["patient_name"] != forms[0].Mapping["pt_name"] {
		t.Errorf("core patient_name = %q, want %q", core.Core["patient_name"], forms[0].Mapping["pt_name"])
	}

	t.Logf("✓ Core subset carries %d keys", len(core.Core))
}

func TestFilenames(t *testing.T) {
	if got := RecordFilename(7); got != "claim_form_0007.json" {
		t.Errorf("RecordFilename(7) = %q", got)
	}
	if got := CoreFilename(12); got != "claim_form_0012_core.json" {
		t.Errorf("CoreFilename(12) = %q", got)
	}
	if got := PDFFilename(123); got != "claim_form_0123.pdf" {
		t.Errorf("PDFFilename(123) = %q", got)
	}
}
