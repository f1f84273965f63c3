package emit

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	goparquet "github.com/parquet-go/parquet-go"
)

func TestWriteDataset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DatasetFilename)
	forms := generateForms(t, 5)

	if err := WriteDataset(path, forms); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening dataset: %v", err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		t.Fatalf("stat dataset: %v", err)
	}

	reader := goparquet.NewGenericReader[ClaimRow](f)
	defer reader.Close()
	if reader.NumRows() != int64(len(forms)) {
		t.Fatalf("dataset has %d rows, want %d", reader.NumRows(), len(forms))
	}

	rows := make([]ClaimRow, len(forms))
	if _, err := reader.Read(rows); err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("reading rows: %v", err)
	}

	for i, row := range rows {
		form := forms[i]
		if row.RecordID != form.RecordID {
			t.Errorf("row %d record_id = %q, want %q", i, row.RecordID, form.RecordID)
		}
		if row.FormNumber != int32(form.Index) {
			t.Errorf("row %d form_number = %d, want %d", i, row.FormNumber, form.Index)
		}
		wantTotal := float64(form.Summary.TotalCents) / 100
		if row.TotalCharge != wantTotal {
			t.Errorf("row %d total_charge = %v, want %v", i, row.TotalCharge, wantTotal)
		}
		if diff := row.AmountPaid + row.BalanceDue - row.TotalCharge; diff > 0.001 || diff < -0.001 {
			t.Errorf("row %d money columns do not reconcile: %v + %v != %v",
				i, row.AmountPaid, row.BalanceDue, row.TotalCharge)
		}
		if row.DiagnosisCount < 1 || row.DiagnosisCount > 12 {
			t.Errorf("row %d diagnosis_count %d out of range", i, row.DiagnosisCount)
		}
	}

	t.Logf("✓ Dataset round-tripped %d rows (%d bytes)", len(rows), info.Size())
}

func TestToRow(t *testing.T) {
	forms := generateForms(t, 1)
	row := toRow(forms[0])

	c := forms[0].Claim
	if row.Program != c.Scenario.Program.String() {
		t.Errorf("program = %q, want %q", row.Program, c.Scenario.Program.String())
	}
	if row.PatientName != c.Parties.Patient.Name() {
		t.Errorf("patient_name = %q, want %q", row.PatientName, c.Parties.Patient.Name())
	}
	if row.PrimaryDiag != c.Diagnoses[0].Code {
		t.Errorf("primary_diagnosis = %q, want %q", row.PrimaryDiag, c.Diagnoses[0].Code)
	}
	if row.PrimaryCPT != c.Lines[0].Procedure.Code {
		t.Errorf("primary_cpt = %q, want %q", row.PrimaryCPT, c.Lines[0].Procedure.Code)
	}
}
