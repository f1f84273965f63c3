package wizard

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mrsinham/claimforge/internal/claim/edgecases"
	"github.com/mrsinham/claimforge/internal/claim/fields"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wizard.yaml")

	state := NewState()
	state.Batch.Count = 250
	state.Batch.OutputDir = "out/claims"
	state.Batch.Seed = 42
	state.Batch.Workers = 4
	state.Batch.Phase = "clinical"
	state.Batch.Formats = []string{"json", "parquet"}
	state.Batch.EdgeCasePercentage = 10
	state.Batch.EdgeCaseTypes = []string{"special-chars", "old-dates"}
	state.Profile.PaidFractionMax = 0.5

	if err := SaveToYAML(state, path); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	loaded, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	if !reflect.DeepEqual(loaded.Batch, state.Batch) {
		t.Errorf("batch config changed:\n got %+v\nwant %+v", loaded.Batch, state.Batch)
	}
	if loaded.Profile.PaidFractionMax != 0.5 {
		t.Errorf("profile paid fraction = %v, want 0.5", loaded.Profile.PaidFractionMax)
	}

	t.Logf("✓ Wizard config round-tripped through %s", path)
}

func TestLoadFromYAML_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	partial := "batch:\n  count: 99\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("writing partial config: %v", err)
	}

	loaded, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if loaded.Batch.Count != 99 {
		t.Errorf("count = %d, want 99", loaded.Batch.Count)
	}
	defaults := NewState()
	if loaded.Batch.Phase != defaults.Batch.Phase {
		t.Errorf("phase should keep default %q, got %q", defaults.Batch.Phase, loaded.Batch.Phase)
	}
	if loaded.Batch.OutputDir != defaults.Batch.OutputDir {
		t.Errorf("output dir should keep default %q, got %q", defaults.Batch.OutputDir, loaded.Batch.OutputDir)
	}
}

func TestLoadFromYAML_MissingFile(t *testing.T) {
	if _, err := LoadFromYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestToGeneratorOptions(t *testing.T) {
	state := NewState()
	state.Batch.Count = 50
	state.Batch.Seed = 7
	state.Batch.Phase = "clinical"
	state.Batch.EdgeCasePercentage = 20
	state.Batch.EdgeCaseTypes = []string{"varied-ids"}

	opts, err := ToGeneratorOptions(state)
	if err != nil {
		t.Fatalf("ToGeneratorOptions failed: %v", err)
	}
	if opts.Count != 50 || opts.Seed != 7 {
		t.Errorf("count/seed not carried over: %+v", opts)
	}
	if opts.Phase != fields.PhaseClinical {
		t.Errorf("phase = %v, want clinical", opts.Phase)
	}
	if opts.EdgeCaseConfig.Percentage != 20 {
		t.Errorf("edge percentage = %d, want 20", opts.EdgeCaseConfig.Percentage)
	}
	if len(opts.EdgeCaseConfig.Types) != 1 || opts.EdgeCaseConfig.Types[0] != edgecases.VariedIDs {
		t.Errorf("edge types = %v, want [varied-ids]", opts.EdgeCaseConfig.Types)
	}
}

func TestToGeneratorOptions_DefaultsAllEdgeTypes(t *testing.T) {
	state := NewState()
	state.Batch.EdgeCasePercentage = 15

	opts, err := ToGeneratorOptions(state)
	if err != nil {
		t.Fatalf("ToGeneratorOptions failed: %v", err)
	}
	if len(opts.EdgeCaseConfig.Types) != len(edgecases.AllEdgeCaseTypes()) {
		t.Errorf("empty type list should enable all types, got %v", opts.EdgeCaseConfig.Types)
	}
}

func TestToGeneratorOptions_InvalidPhase(t *testing.T) {
	state := NewState()
	state.Batch.Phase = "everything"

	if _, err := ToGeneratorOptions(state); err == nil {
		t.Fatal("expected error for invalid phase")
	}
}

func TestFromGeneratorOptions_RoundTrip(t *testing.T) {
	state := NewState()
	state.Batch.Count = 30
	state.Batch.Phase = "core"
	state.Batch.EdgeCasePercentage = 5
	state.Batch.EdgeCaseTypes = []string{"long-names"}

	opts, err := ToGeneratorOptions(state)
	if err != nil {
		t.Fatalf("ToGeneratorOptions failed: %v", err)
	}

	back := FromGeneratorOptions(opts, state.Batch.Formats, state.Batch.Template, state.Batch.LogFormat)
	if !reflect.DeepEqual(back.Batch, state.Batch) {
		t.Errorf("round trip changed batch config:\n got %+v\nwant %+v", back.Batch, state.Batch)
	}
}
