package claim

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_ValidateErrors(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "buckets do not sum to 100",
			mutate:  func(c *Config) { c.DiagnosisBuckets.Single = 50 },
			wantErr: "sum to 100",
		},
		{
			name: "negative bucket weight",
			mutate: func(c *Config) {
				c.DiagnosisBuckets.Single = -5
				c.DiagnosisBuckets.Dual = 60
			},
			wantErr: "non-negative",
		},
		{
			name:    "complex min too low",
			mutate:  func(c *Config) { c.ComplexRange.Min = 2 },
			wantErr: "at least 4",
		},
		{
			name:    "complex max too high",
			mutate:  func(c *Config) { c.ComplexRange.Max = 15 },
			wantErr: "at most 12",
		},
		{
			name: "complex min above max",
			mutate: func(c *Config) {
				c.ComplexRange.Min = 10
				c.ComplexRange.Max = 5
			},
			wantErr: "exceeds max",
		},
		{
			name:    "probability above one",
			mutate:  func(c *Config) { c.Probabilities.Referral = 1.2 },
			wantErr: "referral",
		},
		{
			name:    "negative probability",
			mutate:  func(c *Config) { c.Probabilities.Employment = -0.1 },
			wantErr: "employment",
		},
		{
			name:    "zero minimum charge",
			mutate:  func(c *Config) { c.Charges.MinCents = 0 },
			wantErr: "min_cents",
		},
		{
			name: "min charge above max",
			mutate: func(c *Config) {
				c.Charges.MinCents = 100000
			},
			wantErr: "exceeds max_cents",
		},
		{
			name:    "paid fraction above one",
			mutate:  func(c *Config) { c.PaidFractionMax = 1.1 },
			wantErr: "paid_fraction_max",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestConfig_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")

	original := DefaultConfig()
	original.DiagnosisBuckets = DiagnosisBuckets{Single: 40, Dual: 30, Triple: 10, Complex: 20}
	original.Probabilities.Referral = 0.55
	original.PaidFractionMax = 0.5

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.DiagnosisBuckets != original.DiagnosisBuckets {
		t.Errorf("buckets changed: %+v vs %+v", loaded.DiagnosisBuckets, original.DiagnosisBuckets)
	}
	if loaded.Probabilities.Referral != 0.55 {
		t.Errorf("referral probability = %v, want 0.55", loaded.Probabilities.Referral)
	}
	if loaded.PaidFractionMax != 0.5 {
		t.Errorf("paid fraction max = %v, want 0.5", loaded.PaidFractionMax)
	}
	if !loaded.ReferenceDate.Equal(original.ReferenceDate) {
		t.Errorf("reference date changed: %v vs %v", loaded.ReferenceDate, original.ReferenceDate)
	}

	t.Logf("✓ Profile round-tripped through %s", path)
}

func TestLoadConfig_PartialOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("paid_fraction_max: 0.3\n"), 0o644); err != nil {
		t.Fatalf("writing partial profile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.PaidFractionMax != 0.3 {
		t.Errorf("paid_fraction_max = %v, want 0.3", cfg.PaidFractionMax)
	}
	// Everything not in the file keeps its default.
	def := DefaultConfig()
	if cfg.DiagnosisBuckets != def.DiagnosisBuckets {
		t.Errorf("buckets should keep defaults, got %+v", cfg.DiagnosisBuckets)
	}
}

func TestLoadConfig_RejectsInvalidProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := "diagnosis_buckets:\n  single: 90\n  dual: 90\n  triple: 15\n  complex: 30\n"
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("writing bad profile: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected invalid profile to be rejected")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
