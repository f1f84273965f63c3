package tests

import (
	"strconv"
	"testing"
	"unicode"

	internalclaim "github.com/mrsinham/claimforge/internal/claim"
	"github.com/mrsinham/claimforge/internal/claim/fields"
	"github.com/mrsinham/claimforge/internal/util"
)

// TestUtil_GeneratedIdentifiers verifies the identifiers carried by real
// generated claims pass their own structural checks
func TestUtil_GeneratedIdentifiers(t *testing.T) {
	forms, err := internalclaim.Generate(internalclaim.GeneratorOptions{
		Count:  50,
		Seed:   42,
		Phase:  fields.PhaseSpecialized,
		Config: internalclaim.DefaultConfig(),
		Quiet:  true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, form := range forms {
		parties := form.Claim.Parties

		if !util.ValidNPI(parties.Provider.NPI) {
			t.Errorf("Form %d: provider NPI %q fails checksum", form.Index, parties.Provider.NPI)
		}
		if parties.Referring.NPI != "" && !util.ValidNPI(parties.Referring.NPI) {
			t.Errorf("Form %d: referring NPI %q fails checksum", form.Index, parties.Referring.NPI)
		}

		taxID := parties.Provider.TaxID
		if len(taxID) != 10 || taxID[2] != '-' {
			t.Errorf("Form %d: malformed tax ID %q", form.Index, taxID)
		}

		if parties.PolicyID == "" {
			t.Errorf("Form %d: empty policy ID", form.Index)
		}
		for _, r := range parties.PolicyID {
			if !unicode.IsDigit(r) && !unicode.IsUpper(r) {
				t.Errorf("Form %d: policy ID %q contains unexpected rune %q",
					form.Index, parties.PolicyID, r)
			}
		}
	}

	t.Logf("✓ Identifier checks passed across %d forms", len(forms))
}

// TestUtil_GeneratedDates verifies date fields render as two-digit parts
// and service dates never precede the onset
func TestUtil_GeneratedDates(t *testing.T) {
	forms, err := internalclaim.Generate(internalclaim.GeneratorOptions{
		Count:  50,
		Seed:   9,
		Phase:  fields.PhaseSpecialized,
		Config: internalclaim.DefaultConfig(),
		Quiet:  true,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	twoDigit := func(s string) bool {
		if len(s) != 2 {
			return false
		}
		return unicode.IsDigit(rune(s[0])) && unicode.IsDigit(rune(s[1]))
	}

	for _, form := range forms {
		for _, name := range []string{"birth_mm", "birth_dd", "birth_yy"} {
			if v, ok := form.Mapping[name]; !ok || !twoDigit(v) {
				t.Errorf("Form %d: field %s = %q is not a two-digit part", form.Index, name, v)
			}
		}

		onset := form.Claim.Timeline.IllnessOnset
		for li, line := range form.Claim.Lines {
			if dateOrdinal(line.From) < dateOrdinal(onset) {
				t.Errorf("Form %d line %d: service date precedes onset", form.Index, li+1)
			}
			if dateOrdinal(line.To) < dateOrdinal(line.From) {
				t.Errorf("Form %d line %d: service end precedes start", form.Index, li+1)
			}
		}
	}

	t.Logf("✓ Date checks passed across %d forms", len(forms))
}

// dateOrdinal orders two-digit-year date parts; zero parts sort first.
// Generated dates all fall in 20xx so the two-digit year orders correctly.
func dateOrdinal(d util.DateParts) int {
	y, _ := strconv.Atoi(d.Year)
	m, _ := strconv.Atoi(d.Month)
	day, _ := strconv.Atoi(d.Day)
	return y*10000 + m*100 + day
}
