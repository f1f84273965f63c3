package claim

import (
	"math/rand/v2"

	"github.com/mrsinham/claimforge/internal/claim/catalog"
	"github.com/mrsinham/claimforge/internal/util"
)

// Person is an individual appearing on the claim.
type Person struct {
	First   string
	Last    string
	Sex     string // "M" or "F"
	Birth   util.DateParts
	Address util.Address
	Phone   util.Phone
}

// Name returns the display form used on the form.
func (p Person) Name() string {
	return p.First + " " + p.Last
}

// Provider is the billing provider (box 33).
type Provider struct {
	Name    string
	NPI     string
	TaxID   string
	Address util.Address
	Phone   util.Phone
}

// Referring is the referring physician (box 17). OtherID is the legacy
// non-NPI identifier carried alongside the NPI.
type Referring struct {
	Name    string
	NPI     string
	OtherID string
}

// Facility is the service facility (box 32).
type Facility struct {
	Name     string
	Street   string
	Location string
}

// SecondaryCoverage is the other-insured block (box 9).
type SecondaryCoverage struct {
	Name     string
	PolicyID string
	PlanName string
}

// Parties holds every participant of one claim, generated in dependency
// order so a fixed rng stream yields identical output: patient, insured,
// payer, then providers.
type Parties struct {
	Patient        Person
	PatientAccount string

	Insured     Person
	PolicyID    string
	GroupNumber string

	Secondary SecondaryCoverage

	Payer catalog.Payer

	Provider  Provider
	Referring Referring
	Facility  Facility
}

// GenerateParties builds the participants for a scenario. Optional blocks
// (secondary coverage, referring physician, facility) are generated only
// when the scenario activates them, keeping the rng stream aligned with
// the scenario.
func GenerateParties(sc Scenario, cfg Config, rng *rand.Rand) Parties {
	var p Parties

	p.Patient = generatePerson(cfg, rng, 1, 90)
	p.PatientAccount = util.GenerateAccountNumber(rng)

	if sc.PatientIsInsured {
		p.Insured = p.Patient
	} else {
		p.Insured = generatePerson(cfg, rng, 18, 75)
	}

	p.Payer = catalog.PayerForProgram(sc.Program, rng)
	p.PolicyID = util.Bothify(catalog.PolicyIDPattern(p.Payer.Name), rng)
	if sc.GroupNumber {
		p.GroupNumber = util.Bothify("GRP######", rng)
	}

	if sc.SecondaryInsurance {
		sex := pickSex(rng)
		first, last := util.GeneratePersonNameParts(sex, rng)
		p.Secondary = SecondaryCoverage{
			Name:     first + " " + last,
			PolicyID: util.Bothify("??########", rng),
			PlanName: catalog.PlanTypes[rng.IntN(len(catalog.PlanTypes))],
		}
	}

	p.Provider = Provider{
		Name:    util.GeneratePhysicianName(rng),
		NPI:     util.GenerateNPI(rng),
		TaxID:   util.GenerateTaxID(rng),
		Address: util.GenerateAddress(rng),
		Phone:   util.GeneratePhone(rng),
	}

	if sc.Referral {
		p.Referring = Referring{
			Name:    util.GeneratePhysicianName(rng),
			NPI:     util.GenerateNPI(rng),
			OtherID: util.Bothify("?#####", rng),
		}
	}

	if sc.Facility {
		addr := util.GenerateAddress(rng)
		p.Facility = Facility{
			Name:     util.GenerateFacilityName(rng),
			Street:   addr.Street,
			Location: addr.CityStateZip(),
		}
	}

	return p
}

func generatePerson(cfg Config, rng *rand.Rand, minAge, maxAge int) Person {
	sex := pickSex(rng)
	first, last := util.GeneratePersonNameParts(sex, rng)
	return Person{
		First:   first,
		Last:    last,
		Sex:     sex,
		Birth:   util.SplitDate(util.DateOfBirth(cfg.ReferenceDate, minAge, maxAge, rng)),
		Address: util.GenerateAddress(rng),
		Phone:   util.GeneratePhone(rng),
	}
}

func pickSex(rng *rand.Rand) string {
	if rng.IntN(2) == 0 {
		return "M"
	}
	return "F"
}
