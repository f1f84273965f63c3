package util

import (
	"fmt"
	"math/rand/v2"
)

var (
	streetNames = []string{
		"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington", "Lake",
		"Hill", "Park", "Walnut", "Spring", "River", "Highland", "Sunset", "Ridge",
		"Jefferson", "Lincoln", "Madison", "Franklin", "Church", "Mill", "Prospect", "Meadow",
	}

	streetSuffixes = []string{"St", "Ave", "Blvd", "Dr", "Ln", "Rd", "Ct", "Way"}

	cities = []string{
		"Springfield", "Riverside", "Franklin", "Greenville", "Bristol", "Clinton",
		"Fairview", "Salem", "Madison", "Georgetown", "Arlington", "Ashland",
		"Burlington", "Manchester", "Milton", "Newport", "Oxford", "Clayton",
		"Lexington", "Milford", "Winchester", "Dayton", "Hudson", "Kingston",
	}

	// USStates holds the two-letter abbreviations for all 50 states,
	// also used for the box 10 accident-place value.
	USStates = []string{
		"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
		"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD",
		"MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
		"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC",
		"SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
	}
)

// Address is a US postal address split the way the form boxes expect it.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
}

// Phone is a US phone number with the area code separated, matching the
// split boxes on the form (box 5 and box 33).
type Phone struct {
	AreaCode string // 3 digits
	Number   string // "###-####"
}

// GenerateAddress generates a random US address.
func GenerateAddress(rng *rand.Rand) Address {
	if rng == nil {
		rng = defaultRNG
	}
	return Address{
		Street: fmt.Sprintf("%d %s %s",
			rng.IntN(9900)+100,
			streetNames[rng.IntN(len(streetNames))],
			streetSuffixes[rng.IntN(len(streetSuffixes))]),
		City:  cities[rng.IntN(len(cities))],
		State: USStates[rng.IntN(len(USStates))],
		Zip:   fmt.Sprintf("%05d", rng.IntN(89999)+10000),
	}
}

// OneLine renders the address as a single comma-separated line (box 33 style).
func (a Address) OneLine() string {
	return fmt.Sprintf("%s, %s, %s %s", a.Street, a.City, a.State, a.Zip)
}

// CityStateZip renders the city/state/zip portion (box 32 location line).
func (a Address) CityStateZip() string {
	return fmt.Sprintf("%s, %s %s", a.City, a.State, a.Zip)
}

// GeneratePhone generates a random phone number with a valid-looking area code.
func GeneratePhone(rng *rand.Rand) Phone {
	if rng == nil {
		rng = defaultRNG
	}
	return Phone{
		AreaCode: fmt.Sprintf("%d", rng.IntN(900)+100),
		Number:   fmt.Sprintf("%03d-%04d", rng.IntN(900)+100, rng.IntN(9000)+1000),
	}
}

// GenerateAccidentState picks the state abbreviation recorded in box 10
// when an accident flag is set.
func GenerateAccidentState(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	return USStates[rng.IntN(len(USStates))]
}
