package edgecases

import "math/rand/v2"

var specialCharFirstNamesMale = []string{
	"Jean-Pierre", "François", "José", "Ángel", "Sébastien",
	"Søren", "Björn", "Łukasz", "Jürgen", "Miguel-Ángel",
}

var specialCharFirstNamesFemale = []string{
	"Marie-Claire", "Françoise", "Éléonore", "María", "Anaïs",
	"Siân", "Zoë", "Renée", "Hélène", "Gráinne",
}

var specialCharLastNames = []string{
	"Müller-Schmidt", "O'Connor", "D'Agostino", "García-López",
	"Nguyễn", "Østergaard", "Çelik", "St. Pierre",
	"González", "Pérez-Rodríguez",
}

// GenerateSpecialCharName generates a person name with accented characters,
// apostrophes and hyphens.
func GenerateSpecialCharName(sex string, rng *rand.Rand) string {
	var firstName string
	if sex == "F" {
		firstName = specialCharFirstNamesFemale[rng.IntN(len(specialCharFirstNamesFemale))]
	} else {
		firstName = specialCharFirstNamesMale[rng.IntN(len(specialCharFirstNamesMale))]
	}
	lastName := specialCharLastNames[rng.IntN(len(specialCharLastNames))]
	return firstName + " " + lastName
}
