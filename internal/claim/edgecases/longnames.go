package edgecases

import (
	"math/rand/v2"
	"strings"
)

// NameMaxLength is the longest name the form boxes accommodate.
const NameMaxLength = 40

var longLastNames = []string{
	"ALEXANDROPOULOSWILLIAMSONBERG",
	"VANDENBERGHEMONTGOMERYSMITH",
	"CHRISTODOULOPOULOSSMITHBAUER",
	"SCHWARZENEGGERBAUERWILLIAMS",
	"MCCARTHYWILKINSONTHOMPSON",
}

var longFirstNames = []string{
	"ALEXANDERMAXIMILIANWILLIAM",
	"CHRISTOPHERJOHNATHANMICHAEL",
	"ELIZABETHCATHERINEANNAMARIE",
	"MARGARETISABELLAVICTORIAJANE",
	"BENJAMINFREDERICKNATHANJOHN",
}

// GenerateLongName generates a person name at or near the box limit.
func GenerateLongName(rng *rand.Rand) string {
	name := longFirstNames[rng.IntN(len(longFirstNames))] + " " +
		longLastNames[rng.IntN(len(longLastNames))]
	if len(name) > NameMaxLength {
		name = name[:NameMaxLength]
	}
	return name
}

// GenerateLongID generates a member ID at maximum length.
func GenerateLongID(rng *rand.Rand) string {
	chars := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	var sb strings.Builder
	for i := 0; i < NameMaxLength; i++ {
		sb.WriteByte(chars[rng.IntN(len(chars))])
	}
	return sb.String()
}
