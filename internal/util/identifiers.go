package util

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// npiPrefix is the standard card-issuer prefix prepended to the 9-digit
// identifier when computing the NPI check digit.
const npiPrefix = "80840"

// GenerateNPI generates a 10-digit National Provider Identifier whose check
// digit satisfies the Luhn algorithm with the 80840 prefix. Format-valid
// only; the number is not registered anywhere.
func GenerateNPI(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	// First digit of a real NPI is 1 or 2
	firstNine := fmt.Sprintf("%d%08d", rng.IntN(2)+1, rng.IntN(100000000))
	return firstNine + fmt.Sprintf("%d", npiCheckDigit(firstNine))
}

// npiCheckDigit computes the Luhn check digit over the 80840-prefixed
// 9-digit identifier.
func npiCheckDigit(firstNine string) int {
	digits := npiPrefix + firstNine

	// Luhn: double every second digit from the right; the check digit
	// position is to the right of the last input digit, so the last
	// input digit is always doubled.
	total := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		total += n
		double = !double
	}
	return (10 - total%10) % 10
}

// ValidNPI reports whether id is a 10-digit NPI with a correct check digit.
func ValidNPI(id string) bool {
	if len(id) != 10 {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return npiCheckDigit(id[:9]) == int(id[9]-'0')
}

// GenerateTaxID generates a federal tax ID in EIN format "##-#######".
func GenerateTaxID(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	return fmt.Sprintf("%02d-%07d", rng.IntN(100), rng.IntN(10000000))
}

// GenerateAccountNumber generates a patient account number in the
// "####-###-####" medical record convention.
func GenerateAccountNumber(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	return fmt.Sprintf("%04d-%03d-%04d", rng.IntN(10000), rng.IntN(1000), rng.IntN(10000))
}

// Bothify replaces every '#' in the pattern with a random digit and every
// '?' with a random uppercase letter.
func Bothify(pattern string, rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '#':
			b.WriteByte(byte('0' + rng.IntN(10)))
		case '?':
			b.WriteByte(byte('A' + rng.IntN(26)))
		default:
			b.WriteByte(pattern[i])
		}
	}
	return b.String()
}
