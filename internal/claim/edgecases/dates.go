package edgecases

import (
	"math/rand/v2"
	"time"

	"github.com/mrsinham/claimforge/internal/util"
)

// GenerateOldBirthDate generates a very old birth date (1900-1950). These
// exercise the two-digit year ambiguity in the date boxes.
func GenerateOldBirthDate(rng *rand.Rand) util.DateParts {
	year := 1900 + rng.IntN(51)
	month := 1 + rng.IntN(12)
	day := 1 + rng.IntN(28)
	return util.SplitDate(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}
