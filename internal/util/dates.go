package util

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DateParts is a calendar date split into the MM/DD/YY component boxes the
// form uses everywhere (boxes 3, 11a, 14-18, 24a).
type DateParts struct {
	Month string // "01".."12"
	Day   string // "01".."31"
	Year  string // two-digit year
}

// SplitDate converts a time.Time into form date parts.
func SplitDate(t time.Time) DateParts {
	return DateParts{
		Month: fmt.Sprintf("%02d", int(t.Month())),
		Day:   fmt.Sprintf("%02d", t.Day()),
		Year:  fmt.Sprintf("%02d", t.Year()%100),
	}
}

// MMDDYY renders the parts as "MM/DD/YY" for signature date lines.
func (d DateParts) MMDDYY() string {
	return d.Month + "/" + d.Day + "/" + d.Year
}

// IsZero reports whether no date was set.
func (d DateParts) IsZero() bool {
	return d.Month == "" && d.Day == "" && d.Year == ""
}

// DateBetween generates a random date in [from, to] (whole days, inclusive).
// from must not be after to; callers own that ordering contract.
func DateBetween(from, to time.Time, rng *rand.Rand) time.Time {
	if rng == nil {
		rng = defaultRNG
	}
	days := int(to.Sub(from).Hours()/24) + 1
	if days < 1 {
		days = 1
	}
	return from.AddDate(0, 0, rng.IntN(days))
}

// DateOfBirth generates a birth date for someone between minAge and maxAge
// years old relative to the reference date.
func DateOfBirth(reference time.Time, minAge, maxAge int, rng *rand.Rand) time.Time {
	if rng == nil {
		rng = defaultRNG
	}
	years := minAge + rng.IntN(maxAge-minAge+1)
	base := reference.AddDate(-years, 0, 0)
	// Back off up to ~11 months so birthdays spread across the year
	return base.AddDate(0, 0, -rng.IntN(330))
}
