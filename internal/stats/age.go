package stats

import (
	"time"

	"github.com/KarloVrd/FlunkyStats/internal/config"
)

// AgeAt returns the completed years between a dd.mm.yyyy birth date and
// the reference date. The second return value is false for the N/A and
// "0" placeholders, empty strings, and dates that do not parse; such
// participants are excluded from age-based statistics.
//
// The rule is calendar-year subtraction, minus one when the birthday has
// not yet occurred by the reference date: birth 15.03.1995 against
// reference 2024-09-20 yields 29.
func AgeAt(birthDate string, reference time.Time) (int, bool) {
	switch birthDate {
	case "", config.NASymbol, "0":
		return 0, false
	}

	born, err := time.Parse(config.BirthDateLayout, birthDate)
	if err != nil {
		return 0, false
	}

	age := reference.Year() - born.Year()
	if reference.Month() < born.Month() ||
		(reference.Month() == born.Month() && reference.Day() < born.Day()) {
		age--
	}
	return age, true
}
