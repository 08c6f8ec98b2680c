// Package jpdate normalizes Japanese receipt dates — era (和暦) and
// Western forms — into canonical YYYY/MM/DD text.
package jpdate

import (
	"time"

	"github.com/receiptlens/extractor/internal/common"
)

// Era is one epoch of the Japanese calendar.
type Era struct {
	Name      string // canonical kanji name, e.g. 令和
	Abbrev    string // single-letter abbreviation, e.g. R
	StartYear int    // Western year of era year 1
}

// eras is ordered newest first. Era year 1 maps exactly to StartYear,
// so westernYear = StartYear + eraYear - 1.
var eras = []Era{
	{Name: "令和", Abbrev: "R", StartYear: 2019},
	{Name: "平成", Abbrev: "H", StartYear: 1989},
	{Name: "昭和", Abbrev: "S", StartYear: 1926},
	{Name: "大正", Abbrev: "T", StartYear: 1912},
	{Name: "明治", Abbrev: "M", StartYear: 1868},
}

// Eras returns a copy of the era table, newest first.
func Eras() []Era {
	out := make([]Era, len(eras))
	copy(out, eras)
	return out
}

func lookupEra(key string) (Era, bool) {
	for _, e := range eras {
		if key == e.Name || key == e.Abbrev {
			return e, true
		}
	}
	return Era{}, false
}

// ConvertEraYear converts an era year to a Western year. The era is
// matched by exact name or abbreviation; anything else is a contract
// violation surfaced as an UnknownEraError.
func ConvertEraYear(era string, year int) (int, error) {
	e, ok := lookupEra(era)
	if !ok {
		return 0, common.NewUnknownEraError(era)
	}
	return e.StartYear + year - 1, nil
}

// CurrentEra resolves the era active today: the most recent epoch whose
// start year is not after the current year.
func CurrentEra() (string, int) {
	return eraForYear(time.Now().Year())
}

func eraForYear(year int) (string, int) {
	for _, e := range eras {
		if e.StartYear <= year {
			return e.Name, year - e.StartYear + 1
		}
	}
	// Before 明治: report against the oldest epoch.
	last := eras[len(eras)-1]
	return last.Name, year - last.StartYear + 1
}
