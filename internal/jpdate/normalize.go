package jpdate

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/receiptlens/extractor/internal/textnorm"
)

// Recognized date shapes, in priority order. Era long form must run
// before the 年月日 western form: 令和16年… would otherwise be read as
// the western year 16.
var (
	reEraLong    = regexp.MustCompile(`(令和|平成|昭和|大正|明治)(\d{1,2})年(\d{1,2})月(\d{1,2})日`)
	reEraAbbrev  = regexp.MustCompile(`([RHSTM])(\d{1,2})\.(\d{1,2})\.(\d{1,2})`)
	reWesternJP  = regexp.MustCompile(`(\d{4}|\d{2})年(\d{1,2})月(\d{1,2})日`)
	reWesternSep = regexp.MustCompile(`(\d{4}|\d{2})[/\-.](\d{1,2})[/\-.](\d{1,2})`)
)

// Normalize converts a date-like string into canonical YYYY/MM/DD.
// Recognized forms, in priority order: era long form (令和6年1月15日),
// era abbreviated form (R6.1.15), western with / - . separators or 年月日.
// Two-digit western years are read as 2000+yy; receipts are recent.
// Unrecognized input is returned unchanged — callers distinguish the two
// outcomes by re-validating with IsValidDate.
func Normalize(raw string) string {
	if _, normalized, ok := Extract(raw); ok {
		return normalized
	}
	return raw
}

// Extract finds the first date-like substring in s and returns the raw
// match together with its canonical YYYY/MM/DD form. The raw match is
// reported in the folded representation of s (full-width digits narrowed).
func Extract(s string) (raw, normalized string, ok bool) {
	folded := textnorm.Fold(s)

	if m := reEraLong.FindStringSubmatch(folded); m != nil {
		era, found := lookupEra(m[1])
		if found {
			year := era.StartYear + atoi(m[2]) - 1
			return m[0], formatDate(year, atoi(m[3]), atoi(m[4])), true
		}
	}
	if m := reEraAbbrev.FindStringSubmatch(folded); m != nil {
		era, found := lookupEra(m[1])
		if found {
			year := era.StartYear + atoi(m[2]) - 1
			return m[0], formatDate(year, atoi(m[3]), atoi(m[4])), true
		}
	}
	if m := reWesternJP.FindStringSubmatch(folded); m != nil {
		return m[0], formatDate(westernYear(m[1]), atoi(m[2]), atoi(m[3])), true
	}
	if m := reWesternSep.FindStringSubmatch(folded); m != nil {
		return m[0], formatDate(westernYear(m[1]), atoi(m[2]), atoi(m[3])), true
	}
	return "", "", false
}

func westernYear(s string) int {
	y := atoi(s)
	if len(s) == 2 {
		return 2000 + y
	}
	return y
}

func formatDate(year, month, day int) string {
	return fmt.Sprintf("%04d/%02d/%02d", year, month, day)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
