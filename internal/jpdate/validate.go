package jpdate

import (
	"regexp"
	"strconv"
	"time"
)

var reCanonical = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})$`)

// Plausibility window for receipt dates: receipts are neither decades
// old nor far future-dated.
const (
	yearsBack    = 10
	yearsForward = 1
)

// IsValidDate reports whether s is canonical YYYY/MM/DD text naming a
// real calendar day (leap years honored) within the plausibility window
// [currentYear-10, currentYear+1]. Month or day 00 is always invalid.
func IsValidDate(s string) bool {
	m := reCanonical.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > daysInMonth(year, month) {
		return false
	}
	now := time.Now().Year()
	return year >= now-yearsBack && year <= now+yearsForward
}

func daysInMonth(year, month int) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
