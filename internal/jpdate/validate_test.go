package jpdate

import (
	"fmt"
	"testing"
	"time"
)

func TestIsValidDate(t *testing.T) {
	year := time.Now().Year()
	ymd := func(y, m, d int) string { return fmt.Sprintf("%04d/%02d/%02d", y, m, d) }

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain valid", ymd(year, 1, 15), true},
		{"month zero", ymd(year, 0, 15), false},
		{"month thirteen", ymd(year, 13, 15), false},
		{"day zero", ymd(year, 1, 0), false},
		{"day thirty-two", ymd(year, 1, 32), false},
		{"april thirty-one", ymd(year, 4, 31), false},
		{"window lower bound", ymd(year-10, 6, 1), true},
		{"below window", ymd(year-11, 6, 1), false},
		{"window upper bound", ymd(year+1, 6, 1), true},
		{"above window", ymd(year+2, 6, 1), false},
		{"not canonical", "2024/1/15", false},
		{"wrong separator", "2024-01-15", false},
		{"garbage", "abc", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidDate(tt.in); got != tt.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidDateLeapYears(t *testing.T) {
	// 2024 is a leap year, 2023 is not; both are inside the window for
	// the next several years of test runs.
	if !IsValidDate("2024/02/29") {
		t.Error("2024/02/29 should be valid")
	}
	if IsValidDate("2023/02/29") {
		t.Error("2023/02/29 should be invalid")
	}
	if !IsValidDate("2023/02/28") {
		t.Error("2023/02/28 should be valid")
	}
}
