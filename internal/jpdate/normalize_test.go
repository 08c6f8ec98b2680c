package jpdate

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"era long form", "令和6年1月15日", "2024/01/15"},
		{"era long form heisei", "平成31年4月30日", "2019/04/30"},
		{"era abbreviated", "R6.1.15", "2024/01/15"},
		{"era abbreviated heisei", "H31.4.30", "2019/04/30"},
		{"western slash", "2024/1/15", "2024/01/15"},
		{"western slash padded", "2024/01/15", "2024/01/15"},
		{"western dash", "2024-1-15", "2024/01/15"},
		{"western dot", "2024.1.15", "2024/01/15"},
		{"western kanji", "2024年1月15日", "2024/01/15"},
		{"two digit year", "24/1/15", "2024/01/15"},
		{"full width digits", "２０２４／１／１５", "2024/01/15"},
		{"embedded in text", "日付: 2024/1/15 (月)", "2024/01/15"},
		{"unrecognized passthrough", "ポイントカード", "ポイントカード"},
		{"empty passthrough", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"2024/01/15", "令和6年1月15日", "R6.1.15", "2020-2-29"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeEraBeforeWesternKanji(t *testing.T) {
	// A two-digit era year must not be read as a western year.
	if got := Normalize("令和16年1月15日"); got != "2034/01/15" {
		t.Errorf("Normalize(令和16年1月15日) = %q, want 2034/01/15", got)
	}
}

func TestExtract(t *testing.T) {
	raw, normalized, ok := Extract("合計 2024/1/15 ¥1,500")
	if !ok {
		t.Fatal("expected a date match")
	}
	if raw != "2024/1/15" {
		t.Errorf("raw = %q, want 2024/1/15", raw)
	}
	if normalized != "2024/01/15" {
		t.Errorf("normalized = %q, want 2024/01/15", normalized)
	}

	if _, _, ok := Extract("株式会社テストカンパニー"); ok {
		t.Error("expected no date match for a payee fragment")
	}
}
