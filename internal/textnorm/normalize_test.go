package textnorm

import (
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full width digits", "１５００", "1500"},
		{"full width yen", "￥１，５００", "¥1,500"},
		{"half width katakana", "ｶﾌｪ", "カフェ"},
		{"kanji untouched", "合計", "合計"},
		{"whitespace collapsed", "合計   ¥1,500", "合計 ¥1,500"},
		{"tabs", "合計\t¥1,500", "合計 ¥1,500"},
		{"trimmed", "  2024/01/15  ", "2024/01/15"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsNumericOnly(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"123456", true},
		{"1,500", true},
		{"¥1,500", true},
		{"2000円", true},
		{"１５００", true},
		{"合計 1500", false},
		{"株式会社", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsNumericOnly(tt.in); got != tt.want {
			t.Errorf("IsNumericOnly(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHasDigitAndCurrency(t *testing.T) {
	if !HasDigit("１２３") {
		t.Error("full-width digits should count as digits")
	}
	if HasDigit("株式会社") {
		t.Error("kanji-only text has no digits")
	}
	if !HasCurrencyMarker("￥500") {
		t.Error("full-width yen sign should count as a currency marker")
	}
	if !HasCurrencyMarker("500円") {
		t.Error("円 should count as a currency marker")
	}
	if HasCurrencyMarker("カフェ") {
		t.Error("カフェ has no currency marker")
	}
}
