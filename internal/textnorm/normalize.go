// Package textnorm folds OCR text into a shape the field heuristics can
// match: characters mapped to their canonical width, whitespace collapsed.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

var (
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
)

// Fold maps runes to canonical width (０→0, ￥→¥, ｶ→カ) and collapses
// whitespace runs. OCR engines emit an arbitrary mix of full-width and
// half-width forms; the extraction regexes assume the canonical one.
func Fold(s string) string {
	if s == "" {
		return s
	}
	s = width.Fold.String(s)
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsNumericOnly reports whether s consists solely of digits, separators,
// and currency markers after folding.
func IsNumericOnly(s string) bool {
	s = Fold(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r == ',' || r == '.' || r == ' ' || r == '-':
		case r == '¥' || r == '円':
		default:
			return false
		}
	}
	return true
}

// HasDigit reports whether s contains a digit in any width form.
func HasDigit(s string) bool {
	for _, r := range width.Fold.String(s) {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

// HasCurrencyMarker reports whether s contains a yen marker.
func HasCurrencyMarker(s string) bool {
	s = width.Fold.String(s)
	return strings.ContainsRune(s, '¥') || strings.ContainsRune(s, '円')
}
