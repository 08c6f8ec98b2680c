// Package extract holds the per-field heuristic extractors. Each one is a
// pure function of its input fragments: no shared state, no I/O, safe for
// concurrent use.
package extract

import (
	"github.com/receiptlens/extractor/internal/entity"
)

// FieldExtractor turns a fragment sequence into a single field result.
// Absence is an expected outcome: an empty value with confidence 0,
// never an error.
type FieldExtractor interface {
	Extract(fragments []entity.OCRResult) entity.FieldResult
}

const maxConfidence = 1.0

func capConfidence(c float32) float32 {
	if c > maxConfidence {
		return maxConfidence
	}
	if c < 0 {
		return 0
	}
	return c
}

// appendCandidate adds raw to list preserving discovery order, excluding
// duplicates and empty strings.
func appendCandidate(list []string, raw string) []string {
	if raw == "" {
		return list
	}
	for _, c := range list {
		if c == raw {
			return list
		}
	}
	return append(list, raw)
}
