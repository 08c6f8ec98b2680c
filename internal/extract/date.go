package extract

import (
	"github.com/receiptlens/extractor/internal/entity"
	"github.com/receiptlens/extractor/internal/jpdate"
)

// DateExtractor scans every fragment for a date pattern, normalizes hits
// to YYYY/MM/DD and keeps the first one that survives plausibility
// validation. All raw date-like substrings accumulate as candidates.
type DateExtractor struct{}

func NewDateExtractor() *DateExtractor {
	return &DateExtractor{}
}

func (e *DateExtractor) Extract(fragments []entity.OCRResult) entity.FieldResult {
	var result entity.FieldResult

	for i := range fragments {
		frag := &fragments[i]
		raw, normalized, ok := jpdate.Extract(frag.Text)
		if !ok {
			continue
		}
		result.Candidates = appendCandidate(result.Candidates, raw)
		if result.Value != "" || !jpdate.IsValidDate(normalized) {
			continue
		}
		result.Value = normalized
		result.Confidence = capConfidence(frag.Confidence)
		bbox := frag.BBox
		result.BBox = &bbox
	}
	return result
}
