package extract

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/receiptlens/extractor/internal/common"
	"github.com/receiptlens/extractor/internal/entity"
	"github.com/receiptlens/extractor/internal/textnorm"
)

// entityMarkers is the fixed suffix/infix set that tags a fragment as a
// business-entity name: legal-form markers plus common storefront types.
var entityMarkers = []string{
	"株式会社",
	"有限会社",
	"合同会社",
	"(株)",
	"(有)",
	"カフェ",
	"喫茶",
	"薬局",
	"商店",
	"ストア",
	"マート",
	"レストラン",
	"食堂",
	"居酒屋",
	"書店",
}

// Confidence shaping: marker matches must outrank heuristic
// non-numeric-run matches.
const (
	markerConfidenceBoost = 0.15
	heuristicScale        = 0.7
)

// PayeeExtractor scores fragments structurally for business-entity names.
type PayeeExtractor struct {
	cfg common.ExtractConfig
}

func NewPayeeExtractor(cfg common.ExtractConfig) *PayeeExtractor {
	return &PayeeExtractor{cfg: cfg}
}

type payeeCandidate struct {
	text       string
	confidence float32
	hasMarker  bool
	bbox       entity.BBox
}

func (e *PayeeExtractor) Extract(fragments []entity.OCRResult) entity.FieldResult {
	var result entity.FieldResult
	var candidates []payeeCandidate

	for i := range fragments {
		frag := &fragments[i]
		text := textnorm.Fold(frag.Text)
		if !e.qualifies(text) {
			continue
		}
		result.Candidates = appendCandidate(result.Candidates, text)
		candidates = append(candidates, payeeCandidate{
			text:       text,
			confidence: frag.Confidence,
			hasMarker:  hasEntityMarker(text),
			bbox:       frag.BBox,
		})
	}
	if len(candidates) == 0 {
		return result
	}

	if best, ok := bestMarkerCandidate(candidates); ok {
		result.Value = best.text
		result.Confidence = capConfidence(best.confidence + markerConfidenceBoost)
		bbox := best.bbox
		result.BBox = &bbox
		return result
	}

	// No fragment looks like a complete entity name on its own: join
	// vertically adjacent heuristic fragments in reading order.
	if joined, conf, ok := e.joinAdjacent(candidates); ok {
		result.Value = joined
		result.Confidence = capConfidence(conf * heuristicScale)
		result.Candidates = appendCandidate(result.Candidates, joined)
		return result
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.confidence > best.confidence {
			best = c
		}
	}
	result.Value = best.text
	result.Confidence = capConfidence(best.confidence * heuristicScale)
	bbox := best.bbox
	result.BBox = &bbox
	return result
}

// qualifies applies the outright rejections first: purely numeric or
// currency-formatted fragments and fragments below the minimum viable
// business-name length never qualify.
func (e *PayeeExtractor) qualifies(text string) bool {
	if text == "" || textnorm.IsNumericOnly(text) {
		return false
	}
	if utf8.RuneCountInString(text) < e.cfg.PayeeMinLength {
		return false
	}
	if hasEntityMarker(text) {
		return true
	}
	return !textnorm.HasDigit(text) && !textnorm.HasCurrencyMarker(text)
}

func hasEntityMarker(text string) bool {
	for _, m := range entityMarkers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func bestMarkerCandidate(candidates []payeeCandidate) (payeeCandidate, bool) {
	var best payeeCandidate
	found := false
	for _, c := range candidates {
		if !c.hasMarker {
			continue
		}
		if !found || c.confidence > best.confidence {
			best = c
			found = true
		}
	}
	return best, found
}

// joinAdjacent concatenates heuristic candidates whose bounding boxes sit
// within the vertical adjacency threshold, in reading order. Needs at
// least two adjacent fragments to produce a join.
func (e *PayeeExtractor) joinAdjacent(candidates []payeeCandidate) (string, float32, bool) {
	if len(candidates) < 2 {
		return "", 0, false
	}
	ordered := make([]payeeCandidate, len(candidates))
	copy(ordered, candidates)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].bbox.Y < ordered[j].bbox.Y
	})

	run := []payeeCandidate{ordered[0]}
	for _, c := range ordered[1:] {
		prev := run[len(run)-1]
		gap := c.bbox.Y - (prev.bbox.Y + prev.bbox.Height)
		if math.Abs(gap) <= e.cfg.PayeeAdjacency {
			run = append(run, c)
			continue
		}
		if len(run) >= 2 {
			break
		}
		run = []payeeCandidate{c}
	}
	if len(run) < 2 {
		return "", 0, false
	}

	var parts []string
	var minConf float32 = 1.0
	for _, c := range run {
		parts = append(parts, c.text)
		if c.confidence < minConf {
			minConf = c.confidence
		}
	}
	return strings.Join(parts, ""), minConf, true
}
