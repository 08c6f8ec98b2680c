package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/receiptlens/extractor/internal/common"
	"github.com/receiptlens/extractor/internal/entity"
	"github.com/receiptlens/extractor/internal/textnorm"
)

// Monetary substrings: leading yen sign or trailing 円, with optional
// thousands separators. Matching runs on folded text so full-width
// digits and ￥ are already narrowed.
var (
	reYenLead  = regexp.MustCompile(`¥\s?(\d[\d,]*)`)
	reYenTrail = regexp.MustCompile(`(\d[\d,]*)\s?円`)
)

// Keyword priority weights. Every numeric candidate stays eligible;
// keywords only rank them. 税込/税別 are deliberately neutral.
const (
	priorityTotal    = 100 // 合計
	priorityBill     = 90  // お会計
	priorityDefault  = 50
	prioritySubtotal = 20 // 小計
)

// AmountExtractor locates monetary substrings and ranks them by keyword
// priority, then numeric magnitude, then input order.
type AmountExtractor struct {
	cfg common.ExtractConfig
}

func NewAmountExtractor(cfg common.ExtractConfig) *AmountExtractor {
	return &AmountExtractor{cfg: cfg}
}

type amountCandidate struct {
	digits   string
	amount   int64
	priority int
	fragIdx  int
	hasTotal bool
}

func (e *AmountExtractor) Extract(fragments []entity.OCRResult) entity.FieldResult {
	var result entity.FieldResult
	var best *amountCandidate

	for i := range fragments {
		folded := textnorm.Fold(fragments[i].Text)
		priority := fragmentPriority(folded)
		hasTotal := strings.Contains(folded, "合計")

		for _, raw := range monetaryMatches(folded) {
			digits, ok := normalizeAmount(raw)
			if !ok {
				continue
			}
			result.Candidates = appendCandidate(result.Candidates, digits)

			amount, err := strconv.ParseInt(digits, 10, 64)
			if err != nil {
				continue
			}
			cand := amountCandidate{
				digits:   digits,
				amount:   amount,
				priority: priority,
				fragIdx:  i,
				hasTotal: hasTotal,
			}
			if best == nil || betterAmount(cand, *best) {
				c := cand
				best = &c
			}
		}
	}

	if best == nil {
		return result
	}

	frag := fragments[best.fragIdx]
	confidence := frag.Confidence
	if best.hasTotal {
		confidence += e.cfg.TotalKeywordBoost
	}
	result.Value = best.digits
	result.Confidence = capConfidence(confidence)
	bbox := frag.BBox
	result.BBox = &bbox
	return result
}

// fragmentPriority is the keyword scoring function for a fragment's text.
// Kept as one explicit function so the ranking rules stay independently
// testable.
func fragmentPriority(folded string) int {
	switch {
	case strings.Contains(folded, "合計"):
		return priorityTotal
	case strings.Contains(folded, "お会計"):
		return priorityBill
	case strings.Contains(folded, "小計"):
		return prioritySubtotal
	}
	return priorityDefault
}

// betterAmount reports whether a outranks b: higher priority wins, ties
// break toward larger magnitude (totals are typically the largest line
// amount), remaining ties keep input order.
func betterAmount(a, b amountCandidate) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	return a.amount > b.amount
}

func monetaryMatches(folded string) []string {
	var out []string
	for _, m := range reYenLead.FindAllStringSubmatch(folded, -1) {
		out = append(out, m[1])
	}
	for _, m := range reYenTrail.FindAllStringSubmatch(folded, -1) {
		out = append(out, m[1])
	}
	return out
}

// normalizeAmount strips thousands separators and verifies the remainder
// is a pure non-negative integer string.
func normalizeAmount(raw string) (string, bool) {
	digits := strings.ReplaceAll(raw, ",", "")
	if digits == "" {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return digits, true
}
