package extract

import (
	"strings"

	"github.com/receiptlens/extractor/constants"
	"github.com/receiptlens/extractor/internal/common"
	"github.com/receiptlens/extractor/internal/entity"
	"github.com/receiptlens/extractor/internal/textnorm"
)

// usageRules maps category keywords onto the fixed category table.
// Rules are evaluated in order; the first rule with a keyword hit in any
// fragment wins.
var usageRules = []struct {
	keywords []string
	category constants.Category
}{
	{[]string{"会議", "ミーティング", "打ち合わせ", "打合せ"}, constants.Meetings},
	{[]string{"交通", "タクシー", "電車", "バス", "駐車", "高速", "ガソリン"}, constants.Transport},
	{[]string{"食事", "飲食", "弁当", "ランチ", "定食"}, constants.Meals},
	{[]string{"研修", "セミナー", "講習", "受講"}, constants.Training},
	{[]string{"文具", "文房具", "事務用品", "コピー用紙"}, constants.Supplies},
	{[]string{"接待", "会食", "懇親"}, constants.Entertainment},
}

// businessTypeRules infers a category from payee-style entity markers
// when no keyword resolves.
var businessTypeRules = []struct {
	markers  []string
	category constants.Category
}{
	{[]string{"カフェ", "喫茶", "レストラン", "食堂", "居酒屋"}, constants.Meals},
	{[]string{"薬局", "商店", "ストア", "マート", "書店"}, constants.Supplies},
	{[]string{"タクシー", "交通"}, constants.Transport},
}

// Stage confidences. Keyword hits outrank business-type inference, and
// both floors stay above the fallback confidence.
const (
	keywordScale     = 0.9
	keywordMinimum   = 0.5
	inferenceScale   = 0.6
	inferenceMinimum = 0.3
)

// UsageExtractor classifies the expense category. Unlike the other three
// fields it never returns empty: absent any signal it resolves to the
// fallback category.
type UsageExtractor struct {
	cfg common.ExtractConfig
}

func NewUsageExtractor(cfg common.ExtractConfig) *UsageExtractor {
	return &UsageExtractor{cfg: cfg}
}

func (e *UsageExtractor) Extract(fragments []entity.OCRResult) entity.FieldResult {
	var result entity.FieldResult

	// Stage 1: keyword lookup, rule order decides priority.
	for _, rule := range usageRules {
		frag, ok := matchAny(fragments, rule.keywords)
		if !ok {
			continue
		}
		result.Candidates = appendCandidate(result.Candidates, string(rule.category))
		if result.Value == "" {
			result.Value = string(rule.category)
			result.Confidence = stageConfidence(frag.Confidence, keywordScale, keywordMinimum)
			bbox := frag.BBox
			result.BBox = &bbox
		}
	}
	if result.Value != "" {
		return result
	}

	// Stage 2: business-type inference from entity markers.
	for _, rule := range businessTypeRules {
		frag, ok := matchAny(fragments, rule.markers)
		if !ok {
			continue
		}
		result.Candidates = appendCandidate(result.Candidates, string(rule.category))
		if result.Value == "" {
			result.Value = string(rule.category)
			result.Confidence = stageConfidence(frag.Confidence, inferenceScale, inferenceMinimum)
			bbox := frag.BBox
			result.BBox = &bbox
		}
	}
	if result.Value != "" {
		return result
	}

	// Stage 3: mandatory fallback.
	result.Value = string(constants.FallbackCategory)
	result.Confidence = e.cfg.FallbackConfidence
	result.Candidates = appendCandidate(result.Candidates, string(constants.FallbackCategory))
	return result
}

func matchAny(fragments []entity.OCRResult, terms []string) (*entity.OCRResult, bool) {
	for i := range fragments {
		folded := textnorm.Fold(fragments[i].Text)
		for _, term := range terms {
			if strings.Contains(folded, term) {
				return &fragments[i], true
			}
		}
	}
	return nil, false
}

func stageConfidence(ocr float32, scale, minimum float32) float32 {
	c := ocr * scale
	if c < minimum {
		c = minimum
	}
	return capConfidence(c)
}
