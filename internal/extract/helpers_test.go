package extract

import (
	"github.com/receiptlens/extractor/internal/common"
	"github.com/receiptlens/extractor/internal/entity"
)

func testConfig() common.ExtractConfig {
	return common.ExtractConfig{
		TotalKeywordBoost:  0.10,
		PayeeAdjacency:     12.0,
		PayeeMinLength:     3,
		FallbackConfidence: 0.10,
	}
}

func frag(text string, confidence float32) entity.OCRResult {
	return entity.OCRResult{
		Text:       text,
		Confidence: confidence,
		BBox:       entity.BBox{X: 0, Y: 0, Width: 100, Height: 20},
	}
}

func fragAt(text string, confidence float32, y float64) entity.OCRResult {
	r := frag(text, confidence)
	r.BBox.Y = y
	return r
}
