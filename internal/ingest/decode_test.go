package ingest

import (
	"testing"
)

func TestDecodeOCRResults(t *testing.T) {
	data := []byte(`[
		{
			"text": "合計 ¥1,500",
			"confidence": 0.93,
			"bbox": {"x": 10, "y": 120, "width": 180, "height": 24},
			"candidates": ["合計 ¥1,500", "合計 ¥1,600"]
		},
		{
			"text": "株式会社テストカンパニー",
			"confidence": 0.88,
			"bbox": {"x": 10, "y": 8, "width": 300, "height": 30}
		}
	]`)

	fragments, err := DecodeOCRResults(data)
	if err != nil {
		t.Fatalf("DecodeOCRResults error = %v", err)
	}
	if len(fragments) != 2 {
		t.Fatalf("got %d fragments, want 2", len(fragments))
	}
	if fragments[0].Text != "合計 ¥1,500" {
		t.Errorf("text = %q", fragments[0].Text)
	}
	if fragments[0].Confidence != 0.93 {
		t.Errorf("confidence = %v", fragments[0].Confidence)
	}
	if fragments[0].BBox.Y != 120 {
		t.Errorf("bbox.y = %v", fragments[0].BBox.Y)
	}
	if len(fragments[0].Candidates) != 2 {
		t.Errorf("candidates = %v", fragments[0].Candidates)
	}
}

func TestDecodeOCRResultsEmptyArray(t *testing.T) {
	fragments, err := DecodeOCRResults([]byte(`[]`))
	if err != nil {
		t.Fatalf("DecodeOCRResults error = %v", err)
	}
	if len(fragments) != 0 {
		t.Errorf("got %d fragments, want 0", len(fragments))
	}
}

func TestDecodeOCRResultsRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not an array", `{"text": "x"}`},
		{"missing bbox", `[{"text": "x", "confidence": 0.5}]`},
		{"confidence above one", `[{"text": "x", "confidence": 1.5, "bbox": {"x":0,"y":0,"width":1,"height":1}}]`},
		{"negative width", `[{"text": "x", "confidence": 0.5, "bbox": {"x":0,"y":0,"width":-1,"height":1}}]`},
		{"unknown key", `[{"text": "x", "confidence": 0.5, "bbox": {"x":0,"y":0,"width":1,"height":1}, "extra": true}]`},
		{"not json", `not json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeOCRResults([]byte(tt.data)); err == nil {
				t.Errorf("expected error for %s", tt.name)
			}
		})
	}
}
