// Package ingest decodes and validates OCR result documents at the input
// boundary before fragments reach the extraction engine.
package ingest

// BuildOCRResultsJSONSchema returns a JSON-Schema (draft 2020-12 subset)
// for the OCR result document: an array of fragments with text, bbox,
// confidence, and optional alternate candidates.
func BuildOCRResultsJSONSchema() map[string]any {
	bbox := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"x":      map[string]any{"type": "number"},
			"y":      map[string]any{"type": "number"},
			"width":  map[string]any{"type": "number", "minimum": 0},
			"height": map[string]any{"type": "number", "minimum": 0},
		},
		"required": []string{"x", "y", "width", "height"},
	}

	fragment := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"text":       map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"bbox":       bbox,
			"candidates": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"text", "confidence", "bbox"},
	}

	return map[string]any{
		"type":  "array",
		"items": fragment,
	}
}
