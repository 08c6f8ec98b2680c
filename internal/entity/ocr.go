package entity

// BBox is the location of a recognized fragment on the source image.
// It is used for ordering and adjacency checks only, never geometry math.
type BBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OCRResult is a single recognized text fragment supplied by the OCR
// collaborator. Immutable once created; extractors never modify it.
type OCRResult struct {
	Text       string   `json:"text"`
	Confidence float32  `json:"confidence"`
	BBox       BBox     `json:"bbox"`
	Candidates []string `json:"candidates,omitempty"`
}
