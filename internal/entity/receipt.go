package entity

import (
	"time"
)

// FieldResult is the outcome of extracting one receipt field.
// An empty Value with Confidence 0 means "not found"; that is an expected
// outcome for date/payee/amount, never an error.
type FieldResult struct {
	Value      string   `json:"value"`
	Confidence float32  `json:"confidence"`
	Candidates []string `json:"candidates,omitempty"`
	BBox       *BBox    `json:"bbox,omitempty"`
}

// Found reports whether the field resolved to a value.
func (f FieldResult) Found() bool {
	return f.Value != ""
}

// WithCandidate returns a copy of f with raw appended to its candidate
// list unless already present. Discovery order is preserved.
func (f FieldResult) WithCandidate(raw string) FieldResult {
	if raw == "" {
		return f
	}
	for _, c := range f.Candidates {
		if c == raw {
			return f
		}
	}
	out := f
	out.Candidates = append(append([]string(nil), f.Candidates...), raw)
	return out
}

// Metadata carries extraction bookkeeping for a ReceiptData.
type Metadata struct {
	ProcessedAt time.Time `json:"processed_at"`
	ImageHash   string    `json:"image_hash,omitempty"`
}

// ReceiptData is the assembled result of one extraction pass: exactly four
// fields plus metadata. Usage is never empty; it resolves at least to the
// fallback category.
type ReceiptData struct {
	Date     FieldResult `json:"date"`
	Payee    FieldResult `json:"payee"`
	Amount   FieldResult `json:"amount"`
	Usage    FieldResult `json:"usage"`
	Metadata Metadata    `json:"metadata"`
}

// Field returns the named field result. ok is false for unknown names.
func (r ReceiptData) Field(name string) (FieldResult, bool) {
	switch name {
	case "date":
		return r.Date, true
	case "payee":
		return r.Payee, true
	case "amount":
		return r.Amount, true
	case "usage":
		return r.Usage, true
	}
	return FieldResult{}, false
}

// WithField returns a copy of r with the named field replaced.
// Unknown names return r unchanged with ok=false.
func (r ReceiptData) WithField(name string, fr FieldResult) (ReceiptData, bool) {
	out := r
	switch name {
	case "date":
		out.Date = fr
	case "payee":
		out.Payee = fr
	case "amount":
		out.Amount = fr
	case "usage":
		out.Usage = fr
	default:
		return r, false
	}
	return out, true
}
