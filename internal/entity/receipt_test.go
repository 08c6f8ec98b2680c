package entity

import (
	"testing"
)

func TestFieldResultWithCandidate(t *testing.T) {
	fr := FieldResult{Value: "1500", Candidates: []string{"1500"}}

	fr2 := fr.WithCandidate("1800")
	if len(fr2.Candidates) != 2 || fr2.Candidates[1] != "1800" {
		t.Errorf("Candidates = %v, want discovery-order append", fr2.Candidates)
	}
	if len(fr.Candidates) != 1 {
		t.Errorf("original mutated: %v", fr.Candidates)
	}

	fr3 := fr2.WithCandidate("1500")
	if len(fr3.Candidates) != 2 {
		t.Errorf("duplicate accepted: %v", fr3.Candidates)
	}
	fr4 := fr2.WithCandidate("")
	if len(fr4.Candidates) != 2 {
		t.Errorf("empty candidate accepted: %v", fr4.Candidates)
	}
}

func TestReceiptDataFieldAccess(t *testing.T) {
	r := ReceiptData{
		Date:   FieldResult{Value: "2024/01/15"},
		Amount: FieldResult{Value: "1500"},
	}

	if fr, ok := r.Field("date"); !ok || fr.Value != "2024/01/15" {
		t.Errorf("Field(date) = (%+v, %v)", fr, ok)
	}
	if _, ok := r.Field("merchant"); ok {
		t.Error("Field(merchant) should not resolve")
	}

	r2, ok := r.WithField("amount", FieldResult{Value: "1800"})
	if !ok || r2.Amount.Value != "1800" {
		t.Errorf("WithField = (%+v, %v)", r2.Amount, ok)
	}
	if r.Amount.Value != "1500" {
		t.Error("WithField mutated the receiver")
	}
	if _, ok := r.WithField("merchant", FieldResult{}); ok {
		t.Error("WithField(merchant) should not resolve")
	}
}
