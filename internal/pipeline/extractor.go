// Package pipeline assembles the per-field extractors into the receipt
// extraction engine.
package pipeline

import (
	"log/slog"
	"time"

	"github.com/receiptlens/extractor/constants"
	"github.com/receiptlens/extractor/internal/common"
	"github.com/receiptlens/extractor/internal/entity"
	"github.com/receiptlens/extractor/internal/extract"
)

// Extractor orchestrates the four field extractors. It holds no mutable
// state: every call is a pure transform of its inputs, so one Extractor
// may serve concurrent callers.
type Extractor struct {
	Logger *slog.Logger
	Date   extract.FieldExtractor
	Payee  extract.FieldExtractor
	Amount extract.FieldExtractor
	Usage  extract.FieldExtractor
}

func NewExtractor(logger *slog.Logger, cfg common.ExtractConfig) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		Logger: logger,
		Date:   extract.NewDateExtractor(),
		Payee:  extract.NewPayeeExtractor(cfg),
		Amount: extract.NewAmountExtractor(cfg),
		Usage:  extract.NewUsageExtractor(cfg),
	}
}

// ExtractReceiptData runs all four extractors independently over the full
// fragment set. imageHash is a caller-supplied content fingerprint of the
// source image; empty is an accepted placeholder. An empty fragment
// sequence yields empty date/payee/amount and the fallback usage category.
func (e *Extractor) ExtractReceiptData(fragments []entity.OCRResult, imageHash string) entity.ReceiptData {
	data := entity.ReceiptData{
		Date:   e.Date.Extract(fragments),
		Payee:  e.Payee.Extract(fragments),
		Amount: e.Amount.Extract(fragments),
		Usage:  e.Usage.Extract(fragments),
		Metadata: entity.Metadata{
			ProcessedAt: time.Now().UTC(),
			ImageHash:   imageHash,
		},
	}

	e.Logger.Info("extract.ok",
		"fragments", len(fragments),
		"date", data.Date.Value,
		"payee", data.Payee.Value,
		"amount", data.Amount.Value,
		"usage", data.Usage.Value,
	)
	return data
}

// AddRegionCandidates re-runs a single field's extractor over newly OCR'd
// region fragments and merges the outcome into existing: new raw
// candidates are unioned in first-appearance order, and the field's
// value/confidence are replaced only when the new result is non-empty and
// at least as confident (stable-keep-better). The other three fields pass
// through untouched; existing itself is never mutated.
func (e *Extractor) AddRegionCandidates(existing entity.ReceiptData, fragments []entity.OCRResult, field string) (entity.ReceiptData, error) {
	if !constants.IsFieldName(field) {
		return entity.ReceiptData{}, common.NewUnknownFieldError(field)
	}

	var fresh entity.FieldResult
	switch constants.FieldName(field) {
	case constants.FieldDate:
		fresh = e.Date.Extract(fragments)
	case constants.FieldPayee:
		fresh = e.Payee.Extract(fragments)
	case constants.FieldAmount:
		fresh = e.Amount.Extract(fragments)
	case constants.FieldUsage:
		fresh = e.Usage.Extract(fragments)
	}

	current, _ := existing.Field(field)
	merged := current
	for _, c := range fresh.Candidates {
		merged = merged.WithCandidate(c)
	}
	if fresh.Found() && fresh.Confidence >= current.Confidence {
		candidates := merged.Candidates
		merged = fresh
		merged.Candidates = candidates
		merged = merged.WithCandidate(fresh.Value)
	}

	out, _ := existing.WithField(field, merged)
	e.Logger.Info("extract.enrich",
		"field", field,
		"fragments", len(fragments),
		"replaced", fresh.Found() && fresh.Confidence >= current.Confidence,
		"candidates", len(merged.Candidates),
	)
	return out, nil
}
