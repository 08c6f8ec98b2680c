package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/receiptlens/extractor/internal/export"
	"github.com/receiptlens/extractor/internal/ingest"
	"github.com/receiptlens/extractor/internal/pipeline"
)

var (
	enrichReceipt string
	enrichRegion  string
	enrichField   string
	enrichOut     string
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Re-extract a single field from newly OCR'd region fragments",
	Long: `Enrich merges a new OCR region into a previously extracted receipt:
the named field's extractor runs over the region fragments, new candidates
accumulate, and the value is replaced only when the fresh result is at
least as confident as the existing one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		receiptData, err := os.ReadFile(enrichReceipt)
		if err != nil {
			return fmt.Errorf("read receipt: %w", err)
		}
		var row export.Row
		if err := json.Unmarshal(receiptData, &row); err != nil {
			return fmt.Errorf("unmarshal receipt: %w", err)
		}

		regionData, err := os.ReadFile(enrichRegion)
		if err != nil {
			return fmt.Errorf("read region: %w", err)
		}
		fragments, err := ingest.DecodeOCRResults(regionData)
		if err != nil {
			return fmt.Errorf("decode region ocr results: %w", err)
		}

		extractor := pipeline.NewExtractor(logger, cfg.Extract)
		merged, err := extractor.AddRegionCandidates(row.Receipt, fragments, enrichField)
		if err != nil {
			return err
		}
		row.Receipt = merged

		out, err := json.MarshalIndent(row, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if enrichOut == "" {
			fmt.Println(string(out))
			return nil
		}
		if err := os.WriteFile(enrichOut, out, 0o644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil
	},
}

func init() {
	enrichCmd.Flags().StringVar(&enrichReceipt, "receipt", "", "previously extracted receipt JSON (required)")
	enrichCmd.Flags().StringVar(&enrichRegion, "region", "", "OCR results JSON for the new region (required)")
	enrichCmd.Flags().StringVar(&enrichField, "field", "", "field to re-extract: date|payee|amount|usage (required)")
	enrichCmd.Flags().StringVar(&enrichOut, "out", "", "output JSON file (default: stdout)")
	_ = enrichCmd.MarkFlagRequired("receipt")
	_ = enrichCmd.MarkFlagRequired("region")
	_ = enrichCmd.MarkFlagRequired("field")
}
