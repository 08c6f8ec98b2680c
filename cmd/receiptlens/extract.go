package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/receiptlens/extractor/internal/export"
	"github.com/receiptlens/extractor/internal/ingest"
	"github.com/receiptlens/extractor/internal/pipeline"
)

var (
	extractIn        string
	extractOut       string
	extractXLSX      string
	extractImageHash string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract receipt fields from an OCR result document",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(extractIn)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		fragments, err := ingest.DecodeOCRResults(data)
		if err != nil {
			return fmt.Errorf("decode ocr results: %w", err)
		}

		jobID := uuid.New()
		logger.Info("extract.start", "job_id", jobID, "input", extractIn, "fragments", len(fragments))

		extractor := pipeline.NewExtractor(logger, cfg.Extract)
		receipt := extractor.ExtractReceiptData(fragments, extractImageHash)

		row := export.Row{JobID: jobID, SourcePath: extractIn, Receipt: receipt}
		out, err := json.MarshalIndent(row, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		if extractOut == "" {
			fmt.Println(string(out))
		} else if err := os.WriteFile(extractOut, out, 0o644); err != nil {
			return fmt.Errorf("write result: %w", err)
		}

		if extractXLSX != "" {
			svc := export.NewService(logger)
			xlsxBytes, err := svc.ExportXLSX([]export.Row{row})
			if err != nil {
				return fmt.Errorf("export xlsx: %w", err)
			}
			if err := os.WriteFile(extractXLSX, xlsxBytes, 0o644); err != nil {
				return fmt.Errorf("write xlsx: %w", err)
			}
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractIn, "in", "", "OCR results JSON file (required)")
	extractCmd.Flags().StringVar(&extractOut, "out", "", "output JSON file (default: stdout)")
	extractCmd.Flags().StringVar(&extractXLSX, "xlsx", "", "also write an XLSX workbook")
	extractCmd.Flags().StringVar(&extractImageHash, "image-hash", "", "content fingerprint of the source image")
	_ = extractCmd.MarkFlagRequired("in")
}
