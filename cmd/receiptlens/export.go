package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/receiptlens/extractor/internal/export"
)

var (
	exportIn  string
	exportOut string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a batch of extracted receipts to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(exportIn)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		var rows []export.Row
		if err := json.Unmarshal(data, &rows); err != nil {
			return fmt.Errorf("unmarshal results: %w", err)
		}

		svc := export.NewService(logger)
		xlsxBytes, err := svc.ExportXLSX(rows)
		if err != nil {
			return fmt.Errorf("export xlsx: %w", err)
		}
		if err := os.WriteFile(exportOut, xlsxBytes, 0o644); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		logger.Info("export.ok", "rows", len(rows), "output", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportIn, "in", "", "JSON array of extraction results (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "receipts.xlsx", "output XLSX path")
	_ = exportCmd.MarkFlagRequired("in")
}
