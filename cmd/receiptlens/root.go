package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/receiptlens/extractor/internal/common"
)

var (
	cfg    *common.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "receiptlens",
	Short: "Extract structured fields from receipt OCR output",
	Long: `Receiptlens turns noisy OCR output of paper receipts into structured
fields: transaction date, payee, amount, and usage category, each with a
confidence score and alternate candidates.

Input is a JSON array of OCR fragments (text, bbox, confidence,
candidates); output is a receipt record as JSON or XLSX.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() {
		cfg = common.LoadConfig()

		level := slog.LevelInfo
		if cfg.Log.Level == "debug" {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		}))
		slog.SetDefault(logger)

		if err := cfg.Validate(); err != nil {
			logger.Error("invalid configuration", "error", err)
			os.Exit(1)
		}
	})

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(exportCmd)
}
