// Package export renders extracted receipts as an XLSX workbook.
package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/receiptlens/extractor/internal/entity"
)

// Row pairs one extraction result with the batch bookkeeping the CLI
// assigns per input document.
type Row struct {
	JobID      uuid.UUID          `json:"job_id"`
	SourcePath string             `json:"source_path,omitempty"`
	Receipt    entity.ReceiptData `json:"receipt"`
}

// Service produces XLSX bytes for extraction batches.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportXLSX returns an XLSX workbook (as bytes) with one row per
// extracted receipt.
func (s *Service) ExportXLSX(rows []Row) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Receipts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Job ID",
		"Source",
		"Date",
		"Payee",
		"Amount",
		"Usage",
		"Date Conf.",
		"Payee Conf.",
		"Amount Conf.",
		"Usage Conf.",
		"Candidates",
		"Processed At",
		"Image Hash",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.JobID.String())
		write(2, r.SourcePath)
		write(3, r.Receipt.Date.Value)
		write(4, r.Receipt.Payee.Value)
		write(5, r.Receipt.Amount.Value)
		write(6, r.Receipt.Usage.Value)
		write(7, confCell(r.Receipt.Date.Confidence))
		write(8, confCell(r.Receipt.Payee.Confidence))
		write(9, confCell(r.Receipt.Amount.Confidence))
		write(10, confCell(r.Receipt.Usage.Confidence))
		write(11, candidateSummary(r.Receipt))
		if !r.Receipt.Metadata.ProcessedAt.IsZero() {
			write(12, r.Receipt.Metadata.ProcessedAt.UTC().Format(time.RFC3339))
		}
		write(13, r.Receipt.Metadata.ImageHash)
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // job id
	_ = f.SetColWidth(sheet, "B", "B", 40) // source path
	_ = f.SetColWidth(sheet, "C", "C", 12) // date
	_ = f.SetColWidth(sheet, "D", "D", 28) // payee
	_ = f.SetColWidth(sheet, "E", "F", 12) // amount, usage
	_ = f.SetColWidth(sheet, "K", "K", 48) // candidates
	_ = f.SetColWidth(sheet, "L", "M", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func confCell(c float32) string {
	return fmt.Sprintf("%.2f", c)
}

func candidateSummary(r entity.ReceiptData) string {
	var parts []string
	add := func(name string, fr entity.FieldResult) {
		if len(fr.Candidates) == 0 {
			return
		}
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(fr.Candidates, " | ")))
	}
	add("date", r.Date)
	add("payee", r.Payee)
	add("amount", r.Amount)
	add("usage", r.Usage)
	return strings.Join(parts, " ; ")
}
