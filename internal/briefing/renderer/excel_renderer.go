package renderer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang-stock-briefing/internal/entity"
	"golang-stock-briefing/pkg/logger"

	"github.com/xuri/excelize/v2"
)

// ExcelRenderer writes the briefing as a one-sheet XLSX workbook.
type ExcelRenderer struct {
	outputDir string
	log       *logger.Logger
}

// NewExcelRenderer creates an XLSX renderer writing into outputDir.
func NewExcelRenderer(outputDir string, log *logger.Logger) (*ExcelRenderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &ExcelRenderer{outputDir: outputDir, log: log}, nil
}

// Render writes the briefing document and market data to a workbook.
func (r *ExcelRenderer) Render(ctx context.Context, doc *entity.BriefingDocument, security *entity.EnrichedSecurity) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Briefing"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	rows := [][]interface{}{
		{"Title", doc.Title},
		{"Generated At", doc.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Symbol", security.Symbol},
		{"Name", security.Name},
		{"Price", security.Price},
		{"Change %", security.ChangePercent},
		{"Volume", security.Volume},
		{"Market Cap", security.MarketCap},
		{"Summary", doc.Summary},
	}
	for _, section := range doc.Sections {
		rows = append(rows, []interface{}{section.Heading, section.Body})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return "", fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "A", 24); err != nil {
		return "", fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 100); err != nil {
		return "", fmt.Errorf("failed to set column width: %w", err)
	}

	filename := fmt.Sprintf("briefing_%s_%s.xlsx", security.Symbol, doc.GeneratedAt.Format("20060102_150405"))
	path := filepath.Join(r.outputDir, filename)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	r.log.InfoContext(ctx, "Briefing workbook rendered", logger.StringField("path", path))
	return path, nil
}
