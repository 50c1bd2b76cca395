package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/blackwell-systems/codecompass/internal/analyzer"
)

// sheetName is the single worksheet of the spreadsheet artifact.
const sheetName = "Report"

// xlsxFormatter writes one spreadsheet row per result.
type xlsxFormatter struct {
	file *excelize.File
	row  int
	err  error
}

func newXLSXFormatter() *xlsxFormatter {
	return &xlsxFormatter{}
}

func (f *xlsxFormatter) Ext() string { return ".xlsx" }

// Headers returns the spreadsheet column titles.
func Headers() []string {
	headers := []string{"File", "Language", "Summary", "Risk", "Attention Points"}
	for _, cat := range analyzer.Categories {
		headers = append(headers, cat.Label())
	}
	return headers
}

// Row returns the spreadsheet cells for r, aligned with Headers.
func Row(r analyzer.Result) []string {
	row := []string{
		r.Path,
		r.Language,
		r.Summary,
		string(r.Risk),
		strings.Join(r.AttentionPoints, ", "),
	}
	for _, cat := range analyzer.Categories {
		row = append(row, strings.Join(r.Suggestions[cat], ", "))
	}
	return row
}

func (f *xlsxFormatter) Begin(string) {
	f.file = excelize.NewFile()
	// NewFile starts with "Sheet1"; rename it rather than adding a second sheet.
	if err := f.file.SetSheetName(f.file.GetSheetName(0), sheetName); err != nil {
		f.err = err
		return
	}

	f.row = 1
	f.writeRow(Headers())
	f.boldRow(1, len(Headers()))
}

// boldRow applies a bold font to the first cols cells of row.
func (f *xlsxFormatter) boldRow(row, cols int) {
	if f.err != nil {
		return
	}
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		f.err = fmt.Errorf("header style: %w", err)
		return
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		f.err = fmt.Errorf("header style: %w", err)
		return
	}
	style, err := f.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.err = err
		return
	}
	if err := f.file.SetCellStyle(sheetName, first, last, style); err != nil {
		f.err = err
	}
}

func (f *xlsxFormatter) Section(r analyzer.Result) {
	f.writeRow(Row(r))
}

func (f *xlsxFormatter) writeRow(values []string) {
	if f.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, f.row)
	if err != nil {
		f.err = err
		return
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.file.SetSheetRow(sheetName, cell, &cells); err != nil {
		f.err = fmt.Errorf("row %d: %w", f.row, err)
		return
	}
	f.row++
}

func (f *xlsxFormatter) End() ([]byte, error) {
	defer func() { _ = f.file.Close() }()
	if f.err != nil {
		return nil, f.err
	}
	buf, err := f.file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
