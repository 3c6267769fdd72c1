// Package excelize extracts text from Excel (.xlsx) files using
// github.com/xuri/excelize.
package excelize

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docchat"
	"github.com/xuri/excelize/v2"
)

// Extractor emits one content record per worksheet with cell content,
// rendered as a column-aligned text table.
type Extractor struct{}

var _ docchat.Extractor = (*Extractor)(nil)

// NewExtractor returns an Excel extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the file and returns a record per non-empty worksheet, in
// workbook order. Metadata carries the worksheet name.
func (e *Extractor) Extract(_ context.Context, file docchat.File) ([]docchat.ContentRecord, error) {
	wb, err := excelize.OpenReader(bytes.NewReader(file.Data))
	if err != nil {
		return nil, fmt.Errorf("excelize: open %s: %w", file.Name, err)
	}
	defer wb.Close()

	var records []docchat.ContentRecord
	for _, sheet := range wb.GetSheetList() {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("excelize: read sheet %q of %s: %w", sheet, file.Name, err)
		}
		text := renderTable(rows)
		if text == "" {
			continue
		}
		records = append(records, docchat.ContentRecord{
			Text: text,
			Metadata: docchat.Metadata{
				docchat.MetaSource:   docchat.SourceExcel,
				docchat.MetaFilename: file.Name,
				docchat.MetaSheet:    sheet,
			},
		})
	}
	if records == nil {
		return []docchat.ContentRecord{}, nil
	}
	return records, nil
}

// renderTable formats rows as a plain-text table with columns padded to a
// shared width, one line per row. Returns "" when every cell is blank.
func renderTable(rows [][]string) string {
	widths := make([]int, 0)
	blank := true
	for _, row := range rows {
		for i, cell := range row {
			if strings.TrimSpace(cell) != "" {
				blank = false
			}
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	if blank {
		return ""
	}
	var b strings.Builder
	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(cell)
			if pad := widths[i] - len([]rune(cell)); pad > 0 && i < len(row)-1 {
				line.WriteString(strings.Repeat(" ", pad))
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
