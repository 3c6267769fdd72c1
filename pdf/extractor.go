// Package pdf extracts text from PDF files using the ledongthuc/pdf reader.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docchat"
	"github.com/ledongthuc/pdf"
)

// Extractor emits one content record per page with extractable text.
type Extractor struct{}

var _ docchat.Extractor = (*Extractor)(nil)

// NewExtractor returns a PDF extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the file and returns a record for every page that yields
// non-blank text. Image-only pages are skipped. Page indices in metadata are
// zero-based.
func (e *Extractor) Extract(_ context.Context, file docchat.File) ([]docchat.ContentRecord, error) {
	r, err := pdf.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return nil, fmt.Errorf("pdf: open %s: %w", file.Name, err)
	}
	records := make([]docchat.ContentRecord, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("pdf: page %d of %s: %w", i, file.Name, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		records = append(records, docchat.ContentRecord{
			Text: text,
			Metadata: docchat.Metadata{
				docchat.MetaSource:   docchat.SourcePDF,
				docchat.MetaFilename: file.Name,
				docchat.MetaPage:     i - 1,
			},
		})
	}
	return records, nil
}
