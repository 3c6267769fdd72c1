// Package docx extracts text from Word (.docx) files. A docx file is a zip
// container; the document body lives in word/document.xml with paragraph
// elements (w:p) holding text runs (w:t).
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/docchat"
)

const documentPath = "word/document.xml"

// Extractor emits a single content record holding the document's paragraphs
// joined by newlines.
type Extractor struct{}

var _ docchat.Extractor = (*Extractor)(nil)

// NewExtractor returns a Word extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the file and returns its text as one record. Blank
// paragraphs are dropped. A document with no text yields an empty slice.
func (e *Extractor) Extract(_ context.Context, file docchat.File) ([]docchat.ContentRecord, error) {
	zr, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return nil, fmt.Errorf("docx: open %s: %w", file.Name, err)
	}
	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == documentPath {
			doc, err = f.Open()
			if err != nil {
				return nil, fmt.Errorf("docx: open %s in %s: %w", documentPath, file.Name, err)
			}
			break
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("docx: %s missing %s", file.Name, documentPath)
	}
	defer doc.Close()

	paragraphs, err := extractParagraphs(doc)
	if err != nil {
		return nil, fmt.Errorf("docx: parse %s: %w", file.Name, err)
	}
	if len(paragraphs) == 0 {
		return []docchat.ContentRecord{}, nil
	}
	return []docchat.ContentRecord{{
		Text: strings.Join(paragraphs, "\n"),
		Metadata: docchat.Metadata{
			docchat.MetaSource:   docchat.SourceWord,
			docchat.MetaFilename: file.Name,
		},
	}}, nil
}

// extractParagraphs walks the document XML and collects the text of each
// non-blank paragraph in document order.
func extractParagraphs(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if s := strings.TrimSpace(current.String()); s != "" {
					paragraphs = append(paragraphs, s)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}
	return paragraphs, nil
}
