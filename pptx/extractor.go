// Package pptx extracts text from PowerPoint (.pptx) files. A pptx file is a
// zip container with one XML part per slide under ppt/slides/; slide text
// lives in a:t runs grouped into a:p paragraphs.
package pptx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/docchat"
)

const (
	slidePrefix = "ppt/slides/slide"
	slideSuffix = ".xml"
)

// Extractor emits one content record per slide with extractable text.
type Extractor struct{}

var _ docchat.Extractor = (*Extractor)(nil)

// NewExtractor returns a PowerPoint extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the file and returns a record per slide that yields
// non-blank text, in deck order. Slide indices in metadata are zero-based.
func (e *Extractor) Extract(_ context.Context, file docchat.File) ([]docchat.ContentRecord, error) {
	zr, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	if err != nil {
		return nil, fmt.Errorf("pptx: open %s: %w", file.Name, err)
	}
	type slide struct {
		num  int
		file *zip.File
	}
	var slides []slide
	for _, f := range zr.File {
		num, ok := slideNumber(f.Name)
		if !ok {
			continue
		}
		slides = append(slides, slide{num: num, file: f})
	}
	// Zip entries are not guaranteed to be in deck order; slide10.xml would
	// also sort before slide2.xml lexically.
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	records := make([]docchat.ContentRecord, 0, len(slides))
	for _, s := range slides {
		rc, err := s.file.Open()
		if err != nil {
			return nil, fmt.Errorf("pptx: open %s in %s: %w", s.file.Name, file.Name, err)
		}
		paragraphs, err := extractParagraphs(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("pptx: parse %s in %s: %w", s.file.Name, file.Name, err)
		}
		if len(paragraphs) == 0 {
			continue
		}
		records = append(records, docchat.ContentRecord{
			Text: strings.Join(paragraphs, "\n"),
			Metadata: docchat.Metadata{
				docchat.MetaSource:   docchat.SourcePPT,
				docchat.MetaFilename: file.Name,
				docchat.MetaSlide:    s.num - 1,
			},
		})
	}
	return records, nil
}

// slideNumber parses the slide ordinal out of a zip entry name like
// ppt/slides/slide3.xml.
func slideNumber(name string) (int, bool) {
	if !strings.HasPrefix(name, slidePrefix) || !strings.HasSuffix(name, slideSuffix) {
		return 0, false
	}
	num, err := strconv.Atoi(name[len(slidePrefix) : len(name)-len(slideSuffix)])
	if err != nil || num < 1 {
		return 0, false
	}
	return num, true
}

// extractParagraphs walks a slide's XML and collects the text of each
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
