package docchat

import "strings"

// Source discriminator values carried in record metadata.
const (
	SourcePDF   = "pdf"
	SourceWord  = "word"
	SourcePPT   = "ppt"
	SourceExcel = "excel"
	SourceWeb   = "web"
)

// Metadata keys shared by all producers. Format-specific keys are additive;
// consumers must not require them.
const (
	MetaSource    = "source"     // one of the Source* constants
	MetaFilename  = "filename"   // origin for file-based records
	MetaSourceURL = "source_url" // origin for crawled records
	MetaPage      = "page"       // zero-based PDF page index
	MetaSlide     = "slide"      // zero-based slide index
	MetaSheet     = "sheet"      // worksheet name
	MetaChunk     = "chunk"      // zero-based chunk index within a record
)

// Metadata is a flat mapping of provenance keys to scalar values.
type Metadata map[string]any

// Clone returns a copy of the metadata that can be mutated independently.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return Metadata{}
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ContentRecord is the normalized unit of extracted text plus provenance
// metadata. Extractors and the crawler both emit records; the chunker
// consumes them.
type ContentRecord struct {
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// Validate returns an error if the record contains invalid fields.
// Records with empty or whitespace-only text are never created; producers
// drop empty extractions at the source.
func (r *ContentRecord) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return Errorf(EINVALID, "record text required")
	}
	if r.Metadata[MetaSource] == nil {
		return Errorf(EINVALID, "record source required")
	}
	return nil
}
