package docchat

import "context"

// FileKind identifies a supported upload format.
type FileKind string

// The closed set of upload formats. Dispatching on FileKind instead of raw
// MIME strings keeps unsupported-kind handling in one place.
const (
	KindUnknown FileKind = ""
	KindPDF     FileKind = "pdf"
	KindWord    FileKind = "word"
	KindPPT     FileKind = "ppt"
	KindExcel   FileKind = "excel"
)

// KindForMIME maps a declared MIME type to a FileKind.
// Returns KindUnknown for unrecognized types.
func KindForMIME(mime string) FileKind {
	switch mime {
	case "application/pdf":
		return KindPDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return KindWord
	case "application/vnd.openxmlformats-officedocument.presentationml.presentation":
		return KindPPT
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return KindExcel
	}
	return KindUnknown
}

// File is an uploaded file with its declared kind.
type File struct {
	Name string
	Kind FileKind
	Data []byte
}

// Extractor converts a raw file into zero or more content records.
// A file with no extractable text yields an empty slice, not an error.
type Extractor interface {
	// Extract parses the file and returns its content records.
	// The slice is empty when the file contains no non-blank text.
	Extract(ctx context.Context, file File) ([]ContentRecord, error)
}
