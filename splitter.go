package docchat

// Default splitting parameters.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// NoOverlap disables chunk overlap when set as SplitOptions.Overlap.
const NoOverlap = -1

// SplitOptions configures SplitRecords. The zero value uses
// DefaultChunkSize and DefaultChunkOverlap.
type SplitOptions struct {
	// Size is the maximum chunk length in characters. Defaults to
	// DefaultChunkSize when zero or negative.
	Size int

	// Overlap is the number of trailing characters repeated at the start
	// of the next chunk from the same record. Defaults to
	// DefaultChunkOverlap when zero; set NoOverlap to disable. Must be
	// smaller than Size.
	Overlap int
}

func (o SplitOptions) normalize() SplitOptions {
	if o.Size <= 0 {
		o.Size = DefaultChunkSize
	}
	if o.Overlap == 0 {
		o.Overlap = DefaultChunkOverlap
	}
	if o.Overlap < 0 {
		o.Overlap = 0
	}
	if o.Overlap >= o.Size {
		o.Overlap = o.Size / 2
	}
	return o
}

// SplitRecords splits content records into chunks of at most opts.Size
// characters with opts.Overlap characters of shared text between adjacent
// chunks of the same record. It is a pure function: chunk order matches
// source order, every chunk is an exact substring of its record's text, and
// metadata is copied verbatim onto each chunk plus the chunk index.
//
// Cut points prefer natural boundaries: paragraph breaks first, then line
// breaks, then word breaks, falling back to a hard character cut only when
// a window contains a single unbroken run.
func SplitRecords(records []ContentRecord, opts SplitOptions) []Chunk {
	opts = opts.normalize()

	var chunks []Chunk
	for _, rec := range records {
		for i, text := range splitText(rec.Text, opts.Size, opts.Overlap) {
			md := rec.Metadata.Clone()
			md[MetaChunk] = i
			chunks = append(chunks, Chunk{Text: text, Metadata: md})
		}
	}
	return chunks
}

// splitText splits text into overlapping windows of at most size characters.
// Offsets are computed in runes so multi-byte characters are never severed.
func splitText(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	var out []string
	start := 0
	for {
		if len(runes)-start <= size {
			out = append(out, string(runes[start:]))
			return out
		}

		cut := cutPoint(runes, start, start+size)
		out = append(out, string(runes[start:cut]))

		// Back up by the overlap, but always make forward progress.
		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}
}

// cutPoint returns the index to cut at within (start, limit], preferring a
// paragraph break, then a line break, then a space. The cut lands just
// after the separator so reconstruction by overlap removal is exact.
func cutPoint(runes []rune, start, limit int) int {
	// Paragraph boundary: "\n\n".
	for i := limit; i > start+1; i-- {
		if runes[i-1] == '\n' && runes[i-2] == '\n' {
			return i
		}
	}
	// Line boundary.
	for i := limit; i > start; i-- {
		if runes[i-1] == '\n' {
			return i
		}
	}
	// Word boundary.
	for i := limit; i > start; i-- {
		if runes[i-1] == ' ' {
			return i
		}
	}
	// Single unbroken run: hard cut.
	return limit
}
