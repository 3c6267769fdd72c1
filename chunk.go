package docchat

// Chunk is a size-bounded, overlap-linked slice of a content record's text.
// It is the unit that gets embedded and indexed. Metadata is inherited
// verbatim from the source record plus the chunk index under MetaChunk.
type Chunk struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Metadata Metadata `json:"metadata"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "chunk ID required")
	}
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	return nil
}
