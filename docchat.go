// Package docchat provides conversational question answering over a corpus
// of uploaded office documents and crawled web pages. Content is extracted
// into uniform records, split into overlapping chunks, embedded into a
// similarity index, and queried by a retrieve-format-generate pipeline that
// keeps per-thread conversation history.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goquery/).
package docchat
