// ABOUTME: Chunk and ChunkAnalysis record types for the ingestion pipeline
// ABOUTME: Chunk IDs are deterministic so re-ingestion upserts instead of duplicating
package models

import (
	"strconv"
	"strings"
)

// Chunk is an ordered, overlapping segment of a normalized document.
// ID is derived from the sanitized source name and the 0-based index,
// so chunking the same source twice yields the same IDs.
type Chunk struct {
	ID    string `json:"id"`
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// ChunkAnalysis maps the fixed classification categories to an excerpt of
// the chunk, or empty when the category's keywords did not match.
// Purpose is always non-empty.
type ChunkAnalysis struct {
	Purpose          string `json:"purpose"`
	Definitions      string `json:"definitions"`
	Eligibility      string `json:"eligibility"`
	Obligations      string `json:"obligations"`
	Responsibilities string `json:"responsibilities"`
	Payments         string `json:"payments"`
	Penalties        string `json:"penalties"`
	Enforcement      string `json:"enforcement"`
	RecordKeeping    string `json:"record_keeping"`
	Rules            string `json:"rules"`
}

// SanitizeSourceID strips the .pdf suffix and replaces the characters the
// search index rejects in document keys (periods, spaces) with underscores.
func SanitizeSourceID(source string) string {
	clean := strings.TrimSuffix(source, ".pdf")
	clean = strings.ReplaceAll(clean, ".", "_")
	clean = strings.ReplaceAll(clean, " ", "_")
	return clean
}

// ChunkID builds the deterministic identifier for chunk index of source.
func ChunkID(source string, index int) string {
	return SanitizeSourceID(source) + "_chunk_" + strconv.Itoa(index)
}
