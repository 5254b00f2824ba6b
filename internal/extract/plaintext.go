// ABOUTME: Plain-text extractor that normalizes raw document bytes
// ABOUTME: Collapses whitespace and strips NULs left over from PDF conversion
package extract

import (
	"regexp"
	"strings"
)

var (
	blankLines = regexp.MustCompile(`\n\s*\n`)
	spaceRuns  = regexp.MustCompile(` +`)
)

// Plaintext extracts normalized text from documents that are already text.
// PDF and other binary formats need a dedicated extractor behind the same
// TextExtractor contract.
type Plaintext struct{}

// NewPlaintext creates a new plain-text extractor.
func NewPlaintext() *Plaintext {
	return &Plaintext{}
}

// Extract normalizes raw bytes into clean plain text. Returns an empty
// string when nothing usable remains, which callers treat as failure.
func (p *Plaintext) Extract(raw []byte) string {
	return CleanText(string(raw))
}

// CleanText collapses blank-line and space runs, removes NUL bytes, and
// trims surrounding whitespace.
func CleanText(text string) string {
	text = blankLines.ReplaceAllString(text, "\n\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = strings.ReplaceAll(text, "\x00", "")
	return strings.TrimSpace(text)
}
