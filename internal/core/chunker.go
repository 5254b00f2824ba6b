// ABOUTME: Chunker splits normalized document text into overlapping windows
// ABOUTME: Windows shrink to the nearest sentence boundary past the midpoint
package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Chunker produces ordered, overlapping chunks bounded by a target size.
type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker validates the chunking parameters. An overlap at or above the
// chunk size would stall the advancing window, so it is a configuration
// error rather than something the loop guards at runtime.
func NewChunker(chunkSize, overlap int) (*Chunker, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("overlap must be non-negative, got %d", overlap)
	}
	if overlap >= chunkSize {
		return nil, fmt.Errorf("overlap (%d) must be smaller than chunk size (%d)", overlap, chunkSize)
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}, nil
}

// Split chunks text into overlapping pieces. Consecutive chunks share
// overlap characters except possibly the last; the final chunk always ends
// at the end of the text.
func (c *Chunker) Split(text string) []string {
	if len(text) <= c.chunkSize {
		return []string{text}
	}

	var chunks []string
	start := 0

	for start < len(text) {
		end := start + c.chunkSize

		if end < len(text) {
			end = runeFloor(text, end)
			if end == start {
				// A window smaller than the rune at start still has to
				// make progress, so take the whole rune.
				_, width := utf8.DecodeRuneInString(text[start:])
				end = start + width
			}
			// Break at the nearest sentence end past the window midpoint
			if dot := strings.LastIndex(text[start:end], "."); dot > c.chunkSize/2 {
				end = start + dot + 1
			}
		} else {
			end = len(text)
		}

		if piece := strings.TrimSpace(text[start:end]); piece != "" {
			chunks = append(chunks, piece)
		}

		if end == len(text) {
			break
		}

		next := runeFloor(text, end-c.overlap)
		if next <= start {
			// Sentence shortening can eat into the overlap budget; force
			// forward progress rather than re-emitting the same window.
			next = end
		}
		start = next
	}

	return chunks
}

// runeFloor backs a byte offset off to the start of the rune it lands in,
// so window cuts never split a multi-byte character.
func runeFloor(text string, i int) int {
	for i > 0 && i < len(text) && !utf8.RuneStart(text[i]) {
		i--
	}
	return i
}
