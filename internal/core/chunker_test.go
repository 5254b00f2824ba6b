// ABOUTME: Tests for the overlapping text chunker
// ABOUTME: Verifies windowing, sentence backtracking, termination, and validation

package core

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewChunker_Validation(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		overlap   int
		wantErr   bool
	}{
		{"valid", 1000, 200, false},
		{"zero overlap", 1000, 0, false},
		{"zero chunk size", 0, 0, true},
		{"negative chunk size", -1, 0, true},
		{"negative overlap", 1000, -1, true},
		{"overlap equals chunk size", 200, 200, true},
		{"overlap exceeds chunk size", 200, 300, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.chunkSize, tt.overlap)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewChunker(%d, %d) error = %v, wantErr %v", tt.chunkSize, tt.overlap, err, tt.wantErr)
			}
		})
	}
}

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	chunker, err := NewChunker(1000, 200)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	text := "A short act."
	chunks := chunker.Split(text)

	if len(chunks) != 1 {
		t.Fatalf("Split() returned %d chunks, want 1", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("Split() = %q, want %q", chunks[0], text)
	}
}

func TestSplit_ExactWindowsWithoutSentences(t *testing.T) {
	chunker, err := NewChunker(20, 5)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	// 50 characters, no periods, no whitespace: pure window arithmetic
	text := strings.Repeat("abcdefghij", 5)
	chunks := chunker.Split(text)

	want := []string{text[0:20], text[15:35], text[30:50]}
	if len(chunks) != len(want) {
		t.Fatalf("Split() returned %d chunks, want %d: %v", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplit_SentenceBacktrack(t *testing.T) {
	chunker, err := NewChunker(20, 5)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	// The period at offset 14 is past the window midpoint, so the first
	// chunk shrinks to the sentence boundary.
	text := "aaaaaaaaaaaaaa. " + strings.Repeat("b", 20)
	chunks := chunker.Split(text)

	if len(chunks) == 0 {
		t.Fatal("Split() returned no chunks")
	}
	if chunks[0] != "aaaaaaaaaaaaaa." {
		t.Errorf("first chunk = %q, want %q", chunks[0], "aaaaaaaaaaaaaa.")
	}
}

func TestSplit_ForcedProgressWhenOverlapEatsWindow(t *testing.T) {
	chunker, err := NewChunker(10, 8)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	// Sentence shortening pulls the window end back to 7; stepping back by
	// the overlap would revisit the same start, so the window jumps forward.
	text := "aaaaaa." + strings.Repeat("b", 10)
	chunks := chunker.Split(text)

	want := []string{"aaaaaa.", strings.Repeat("b", 10)}
	if len(chunks) != len(want) {
		t.Fatalf("Split() returned %d chunks, want %d: %v", len(chunks), len(want), chunks)
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i], want[i])
		}
	}
}

func TestSplit_LongDocument(t *testing.T) {
	chunker, err := NewChunker(1000, 200)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	var sb strings.Builder
	for i := 0; sb.Len() < 2500; i++ {
		fmt.Fprintf(&sb, "Section %d provides for the administration of the scheme. ", i)
	}
	text := strings.TrimSpace(sb.String())

	chunks := chunker.Split(text)

	if len(chunks) < 3 {
		t.Fatalf("Split() returned %d chunks, want at least 3", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 1000 {
			t.Errorf("chunk %d length = %d, exceeds chunk size", i, len(chunk))
		}
		if !strings.Contains(text, chunk) {
			t.Errorf("chunk %d is not a substring of the input", i)
		}
	}
	if !strings.HasSuffix(text, chunks[len(chunks)-1]) {
		t.Error("final chunk should end at the end of the text")
	}
}

func TestSplit_MultiByteRunesStayIntact(t *testing.T) {
	chunker, err := NewChunker(20, 5)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	// The leading byte puts every section sign on an odd offset, so
	// naive byte cuts would slice through them
	text := "x" + strings.Repeat("§", 100)

	chunks := chunker.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if !utf8.ValidString(chunk) {
			t.Errorf("chunk %d contains a split character: %q", i, chunk)
		}
		if !strings.Contains(text, chunk) {
			t.Errorf("chunk %d is not a substring of the input: %q", i, chunk)
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	chunker, err := NewChunker(100, 20)
	if err != nil {
		t.Fatalf("NewChunker() error = %v", err)
	}

	text := strings.Repeat("The authority shall maintain records of each payment. ", 10)

	first := chunker.Split(text)
	second := chunker.Split(text)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}
