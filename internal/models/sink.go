// ABOUTME: Sink-specific document representations for the search index and document store
// ABOUTME: Serializers map a chunk + its analysis into each sink's wire shape
package models

import (
	"fmt"
	"time"
)

// SearchDocument is the search-index view of one chunk. Field names follow
// the index schema, which distinguishes the short analysis fields from the
// legislative_* variants.
type SearchDocument struct {
	ID                           string    `json:"id"`
	Content                      string    `json:"content"`
	ContentVector                []float64 `json:"content_vector"`
	Purpose                      string    `json:"purpose"`
	KeyDefinitions               string    `json:"key_definitions"`
	Eligibility                  string    `json:"eligibility"`
	Obligations                  string    `json:"obligations"`
	EnforcementElements          string    `json:"enforcement_elements"`
	LegislativeSectionDefinition string    `json:"legislative_section_definition"`
	LegislativeObligations       string    `json:"legislative_obligations"`
	LegislativeResponsibilities  string    `json:"legislative_responsibilities"`
	LegislativeEligibility       string    `json:"legislative_eligibility"`
	LegislativePayments          string    `json:"legislative_payments"`
	LegislativePenalties         string    `json:"legislative_penalties"`
	LegislativeRecordKeeping     string    `json:"legislative_record_keeping"`
	Rules                        string    `json:"rules"`
}

// StoreDocument is the document-store view of the same chunk. It keeps the
// raw embedding plus enough document-level context to reconstruct ordering.
type StoreDocument struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	Embedding      []float64 `json:"embedding"`
	Source         string    `json:"source"`
	ChunkIndex     int       `json:"chunk_index"`
	Timestamp      time.Time `json:"timestamp"`
	FullTextLength int       `json:"full_text_length"`
	ChunkCount     int       `json:"chunk_count"`
}

// SearchHit is one result from a keyword or vector search over the index.
type SearchHit struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Purpose string  `json:"purpose"`
	Score   float64 `json:"score"`
}

// Artifact is a derived side artifact (extracted text, summary, sections,
// rule-check results) stored under a document_type category.
type Artifact struct {
	ID           string      `json:"id"`
	DocumentType string      `json:"document_type"`
	Payload      interface{} `json:"payload"`
	Timestamp    time.Time   `json:"timestamp"`
}

// NewSearchDocument builds the search-index representation of a chunk.
// When the classifier matched nothing for purpose or rules, the document
// falls back to describing its position within the source.
func NewSearchDocument(chunk Chunk, analysis ChunkAnalysis, embedding []float64, source string) SearchDocument {
	purpose := analysis.Purpose
	if purpose == "" {
		purpose = fmt.Sprintf("Legislative document chunk from %s", source)
	}
	rules := analysis.Rules
	if rules == "" {
		rules = fmt.Sprintf("Chunk %d from %s", chunk.Index, source)
	}

	return SearchDocument{
		ID:                           chunk.ID,
		Content:                      chunk.Text,
		ContentVector:                embedding,
		Purpose:                      purpose,
		KeyDefinitions:               analysis.Definitions,
		Eligibility:                  analysis.Eligibility,
		Obligations:                  analysis.Obligations,
		EnforcementElements:          analysis.Enforcement,
		LegislativeSectionDefinition: analysis.Definitions,
		LegislativeObligations:       analysis.Obligations,
		LegislativeResponsibilities:  analysis.Responsibilities,
		LegislativeEligibility:       analysis.Eligibility,
		LegislativePayments:          analysis.Payments,
		LegislativePenalties:         analysis.Penalties,
		LegislativeRecordKeeping:     analysis.RecordKeeping,
		Rules:                        rules,
	}
}

// NewStoreDocument builds the document-store representation of a chunk.
func NewStoreDocument(chunk Chunk, embedding []float64, source string, fullTextLength, chunkCount int) StoreDocument {
	return StoreDocument{
		ID:             chunk.ID,
		Content:        chunk.Text,
		Embedding:      embedding,
		Source:         source,
		ChunkIndex:     chunk.Index,
		Timestamp:      time.Now().UTC(),
		FullTextLength: fullTextLength,
		ChunkCount:     chunkCount,
	}
}
