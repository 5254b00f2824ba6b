// ABOUTME: Indexing pipeline writing chunk documents to both sinks
// ABOUTME: Tracks batch and per-chunk success independently; partial failure degrades, never aborts
package core

import (
	"context"
	"log"

	"github.com/mustansirbharmal/niyamr/internal/models"
)

// summaryEmbeddingLimit bounds how much of the full text the side-artifact
// embedding covers.
const summaryEmbeddingLimit = 2000

// Artifact categories written by the pipeline operations.
const (
	ArtifactExtractedText = "extracted_text"
	ArtifactActSummary    = "act_summary"
	ArtifactSections      = "legislative_sections"
	ArtifactRuleChecker   = "rule_checker"
)

// IndexResult reports the outcome of one ingestion run. Success is false
// only when download or extraction yielded nothing; sink failures after
// chunking began are reported through Indexed instead.
type IndexResult struct {
	Success         bool   `json:"success"`
	Error           string `json:"error,omitempty"`
	FullText        string `json:"full_text,omitempty"`
	ChunksProcessed int    `json:"chunks_processed"`
	Indexed         bool   `json:"indexed"`
}

// IndexDocument downloads the named document, extracts and chunks its text,
// classifies and embeds each chunk, and persists both sink representations.
func (p *Pipeline) IndexDocument(ctx context.Context, blobName string) *IndexResult {
	raw, err := p.svc.Objects.Download(ctx, blobName)
	if err != nil || len(raw) == 0 {
		return &IndexResult{Success: false, Error: "failed to download document"}
	}

	fullText := p.svc.Extractor.Extract(raw)
	if fullText == "" {
		return &IndexResult{Success: false, Error: "failed to extract text from document"}
	}

	pieces := p.chunker.Split(fullText)

	// Build both sink representations per chunk. A failed embedding yields
	// an empty vector for that chunk; processing continues degraded.
	searchDocs := make([]models.SearchDocument, 0, len(pieces))
	storeDocs := make([]models.StoreDocument, 0, len(pieces))
	for i, piece := range pieces {
		chunk := models.Chunk{
			ID:    models.ChunkID(blobName, i),
			Index: i,
			Text:  piece,
		}

		embedding, err := p.svc.Embedder.Embed(ctx, chunk.Text)
		if err != nil {
			log.Printf("Warning: embedding failed for chunk %s: %v", chunk.ID, err)
			embedding = []float64{}
		}

		analysis := Classify(chunk.Text)
		searchDocs = append(searchDocs, models.NewSearchDocument(chunk, analysis, embedding, blobName))
		storeDocs = append(storeDocs, models.NewStoreDocument(chunk, embedding, blobName, len(fullText), len(pieces)))
	}

	// Upload to the search index in batches. Batches fail independently;
	// a failed batch does not stop the ones after it.
	searchSuccess := true
	for i := 0; i < len(searchDocs); i += p.batchSize {
		end := i + p.batchSize
		if end > len(searchDocs) {
			end = len(searchDocs)
		}
		if err := p.svc.Search.UploadBatch(ctx, searchDocs[i:end]); err != nil {
			log.Printf("Warning: search index batch %d failed: %v", i/p.batchSize+1, err)
			searchSuccess = false
		}
	}

	// Document-store writes are per-chunk upserts, also independent.
	storeSuccess := true
	for _, doc := range storeDocs {
		if err := p.svc.Documents.Upsert(ctx, doc); err != nil {
			log.Printf("Warning: document store write failed for chunk %s: %v", doc.ID, err)
			storeSuccess = false
		}
	}

	p.storeExtractedTextArtifact(ctx, blobName, fullText, len(pieces))

	return &IndexResult{
		Success:         true,
		FullText:        fullText,
		ChunksProcessed: len(pieces),
		Indexed:         searchSuccess && storeSuccess,
	}
}

// storeExtractedTextArtifact records the full extracted text as a side
// artifact. Its failure never affects the ingestion result.
func (p *Pipeline) storeExtractedTextArtifact(ctx context.Context, blobName, fullText string, chunkCount int) {
	sample := fullText
	if len(sample) > summaryEmbeddingLimit {
		sample = sample[:summaryEmbeddingLimit]
	}
	embedding, err := p.svc.Embedder.Embed(ctx, sample)
	if err != nil {
		log.Printf("Warning: embedding failed for extracted text of %s: %v", blobName, err)
		embedding = []float64{}
	}

	artifact := models.Artifact{
		DocumentType: ArtifactExtractedText,
		Payload: map[string]interface{}{
			"source_document":   blobName,
			"extracted_text":    fullText,
			"text_length":       len(fullText),
			"chunks_count":      chunkCount,
			"extraction_method": "plaintext",
			"embedding":         embedding,
		},
	}
	if err := p.svc.Artifacts.StoreArtifact(ctx, artifact); err != nil {
		log.Printf("Warning: failed to store extracted text artifact for %s: %v", blobName, err)
	}
}
