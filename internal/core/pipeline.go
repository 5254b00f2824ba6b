// ABOUTME: Pipeline wires the collaborator services into the document operations
// ABOUTME: Also provides keyword/vector search and text resolution for callers
package core

import (
	"context"
	"fmt"

	"github.com/mustansirbharmal/niyamr/internal/config"
	"github.com/mustansirbharmal/niyamr/internal/models"
	"github.com/mustansirbharmal/niyamr/internal/services"
)

// Pipeline runs the ingestion, summarization, extraction, and rule-check
// operations against one set of collaborator services. All operations are
// synchronous within a request; writes are idempotent upserts, so
// re-running any operation on the same input converges.
type Pipeline struct {
	svc       *services.Services
	chunker   *Chunker
	batchSize int
}

// NewPipeline builds a Pipeline from the services context object and
// configuration. Chunking and batching parameters are validated here: a
// non-positive batch size would stall the upload loop, so it is rejected
// as a configuration error just like a stalling overlap.
func NewPipeline(svc *services.Services, cfg *config.Config) (*Pipeline, error) {
	chunker, err := NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		return nil, fmt.Errorf("invalid chunking configuration: %w", err)
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", cfg.BatchSize)
	}

	return &Pipeline{
		svc:       svc,
		chunker:   chunker,
		batchSize: cfg.BatchSize,
	}, nil
}

// ResolveText returns the given literal text, or downloads and extracts the
// named document when text is empty. Empty download or extraction results
// are fatal to the operation.
func (p *Pipeline) ResolveText(ctx context.Context, text, blobName string) (string, error) {
	if text != "" {
		return text, nil
	}
	if blobName == "" {
		return "", fmt.Errorf("either text or a document name is required")
	}

	raw, err := p.svc.Objects.Download(ctx, blobName)
	if err != nil || len(raw) == 0 {
		return "", fmt.Errorf("failed to download document %s", blobName)
	}

	extracted := p.svc.Extractor.Extract(raw)
	if extracted == "" {
		return "", fmt.Errorf("failed to extract text from %s", blobName)
	}
	return extracted, nil
}

// SearchDocuments performs a keyword search over the indexed chunks.
func (p *Pipeline) SearchDocuments(ctx context.Context, query string, top int) ([]models.SearchHit, error) {
	return p.svc.Search.Search(ctx, query, top)
}

// VectorSearch embeds the query and ranks indexed chunks by similarity.
func (p *Pipeline) VectorSearch(ctx context.Context, query string, top int) ([]models.SearchHit, error) {
	vector, err := p.svc.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return p.svc.Search.VectorSearch(ctx, vector, top)
}

// StoredChunks returns the document-store rows for a source, in chunk order.
func (p *Pipeline) StoredChunks(ctx context.Context, source string) ([]models.StoreDocument, error) {
	return p.svc.Documents.Query(ctx, source)
}

// Artifacts lists stored side artifacts for one document_type category.
func (p *Pipeline) Artifacts(ctx context.Context, documentType string) ([]models.Artifact, error) {
	return p.svc.Artifacts.ArtifactsByType(ctx, documentType)
}
