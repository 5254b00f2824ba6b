// ABOUTME: Collaborator contracts for the ingestion and evaluation pipeline
// ABOUTME: Services bundles the external clients so operations share one context object
package services

import (
	"context"

	"github.com/mustansirbharmal/niyamr/internal/models"
)

// Chat message roles understood by the completion service.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one role-tagged message in a completion prompt.
type ChatMessage struct {
	Role    string
	Content string
}

// ObjectStore downloads raw document bytes by identifier.
type ObjectStore interface {
	Download(ctx context.Context, name string) ([]byte, error)
}

// TextExtractor converts raw document bytes into normalized plain text.
// An empty result signals extraction failure.
type TextExtractor interface {
	Extract(raw []byte) string
}

// Embedder converts text into a vector representation.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Completer generates a chat completion for role-tagged messages at the
// given sampling temperature. An empty result signals failure.
type Completer interface {
	Complete(ctx context.Context, messages []ChatMessage, temperature float32) (string, error)
}

// SearchIndex is the full-text/vector search sink. UploadBatch is
// all-or-nothing per batch.
type SearchIndex interface {
	UploadBatch(ctx context.Context, docs []models.SearchDocument) error
	Search(ctx context.Context, query string, top int) ([]models.SearchHit, error)
	VectorSearch(ctx context.Context, vector []float64, top int) ([]models.SearchHit, error)
}

// DocumentStore is the durable per-chunk sink. Upsert overwrites by ID.
type DocumentStore interface {
	Upsert(ctx context.Context, doc models.StoreDocument) error
	Query(ctx context.Context, source string) ([]models.StoreDocument, error)
}

// ArtifactStore persists derived side artifacts under a document_type
// category (extracted text, summaries, sections, rule-check results).
type ArtifactStore interface {
	StoreArtifact(ctx context.Context, artifact models.Artifact) error
	ArtifactsByType(ctx context.Context, documentType string) ([]models.Artifact, error)
}

// Services is the context object handed to every pipeline operation.
// Constructed once at startup; no ambient global state.
type Services struct {
	Objects   ObjectStore
	Extractor TextExtractor
	Embedder  Embedder
	Completer Completer
	Search    SearchIndex
	Documents DocumentStore
	Artifacts ArtifactStore
}
