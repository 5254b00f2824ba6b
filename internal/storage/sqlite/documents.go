// ABOUTME: Document-store sink over SQLite with upsert-by-ID semantics
// ABOUTME: Implements the DocumentStore contract used by the indexing pipeline
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mustansirbharmal/niyamr/internal/models"
)

// DocumentStore persists per-chunk documents keyed by deterministic ID.
type DocumentStore struct {
	db *DB
}

// NewDocumentStore creates a DocumentStore on the given database.
func NewDocumentStore(db *DB) *DocumentStore {
	return &DocumentStore{db: db}
}

// Upsert inserts the chunk document or overwrites it in place when the ID
// already exists. Re-ingesting a source therefore converges.
func (s *DocumentStore) Upsert(ctx context.Context, doc models.StoreDocument) error {
	_, err := s.db.Conn().ExecContext(ctx, `
		INSERT INTO chunks (id, content, embedding, source, chunk_index, full_text_length, chunk_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			embedding = excluded.embedding,
			source = excluded.source,
			chunk_index = excluded.chunk_index,
			full_text_length = excluded.full_text_length,
			chunk_count = excluded.chunk_count
	`, doc.ID, doc.Content, vectorToBlob(doc.Embedding), doc.Source, doc.ChunkIndex,
		doc.FullTextLength, doc.ChunkCount, doc.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to upsert chunk %s: %w", doc.ID, err)
	}
	return nil
}

// Query returns all chunk documents for a source, in chunk order.
func (s *DocumentStore) Query(ctx context.Context, source string) ([]models.StoreDocument, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, content, embedding, source, chunk_index, full_text_length, chunk_count, created_at
		FROM chunks
		WHERE source = ?
		ORDER BY chunk_index ASC
	`, source)
	if err != nil {
		return nil, fmt.Errorf("failed to query chunks for %s: %w", source, err)
	}
	defer func() { _ = rows.Close() }()

	return scanStoreDocuments(rows)
}

func scanStoreDocuments(rows *sql.Rows) ([]models.StoreDocument, error) {
	var docs []models.StoreDocument

	for rows.Next() {
		var (
			doc  models.StoreDocument
			blob []byte
		)
		if err := rows.Scan(&doc.ID, &doc.Content, &blob, &doc.Source, &doc.ChunkIndex,
			&doc.FullTextLength, &doc.ChunkCount, &doc.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chunk: %w", err)
		}
		doc.Embedding = blobToVector(blob)
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}
