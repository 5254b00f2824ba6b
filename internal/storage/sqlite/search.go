// ABOUTME: Search-index sink over SQLite with batched all-or-nothing uploads
// ABOUTME: Supports keyword LIKE search and cosine-similarity vector search
package sqlite

import (
	"context"
	"fmt"
	"sort"

	"github.com/mustansirbharmal/niyamr/internal/models"
)

// SearchStore implements the SearchIndex contract on a local SQLite table.
type SearchStore struct {
	db *DB
}

// NewSearchStore creates a SearchStore on the given database.
func NewSearchStore(db *DB) *SearchStore {
	return &SearchStore{db: db}
}

// UploadBatch upserts a batch of search documents inside one transaction.
// The batch is all-or-nothing: any failure rolls the whole batch back.
func (s *SearchStore) UploadBatch(ctx context.Context, docs []models.SearchDocument) error {
	tx, err := s.db.Conn().BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch: %w", err)
	}

	for _, doc := range docs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO search_documents (
				id, content, content_vector, purpose, key_definitions, eligibility,
				obligations, enforcement_elements, legislative_section_definition,
				legislative_obligations, legislative_responsibilities,
				legislative_eligibility, legislative_payments, legislative_penalties,
				legislative_record_keeping, rules
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				content = excluded.content,
				content_vector = excluded.content_vector,
				purpose = excluded.purpose,
				key_definitions = excluded.key_definitions,
				eligibility = excluded.eligibility,
				obligations = excluded.obligations,
				enforcement_elements = excluded.enforcement_elements,
				legislative_section_definition = excluded.legislative_section_definition,
				legislative_obligations = excluded.legislative_obligations,
				legislative_responsibilities = excluded.legislative_responsibilities,
				legislative_eligibility = excluded.legislative_eligibility,
				legislative_payments = excluded.legislative_payments,
				legislative_penalties = excluded.legislative_penalties,
				legislative_record_keeping = excluded.legislative_record_keeping,
				rules = excluded.rules
		`, doc.ID, doc.Content, vectorToBlob(doc.ContentVector), doc.Purpose,
			doc.KeyDefinitions, doc.Eligibility, doc.Obligations, doc.EnforcementElements,
			doc.LegislativeSectionDefinition, doc.LegislativeObligations,
			doc.LegislativeResponsibilities, doc.LegislativeEligibility,
			doc.LegislativePayments, doc.LegislativePenalties,
			doc.LegislativeRecordKeeping, doc.Rules)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to upload document %s: %w", doc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// Search performs a keyword search over indexed content.
func (s *SearchStore) Search(ctx context.Context, query string, top int) ([]models.SearchHit, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, content, purpose
		FROM search_documents
		WHERE content LIKE ?
		LIMIT ?
	`, "%"+query+"%", top)
	if err != nil {
		return nil, fmt.Errorf("failed to search documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []models.SearchHit
	for rows.Next() {
		var hit models.SearchHit
		if err := rows.Scan(&hit.ID, &hit.Content, &hit.Purpose); err != nil {
			return nil, fmt.Errorf("failed to scan search hit: %w", err)
		}
		hit.Score = 0.5 // keyword match score
		hits = append(hits, hit)
	}

	return hits, rows.Err()
}

// VectorSearch ranks all indexed documents by cosine similarity to the
// query vector and returns the top results.
func (s *SearchStore) VectorSearch(ctx context.Context, vector []float64, top int) ([]models.SearchHit, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, content, purpose, content_vector
		FROM search_documents
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to scan index: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var hits []models.SearchHit
	for rows.Next() {
		var (
			hit  models.SearchHit
			blob []byte
		)
		if err := rows.Scan(&hit.ID, &hit.Content, &hit.Purpose, &blob); err != nil {
			return nil, fmt.Errorf("failed to scan search hit: %w", err)
		}
		hit.Score = CosineSimilarity(vector, blobToVector(blob))
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Sort by similarity descending
	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > top {
		hits = hits[:top]
	}
	return hits, nil
}
