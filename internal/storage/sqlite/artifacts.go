// ABOUTME: Artifact store for derived side artifacts keyed by document_type
// ABOUTME: Payloads are stored as JSON; IDs default to fresh UUIDs
package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mustansirbharmal/niyamr/internal/models"
)

// ArtifactStore persists summaries, extracted sections, rule-check results,
// and extracted-text records under their document_type category.
type ArtifactStore struct {
	db *DB
}

// NewArtifactStore creates an ArtifactStore on the given database.
func NewArtifactStore(db *DB) *ArtifactStore {
	return &ArtifactStore{db: db}
}

// StoreArtifact saves an artifact, assigning an ID and timestamp when the
// caller left them empty.
func (s *ArtifactStore) StoreArtifact(ctx context.Context, artifact models.Artifact) error {
	if artifact.ID == "" {
		artifact.ID = uuid.New().String()
	}
	if artifact.Timestamp.IsZero() {
		artifact.Timestamp = time.Now().UTC()
	}

	payload, err := json.Marshal(artifact.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact payload: %w", err)
	}

	_, err = s.db.Conn().ExecContext(ctx, `
		INSERT INTO artifacts (id, document_type, payload, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document_type = excluded.document_type,
			payload = excluded.payload
	`, artifact.ID, artifact.DocumentType, string(payload), artifact.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to store artifact: %w", err)
	}
	return nil
}

// ArtifactsByType returns all artifacts of one category, newest first.
func (s *ArtifactStore) ArtifactsByType(ctx context.Context, documentType string) ([]models.Artifact, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT id, document_type, payload, created_at
		FROM artifacts
		WHERE document_type = ?
		ORDER BY created_at DESC
	`, documentType)
	if err != nil {
		return nil, fmt.Errorf("failed to query artifacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var artifacts []models.Artifact
	for rows.Next() {
		var (
			artifact models.Artifact
			payload  string
		)
		if err := rows.Scan(&artifact.ID, &artifact.DocumentType, &payload, &artifact.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}

		var decoded interface{}
		if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
			// Keep the raw payload rather than dropping the row
			decoded = payload
		}
		artifact.Payload = decoded
		artifacts = append(artifacts, artifact)
	}

	return artifacts, rows.Err()
}
