// ABOUTME: SQLite schema for the document store, search index, and artifacts
// ABOUTME: Chunk rows are keyed by deterministic IDs so upserts converge
package sqlite

// Schema contains all SQL statements for database initialization
const Schema = `
-- Document store: one row per chunk, keyed by deterministic chunk ID
CREATE TABLE IF NOT EXISTS chunks (
    id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    embedding BLOB,
    source TEXT NOT NULL,
    chunk_index INTEGER NOT NULL,
    full_text_length INTEGER DEFAULT 0,
    chunk_count INTEGER DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Search index: per-chunk documents with analysis fields and vector
CREATE TABLE IF NOT EXISTS search_documents (
    id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    content_vector BLOB,
    purpose TEXT,
    key_definitions TEXT,
    eligibility TEXT,
    obligations TEXT,
    enforcement_elements TEXT,
    legislative_section_definition TEXT,
    legislative_obligations TEXT,
    legislative_responsibilities TEXT,
    legislative_eligibility TEXT,
    legislative_payments TEXT,
    legislative_penalties TEXT,
    legislative_record_keeping TEXT,
    rules TEXT
);

-- Derived side artifacts keyed by document_type category
CREATE TABLE IF NOT EXISTS artifacts (
    id TEXT PRIMARY KEY,
    document_type TEXT NOT NULL,
    payload TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for efficient querying
CREATE INDEX IF NOT EXISTS idx_chunks_source ON chunks(source);
CREATE INDEX IF NOT EXISTS idx_artifacts_type ON artifacts(document_type);
`

// SchemaVersion is the current schema version for migrations
const SchemaVersion = 1
