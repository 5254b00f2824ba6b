// ABOUTME: In-memory fake collaborators for pipeline tests
// ABOUTME: Each fake records calls and can be programmed to fail

package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/mustansirbharmal/niyamr/internal/config"
	"github.com/mustansirbharmal/niyamr/internal/models"
	"github.com/mustansirbharmal/niyamr/internal/services"
)

type fakeObjects struct {
	blobs map[string][]byte
}

func (f *fakeObjects) Download(_ context.Context, name string) ([]byte, error) {
	data, ok := f.blobs[name]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", name)
	}
	return data, nil
}

type fakeExtractor struct{}

func (fakeExtractor) Extract(raw []byte) string {
	return string(raw)
}

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float64{float64(len(text))}, nil
}

// fakeCompleter returns queued responses in order, then repeats the last.
type fakeCompleter struct {
	responses []string
	err       error
	prompts   []string
	calls     int
}

func (f *fakeCompleter) Complete(_ context.Context, messages []services.ChatMessage, _ float32) (string, error) {
	f.calls++
	for _, m := range messages {
		f.prompts = append(f.prompts, m.Content)
	}
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "", nil
	}
	i := f.calls - 1
	if i >= len(f.responses) {
		i = len(f.responses) - 1
	}
	return f.responses[i], nil
}

type fakeSearch struct {
	batches   [][]models.SearchDocument
	failBatch int // 1-based batch number to fail, 0 for never
	hits      []models.SearchHit
}

func (f *fakeSearch) UploadBatch(_ context.Context, docs []models.SearchDocument) error {
	f.batches = append(f.batches, docs)
	if f.failBatch == len(f.batches) {
		return fmt.Errorf("batch %d rejected", f.failBatch)
	}
	return nil
}

func (f *fakeSearch) Search(_ context.Context, _ string, _ int) ([]models.SearchHit, error) {
	return f.hits, nil
}

func (f *fakeSearch) VectorSearch(_ context.Context, _ []float64, _ int) ([]models.SearchHit, error) {
	return f.hits, nil
}

type fakeDocs struct {
	upserts []models.StoreDocument
	err     error
}

func (f *fakeDocs) Upsert(_ context.Context, doc models.StoreDocument) error {
	if f.err != nil {
		return f.err
	}
	f.upserts = append(f.upserts, doc)
	return nil
}

func (f *fakeDocs) Query(_ context.Context, source string) ([]models.StoreDocument, error) {
	var out []models.StoreDocument
	for _, doc := range f.upserts {
		if doc.Source == source {
			out = append(out, doc)
		}
	}
	return out, nil
}

type fakeArtifacts struct {
	stored []models.Artifact
	err    error
}

func (f *fakeArtifacts) StoreArtifact(_ context.Context, artifact models.Artifact) error {
	if f.err != nil {
		return f.err
	}
	f.stored = append(f.stored, artifact)
	return nil
}

func (f *fakeArtifacts) ArtifactsByType(_ context.Context, documentType string) ([]models.Artifact, error) {
	var out []models.Artifact
	for _, a := range f.stored {
		if a.DocumentType == documentType {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArtifacts) byType(documentType string) []models.Artifact {
	out, _ := f.ArtifactsByType(context.Background(), documentType)
	return out
}

// testEnv bundles a pipeline with its fakes so tests can program and
// inspect each collaborator.
type testEnv struct {
	pipeline  *Pipeline
	objects   *fakeObjects
	embedder  *fakeEmbedder
	completer *fakeCompleter
	search    *fakeSearch
	docs      *fakeDocs
	artifacts *fakeArtifacts
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		objects:   &fakeObjects{blobs: map[string][]byte{}},
		embedder:  &fakeEmbedder{},
		completer: &fakeCompleter{},
		search:    &fakeSearch{},
		docs:      &fakeDocs{},
		artifacts: &fakeArtifacts{},
	}

	cfg := &config.Config{
		ChunkSize:    100,
		ChunkOverlap: 20,
		BatchSize:    2,
	}

	svc := &services.Services{
		Objects:   env.objects,
		Extractor: fakeExtractor{},
		Embedder:  env.embedder,
		Completer: env.completer,
		Search:    env.search,
		Documents: env.docs,
		Artifacts: env.artifacts,
	}

	pipeline, err := NewPipeline(svc, cfg)
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	env.pipeline = pipeline
	return env
}
