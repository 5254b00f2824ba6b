// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates pipeline construction and text resolution used by every command
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mustansirbharmal/niyamr/internal/config"
	"github.com/mustansirbharmal/niyamr/internal/core"
	"github.com/mustansirbharmal/niyamr/internal/extract"
	"github.com/mustansirbharmal/niyamr/internal/llm"
	"github.com/mustansirbharmal/niyamr/internal/services"
	"github.com/mustansirbharmal/niyamr/internal/storage"
	"github.com/mustansirbharmal/niyamr/internal/storage/sqlite"
)

// buildPipeline wires the local stores and the OpenAI client into a
// pipeline. The returned cleanup function closes the database.
func buildPipeline() (*core.Pipeline, func(), error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	db, err := sqlite.Open(sqlite.DBPath(cfg.DataDir))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	blobs, err := storage.NewBlobStore(cfg.DataDir)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("initializing object store: %w", err)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("initializing OpenAI client: %w", err)
	}

	svc := &services.Services{
		Objects:   blobs,
		Extractor: extract.NewPlaintext(),
		Embedder:  client,
		Completer: client,
		Search:    sqlite.NewSearchStore(db),
		Documents: sqlite.NewDocumentStore(db),
		Artifacts: sqlite.NewArtifactStore(db),
	}

	pipeline, err := core.NewPipeline(svc, cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	cleanup := func() { _ = db.Close() }
	return pipeline, cleanup, nil
}

// resolveCommandText reads a local file when --file is given, otherwise
// resolves the named stored document through the pipeline.
func resolveCommandText(ctx context.Context, pipeline *core.Pipeline, filePath, document string) (string, error) {
	if filePath != "" {
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", filePath, err)
		}
		text := extract.NewPlaintext().Extract(raw)
		if text == "" {
			return "", fmt.Errorf("no text extracted from %s", filePath)
		}
		return text, nil
	}
	return pipeline.ResolveText(ctx, "", document)
}

// printJSON writes the value as indented JSON to the command's stdout
func printJSON(cmd *cobra.Command, v interface{}) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
	return nil
}

// truncateForDisplay shortens table cells, unless --verbose asked for
// full values
func truncateForDisplay(s string, maxLen int) string {
	if verbose {
		return s
	}
	return truncate(s, maxLen)
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
