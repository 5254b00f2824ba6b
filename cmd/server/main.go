// ABOUTME: Main entry point for the niyamr MCP server with stdio transport
// ABOUTME: Initializes local storage, the OpenAI client, and all MCP tools
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mustansirbharmal/niyamr/internal/config"
	"github.com/mustansirbharmal/niyamr/internal/core"
	"github.com/mustansirbharmal/niyamr/internal/extract"
	"github.com/mustansirbharmal/niyamr/internal/llm"
	"github.com/mustansirbharmal/niyamr/internal/mcp"
	"github.com/mustansirbharmal/niyamr/internal/services"
	"github.com/mustansirbharmal/niyamr/internal/storage"
	"github.com/mustansirbharmal/niyamr/internal/storage/sqlite"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlite.Open(sqlite.DBPath(cfg.DataDir))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	blobs, err := storage.NewBlobStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
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
		log.Fatalf("Failed to initialize pipeline: %v", err)
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Niyamr Legislative Analysis",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, pipeline)

	// Start server with stdio transport
	log.Println("Niyamr MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
