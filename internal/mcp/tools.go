// ABOUTME: MCP tool definitions and registration for the niyamr server
// ABOUTME: Exposes the pipeline operations as tools with JSON input schemas
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mustansirbharmal/niyamr/internal/core"
)

// RegisterTools registers all MCP tools with the server.
func RegisterTools(server *mcpserver.MCPServer, pipeline *core.Pipeline) *Handlers {
	handlers := &Handlers{pipeline: pipeline}

	// 1. index_document - Ingest and index a stored document
	server.AddTool(mcp.Tool{
		Name:        "index_document",
		Description: "Download a stored document, extract its text, and index it into the search index and document store. Returns the extracted text, chunk count, and an indexed flag reflecting sink success.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Name of the document in the object store",
				},
			},
			Required: []string{"document"},
		},
	}, handlers.IndexDocument)

	// 2. summarize_act - Summarize document text in bullet points
	server.AddTool(mcp.Tool{
		Name:        "summarize_act",
		Description: "Summarize an Act in 5-10 bullet points. Accepts literal text or a stored document name.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Act text to summarize",
				},
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Stored document name, used when text is omitted",
				},
			},
		},
	}, handlers.SummarizeAct)

	// 3. extract_sections - Extract key legislative sections as JSON
	server.AddTool(mcp.Tool{
		Name:        "extract_sections",
		Description: "Extract key legislative sections (definitions, obligations, eligibility, payments, penalties, record keeping) as structured JSON. Accepts literal text or a stored document name.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Act text to extract sections from",
				},
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Stored document name, used when text is omitted",
				},
			},
		},
	}, handlers.ExtractSections)

	// 4. check_rules - Run the six compliance rule checks
	server.AddTool(mcp.Tool{
		Name:        "check_rules",
		Description: "Evaluate the Act against the six compliance rules. Returns one verdict per rule plus pass count and average confidence.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Act text to evaluate",
				},
				"document": map[string]interface{}{
					"type":        "string",
					"description": "Stored document name, used when text is omitted",
				},
			},
		},
	}, handlers.CheckRules)

	// 5. search_documents - Search the indexed chunks
	server.AddTool(mcp.Tool{
		Name:        "search_documents",
		Description: "Search indexed document chunks by keyword or semantic similarity.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"top": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 5)",
					"default":     5,
				},
				"semantic": map[string]interface{}{
					"type":        "boolean",
					"description": "Use vector similarity instead of keyword matching",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchDocuments)

	return handlers
}
