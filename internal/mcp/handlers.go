// ABOUTME: MCP tool handler implementations for the niyamr server
// ABOUTME: Handlers resolve text, run pipeline operations, and return JSON results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mustansirbharmal/niyamr/internal/core"
)

// Handlers contains the handler functions for all MCP tools.
type Handlers struct {
	pipeline *core.Pipeline
}

// IndexDocument handles the index_document tool.
func (h *Handlers) IndexDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, err := request.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document argument is required and must be a string"), nil
	}

	result := h.pipeline.IndexDocument(ctx, document)
	if !result.Success {
		return mcp.NewToolResultError(result.Error), nil
	}

	return jsonResult(map[string]interface{}{
		"success":          result.Success,
		"chunks_processed": result.ChunksProcessed,
		"indexed":          result.Indexed,
		"text_length":      len(result.FullText),
	})
}

// SummarizeAct handles the summarize_act tool.
func (h *Handlers) SummarizeAct(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := h.resolveText(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := h.pipeline.Summarize(ctx, text)
	if !result.Success {
		return mcp.NewToolResultError(result.Error), nil
	}

	return jsonResult(map[string]interface{}{
		"success": true,
		"summary": result.Summary,
	})
}

// ExtractSections handles the extract_sections tool.
func (h *Handlers) ExtractSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := h.resolveText(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := h.pipeline.ExtractSections(ctx, text)
	if !result.Success {
		return mcp.NewToolResultError(result.Error), nil
	}

	return jsonResult(map[string]interface{}{
		"success":  true,
		"sections": result.Sections,
	})
}

// CheckRules handles the check_rules tool.
func (h *Handlers) CheckRules(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := h.resolveText(ctx, request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	verdicts, summary := h.pipeline.CheckRules(ctx, text)

	return jsonResult(map[string]interface{}{
		"results":            verdicts,
		"total_rules":        summary.TotalRules,
		"passed_rules":       summary.PassedRules,
		"average_confidence": summary.AverageConfidence,
	})
}

// SearchDocuments handles the search_documents tool.
func (h *Handlers) SearchDocuments(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	top := request.GetInt("top", 5)
	semantic := request.GetBool("semantic", false)

	var hits interface{}
	if semantic {
		hits, err = h.pipeline.VectorSearch(ctx, query, top)
	} else {
		hits, err = h.pipeline.SearchDocuments(ctx, query, top)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"results": hits,
	})
}

// resolveText pulls literal text from the request, or downloads and
// extracts the named document when text is omitted.
func (h *Handlers) resolveText(ctx context.Context, request mcp.CallToolRequest) (string, error) {
	text := request.GetString("text", "")
	document := request.GetString("document", "")
	return h.pipeline.ResolveText(ctx, text, document)
}

func jsonResult(response map[string]interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
