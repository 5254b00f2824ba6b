// ABOUTME: CLI command to run the MCP server on stdio
// ABOUTME: Exposes the pipeline operations as MCP tools for AI assistants
package commands

import (
	"log"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/mustansirbharmal/niyamr/internal/mcp"
)

// NewMCPCmd creates the mcp command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Run the MCP server on stdio",
		Long: `Start the Model Context Protocol server with stdio transport.

Exposes index_document, summarize_act, extract_sections, check_rules,
and search_documents as MCP tools. Intended to be launched by an MCP
client, not interactively.`,
		RunE: runMCP,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	pipeline, cleanup, err := buildPipeline()
	if err != nil {
		return err
	}
	defer cleanup()

	server := mcpserver.NewMCPServer(
		"Niyamr Legislative Analysis",
		"0.1.0",
	)
	mcp.RegisterTools(server, pipeline)

	log.Println("Niyamr MCP server starting on stdio...")
	return mcpserver.ServeStdio(server)
}
