// ABOUTME: CLI command to search indexed document chunks
// ABOUTME: Supports keyword matching and semantic vector similarity
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mustansirbharmal/niyamr/internal/models"
)

var (
	searchLimit    int
	searchSemantic bool
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search indexed documents",
		Long: `Search indexed document chunks.

Keyword search matches the chunk content; --semantic embeds the query
and ranks chunks by vector similarity instead.

Examples:
  niyamr search "eligibility criteria"
  niyamr search --semantic --limit 10 "pension entitlement"
  niyamr search --format json "penalties"`,
		Args: cobra.ExactArgs(1),
		RunE: runSearch,
	}

	cmd.Flags().IntVar(&searchLimit, "limit", 5, "Maximum results to return")
	cmd.Flags().BoolVar(&searchSemantic, "semantic", false, "Use vector similarity instead of keyword matching")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := validatePositiveInt(searchLimit, "limit"); err != nil {
		return err
	}

	pipeline, cleanup, err := buildPipeline()
	if err != nil {
		return err
	}
	defer cleanup()

	query := args[0]

	var hits []models.SearchHit
	if searchSemantic {
		hits, err = pipeline.VectorSearch(cmd.Context(), query, searchLimit)
	} else {
		hits, err = pipeline.SearchDocuments(cmd.Context(), query, searchLimit)
	}
	if err != nil {
		return fmt.Errorf("searching documents: %w", err)
	}

	if len(hits) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No results for query: %s\n", query)
		}
		return nil
	}

	if outputFormat == "json" {
		return printJSON(cmd, hits)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tID\tPURPOSE\tCONTENT\n")
	fmt.Fprintf(w, "-----\t--\t-------\t-------\n")
	for _, hit := range hits {
		purpose := hit.Purpose
		if purpose == "" {
			purpose = "(none)"
		}
		fmt.Fprintf(w, "%.3f\t%s\t%s\t%s\n",
			hit.Score,
			truncate(hit.ID, 30),
			truncateForDisplay(purpose, 30),
			truncateForDisplay(hit.Content, 50))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nFound %d result(s)\n", len(hits))
	}
	return nil
}
