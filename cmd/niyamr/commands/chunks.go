// ABOUTME: CLI command to list stored chunks for an indexed document
// ABOUTME: Reads the document store in chunk order via the pipeline
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewChunksCmd creates the chunks command
func NewChunksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chunks <document>",
		Short: "List indexed chunks for a document",
		Long: `List the chunks stored for an indexed document, in chunk order.

Examples:
  niyamr chunks pension_act_2024.txt
  niyamr chunks --format json pension_act_2024.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runChunks,
	}

	return cmd
}

func runChunks(cmd *cobra.Command, args []string) error {
	pipeline, cleanup, err := buildPipeline()
	if err != nil {
		return err
	}
	defer cleanup()

	docs, err := pipeline.StoredChunks(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("listing chunks: %w", err)
	}

	if len(docs) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No chunks stored for %s\n", args[0])
		}
		return nil
	}

	if outputFormat == "json" {
		return printJSON(cmd, docs)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "INDEX\tID\tCONTENT\n")
	fmt.Fprintf(w, "-----\t--\t-------\n")
	for _, doc := range docs {
		fmt.Fprintf(w, "%d\t%s\t%s\n", doc.ChunkIndex, doc.ID, truncate(doc.Content, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d chunk(s), full text %d characters\n",
			len(docs), docs[0].FullTextLength)
	}
	return nil
}
