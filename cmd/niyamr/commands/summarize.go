// ABOUTME: CLI command to summarize an Act in bullet points
// ABOUTME: Accepts a stored document name or a local file via --file
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeFile string

// NewSummarizeCmd creates the summarize command
func NewSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [document]",
		Short: "Summarize an Act in bullet points",
		Long: `Generate a 5-10 bullet point summary of an Act.

The summary covers purpose, key definitions, eligibility, obligations,
and enforcement elements, and is stored as a retrievable artifact.

Examples:
  niyamr summarize pension_act_2024.txt
  niyamr summarize --file ./acts/pension_act_2024.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSummarize,
	}

	cmd.Flags().StringVar(&summarizeFile, "file", "", "Summarize a local file instead of a stored document")

	return cmd
}

func runSummarize(cmd *cobra.Command, args []string) error {
	pipeline, cleanup, err := buildPipeline()
	if err != nil {
		return err
	}
	defer cleanup()

	document := ""
	if len(args) > 0 {
		document = args[0]
	}

	text, err := resolveCommandText(cmd.Context(), pipeline, summarizeFile, document)
	if err != nil {
		return err
	}

	result := pipeline.Summarize(cmd.Context(), text)
	if !result.Success {
		return fmt.Errorf("summarization failed: %s", result.Error)
	}

	if outputFormat == "json" {
		return printJSON(cmd, result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Summary)
	return nil
}
