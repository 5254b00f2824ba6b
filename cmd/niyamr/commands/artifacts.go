// ABOUTME: CLI command to list stored side artifacts by category
// ABOUTME: Categories: extracted_text, act_summary, legislative_sections, rule_checker
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mustansirbharmal/niyamr/internal/core"
)

// NewArtifactsCmd creates the artifacts command
func NewArtifactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artifacts <type>",
		Short: "List stored analysis artifacts",
		Long: `List side artifacts stored by the pipeline operations, newest first.

Categories:
  extracted_text        full text extracted during indexing
  act_summary           bullet-point summaries
  legislative_sections  structured section extractions
  rule_checker          compliance rule verdicts

Examples:
  niyamr artifacts act_summary
  niyamr artifacts --format json rule_checker`,
		Args: cobra.ExactArgs(1),
		RunE: runArtifacts,
	}

	return cmd
}

func runArtifacts(cmd *cobra.Command, args []string) error {
	documentType := args[0]
	switch documentType {
	case core.ArtifactExtractedText, core.ArtifactActSummary, core.ArtifactSections, core.ArtifactRuleChecker:
	default:
		return fmt.Errorf("unknown artifact type: %s", documentType)
	}

	pipeline, cleanup, err := buildPipeline()
	if err != nil {
		return err
	}
	defer cleanup()

	artifacts, err := pipeline.Artifacts(cmd.Context(), documentType)
	if err != nil {
		return fmt.Errorf("listing artifacts: %w", err)
	}

	if len(artifacts) == 0 {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "No %s artifacts stored\n", documentType)
		}
		return nil
	}

	if outputFormat == "json" {
		return printJSON(cmd, artifacts)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tSTORED\n")
	fmt.Fprintf(w, "--\t------\n")
	for _, artifact := range artifacts {
		fmt.Fprintf(w, "%s\t%s\n", artifact.ID, artifact.Timestamp.Format("2006-01-02 15:04:05"))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d artifact(s)\n", len(artifacts))
	}
	return nil
}
