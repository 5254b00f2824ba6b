// ABOUTME: CLI command to extract key legislative sections as JSON
// ABOUTME: Falls back to the raw model response when strict JSON parsing fails
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sectionsFile string

// NewSectionsCmd creates the sections command
func NewSectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sections [document]",
		Short: "Extract key legislative sections",
		Long: `Extract definitions, obligations, responsibilities, eligibility,
payments, penalties, and record-keeping sections as structured JSON.

A model response that is not valid JSON is still returned, under a
raw_response key. Results are stored as retrievable artifacts.

Examples:
  niyamr sections pension_act_2024.txt
  niyamr sections --file ./acts/pension_act_2024.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSections,
	}

	cmd.Flags().StringVar(&sectionsFile, "file", "", "Extract from a local file instead of a stored document")

	return cmd
}

func runSections(cmd *cobra.Command, args []string) error {
	pipeline, cleanup, err := buildPipeline()
	if err != nil {
		return err
	}
	defer cleanup()

	document := ""
	if len(args) > 0 {
		document = args[0]
	}

	text, err := resolveCommandText(cmd.Context(), pipeline, sectionsFile, document)
	if err != nil {
		return err
	}

	result := pipeline.ExtractSections(cmd.Context(), text)
	if !result.Success {
		return fmt.Errorf("section extraction failed: %s", result.Error)
	}

	return printJSON(cmd, result.Sections)
}
