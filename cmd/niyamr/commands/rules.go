// ABOUTME: CLI command to evaluate the six compliance rules against an Act
// ABOUTME: Prints one verdict per rule plus pass count and average confidence
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var rulesFile string

// NewRulesCmd creates the rules command
func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules [document]",
		Short: "Check compliance rules against an Act",
		Long: `Evaluate the Act against the six compliance rules.

Each rule gets a pass/fail/unknown/error verdict with supporting
evidence and a confidence score. Verdicts are returned in fixed rule
order and stored as a retrievable artifact.

Examples:
  niyamr rules pension_act_2024.txt
  niyamr rules --format json --file ./acts/pension_act_2024.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRules,
	}

	cmd.Flags().StringVar(&rulesFile, "file", "", "Check a local file instead of a stored document")

	return cmd
}

func runRules(cmd *cobra.Command, args []string) error {
	pipeline, cleanup, err := buildPipeline()
	if err != nil {
		return err
	}
	defer cleanup()

	document := ""
	if len(args) > 0 {
		document = args[0]
	}

	text, err := resolveCommandText(cmd.Context(), pipeline, rulesFile, document)
	if err != nil {
		return err
	}

	verdicts, summary := pipeline.CheckRules(cmd.Context(), text)

	if outputFormat == "json" {
		return printJSON(cmd, map[string]interface{}{
			"results":            verdicts,
			"total_rules":        summary.TotalRules,
			"passed_rules":       summary.PassedRules,
			"average_confidence": summary.AverageConfidence,
		})
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "STATUS\tCONF\tRULE\tEVIDENCE\n")
	fmt.Fprintf(w, "------\t----\t----\t--------\n")
	for _, v := range verdicts {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			v.Status,
			v.Confidence,
			truncateForDisplay(v.Rule, 50),
			truncateForDisplay(v.Evidence, 60))
	}
	w.Flush()

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nPassed %d/%d rules, average confidence %.1f\n",
			summary.PassedRules, summary.TotalRules, summary.AverageConfidence)
	}
	return nil
}
