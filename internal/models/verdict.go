// ABOUTME: RuleVerdict and RuleCheckSummary types for compliance evaluation
// ABOUTME: One verdict per rule per run, aggregated into a derived summary
package models

// RuleStatus is the outcome of checking one compliance rule.
type RuleStatus string

const (
	StatusPass    RuleStatus = "pass"
	StatusFail    RuleStatus = "fail"
	StatusUnknown RuleStatus = "unknown"
	StatusError   RuleStatus = "error"
)

// RuleVerdict is the result of evaluating a single compliance rule against
// document text. Confidence is a 0-100 score as reported by the model.
type RuleVerdict struct {
	Rule       string     `json:"rule"`
	Status     RuleStatus `json:"status"`
	Evidence   string     `json:"evidence"`
	Confidence int        `json:"confidence"`
}

// RuleCheckSummary aggregates the verdicts of one evaluation run. It is
// derived from the verdict list and never stored independently of it.
type RuleCheckSummary struct {
	TotalRules        int     `json:"total_rules"`
	PassedRules       int     `json:"passed_rules"`
	AverageConfidence float64 `json:"average_confidence"`
}

// SummarizeVerdicts computes the aggregate over a verdict list.
func SummarizeVerdicts(verdicts []RuleVerdict) RuleCheckSummary {
	summary := RuleCheckSummary{TotalRules: len(verdicts)}
	if len(verdicts) == 0 {
		return summary
	}

	var confidenceSum int
	for _, v := range verdicts {
		if v.Status == StatusPass {
			summary.PassedRules++
		}
		confidenceSum += v.Confidence
	}
	summary.AverageConfidence = float64(confidenceSum) / float64(len(verdicts))

	return summary
}
