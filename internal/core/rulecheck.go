// ABOUTME: Rule compliance evaluator with multi-level fallback response parsing
// ABOUTME: Model output is untrusted text; every parse level degrades to a verdict, never an error
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/mustansirbharmal/niyamr/internal/models"
	"github.com/mustansirbharmal/niyamr/internal/services"
)

// ruleTextLimit bounds how much document text each rule prompt carries.
const ruleTextLimit = 6000

// rulesTemperature keeps rule verdicts near-deterministic.
const rulesTemperature = 0.1

// ConfidenceOverrideThreshold forces a verdict to pass when the model
// reports at least this much confidence, regardless of its stated status.
const ConfidenceOverrideThreshold = 90

// ComplianceRules is the fixed, ordered list of rules every document is
// evaluated against. Verdicts are returned in this order.
var ComplianceRules = []string{
	"Act must define key terms",
	"Act must specify eligibility criteria",
	"Act must specify responsibilities of the administering authority",
	"Act must include enforcement or penalties",
	"Act must include payment calculation or entitlement structure",
	"Act must include record-keeping or reporting requirements",
}

var (
	// Greedy brace span, matching across newlines, for JSON embedded in prose.
	embeddedJSON = regexp.MustCompile(`(?s)\{.*\}`)
	// "confidence" followed by digits, however the model phrased it.
	confidencePattern = regexp.MustCompile(`(?i)confidence["\s:]*(\d+)`)
)

// rawVerdict is the wire shape the rule prompt asks the model to return.
// Confidence is a float so responses like 87.5 still parse.
type rawVerdict struct {
	Rule       string  `json:"rule"`
	Status     string  `json:"status"`
	Evidence   string  `json:"evidence"`
	Confidence float64 `json:"confidence"`
}

// CheckRules evaluates every compliance rule against the document text and
// returns one verdict per rule, in rule order, plus the aggregate summary.
// The verdict list and aggregate are also persisted as a side artifact.
func (p *Pipeline) CheckRules(ctx context.Context, text string) ([]models.RuleVerdict, models.RuleCheckSummary) {
	verdicts := make([]models.RuleVerdict, 0, len(ComplianceRules))

	for _, rule := range ComplianceRules {
		verdicts = append(verdicts, p.evaluateRule(ctx, rule, text))
	}

	summary := models.SummarizeVerdicts(verdicts)
	p.storeRuleCheckArtifact(ctx, verdicts, summary, len(text))

	return verdicts, summary
}

// evaluateRule prompts the completion service for one rule and parses the
// response. A completion failure yields an error verdict; everything else
// yields pass/fail/unknown through the fallback chain.
func (p *Pipeline) evaluateRule(ctx context.Context, rule, text string) models.RuleVerdict {
	messages := []services.ChatMessage{
		{
			Role: services.RoleSystem,
			Content: fmt.Sprintf(`You are an expert legal compliance checker. Check if the given Act satisfies this rule: %q

Respond with a JSON object containing:
- rule: the rule being checked
- status: "pass" or "fail"
- evidence: specific section or text that supports your decision
- confidence: confidence score from 0-100

Be thorough and accurate in your analysis.`, rule),
		},
		{
			Role:    services.RoleUser,
			Content: fmt.Sprintf("Check this rule against the Act:\n\nRule: %s\n\nAct text:\n%s", rule, truncateText(text, ruleTextLimit)),
		},
	}

	response, err := p.svc.Completer.Complete(ctx, messages, rulesTemperature)
	if err != nil {
		return models.RuleVerdict{
			Rule:       rule,
			Status:     models.StatusError,
			Evidence:   err.Error(),
			Confidence: 0,
		}
	}

	return ParseVerdict(rule, response)
}

// ParseVerdict turns an untrusted model response into a well-formed verdict
// via three explicit attempts: direct JSON, JSON embedded in prose, and
// lexical inference. Each attempt reports parse failure as a value so the
// chain is a visible control structure, and the confidence override is
// applied on every path.
func ParseVerdict(rule, response string) models.RuleVerdict {
	if verdict, ok := parseDirectJSON(rule, response); ok {
		return applyConfidenceOverride(verdict)
	}
	if verdict, ok := parseEmbeddedJSON(rule, response); ok {
		return applyConfidenceOverride(verdict)
	}
	return applyConfidenceOverride(lexicalVerdict(rule, response))
}

// parseDirectJSON attempts to parse the whole response as a verdict object.
func parseDirectJSON(rule, response string) (models.RuleVerdict, bool) {
	var raw rawVerdict
	if err := json.Unmarshal([]byte(response), &raw); err != nil {
		return models.RuleVerdict{}, false
	}
	return raw.toVerdict(rule), true
}

// parseEmbeddedJSON extracts the first brace-delimited substring (greedy,
// spanning newlines) and parses that instead.
func parseEmbeddedJSON(rule, response string) (models.RuleVerdict, bool) {
	match := embeddedJSON.FindString(response)
	if match == "" {
		return models.RuleVerdict{}, false
	}
	var raw rawVerdict
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return models.RuleVerdict{}, false
	}
	return raw.toVerdict(rule), true
}

// lexicalVerdict infers a verdict from free text: "pass" wins over "fail",
// anything else is unknown; confidence comes from a "confidence NN" match
// and defaults to 0. The full response becomes the evidence.
func lexicalVerdict(rule, response string) models.RuleVerdict {
	status := models.StatusUnknown
	lower := strings.ToLower(response)
	if strings.Contains(lower, "pass") {
		status = models.StatusPass
	} else if strings.Contains(lower, "fail") {
		status = models.StatusFail
	}

	confidence := 0
	if m := confidencePattern.FindStringSubmatch(response); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			confidence = n
		}
	}

	return models.RuleVerdict{
		Rule:       rule,
		Status:     status,
		Evidence:   response,
		Confidence: confidence,
	}
}

// applyConfidenceOverride forces high-confidence verdicts to pass. Applied
// uniformly across all parsing paths.
func applyConfidenceOverride(verdict models.RuleVerdict) models.RuleVerdict {
	if verdict.Confidence >= ConfidenceOverrideThreshold {
		verdict.Status = models.StatusPass
	}
	return verdict
}

// toVerdict fills in the typed verdict, keeping the model's rule text when
// present and falling back to the rule being checked.
func (r rawVerdict) toVerdict(rule string) models.RuleVerdict {
	verdictRule := r.Rule
	if verdictRule == "" {
		verdictRule = rule
	}

	status := models.RuleStatus(strings.ToLower(r.Status))
	switch status {
	case models.StatusPass, models.StatusFail, models.StatusUnknown:
	default:
		status = models.StatusUnknown
	}

	return models.RuleVerdict{
		Rule:       verdictRule,
		Status:     status,
		Evidence:   r.Evidence,
		Confidence: int(r.Confidence),
	}
}

// storeRuleCheckArtifact persists the verdict list, aggregate, and an
// embedding of the serialized verdicts. Best effort only.
func (p *Pipeline) storeRuleCheckArtifact(ctx context.Context, verdicts []models.RuleVerdict, summary models.RuleCheckSummary, textLength int) {
	serialized, err := json.Marshal(verdicts)
	if err != nil {
		log.Printf("Warning: failed to serialize rule verdicts: %v", err)
		return
	}

	embedding, err := p.svc.Embedder.Embed(ctx, string(serialized))
	if err != nil {
		log.Printf("Warning: embedding failed for rule check artifact: %v", err)
		embedding = []float64{}
	}

	artifact := models.Artifact{
		DocumentType: ArtifactRuleChecker,
		Payload: map[string]interface{}{
			"rule_check_results":   verdicts,
			"total_rules":          summary.TotalRules,
			"passed_rules":         summary.PassedRules,
			"average_confidence":   summary.AverageConfidence,
			"original_text_length": textLength,
			"embedding":            embedding,
		},
	}
	if err := p.svc.Artifacts.StoreArtifact(ctx, artifact); err != nil {
		log.Printf("Warning: failed to store rule check artifact: %v", err)
	}
}
