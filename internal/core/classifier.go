// ABOUTME: Keyword-heuristic classifier deriving structural tags per chunk
// ABOUTME: Pure function, deterministic, safe to run in parallel across chunks
package core

import (
	"strings"

	"github.com/mustansirbharmal/niyamr/internal/models"
)

// excerptLimit bounds how much of the chunk each matched category stores.
const excerptLimit = 200

// Keyword sets per classification category.
var (
	definitionKeywords     = []string{"means", "definition", "interpret", "shall mean"}
	eligibilityKeywords    = []string{"eligible", "qualification", "entitled", "qualify"}
	obligationKeywords     = []string{"shall", "must", "obligation", "duty", "required"}
	responsibilityKeywords = []string{"responsible", "responsibility", "authority", "administer"}
	paymentKeywords        = []string{"payment", "benefit", "amount", "entitlement", "credit"}
	penaltyKeywords        = []string{"penalty", "fine", "sanction", "offence", "prosecution"}
	recordKeywords         = []string{"record", "report", "information", "data", "maintain"}
)

// Purpose labels assigned by priority when categories match.
const (
	PurposeDefinitions = "Definitions section"
	PurposeEligibility = "Eligibility criteria"
	PurposePayments    = "Payment and entitlements"
	PurposePenalties   = "Enforcement and penalties"
	PurposeGeneral     = "General legislative content"
)

// Classify derives a ChunkAnalysis from one chunk's text using
// case-insensitive keyword membership tests. Purpose is always set,
// resolved by priority: definitions > eligibility > payments > penalties.
func Classify(text string) models.ChunkAnalysis {
	var analysis models.ChunkAnalysis
	lower := strings.ToLower(text)
	sample := excerpt(text)

	if containsAny(lower, definitionKeywords) {
		analysis.Definitions = sample
	}
	if containsAny(lower, eligibilityKeywords) {
		analysis.Eligibility = sample
	}
	if containsAny(lower, obligationKeywords) {
		analysis.Obligations = sample
	}
	if containsAny(lower, responsibilityKeywords) {
		analysis.Responsibilities = sample
	}
	if containsAny(lower, paymentKeywords) {
		analysis.Payments = sample
	}
	if containsAny(lower, penaltyKeywords) {
		// Penalty language is also the index's enforcement signal
		analysis.Penalties = sample
		analysis.Enforcement = sample
	}
	if containsAny(lower, recordKeywords) {
		analysis.RecordKeeping = sample
	}

	switch {
	case analysis.Definitions != "":
		analysis.Purpose = PurposeDefinitions
	case analysis.Eligibility != "":
		analysis.Purpose = PurposeEligibility
	case analysis.Payments != "":
		analysis.Purpose = PurposePayments
	case analysis.Penalties != "":
		analysis.Purpose = PurposePenalties
	default:
		analysis.Purpose = PurposeGeneral
	}

	return analysis
}

// excerpt truncates chunk text to the excerpt limit with a marker.
func excerpt(text string) string {
	if len(text) > excerptLimit {
		return text[:runeFloor(text, excerptLimit)] + "..."
	}
	return text
}

func containsAny(lower string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
