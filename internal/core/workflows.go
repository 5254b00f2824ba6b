// ABOUTME: Summarization and section-extraction completion workflows
// ABOUTME: Side-artifact persistence is best effort; only completion failures fail the call
package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/mustansirbharmal/niyamr/internal/models"
	"github.com/mustansirbharmal/niyamr/internal/services"
)

// promptTextLimit bounds how much document text goes into a completion
// prompt, respecting model context limits.
const promptTextLimit = 8000

// Sampling temperatures per workflow. Structured extraction runs colder
// than summarization.
const (
	summaryTemperature  = 0.3
	sectionsTemperature = 0.2
)

// SummaryResult is the outcome of the summarization workflow.
type SummaryResult struct {
	Success bool   `json:"success"`
	Summary string `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SectionsResult is the outcome of the section-extraction workflow.
// Sections holds either the parsed JSON object or, when the model response
// was not valid JSON, the raw text under a raw_response key.
type SectionsResult struct {
	Success  bool                   `json:"success"`
	Sections map[string]interface{} `json:"sections,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// Summarize asks the completion service for a bullet-point summary of the
// document text and stores the summary as a side artifact.
func (p *Pipeline) Summarize(ctx context.Context, text string) *SummaryResult {
	messages := []services.ChatMessage{
		{
			Role:    services.RoleSystem,
			Content: "You are an expert legal analyst. Summarize the given Act in 5-10 bullet points focusing on: Purpose, Key definitions, Eligibility, Obligations, and Enforcement elements.",
		},
		{
			Role:    services.RoleUser,
			Content: fmt.Sprintf("Please summarize this Act:\n\n%s", truncateText(text, promptTextLimit)),
		},
	}

	summary, err := p.svc.Completer.Complete(ctx, messages, summaryTemperature)
	if err != nil || summary == "" {
		return &SummaryResult{Success: false, Error: completionError(err)}
	}

	p.storeDerivedArtifact(ctx, ArtifactActSummary, summary, map[string]interface{}{
		"summary_text":         summary,
		"original_text_length": len(text),
		"summary_method":       "AI_bullet_points",
	})

	return &SummaryResult{Success: true, Summary: summary}
}

// ExtractSections asks the completion service for a structured JSON
// extraction of the key legislative sections. A response that fails to
// parse as JSON is stored and returned under a raw_response key rather
// than failing the operation.
func (p *Pipeline) ExtractSections(ctx context.Context, text string) *SectionsResult {
	messages := []services.ChatMessage{
		{
			Role: services.RoleSystem,
			Content: `You are an expert legal analyst. Extract the following sections from the given Act and return them in JSON format:
- definitions
- obligations
- responsibilities
- eligibility
- payments (entitlements)
- penalties (enforcement)
- record_keeping (reporting)

Return only valid JSON with these exact keys.`,
		},
		{
			Role:    services.RoleUser,
			Content: fmt.Sprintf("Extract legislative sections from this Act:\n\n%s", truncateText(text, promptTextLimit)),
		},
	}

	response, err := p.svc.Completer.Complete(ctx, messages, sectionsTemperature)
	if err != nil || response == "" {
		return &SectionsResult{Success: false, Error: completionError(err)}
	}

	var sections map[string]interface{}
	if err := json.Unmarshal([]byte(response), &sections); err != nil {
		sections = map[string]interface{}{"raw_response": response}
		p.storeDerivedArtifact(ctx, ArtifactSections, response, map[string]interface{}{
			"legislative_sections": sections,
			"extraction_method":    "AI_text_extraction",
			"original_text_length": len(text),
		})
		return &SectionsResult{Success: true, Sections: sections}
	}

	serialized, _ := json.Marshal(sections)
	p.storeDerivedArtifact(ctx, ArtifactSections, string(serialized), map[string]interface{}{
		"legislative_sections": sections,
		"extraction_method":    "AI_JSON_extraction",
		"original_text_length": len(text),
	})

	return &SectionsResult{Success: true, Sections: sections}
}

// storeDerivedArtifact embeds the derived text and persists the payload
// under the given category. Failures are logged, never propagated: the
// primary result has already been produced for the caller.
func (p *Pipeline) storeDerivedArtifact(ctx context.Context, documentType, embedText string, payload map[string]interface{}) {
	embedding, err := p.svc.Embedder.Embed(ctx, embedText)
	if err != nil {
		log.Printf("Warning: embedding failed for %s artifact: %v", documentType, err)
		embedding = []float64{}
	}
	payload["embedding"] = embedding

	artifact := models.Artifact{
		DocumentType: documentType,
		Payload:      payload,
	}
	if err := p.svc.Artifacts.StoreArtifact(ctx, artifact); err != nil {
		log.Printf("Warning: failed to store %s artifact: %v", documentType, err)
	}
}

func truncateText(text string, limit int) string {
	if len(text) > limit {
		return text[:runeFloor(text, limit)]
	}
	return text
}

func completionError(err error) string {
	if err != nil {
		return err.Error()
	}
	return "completion service returned an empty response"
}
