package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gestorhq/gestor-be/types"
)

// maxPromptChars bounds the document text embedded in a prompt; anything
// longer is cut and marked, trading completeness for bounded cost and
// latency on an interactive upload flow.
const maxPromptChars = 8000

const extractionSystemPrompt = "You are an expert project management analyst. Extract structured data from documents and return only valid JSON."

const extractionPromptTemplate = `
Analyze the following document and extract structured data for a project management system.
Return a JSON object with the following structure:

{
  "projects": [
    {
      "name": "Project name",
      "description": "Detailed project description",
      "budget": numerical_budget_value,
      "startDate": "YYYY-MM-DD",
      "expectedEndDate": "YYYY-MM-DD",
      "technologies": ["tech1", "tech2"],
      "status": "planning|in_progress|done|cancelled"
    }
  ],
  "tasks": [
    {
      "title": "Task title",
      "description": "Detailed task description",
      "priority": "low|medium|high|urgent",
      "dueDate": "YYYY-MM-DD",
      "tags": ["tag1", "tag2"],
      "suggestedOwner": "Suggested responsible person"
    }
  ],
  "timeline": [
    {
      "title": "Event title",
      "description": "Event description",
      "kind": "task|message|milestone|meeting|deadline",
      "timestamp": "ISO datetime string",
      "priority": "low|medium|high|urgent"
    }
  ],
  "insights": {
    "summary": "Brief summary of the document analysis",
    "keyPoints": ["key point 1", "key point 2"],
    "recommendations": ["recommendation 1", "recommendation 2"],
    "estimatedDuration": "estimated project duration",
    "riskFactors": ["risk 1", "risk 2"]
  }
}

Document content:
%s

Please analyze this document and return ONLY the JSON object, no additional text.
`

// buildExtractionPrompt embeds the document text in the schema prompt,
// truncated to maxPromptChars with a marker when cut.
func buildExtractionPrompt(text string) string {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars] + " ..."
	}
	return fmt.Sprintf(extractionPromptTemplate, text)
}

// decodeModelResponse parses the raw completion text into the schema
// contract. Models occasionally wrap the object in a markdown fence;
// that wrapper is stripped before decoding.
func decodeModelResponse(raw string) (types.ExtractionResult, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
	}
	var result types.ExtractionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return types.ExtractionResult{}, fmt.Errorf("decode model response: %w", err)
	}
	normalizeResult(&result)
	return result, nil
}

// normalizeResult guarantees the structural invariants the schema
// contract promises: collections and insight lists are never nil.
func normalizeResult(r *types.ExtractionResult) {
	if r.Projects == nil {
		r.Projects = []types.ExtractedProject{}
	}
	if r.Tasks == nil {
		r.Tasks = []types.ExtractedTask{}
	}
	if r.Timeline == nil {
		r.Timeline = []types.ExtractedEvent{}
	}
	if r.Insights.KeyPoints == nil {
		r.Insights.KeyPoints = []string{}
	}
	if r.Insights.Recommendations == nil {
		r.Insights.Recommendations = []string{}
	}
	if r.Insights.RiskFactors == nil {
		r.Insights.RiskFactors = []string{}
	}
}
