package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const feedbackSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overallScore", "clarity", "pacing", "tone", "content", "summary", "keyStrengths", "areasForImprovement"],
  "properties": {
    "overallScore": { "$ref": "#/definitions/score" },
    "clarity": { "$ref": "#/definitions/dimension" },
    "pacing": { "$ref": "#/definitions/dimension" },
    "tone": { "$ref": "#/definitions/dimension" },
    "content": { "$ref": "#/definitions/dimension" },
    "summary": { "type": "string", "minLength": 1 },
    "keyStrengths": { "$ref": "#/definitions/stringList" },
    "areasForImprovement": { "$ref": "#/definitions/stringList" }
  },
  "definitions": {
    "score": { "type": "integer", "minimum": 0, "maximum": 100 },
    "stringList": { "type": "array", "items": { "type": "string" } },
    "dimension": {
      "type": "object",
      "required": ["score", "feedback", "suggestions"],
      "properties": {
        "score": { "$ref": "#/definitions/score" },
        "feedback": { "type": "string", "minLength": 1 },
        "suggestions": { "$ref": "#/definitions/stringList" }
      }
    }
  }
}`

var feedbackSchemaLoader = gojsonschema.NewStringLoader(feedbackSchemaJSON)

// ParseFeedback validates model output against the FeedbackRecord schema and
// decodes it. Markdown code fences around the JSON are tolerated. Scores
// outside [0,100] are rejected, not clamped.
//
// The decoded record is validated a second time: encoding/json matches keys
// case-insensitively, so a payload carrying both "overallScore" and
// "OverallScore" passes the raw check yet decodes the second value.
func ParseFeedback(content string) (FeedbackRecord, error) {
	var record FeedbackRecord

	clean := stripCodeFence(content)
	if clean == "" {
		return record, fmt.Errorf("empty feedback payload")
	}

	if err := validateFeedback(gojsonschema.NewStringLoader(clean)); err != nil {
		return record, err
	}

	if err := json.Unmarshal([]byte(clean), &record); err != nil {
		return FeedbackRecord{}, fmt.Errorf("failed to decode feedback payload: %w", err)
	}

	if err := validateFeedback(gojsonschema.NewGoLoader(record)); err != nil {
		return FeedbackRecord{}, fmt.Errorf("decoded feedback: %w", err)
	}
	return record, nil
}

func validateFeedback(doc gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(feedbackSchemaLoader, doc)
	if err != nil {
		return fmt.Errorf("feedback payload is not valid JSON: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			issues = append(issues, desc.String())
		}
		return fmt.Errorf("feedback payload violates schema: %s", strings.Join(issues, "; "))
	}
	return nil
}

func stripCodeFence(text string) string {
	clean := strings.TrimSpace(text)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
