package service

// DimensionScore is the score and narrative for one delivery dimension.
type DimensionScore struct {
	Score       int      `json:"score"`
	Feedback    string   `json:"feedback"`
	Suggestions []string `json:"suggestions"`
}

// FeedbackRecord is the structured scoring object returned for a pitch.
//
// JSON shape (also the shape the model is instructed to return):
//
//	{
//	  "overallScore": 0-100,
//	  "clarity":  {"score": 0-100, "feedback": "...", "suggestions": ["..."]},
//	  "pacing":   {...},
//	  "tone":     {...},
//	  "content":  {...},
//	  "summary": "...",
//	  "keyStrengths": ["..."],
//	  "areasForImprovement": ["..."]
//	}
type FeedbackRecord struct {
	OverallScore        int            `json:"overallScore"`
	Clarity             DimensionScore `json:"clarity"`
	Pacing              DimensionScore `json:"pacing"`
	Tone                DimensionScore `json:"tone"`
	Content             DimensionScore `json:"content"`
	Summary             string         `json:"summary"`
	KeyStrengths        []string       `json:"keyStrengths"`
	AreasForImprovement []string       `json:"areasForImprovement"`
}

// Source tells where a FeedbackRecord came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// FallbackReason names the failure that forced a fallback record.
type FallbackReason string

const (
	ReasonTransport         FallbackReason = "transport_error"
	ReasonEmptyResponse     FallbackReason = "empty_response"
	ReasonMalformedResponse FallbackReason = "malformed_response"
)

// Analysis is the result of AnalyzePitch. Feedback is always displayable;
// Source and Reason distinguish a genuine model result from a degraded one.
type Analysis struct {
	Feedback FeedbackRecord `json:"feedback"`
	Source   Source         `json:"source"`
	Reason   FallbackReason `json:"fallback_reason,omitempty"`
}

// Fallback reports whether the feedback is the canonical fallback record.
func (a Analysis) Fallback() bool {
	return a.Source == SourceFallback
}

// FallbackFeedback returns the canonical fallback record. Every call builds
// fresh slices, so callers may keep the result without sharing state.
func FallbackFeedback() FeedbackRecord {
	return FeedbackRecord{
		OverallScore: 78,
		Clarity: DimensionScore{
			Score:    82,
			Feedback: "Your message is generally clear and well-structured. You effectively communicate the core value proposition.",
			Suggestions: []string{
				"Use more specific examples to illustrate your points",
				"Avoid technical jargon when possible",
				"Structure your key points with clear transitions",
			},
		},
		Pacing: DimensionScore{
			Score:    75,
			Feedback: "Good overall pacing with room for improvement. Some sections feel rushed while others could be more dynamic.",
			Suggestions: []string{
				"Slow down during key value propositions",
				"Use strategic pauses for emphasis",
				"Vary your speaking rhythm to maintain engagement",
			},
		},
		Tone: DimensionScore{
			Score:    80,
			Feedback: "Confident and professional tone that builds credibility. Shows passion for the solution.",
			Suggestions: []string{
				"Inject more enthusiasm when discussing market opportunity",
				"Use storytelling to create emotional connection",
				"Balance confidence with humility about challenges",
			},
		},
		Content: DimensionScore{
			Score:    74,
			Feedback: "Solid content structure covering key elements. Could strengthen the problem-solution fit and market validation.",
			Suggestions: []string{
				"Lead with a more compelling hook or story",
				"Provide stronger evidence of market demand",
				"Include more specific traction metrics",
				"Clarify your competitive advantage",
			},
		},
		Summary: "This is a solid pitch with clear communication and professional delivery. The core value proposition comes through well, and you demonstrate good understanding of your market. Focus on strengthening your opening hook, providing more specific evidence of traction, and varying your pacing for maximum impact.",
		KeyStrengths: []string{
			"Clear articulation of the problem and solution",
			"Professional and confident delivery",
			"Good understanding of target market",
			"Logical flow and structure",
		},
		AreasForImprovement: []string{
			"Strengthen opening hook to grab attention immediately",
			"Provide more specific metrics and validation",
			"Improve pacing with strategic pauses",
			"Add more compelling storytelling elements",
		},
	}
}
