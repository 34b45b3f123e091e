package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/windfall/pitch_service/internal/errors"
	"github.com/windfall/pitch_service/internal/service"
	"github.com/windfall/pitch_service/pkg/response"
)

// PitchAnalyzer is the feedback operation the handler depends on.
type PitchAnalyzer interface {
	AnalyzePitch(ctx context.Context, audioReference, transcript string) service.Analysis
}

// FeedbackHandler exposes pitch analysis to the recording UI.
type FeedbackHandler struct {
	log      zerolog.Logger
	analyzer PitchAnalyzer
}

// NewFeedbackHandler creates a new Feedback handler.
func NewFeedbackHandler(log zerolog.Logger, analyzer PitchAnalyzer) *FeedbackHandler {
	return &FeedbackHandler{
		log:      log,
		analyzer: analyzer,
	}
}

// AnalyzeRequest represents the request body for pitch analysis.
type AnalyzeRequest struct {
	AudioReference string `json:"audio_reference"` // object URL, path or recording id
	Transcript     string `json:"transcript"`      // optional
}

// Analyze handles POST /api/v1/feedback/analyze
//
// The response is always 200 once the body decodes: model failures degrade
// to the fallback record, flagged by "source": "fallback".
func (h *FeedbackHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, errors.Validation("invalid request body"))
		return
	}

	result := h.analyzer.AnalyzePitch(r.Context(), req.AudioReference, req.Transcript)

	response.JSON(w, http.StatusOK, result)
}
