package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"
	"github.com/rs/zerolog"

	"github.com/windfall/pitch_service/internal/errors"
	"github.com/windfall/pitch_service/internal/metrics"
)

const (
	// PlaceholderTranscript stands in for speech-to-text output when no
	// transcript is available.
	PlaceholderTranscript = "Hello, I'm excited to present our innovative solution that addresses a critical market need..."

	defaultFeedbackTemperature = 0.7
	defaultFeedbackTimeout     = 30 * time.Second
)

const pitchCoachPrompt = `You are an expert pitch coach and investor advisor. Analyze the following pitch transcript and provide detailed feedback on clarity, pacing, tone, and content. Return your analysis as a JSON object with the following structure:

{
  "overallScore": number (0-100),
  "clarity": {
    "score": number (0-100),
    "feedback": "string",
    "suggestions": ["string"]
  },
  "pacing": {
    "score": number (0-100),
    "feedback": "string",
    "suggestions": ["string"]
  },
  "tone": {
    "score": number (0-100),
    "feedback": "string",
    "suggestions": ["string"]
  },
  "content": {
    "score": number (0-100),
    "feedback": "string",
    "suggestions": ["string"]
  },
  "summary": "string",
  "keyStrengths": ["string"],
  "areasForImprovement": ["string"]
}`

// ChatCompleter sends a two-message conversation to a chat-completion
// endpoint and returns the first choice's content.
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, systemPrompt, userMessage string, temperature float32) (string, error)
}

// FeedbackConfig tunes the outbound analysis call. Temperature is sent as
// given, including 0. A non-positive Timeout selects the default.
type FeedbackConfig struct {
	Temperature float32
	Timeout     time.Duration
}

// DefaultFeedbackConfig returns temperature 0.7 and a 30s timeout.
func DefaultFeedbackConfig() FeedbackConfig {
	return FeedbackConfig{
		Temperature: defaultFeedbackTemperature,
		Timeout:     defaultFeedbackTimeout,
	}
}

// FeedbackService turns a recorded pitch into scored feedback.
type FeedbackService struct {
	chat        ChatCompleter
	temperature float32
	timeout     time.Duration
	log         zerolog.Logger
}

// NewFeedbackService creates a new Feedback service.
func NewFeedbackService(chat ChatCompleter, cfg FeedbackConfig, log zerolog.Logger) *FeedbackService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultFeedbackTimeout
	}
	return &FeedbackService{
		chat:        chat,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		log:         log,
	}
}

// AnalyzePitch scores a pitch. It never fails: transport errors, empty
// content and malformed content all yield FallbackFeedback, tagged with the
// reason. audioReference is recorded in logs only; just the transcript is
// sent to the model.
func (s *FeedbackService) AnalyzePitch(ctx context.Context, audioReference, transcript string) Analysis {
	resolved := ResolveTranscript(transcript)

	record, err := s.analyze(ctx, resolved)
	if err != nil {
		reason := fallbackReason(err)
		s.log.Warn().
			Err(err).
			Str("reason", string(reason)).
			Str("audio_reference", audioReference).
			Msg("Pitch analysis failed, returning fallback feedback")

		metrics.FeedbackAnalysesTotal.WithLabelValues(string(SourceFallback)).Inc()
		metrics.FeedbackFallbacksTotal.WithLabelValues(string(reason)).Inc()

		return Analysis{
			Feedback: FallbackFeedback(),
			Source:   SourceFallback,
			Reason:   reason,
		}
	}

	s.log.Info().
		Str("audio_reference", audioReference).
		Int("overall_score", record.OverallScore).
		Msg("Pitch analyzed")

	metrics.FeedbackAnalysesTotal.WithLabelValues(string(SourceModel)).Inc()

	return Analysis{
		Feedback: record,
		Source:   SourceModel,
	}
}

func (s *FeedbackService) analyze(ctx context.Context, transcript string) (FeedbackRecord, error) {
	if s.chat == nil {
		return FeedbackRecord{}, errors.New(errors.ErrAITransport, "chat client not configured")
	}

	userMessage := fmt.Sprintf("Please analyze this pitch transcript: \"%s\"", transcript)

	t := timeout.New[string](timeout.Config{
		DefaultTimeout: s.timeout,
	})

	start := time.Now()
	content, err := t.Execute(ctx, s.timeout, func(ctx context.Context) (string, error) {
		return s.chat.ChatCompletion(ctx, pitchCoachPrompt, userMessage, s.temperature)
	})
	metrics.FeedbackModelLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		return FeedbackRecord{}, errors.Wrap(errors.ErrAITransport, "chat completion failed", err)
	}

	if strings.TrimSpace(content) == "" {
		return FeedbackRecord{}, errors.New(errors.ErrAIEmptyResponse, "no content in chat completion")
	}

	record, err := ParseFeedback(content)
	if err != nil {
		return FeedbackRecord{}, errors.Wrap(errors.ErrAIMalformedResponse, "unusable feedback payload", err)
	}
	return record, nil
}

// ResolveTranscript returns transcript, or PlaceholderTranscript when it is
// empty. Whitespace-only transcripts are sent as-is.
func ResolveTranscript(transcript string) string {
	if transcript == "" {
		return PlaceholderTranscript
	}
	return transcript
}

func fallbackReason(err error) FallbackReason {
	switch errors.CodeOf(err) {
	case errors.ErrAIEmptyResponse:
		return ReasonEmptyResponse
	case errors.ErrAIMalformedResponse:
		return ReasonMalformedResponse
	default:
		return ReasonTransport
	}
}
