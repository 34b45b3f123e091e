package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windfall/pitch_service/internal/logger"
	"github.com/windfall/pitch_service/internal/service"
)

type stubAnalyzer struct {
	audioReference string
	transcript     string
	result         service.Analysis
}

func (s *stubAnalyzer) AnalyzePitch(ctx context.Context, audioReference, transcript string) service.Analysis {
	s.audioReference = audioReference
	s.transcript = transcript
	return s.result
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestFeedbackHandler_Analyze(t *testing.T) {
	stub := &stubAnalyzer{result: service.Analysis{
		Feedback: service.FallbackFeedback(),
		Source:   service.SourceFallback,
		Reason:   service.ReasonTransport,
	}}
	h := NewFeedbackHandler(logger.NewNop(), stub)

	rec := httptest.NewRecorder()
	body := `{"audio_reference":"blob:abc","transcript":"We built X to solve Y for Z market"}`
	h.Analyze(rec, httptest.NewRequest(http.MethodPost, "/api/v1/feedback/analyze", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "blob:abc", stub.audioReference)
	assert.Equal(t, "We built X to solve Y for Z market", stub.transcript)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	var got service.Analysis
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, stub.result, got)
}

func TestFeedbackHandler_Analyze_InvalidBody(t *testing.T) {
	h := NewFeedbackHandler(logger.NewNop(), &stubAnalyzer{})

	rec := httptest.NewRecorder()
	h.Analyze(rec, httptest.NewRequest(http.MethodPost, "/api/v1/feedback/analyze", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestCatalogHandler_Routes(t *testing.T) {
	h := NewCatalogHandler(service.NewCatalogService())
	r := chi.NewRouter()
	r.Get("/soundscapes", h.ListSoundscapes)
	r.Get("/soundscapes/{id}", h.GetSoundscape)
	r.Get("/templates", h.ListTemplates)
	r.Get("/tiers", h.ListTiers)

	t.Run("list", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/soundscapes", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var items []service.Soundscape
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
		assert.Len(t, items, 4)
	})

	t.Run("get", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/soundscapes/boardroom-ready", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var sc service.Soundscape
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &sc))
		assert.Equal(t, "Boardroom Ready", sc.Name)
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/soundscapes/rainforest", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("templates and tiers", func(t *testing.T) {
		for _, path := range []string{"/templates", "/tiers"} {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})
}

func TestIntroductionHandler_Submit(t *testing.T) {
	h := NewIntroductionHandler(logger.NewNop(), service.NewIntroductionService(logger.NewNop()))

	t.Run("created", func(t *testing.T) {
		body := `{"company_name":"Acme","industry":"saas","funding_stage":"seed","funding_amount":"1m-5m","pitch_summary":"B2B billing"}`
		rec := httptest.NewRecorder()
		h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/v1/introductions", strings.NewReader(body)))

		require.Equal(t, http.StatusCreated, rec.Code)
		var ack service.IntroductionAck
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &ack))
		assert.Equal(t, service.IntroductionPending, ack.Status)
		assert.NotEmpty(t, ack.RequestID)
	})

	t.Run("invalid option", func(t *testing.T) {
		body := `{"company_name":"Acme","industry":"mining","funding_stage":"seed","funding_amount":"1m-5m","pitch_summary":"B2B billing"}`
		rec := httptest.NewRecorder()
		h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/v1/introductions", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, "industry", env.Error.Details["field"])
	})

	t.Run("invalid body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Submit(rec, httptest.NewRequest(http.MethodPost, "/api/v1/introductions", strings.NewReader("not json")))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	h := NewHealthHandler()

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	h.SetReady(true)
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Live(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
