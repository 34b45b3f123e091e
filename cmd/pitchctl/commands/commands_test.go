package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windfall/pitch_service/internal/service"
)

func run(t *testing.T, stdin string, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	require.NoError(t, root.Execute())
	return stdout.String(), stderr.String()
}

func TestFallbackCmd(t *testing.T) {
	out, _ := run(t, "", "fallback")

	var record service.FeedbackRecord
	require.NoError(t, json.Unmarshal([]byte(out), &record))
	assert.Equal(t, service.FallbackFeedback(), record)
}

func TestAnalyzeCmd_ReadsStdinAndCallsGateway(t *testing.T) {
	var userMessage string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) && len(body.Messages) == 2 {
			userMessage = body.Messages[1].Content
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("LOG_LEVEL", "error")
	out, _ := run(t, "We built X to solve Y for Z market", "analyze", "--transcript=-", "--base-url="+server.URL+"/api/v1")

	assert.Equal(t, `Please analyze this pitch transcript: "We built X to solve Y for Z market"`, userMessage)

	var analysis service.Analysis
	require.NoError(t, json.Unmarshal([]byte(out), &analysis))
	assert.Equal(t, service.SourceFallback, analysis.Source)
	assert.Equal(t, service.ReasonTransport, analysis.Reason)
	assert.Equal(t, 78, analysis.Feedback.OverallScore)
}
