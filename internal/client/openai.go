package client

import (
	"context"
	"math"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is the OpenRouter gateway, which speaks the OpenAI chat API.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// OpenAIClient wraps the OpenAI API client.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client. An empty baseURL selects
// DefaultBaseURL and a nil httpClient selects http.DefaultClient. The API key
// is not validated here; a missing key surfaces as a 401 from the endpoint.
func NewOpenAIClient(apiKey, baseURL string, httpClient *http.Client) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cfg.BaseURL = baseURL
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  openai.GPT4oMini,
	}
}

// WithModel sets the model to use.
func (c *OpenAIClient) WithModel(model string) *OpenAIClient {
	if model != "" {
		c.model = model
	}
	return c
}

// Model returns the configured model identifier.
func (c *OpenAIClient) Model() string {
	return c.model
}

// ChatCompletion sends a system prompt + user message and returns the content
// of the first choice. It returns "" with a nil error when the endpoint
// answered without choices.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, systemPrompt, userMessage string, temperature float32) (string, error) {
	// The request field is omitempty; a zero would be dropped and the
	// gateway would apply its own default.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: userMessage,
			},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
