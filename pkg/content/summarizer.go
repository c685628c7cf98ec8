package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/feedhaven/feedhaven/pkg/config"
)

// articleMaxChars caps the text sent to the model; longer articles are trimmed
const articleMaxChars = 8000

// summarySuffix marks machine-written text so readers can tell it apart
const summarySuffix = " (AI generated)"

const summarySystemPrompt = "Summarize the article clearly and concisely. " +
	"Return 3-6 sentences, no bullets, no headings, plain text only."

// summarySchema constrains the model response to a single summary field
var summarySchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"summary": {"type": "string"}
	},
	"required": ["summary"],
	"additionalProperties": false
}`)

// Summarizer produces short article summaries through an OpenAI-compatible
// endpoint. A summarizer built without an API key reports itself disabled and
// never makes a network call.
type Summarizer struct {
	client *openai.Client
	config config.LLMConfig
}

// NewSummarizer creates an LLM summarizer from the given config
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Enabled reports whether summarization is configured
func (s *Summarizer) Enabled() bool {
	return s.config.Enabled && s.config.APIKey != ""
}

// Summarize returns a short plain-text summary of the article text, suffixed
// so it cannot be mistaken for the author's words. Empty input or a disabled
// summarizer returns an empty summary with no error.
func (s *Summarizer) Summarize(ctx context.Context, articleText string) (string, error) {
	if !s.Enabled() {
		return "", nil
	}

	text := strings.TrimSpace(articleText)
	if text == "" {
		return "", nil
	}
	if len(text) > articleMaxChars {
		text = text[:articleMaxChars]
	}

	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: summarySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Article:\n" + text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "article_summary",
				Schema: summarySchema,
				Strict: true,
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summary request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summary response has no choices")
	}

	var parsed struct {
		Summary string `json:"summary"`
	}
	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", fmt.Errorf("parse summary response: %w", err)
	}

	summary := strings.TrimSpace(parsed.Summary)
	if summary == "" {
		return "", fmt.Errorf("summary response is empty")
	}
	return summary + summarySuffix, nil
}
