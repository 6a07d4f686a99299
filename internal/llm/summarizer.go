// Package llm generates an optional prose summary of a finished
// analysis. The summary is produced after the engine has run and never
// feeds back into issues, counts, or the verdict.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/eyeqlabs/prescreen/internal/model"
)

// Config configures the summarizer
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int
	Timeout   time.Duration
}

// Summarizer wraps the OpenAI chat API
type Summarizer struct {
	client *openai.Client
	config Config
}

// NewSummarizer creates a summarizer
func NewSummarizer(config Config) (*Summarizer, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Summarize produces a short prose summary of the structured result.
// Only the structured findings are sent, never the raw material.
func (s *Summarizer) Summarize(ctx context.Context, result *model.AnalysisResult) (string, error) {
	chatModel := s.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	maxTokens := s.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 1000
	}
	timeout := s.config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     chatModel,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize structured compliance findings for medical-device promotional copy. Restate only the findings you are given; do not add new findings or change severities.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(result),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildPrompt renders the structured result as the summary prompt
func BuildPrompt(result *model.AnalysisResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Product: %s\n", orUnknown(result.ProductDetected))
	fmt.Fprintf(&b, "Audience: %s (confidence %.2f)\n", result.AudienceType, result.AudienceConfidence)
	fmt.Fprintf(&b, "Approved claims matched: %d\n", len(result.CompliantClaims))
	fmt.Fprintf(&b, "Critical issues: %d, warnings: %d\n\n", result.CriticalCount(), result.WarningCount())

	b.WriteString("Findings:\n")
	for _, issue := range result.Issues {
		fmt.Fprintf(&b, "- [%s] %s: %s", issue.Severity, issue.Type, issue.Description)
		if issue.Snippet != "" {
			fmt.Fprintf(&b, " (example: %q)", issue.Snippet)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nWrite a short reviewer-facing summary of these findings in plain prose.\n")
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "not detected"
	}
	return s
}
