package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// DefaultModel is the chat model used for sentiment summaries.
const DefaultModel = "gpt-4o"

// ErrNoAnalysis is returned when the model answers with no content.
var ErrNoAnalysis = errors.New("empty sentiment analysis")

// Analyzer summarizes the sentiment of a set of headlines about company.
type Analyzer interface {
	Analyze(ctx context.Context, company string, headlines []string) (string, error)
}

// OpenAIAnalyzer asks a chat completion model for the summary.
type OpenAIAnalyzer struct {
	client openai.Client
	model  string
}

// NewOpenAIAnalyzer creates an analyzer. An empty baseURL uses the OpenAI default.
func NewOpenAIAnalyzer(apiKey, baseURL, model string) *OpenAIAnalyzer {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIAnalyzer{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func sentimentPrompt(company string) string {
	return fmt.Sprintf("Analyze the sentiment of the following news headlines about %s's stock. "+
		"Provide a short summary of the sentiment and calculate the average sentiment score on a scale "+
		"of 0 (negative) to 10 (positive). Return only the summary in bullet points with specific yet short & concise "+
		"news examples and the average sentiment score as a number. Output should be in the exact format of: "+
		"Average Sentiment Score: _/10. Then the summary.", company)
}

// Analyze implements Analyzer
func (a *OpenAIAnalyzer) Analyze(ctx context.Context, company string, headlines []string) (string, error) {
	resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(sentimentPrompt(company)),
			openai.UserMessage(strings.Join(headlines, ", ")),
		},
	})
	if err != nil {
		return "", fmt.Errorf("sentiment completion for %s: %w", company, err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoAnalysis
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrNoAnalysis
	}
	return content, nil
}

// Unavailable is the Analyzer used when no model is configured. It always fails.
type Unavailable struct{}

// Analyze implements Analyzer
func (Unavailable) Analyze(context.Context, string, []string) (string, error) {
	return "", errors.New("sentiment analyzer not configured")
}
