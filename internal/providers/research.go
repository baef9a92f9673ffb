package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const defaultResearchModel = "gpt-4o-search-preview"

// researchSystemPrompt keeps the findings factual and source-oriented.
const researchSystemPrompt = `You are a chemical safety research assistant.
Answer with concise factual findings about the requested substance data.
Cite the value and its source (supplier SDS, ECHA, GESTIS) where known.
If a value cannot be established, say so explicitly instead of guessing.`

// OpenAIResearcher implements Researcher on a search-capable chat model.
// It reuses an OpenAIClient so rate limiting and backoff are shared.
type OpenAIResearcher struct {
	client *OpenAIClient
	model  string
	logger *slog.Logger
}

// NewOpenAIResearcher creates a researcher on top of an existing client.
// Model defaults to a search-preview model when empty.
func NewOpenAIResearcher(client *OpenAIClient, model string, logger *slog.Logger) *OpenAIResearcher {
	if model == "" {
		model = defaultResearchModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OpenAIResearcher{client: client, model: model, logger: logger}
}

// Name returns the researcher identifier.
func (r *OpenAIResearcher) Name() string {
	return "openai-research"
}

// Research runs a free-text query and returns the findings text.
func (r *OpenAIResearcher) Research(ctx context.Context, query string) (string, error) {
	start := time.Now()
	res, err := r.client.Chat(ctx, &ChatRequest{
		Model: r.model,
		Messages: []Message{
			{Role: "system", Content: researchSystemPrompt},
			{Role: "user", Content: query},
		},
		MaxTokens: 2000,
	})
	if err != nil {
		return "", fmt.Errorf("research query failed: %w", err)
	}
	r.logger.Debug("research query finished",
		"model", r.model,
		"total_tokens", res.TotalTokens,
		"duration", time.Since(start))
	return res.Content, nil
}

// Verify interface
var _ Researcher = (*OpenAIResearcher)(nil)
