// Package extract turns free-form safety data sheet text into canonical
// records through schema-constrained chat completions. It owns the prompt
// templates and the merge pass that folds research findings into a record.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/providers"
	"github.com/chemledger/sdsforge/internal/schema"
	"github.com/chemledger/sdsforge/internal/sds"
)

// MaxDocumentChars caps how much document text is sent to the model.
// Longer documents are truncated with a marker; section 1-8 content that
// matters sits early in every well-formed SDS.
const MaxDocumentChars = 25000

const truncationMarker = "\n[...]"

// truncate caps document text at MaxDocumentChars, backing the cut off to a
// rune boundary so it never splits a UTF-8 sequence.
func truncate(docText string) string {
	if len(docText) <= MaxDocumentChars {
		return docText
	}
	cut := MaxDocumentChars
	for cut > 0 && !utf8.RuneStart(docText[cut]) {
		cut--
	}
	return docText[:cut] + truncationMarker
}

// ExtractionError is a terminal extraction failure for one document.
type ExtractionError struct {
	Stage string // "extract" or "merge"
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// Config configures the adapter.
type Config struct {
	Client      providers.LLMClient
	Model       string
	Temperature float64
	MaxTokens   int
	Logger      *slog.Logger
}

// Adapter drives extraction and merge calls against an LLM client.
type Adapter struct {
	client      providers.LLMClient
	model       string
	temperature float64
	maxTokens   int
	logger      *slog.Logger
}

// NewAdapter creates an adapter. Temperature defaults to 0.1 so repeated
// runs over the same document stay close to deterministic.
func NewAdapter(cfg Config) (*Adapter, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("extract: client is required")
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4000
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Adapter{
		client:      cfg.Client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		logger:      cfg.Logger,
	}, nil
}

// Extract runs the schema-constrained extraction call and returns the raw
// field mapping. Callers normalize the result; the adapter does not.
func (a *Adapter) Extract(ctx context.Context, docText string, loc locale.Strings) (map[string]any, error) {
	docText = truncate(docText)

	parsed, err := a.structuredCall(ctx,
		SystemPrompt(),
		UserPrompt(loc.Name, docText),
		schema.ExtractionJSONSchema())
	if err != nil {
		return nil, &ExtractionError{Stage: "extract", Err: err}
	}
	return parsed, nil
}

// Merge folds research findings into a record under the merge contract:
// present values are authoritative and only the listed gap keys may be
// filled. The returned record has already been normalized and run through
// the restore guard, so contract violations by the model cannot escape.
func (a *Adapter) Merge(ctx context.Context, original sds.Record, findings string, gaps []string, loc locale.Strings) (sds.Record, error) {
	recordJSON, err := json.Marshal(original.Fields)
	if err != nil {
		return original, &ExtractionError{Stage: "merge", Err: err}
	}

	parsed, err := a.structuredCall(ctx,
		MergeSystemPrompt(),
		MergeUserPrompt(loc.Name, string(recordJSON), gaps, findings),
		schema.ExtractionJSONSchema())
	if err != nil {
		return original, &ExtractionError{Stage: "merge", Err: err}
	}

	merged := sds.Normalize(original.SourceDocument, parsed)
	return sds.RestoreOriginals(original, merged, gaps), nil
}

func (a *Adapter) structuredCall(ctx context.Context, system, user string, schemaDoc map[string]any) (map[string]any, error) {
	schemaRaw, err := json.Marshal(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema: %w", err)
	}

	res, err := a.client.Chat(ctx, &providers.ChatRequest{
		Model: a.model,
		Messages: []providers.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    a.temperature,
		MaxTokens:      a.maxTokens,
		ResponseFormat: &providers.ResponseFormat{Type: "json_schema", JSONSchema: schemaRaw},
	})
	if err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal(res.ParsedJSON, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode structured response: %w", err)
	}
	a.logger.Debug("structured call finished",
		"model", res.ModelUsed,
		"total_tokens", res.TotalTokens)
	return parsed, nil
}
