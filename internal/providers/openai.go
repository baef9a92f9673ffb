package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const OpenAIClientName = "openai"

// OpenAIConfig configures the OpenAI chat client.
type OpenAIConfig struct {
	APIKey       string
	DefaultModel string
	BaseURL      string // override for tests
	HTTPClient   *http.Client

	RequestsPerMinute int
	MaxRetries        int
	RetryDelayBase    time.Duration

	Logger *slog.Logger
}

// OpenAIClient implements LLMClient on the official OpenAI SDK. Retries are
// handled here with bounded exponential backoff; SDK-internal retries are
// disabled so the two layers cannot compound.
type OpenAIClient struct {
	client      openai.Client
	model       string
	maxRetries  int
	retryDelay  time.Duration
	rateLimiter *RateLimiter
	logger      *slog.Logger
}

// NewOpenAIClient creates a new OpenAI chat client.
func NewOpenAIClient(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.DefaultModel == "" {
		cfg.DefaultModel = "gpt-4o"
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelayBase <= 0 {
		cfg.RetryDelayBase = time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0), // backoff is ours
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(cfg.HTTPClient))
	}

	return &OpenAIClient{
		client:      openai.NewClient(opts...),
		model:       cfg.DefaultModel,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelayBase,
		rateLimiter: NewRateLimiter(cfg.RequestsPerMinute),
		logger:      cfg.Logger,
	}, nil
}

// Name returns the client identifier.
func (c *OpenAIClient) Name() string {
	return OpenAIClientName
}

// Chat sends a chat completion request with rate limiting and backoff.
func (c *OpenAIClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	model := req.Model
	if model == "" {
		model = c.model
	}

	result := &ChatResult{
		Provider:  OpenAIClientName,
		ModelUsed: model,
		RequestID: requestID,
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	params, err := c.buildParams(model, req)
	if err != nil {
		result.ErrorType = "bad_request"
		result.ErrorMessage = err.Error()
		return result, err
	}

	var resp *openai.ChatCompletion
	attempts := 0
	err = retry.Do(
		func() error {
			attempts++
			if err := c.rateLimiter.Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}
			r, callErr := c.client.Chat.Completions.New(ctx, *params)
			if callErr != nil {
				return c.classifyError(callErr, requestID)
			}
			resp = r
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(c.maxRetries)),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
	result.Attempts = attempts
	result.ExecutionTime = time.Since(start)

	if err != nil {
		result.ErrorMessage = err.Error()
		if ctx.Err() != nil {
			result.ErrorType = "context_cancelled"
			return result, err
		}
		var rle *RateLimitError
		switch {
		case errors.As(err, &rle):
			result.ErrorType = "rate_limited"
		default:
			result.ErrorType = "api_error"
		}
		return result, fmt.Errorf("%w: %v", ErrRetriesExhausted, err)
	}

	if len(resp.Choices) == 0 {
		result.ErrorType = "empty_response"
		result.ErrorMessage = "no choices in response"
		return result, fmt.Errorf("openai: no choices in response")
	}

	result.Content = resp.Choices[0].Message.Content
	result.PromptTokens = int(resp.Usage.PromptTokens)
	result.CompletionTokens = int(resp.Usage.CompletionTokens)
	result.TotalTokens = int(resp.Usage.TotalTokens)

	if req.ResponseFormat != nil {
		parsed, pErr := parseStructuredJSON(result.Content)
		if pErr != nil {
			result.ErrorType = "invalid_json"
			result.ErrorMessage = pErr.Error()
			return result, pErr
		}
		if vErr := validateStructuredJSON(req.ResponseFormat.JSONSchema, parsed); vErr != nil {
			result.ErrorType = "schema_violation"
			result.ErrorMessage = vErr.Error()
			return result, vErr
		}
		result.ParsedJSON = parsed
	}

	result.Success = true
	c.logger.Debug("chat completion finished",
		"request_id", requestID,
		"model", model,
		"attempts", attempts,
		"total_tokens", result.TotalTokens,
		"duration", result.ExecutionTime)
	return result, nil
}

func (c *OpenAIClient) buildParams(model string, req *ChatRequest) (*openai.ChatCompletionNewParams, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, openai.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openai.AssistantMessage(m.Content))
		case "user":
			messages = append(messages, openai.UserMessage(m.Content))
		default:
			return nil, fmt.Errorf("openai: unsupported message role %q", m.Role)
		}
	}

	params := &openai.ChatCompletionNewParams{
		Model:    model,
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	if req.ResponseFormat != nil {
		name, strict, schema, err := responseFormatParts(req.ResponseFormat.JSONSchema)
		if err != nil {
			return nil, err
		}
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   name,
					Schema: schema,
					Strict: openai.Bool(strict),
				},
			},
		}
	}
	return params, nil
}

// responseFormatParts unpacks a json_schema response-format document into the
// pieces the SDK wants. Accepts the full wrapper or the inner object.
func responseFormatParts(raw json.RawMessage) (name string, strict bool, schema any, err error) {
	var root map[string]any
	if err = json.Unmarshal(raw, &root); err != nil {
		return "", false, nil, fmt.Errorf("invalid response format document: %w", err)
	}
	inner := root
	if wrapped, ok := root["json_schema"].(map[string]any); ok {
		inner = wrapped
	}
	name, _ = inner["name"].(string)
	if name == "" {
		name = "structured_output"
	}
	strict, _ = inner["strict"].(bool)
	schema, ok := inner["schema"]
	if !ok {
		// Raw schema document with no wrapper.
		schema = inner
	}
	return name, strict, schema, nil
}

// classifyError maps SDK errors to retryable/unrecoverable buckets.
func (c *OpenAIClient) classifyError(err error, requestID string) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusTooManyRequests:
			c.rateLimiter.Record429(time.Second)
			c.logger.Warn("rate limited by provider", "request_id", requestID)
			return &RateLimitError{Message: apiErr.Message, RetryAfter: time.Second}
		case apiErr.StatusCode >= 500:
			return fmt.Errorf("openai server error (%d): %s", apiErr.StatusCode, apiErr.Message)
		default:
			// 4xx other than 429 will not improve on retry.
			return retry.Unrecoverable(fmt.Errorf("openai request failed (%d): %s", apiErr.StatusCode, apiErr.Message))
		}
	}
	return fmt.Errorf("openai request failed: %w", err)
}

// Verify interface
var _ LLMClient = (*OpenAIClient)(nil)
