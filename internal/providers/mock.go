package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"
)

const MockClientName = "mock"

// MockClient is an LLMClient for testing.
type MockClient struct {
	// Configurable behavior
	Latency      time.Duration
	ShouldFail   bool
	FailAfter    int // Fail after N requests (0 = never)
	ResponseText string
	ResponseJSON json.RawMessage

	// Responses queues per-request JSON bodies; when non-empty it takes
	// precedence over ResponseJSON, one entry per request in order.
	Responses []json.RawMessage

	// State
	requestCount atomic.Int64
}

// NewMockClient creates a new mock client with sensible defaults.
func NewMockClient() *MockClient {
	return &MockClient{
		Latency:      time.Millisecond,
		ResponseText: "mock response",
	}
}

// Name returns the client identifier.
func (c *MockClient) Name() string {
	return MockClientName
}

// Chat sends a mock chat request.
func (c *MockClient) Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error) {
	start := time.Now()
	count := c.requestCount.Add(1)

	result := &ChatResult{
		RequestID: fmt.Sprintf("mock-%d", count),
		Provider:  MockClientName,
		ModelUsed: req.Model,
		Attempts:  1,
	}

	if c.ShouldFail {
		result.ErrorType = "mock_failure"
		result.ErrorMessage = "mock client configured to fail"
		result.ExecutionTime = time.Since(start)
		return result, fmt.Errorf("mock client configured to fail")
	}
	if c.FailAfter > 0 && int(count) > c.FailAfter {
		result.ErrorType = "mock_failure"
		result.ErrorMessage = fmt.Sprintf("mock client failed after %d requests", c.FailAfter)
		result.ExecutionTime = time.Since(start)
		return result, fmt.Errorf("mock client failed after %d requests", c.FailAfter)
	}

	// Simulate latency
	select {
	case <-time.After(c.Latency):
	case <-ctx.Done():
		result.ErrorType = "context_cancelled"
		result.ErrorMessage = ctx.Err().Error()
		result.ExecutionTime = time.Since(start)
		return result, ctx.Err()
	}

	result.Success = true
	result.Content = c.ResponseText
	result.ExecutionTime = time.Since(start)

	promptTokens := 0
	for _, m := range req.Messages {
		promptTokens += len(m.Content) / 4 // Rough estimate
	}
	result.PromptTokens = promptTokens
	result.CompletionTokens = len(result.Content) / 4
	result.TotalTokens = result.PromptTokens + result.CompletionTokens

	body := c.ResponseJSON
	if n := int(count) - 1; len(c.Responses) > 0 {
		if n < len(c.Responses) {
			body = c.Responses[n]
		} else {
			body = c.Responses[len(c.Responses)-1]
		}
	}
	if req.ResponseFormat != nil && len(body) > 0 {
		result.ParsedJSON = body
		result.Content = string(body)
	}

	return result, nil
}

// RequestCount returns the number of requests made.
func (c *MockClient) RequestCount() int64 {
	return c.requestCount.Load()
}

// Reset resets the request counter.
func (c *MockClient) Reset() {
	c.requestCount.Store(0)
}

// Verify interface
var _ LLMClient = (*MockClient)(nil)

// MockResearcher is a Researcher for testing.
type MockResearcher struct {
	Findings   string
	ShouldFail bool

	requestCount atomic.Int64
	lastQuery    atomic.Value
}

// Name returns the researcher identifier.
func (r *MockResearcher) Name() string {
	return "mock-research"
}

// Research returns the configured findings.
func (r *MockResearcher) Research(ctx context.Context, query string) (string, error) {
	r.requestCount.Add(1)
	r.lastQuery.Store(query)
	if r.ShouldFail {
		return "", fmt.Errorf("mock researcher configured to fail")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.Findings, nil
}

// RequestCount returns the number of queries made.
func (r *MockResearcher) RequestCount() int64 {
	return r.requestCount.Load()
}

// LastQuery returns the most recent query text.
func (r *MockResearcher) LastQuery() string {
	if v := r.lastQuery.Load(); v != nil {
		return v.(string)
	}
	return ""
}

// Verify interface
var _ Researcher = (*MockResearcher)(nil)
