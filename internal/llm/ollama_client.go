package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"brandlens/internal/jsonx"
	"brandlens/internal/logging"
)

var _ Client = (*ollamaClient)(nil)

// ollamaClient implements non-streaming chat completions against an Ollama server.
type ollamaClient struct {
	model      string
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger
}

// NewOllamaClient constructs a client for a local or remote Ollama daemon.
// The endpoint may be given with or without the /api suffix.
func NewOllamaClient(model string, config Config) (Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = "http://localhost:11434/api"
	}
	if !strings.HasSuffix(baseURL, "/api") {
		baseURL = baseURL + "/api"
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &ollamaClient{
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logging.NewComponentLogger("ollama-client"),
	}, nil
}

func (c *ollamaClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	payload, err := c.buildRequestPayload(req)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/chat", c.baseURL)
	c.logger.Debug("POST %s model=%s", endpoint, c.model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama request failed: %s", strings.TrimSpace(string(body)))
	}

	var response ollamaResponse
	if err := jsonx.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("decode ollama response: %w", err)
	}
	if response.Error != "" {
		return nil, fmt.Errorf("ollama error: %s", response.Error)
	}

	stopReason := strings.TrimSpace(response.DoneReason)
	if stopReason == "" {
		stopReason = "stop"
	}

	return &CompletionResponse{
		Content:    response.Message.Content,
		StopReason: stopReason,
		Usage: TokenUsage{
			PromptTokens:     response.PromptEvalCount,
			CompletionTokens: response.EvalCount,
			TotalTokens:      response.PromptEvalCount + response.EvalCount,
		},
	}, nil
}

func (c *ollamaClient) Model() string {
	return c.model
}

func (c *ollamaClient) buildRequestPayload(req CompletionRequest) ([]byte, error) {
	request := ollamaRequest{
		Model:    c.model,
		Messages: convertOllamaMessages(req.Messages),
		Stream:   false,
	}

	// Ollama's format field takes either the literal "json" or a full JSON
	// schema object the reply must conform to.
	switch {
	case req.JSONSchema != nil:
		request.Format = req.JSONSchema
	case req.JSONObject:
		request.Format = "json"
	}

	options := make(map[string]any)
	if req.Temperature > 0 {
		options["temperature"] = req.Temperature
	}
	if req.MaxTokens > 0 {
		options["num_predict"] = req.MaxTokens
	}
	if len(options) > 0 {
		request.Options = options
	}

	body, err := jsonx.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshal ollama request: %w", err)
	}
	return body, nil
}

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   any             `json:"format,omitempty"`
	Options  map[string]any  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaResponse struct {
	Model           string        `json:"model"`
	Message         ollamaMessage `json:"message"`
	Done            bool          `json:"done"`
	DoneReason      string        `json:"done_reason"`
	PromptEvalCount int           `json:"prompt_eval_count"`
	EvalCount       int           `json:"eval_count"`
	Error           string        `json:"error"`
}

func convertOllamaMessages(msgs []Message) []ollamaMessage {
	result := make([]ollamaMessage, 0, len(msgs))
	for _, msg := range msgs {
		role := strings.TrimSpace(msg.Role)
		if role == "" || strings.TrimSpace(msg.Content) == "" {
			continue
		}
		result = append(result, ollamaMessage{Role: role, Content: msg.Content})
	}
	return result
}
