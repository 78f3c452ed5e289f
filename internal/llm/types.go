package llm

import "context"

// Provider identifies which backend family a client speaks to.
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Message is a single role-tagged prompt block.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest carries one chat-completion call. When JSONSchema is set
// the backend is asked to constrain output to that schema (Ollama `format`,
// OpenAI `json_schema` response format); when only JSONObject is set the
// backend is asked for a generic JSON object reply.
type CompletionRequest struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
	JSONObject  bool
	JSONSchema  map[string]any
}

// TokenUsage reports prompt/completion token counts for a single call.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResponse is the normalized result of a completion call.
type CompletionResponse struct {
	Content    string
	StopReason string
	Usage      TokenUsage
}

// Client is a non-streaming chat-completion client for a single model.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	Model() string
}

// Config holds per-backend connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout int // seconds; applied uniformly per call
	Headers map[string]string
}
