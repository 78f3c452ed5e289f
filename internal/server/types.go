package server

import (
	"time"

	"brandlens/internal/insight"
)

// ChatContext bundles the session selections with the per-request chat
// state. PreviousMessages rides inside the context object on the wire.
type ChatContext struct {
	insight.Context
	PreviousMessages   []insight.ConversationMessage `json:"previousMessages"`
	CompareSuggestions bool                          `json:"compareSuggestions"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string      `json:"message" binding:"required"`
	Context ChatContext `json:"context"`
}

// ChatResponse is the reply of POST /api/chat, degraded turns included.
type ChatResponse struct {
	AIResponse insight.ConversationMessage `json:"aiResponse"`
	Topic      string                      `json:"topic"`
}

// DashboardContextRequest is the body of POST /api/dashboard/context.
type DashboardContextRequest struct {
	UserPrompt       string                        `json:"userPrompt" binding:"required"`
	PreviousMessages []insight.ConversationMessage `json:"previousMessages"`
	Context          insight.Context               `json:"context"`
}

// DashboardContextResponse is one clarification turn.
type DashboardContextResponse struct {
	Message           string `json:"message"`
	IsContextComplete bool   `json:"isContextComplete"`
}

// DashboardGenerateRequest is the body of POST /api/dashboard/generate. The
// response body is dashboard.Dashboard verbatim.
type DashboardGenerateRequest struct {
	UserPrompt      string                        `json:"userPrompt" binding:"required"`
	ContextMessages []insight.ConversationMessage `json:"contextMessages"`
	Context         insight.Context               `json:"context"`
}

// ConfigStatus reports backend availability without leaking credentials.
type ConfigStatus struct {
	HasOpenAI       bool   `json:"hasOpenAI"`
	OllamaAvailable bool   `json:"ollamaAvailable"`
	OllamaEndpoint  string `json:"ollamaEndpoint"`
	Environment     string `json:"nodeEnv"`
}

// ConfigResponse is the reply of GET /api/config.
type ConfigResponse struct {
	Status string       `json:"status"`
	Config ConfigStatus `json:"config"`
}

// HealthResponse is the reply of GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    string    `json:"uptime"`
}
