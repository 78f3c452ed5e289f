// Package model maps user-facing model display names onto backend providers
// and concrete versioned model identifiers. All routing decisions consult
// this one table instead of re-deriving the mapping at call sites.
package model

import "brandlens/internal/llm"

// Route describes how a display name resolves to a backend call.
type Route struct {
	Provider llm.Provider
	ModelID  string
}

// Display names selectable in the UI.
const (
	Llama31      = "Llama 3.1"
	GPT4o        = "GPT 4o"
	O1Mini       = "o1-mini"
	GPT4oMini    = "gpt-4o-mini"
	O1Preview    = "o1-preview"
	GPT4Turbo    = "gpt-4-turbo"
	GPT35Turbo   = "gpt-3.5-turbo"
	GPT45Preview = "gpt-4.5-preview"
	O3Mini       = "o3-mini"
)

// DefaultOpenAIModelID is used when a display name has no explicit mapping.
const DefaultOpenAIModelID = "gpt-4o-2024-08-06"

// OllamaModelID is the concrete model served by the local Ollama daemon.
const OllamaModelID = "llama3.1"

var routes = map[string]Route{
	Llama31:      {Provider: llm.ProviderOllama, ModelID: OllamaModelID},
	GPT4o:        {Provider: llm.ProviderOpenAI, ModelID: "gpt-4o-2024-08-06"},
	O1Mini:       {Provider: llm.ProviderOpenAI, ModelID: "o1-mini-2024-09-12"},
	GPT4oMini:    {Provider: llm.ProviderOpenAI, ModelID: "gpt-4o-mini-2024-07-18"},
	O1Preview:    {Provider: llm.ProviderOpenAI, ModelID: "o1-preview-2024-09-12"},
	GPT4Turbo:    {Provider: llm.ProviderOpenAI, ModelID: "gpt-4-turbo-2024-04-09"},
	GPT35Turbo:   {Provider: llm.ProviderOpenAI, ModelID: "gpt-3.5-turbo-0125"},
	GPT45Preview: {Provider: llm.ProviderOpenAI, ModelID: "gpt-4.5-preview"},
	O3Mini:       {Provider: llm.ProviderOpenAI, ModelID: "o3-mini-2025-1-31"},
}

// available preserves the order shown to users and offered for comparison.
var available = []string{
	Llama31, GPT4o, O1Mini, GPT4oMini, O1Preview, GPT4Turbo, GPT35Turbo, GPT45Preview,
}

// Resolve returns the route for a display name. Unrecognized names fall back
// to the default OpenAI model rather than failing the call.
func Resolve(displayName string) Route {
	if route, ok := routes[displayName]; ok {
		return route
	}
	return Route{Provider: llm.ProviderOpenAI, ModelID: DefaultOpenAIModelID}
}

// Available returns the display names offered for selection and comparison.
func Available() []string {
	out := make([]string, len(available))
	copy(out, available)
	return out
}

// ChartDataName collapses a display name to one of the two models chart data
// is ever generated with: the local Llama model keeps its own path, every
// other selection routes through GPT 4o.
func ChartDataName(displayName string) string {
	if displayName == Llama31 {
		return Llama31
	}
	return GPT4o
}
