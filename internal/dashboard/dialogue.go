// Package dashboard drives the two-phase dashboard builder: a short
// clarification dialogue that gathers requirements, then a single generation
// call that turns the transcript into a renderable visualization set.
package dashboard

import (
	"context"
	"strings"
	"time"

	"brandlens/internal/insight"
	"brandlens/internal/llm"
	"brandlens/internal/logging"
	"brandlens/internal/model"
)

// CompletionReply is the canonical wording the clarification prompt asks the
// model to emit once it has enough context.
const CompletionReply = "Thank you for providing this information. I now have enough context to create your dashboard."

// ClarifyFallback is returned to the user when the backend could not produce
// the next clarifying question.
const ClarifyFallback = "I'm having trouble processing your request. Could you provide more details about what you'd like to see in your dashboard?"

// MaxClarifyingQuestions caps the dialogue length. Once this many
// question-answer pairs exist the dialogue is forced complete without another
// backend call, so a model that never volunteers completion cannot trap the
// user in an endless interview.
const MaxClarifyingQuestions = 5

// completionMarkers are the substrings that count a model reply as ending the
// dialogue. The list is deliberately wider than CompletionReply because
// models paraphrase.
var completionMarkers = []string{
	"Thank you for providing this information",
	"I now have enough context",
	"sufficient information",
	"enough information",
}

// IsComplete reports whether a clarification reply signals that enough
// context has been gathered.
func IsComplete(reply string) bool {
	for _, marker := range completionMarkers {
		if strings.Contains(reply, marker) {
			return true
		}
	}
	return false
}

// questionResponsePairs counts completed question-answer exchanges. The
// first message is the user's initial dashboard request and does not count as
// an answer.
func questionResponsePairs(previous []insight.ConversationMessage) int {
	if len(previous) < 1 {
		return 0
	}
	return (len(previous) - 1) / 2
}

// Service runs the clarification dialogue and the final generation call.
type Service struct {
	clients insight.ClientProvider
	logger  logging.Logger
	metrics insight.Metrics
}

// NewService builds a dashboard Service on top of an injected client
// provider.
func NewService(clients insight.ClientProvider) *Service {
	return &Service{
		clients: clients,
		logger:  logging.NewComponentLogger("dashboard"),
		metrics: insight.NopMetrics(),
	}
}

// WithMetrics routes instrumentation events to m.
func (s *Service) WithMetrics(m insight.Metrics) *Service {
	s.metrics = m
	return s
}

// WithLogger replaces the component logger. A nil logger silences the
// service instead of panicking at the first degraded call.
func (s *Service) WithLogger(l logging.Logger) *Service {
	s.logger = logging.OrNop(l)
	return s
}

func (s *Service) complete(ctx context.Context, client llm.Client, provider llm.Provider, operation string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	start := time.Now()
	resp, err := client.Complete(ctx, req)
	s.metrics.ObserveBackendCall(string(provider), operation, time.Since(start), err)
	return resp, err
}

// NextQuestion advances the clarification dialogue by one turn. It returns
// the AI's next message and whether the dialogue is complete. On backend
// failure the returned message is the fixed fallback question, the dialogue
// stays open, and the error is reported alongside.
func (s *Service) NextQuestion(ctx context.Context, userPrompt string, c insight.Context, previous []insight.ConversationMessage) (string, bool, error) {
	pairs := questionResponsePairs(previous)
	if pairs >= MaxClarifyingQuestions {
		return CompletionReply, true, nil
	}

	route := model.Resolve(c.ModelName)
	client, err := s.clients.GetClient(route.Provider, route.ModelID)
	if err != nil {
		s.logger.Warn("clarify: no client for %s: %v", c.ModelName, err)
		s.metrics.CountFallback("dashboard_clarify")
		return ClarifyFallback, false, err
	}

	req := llm.CompletionRequest{
		Messages: clarifyingPrompt(userPrompt, insight.BuildContextText(c), FormatConversationHistory(previous), pairs),
	}
	if route.Provider == llm.ProviderOpenAI {
		req.Temperature = 0.7
		req.MaxTokens = 300
	}

	resp, err := s.complete(ctx, client, route.Provider, "dashboard_clarify", req)
	if err != nil {
		s.logger.Warn("clarify: backend call failed: %v", err)
		s.metrics.CountFallback("dashboard_clarify")
		return ClarifyFallback, false, err
	}

	reply := strings.TrimSpace(resp.Content)
	if reply == "" {
		s.logger.Warn("clarify: empty reply from backend")
		return ClarifyFallback, false, nil
	}
	return reply, IsComplete(reply), nil
}
