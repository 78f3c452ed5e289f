package insight

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"brandlens/internal/llm"
	"brandlens/internal/logging"
	"brandlens/internal/model"
)

// ErrBackendUnavailable reports that every backend call of a chat turn
// failed, i.e. the AI subsystem as a whole was unreachable. Individual call
// failures are absorbed by static fallbacks and never surface as errors to
// the HTTP layer.
var ErrBackendUnavailable = errors.New("ai backend unavailable")

// ClientProvider hands out backend clients per provider and model.
// *llm.Factory satisfies it; tests substitute their own.
type ClientProvider interface {
	GetClient(provider llm.Provider, model string) (llm.Client, error)
}

// Orchestrator translates a (query, context, transcript) tuple into the
// backend calls needed to produce one AI reply. It is stateless per request
// and safe for concurrent use.
type Orchestrator struct {
	clients ClientProvider
	logger  logging.Logger
	metrics Metrics
}

// NewOrchestrator builds an Orchestrator on top of an injected client
// provider.
func NewOrchestrator(clients ClientProvider) *Orchestrator {
	return &Orchestrator{
		clients: clients,
		logger:  logging.NewComponentLogger("orchestrator"),
		metrics: NopMetrics(),
	}
}

// WithMetrics routes instrumentation events to m.
func (o *Orchestrator) WithMetrics(m Metrics) *Orchestrator {
	o.metrics = m
	return o
}

// WithLogger replaces the component logger. A nil logger silences the
// orchestrator instead of panicking at the first degraded call.
func (o *Orchestrator) WithLogger(l logging.Logger) *Orchestrator {
	o.logger = logging.OrNop(l)
	return o
}

// complete runs one backend call and records its latency and outcome.
func (o *Orchestrator) complete(ctx context.Context, client llm.Client, provider llm.Provider, operation string, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	start := time.Now()
	resp, err := client.Complete(ctx, req)
	o.metrics.ObserveBackendCall(string(provider), operation, time.Since(start), err)
	return resp, err
}

// GenerateSuggestions asks the backend selected by modelName for follow-up
// suggestions. The returned list is always usable: on any failure it equals
// the fixed example list and the underlying error is reported alongside.
func (o *Orchestrator) GenerateSuggestions(ctx context.Context, query, modelName string, c Context, history string) ([]string, error) {
	route := model.Resolve(modelName)
	client, err := o.clients.GetClient(route.Provider, route.ModelID)
	if err != nil {
		o.logger.Warn("suggestions: no client for %s: %v", modelName, err)
		o.metrics.CountFallback("suggestions")
		return FallbackSuggestions(), err
	}

	contextText := BuildContextText(c)
	req := llm.CompletionRequest{JSONObject: true}
	if route.Provider == llm.ProviderOllama {
		req.Messages = suggestionPromptOllama(query, contextText, history)
		req.JSONSchema = suggestionSchema
	} else {
		req.Messages = suggestionPromptOpenAI(query, contextText, history)
	}

	resp, err := o.complete(ctx, client, route.Provider, "suggestions", req)
	if err != nil {
		o.logger.Warn("suggestions: backend call failed for %s: %v", modelName, err)
		o.metrics.CountFallback("suggestions")
		return FallbackSuggestions(), err
	}

	suggestions, err := parseSuggestions(resp.Content)
	if err != nil {
		o.logger.Warn("suggestions: unusable reply from %s: %v", modelName, err)
		o.metrics.CountFallback("suggestions")
		return FallbackSuggestions(), err
	}
	return suggestions, nil
}

// ClassifyChartType asks the backend which of the two chart types fits the
// query. Defaults to a bar chart on any failure.
func (o *Orchestrator) ClassifyChartType(ctx context.Context, query string, c Context) (string, error) {
	route := model.Resolve(c.ModelName)
	client, err := o.clients.GetClient(route.Provider, route.ModelID)
	if err != nil {
		o.metrics.CountFallback("chart_type")
		return ChartTypeBar, err
	}

	resp, err := o.complete(ctx, client, route.Provider, "chart_type", llm.CompletionRequest{
		Messages:   chartTypePrompt(query, BuildContextText(c)),
		JSONObject: true,
	})
	if err != nil {
		o.logger.Warn("chart type: backend call failed: %v", err)
		o.metrics.CountFallback("chart_type")
		return ChartTypeBar, err
	}

	chartType, err := parseChartType(resp.Content)
	if err != nil {
		o.logger.Warn("chart type: unusable reply: %v", err)
		o.metrics.CountFallback("chart_type")
		return ChartTypeBar, err
	}
	return chartType, nil
}

// ClassifyTopic asks the backend for a short label summarizing the user
// conversation. Defaults to a fixed label on any failure.
func (o *Orchestrator) ClassifyTopic(ctx context.Context, allUserQueries string, c Context) (string, error) {
	route := model.Resolve(c.ModelName)
	client, err := o.clients.GetClient(route.Provider, route.ModelID)
	if err != nil {
		o.metrics.CountFallback("topic")
		return FallbackTopic, err
	}

	resp, err := o.complete(ctx, client, route.Provider, "topic", llm.CompletionRequest{
		Messages:   topicPrompt(allUserQueries, BuildContextText(c)),
		JSONObject: true,
	})
	if err != nil {
		o.logger.Warn("topic: backend call failed: %v", err)
		o.metrics.CountFallback("topic")
		return FallbackTopic, err
	}

	topic, err := parseTopic(resp.Content)
	if err != nil {
		o.logger.Warn("topic: unusable reply: %v", err)
		o.metrics.CountFallback("topic")
		return FallbackTopic, err
	}
	return topic, nil
}

// GenerateChartData fabricates a chart payload of the kind implied by
// chartType. The model choice collapses to the two chart-capable models; the
// result is always renderable, degrading to the documented fallback.
func (o *Orchestrator) GenerateChartData(ctx context.Context, query, modelName string, c Context, chartType string) (ChartResult, error) {
	kind := KindForChartType(chartType)
	route := model.Resolve(model.ChartDataName(modelName))

	client, err := o.clients.GetClient(route.Provider, route.ModelID)
	if err != nil {
		o.logger.Warn("chart data: no client for %s: %v", modelName, err)
		o.metrics.CountFallback("chart_data")
		return FallbackChart(kind), err
	}

	contextText := BuildContextText(c)
	req := llm.CompletionRequest{JSONObject: true}
	switch {
	case route.Provider == llm.ProviderOllama && kind == KindTimeSeries:
		req.Messages = timeSeriesPromptOllama(query, contextText)
		req.JSONSchema = timeSeriesSchema
	case route.Provider == llm.ProviderOllama:
		req.Messages = barChartPromptOllama(query, contextText)
		req.JSONSchema = barChartSchema
	case kind == KindTimeSeries:
		req.Messages = timeSeriesPromptOpenAI(query, contextText)
	default:
		req.Messages = barChartPromptOpenAI(query, contextText)
	}

	resp, err := o.complete(ctx, client, route.Provider, "chart_data", req)
	if err != nil {
		o.logger.Warn("chart data: backend call failed: %v", err)
		o.metrics.CountFallback("chart_data")
		return FallbackChart(kind), err
	}

	result, err := parseChartResult(resp.Content, kind)
	if err != nil {
		o.logger.Warn("chart data: unusable reply: %v", err)
		o.metrics.CountFallback("chart_data")
		return FallbackChart(kind), err
	}
	return *result, nil
}

// CompareAcrossModels gathers suggestions from the selected model plus two
// models sampled uniformly at random from the remaining set, concurrently.
// Each model degrades to the fallback list independently; the returned error
// is non-nil only when every call failed.
func (o *Orchestrator) CompareAcrossModels(ctx context.Context, query string, c Context, history string) (map[string][]string, error) {
	others := make([]string, 0, len(model.Available()))
	for _, name := range model.Available() {
		if name != c.ModelName {
			others = append(others, name)
		}
	}
	rand.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	if len(others) > 2 {
		others = others[:2]
	}
	modelsToUse := append([]string{c.ModelName}, others...)

	results := make([][]string, len(modelsToUse))
	callErrs := make([]error, len(modelsToUse))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range modelsToUse {
		g.Go(func() error {
			results[i], callErrs[i] = o.GenerateSuggestions(gctx, query, name, c, history)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string][]string, len(modelsToUse))
	failed := 0
	for i, name := range modelsToUse {
		out[name] = results[i]
		if callErrs[i] != nil {
			failed++
		}
	}
	if failed == len(modelsToUse) {
		return out, errors.Join(callErrs...)
	}
	return out, nil
}

// Respond runs one whole chat turn: suggestion generation (or the
// multi-model comparison), chart-type classification, and topic
// classification run concurrently; chart-data generation is sequenced after
// chart-type classification because it is a data dependency. The returned
// error is ErrBackendUnavailable only when every stage failed.
func (o *Orchestrator) Respond(ctx context.Context, message string, c Context, previous []ConversationMessage, compare bool) (ConversationMessage, string, error) {
	c = c.WithDefaults()
	history := FormatQueryHistory(previous, message)

	var (
		suggestions []string
		compareMap  map[string][]string
		chartType   string
		topic       string

		sugErr, typeErr, topicErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if compare {
			compareMap, sugErr = o.CompareAcrossModels(gctx, message, c, history)
		} else {
			suggestions, sugErr = o.GenerateSuggestions(gctx, message, c.ModelName, c, history)
		}
		return nil
	})
	g.Go(func() error {
		chartType, typeErr = o.ClassifyChartType(gctx, message, c)
		return nil
	})
	g.Go(func() error {
		topic, topicErr = o.ClassifyTopic(gctx, history, c)
		return nil
	})
	_ = g.Wait()

	if chartType == "" {
		chartType = ChartTypeBar
	}
	if topic == "" {
		topic = DefaultTopic
	}

	chartResult, chartErr := o.GenerateChartData(ctx, message, c.ModelName, c, chartType)

	if sugErr != nil && typeErr != nil && topicErr != nil && chartErr != nil {
		return ConversationMessage{}, "", ErrBackendUnavailable
	}

	reply := ConversationMessage{
		ID:        uuid.NewString(),
		Content:   chartResult.Content,
		Sender:    SenderAI,
		Timestamp: time.Now().UTC(),
		ChartData: &chartResult.Chart,
	}
	if compare {
		reply.Suggestions = []string{}
		reply.CompareSuggestions = compareMap
	} else {
		reply.Suggestions = suggestions
	}

	return reply, topic, nil
}

// DegradedReply builds the fixed apology message attached to a turn whose
// backend subsystem was unreachable.
func DegradedReply() ConversationMessage {
	return ConversationMessage{
		ID:          uuid.NewString(),
		Content:     DegradedReplyContent,
		Sender:      SenderAI,
		Timestamp:   time.Now().UTC(),
		Suggestions: DegradedSuggestions(),
	}
}
