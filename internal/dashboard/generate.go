package dashboard

import (
	"context"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"brandlens/internal/insight"
	"brandlens/internal/jsonx"
	"brandlens/internal/llm"
	"brandlens/internal/model"
)

// VizType is one of the three renderable visualization types.
type VizType string

const (
	VizBar  VizType = "bar"
	VizLine VizType = "line"
	VizPie  VizType = "pie"
)

// Visualization is one panel of a generated dashboard. Data is kept opaque;
// its shape varies per type and the renderer interprets it.
type Visualization struct {
	Type        VizType          `json:"type"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Data        jsonx.RawMessage `json:"data,omitempty"`
}

// Dashboard is the generation result: an executive summary plus three to six
// visualizations.
type Dashboard struct {
	Insights       string          `json:"insights"`
	Visualizations []Visualization `json:"visualizations"`
}

const parseFailInsights = "Error generating insights. Here are some visualizations based on your request."

const generateFailInsights = "Unable to generate custom insights for your request. Here are some general visualizations for brand awareness tracking."

// parseFailVisualizations replaces the whole set when the model reply could
// not be decoded at all.
func parseFailVisualizations() []Visualization {
	return []Visualization{
		{Type: VizBar, Title: "Brand Awareness by Demographic", Description: "Shows how different demographics are aware of the brand"},
		{Type: VizLine, Title: "Brand Awareness Trend", Description: "Shows brand awareness over time"},
		{Type: VizPie, Title: "Brand Awareness by Region", Description: "Shows regional distribution of brand awareness"},
	}
}

// padVisualizations is cycled through to top up a decoded set that came back
// with fewer than three panels.
func padVisualizations() []Visualization {
	return []Visualization{
		{Type: VizBar, Title: "Brand Awareness by Age Group", Description: "Shows brand awareness across different age demographics"},
		{Type: VizLine, Title: "Brand Awareness Trend (Last 12 Months)", Description: "Shows how brand awareness has changed over time"},
		{Type: VizPie, Title: "Brand Awareness by Region", Description: "Shows regional distribution of brand awareness"},
	}
}

func generateFailDashboard() Dashboard {
	return Dashboard{
		Insights: generateFailInsights,
		Visualizations: []Visualization{
			{Type: VizBar, Title: "Brand Awareness by Demographic", Description: "Shows how different demographics are aware of your brand"},
			{Type: VizLine, Title: "Brand Awareness Trend", Description: "Shows brand awareness over time"},
			{Type: VizPie, Title: "Brand Awareness by Region", Description: "Shows regional distribution of brand awareness"},
		},
	}
}

// clamp enforces the 3..6 panel contract and coerces unknown types to bar.
// It always returns a dashboard a renderer can draw.
func clamp(d Dashboard) Dashboard {
	pads := padVisualizations()
	for len(d.Visualizations) < 3 {
		d.Visualizations = append(d.Visualizations, pads[len(d.Visualizations)%len(pads)])
	}
	if len(d.Visualizations) > 6 {
		d.Visualizations = d.Visualizations[:6]
	}
	for i, viz := range d.Visualizations {
		switch viz.Type {
		case VizBar, VizLine, VizPie:
		default:
			d.Visualizations[i].Type = VizBar
		}
	}
	return d
}

// decodeDashboard tolerates the usual model JSON damage: a direct decode is
// tried first, then a repaired pass.
func decodeDashboard(content string) (Dashboard, bool) {
	var d Dashboard
	if err := jsonx.Unmarshal([]byte(content), &d); err == nil {
		return d, true
	}
	repaired, err := jsonrepair.JSONRepair(content)
	if err != nil {
		return Dashboard{}, false
	}
	if err := jsonx.Unmarshal([]byte(repaired), &d); err != nil {
		return Dashboard{}, false
	}
	return d, true
}

// Generate turns a completed clarification transcript into a dashboard. The
// result always satisfies the panel contract; on backend failure it is the
// documented generic dashboard and the error is reported alongside.
func (s *Service) Generate(ctx context.Context, userPrompt string, c insight.Context, contextMessages []insight.ConversationMessage) (Dashboard, error) {
	route := model.Resolve(c.ModelName)
	client, err := s.clients.GetClient(route.Provider, route.ModelID)
	if err != nil {
		s.logger.Warn("generate: no client for %s: %v", c.ModelName, err)
		s.metrics.CountFallback("dashboard_generate")
		return generateFailDashboard(), err
	}

	req := llm.CompletionRequest{
		Messages:   generationPrompt(userPrompt, insight.BuildContextText(c), FormatConversationHistory(contextMessages)),
		JSONObject: true,
	}
	if route.Provider == llm.ProviderOpenAI {
		req.Temperature = 0.7
	}

	resp, err := s.complete(ctx, client, route.Provider, "dashboard_generate", req)
	if err != nil {
		s.logger.Warn("generate: backend call failed: %v", err)
		s.metrics.CountFallback("dashboard_generate")
		return generateFailDashboard(), err
	}

	d, ok := decodeDashboard(strings.TrimSpace(resp.Content))
	if !ok {
		s.logger.Warn("generate: undecodable reply from backend")
		s.metrics.CountFallback("dashboard_generate")
		d = Dashboard{Insights: parseFailInsights, Visualizations: parseFailVisualizations()}
	}
	return clamp(d), nil
}
