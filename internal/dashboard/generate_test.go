package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"brandlens/internal/insight"
	"brandlens/internal/llm"
	"brandlens/internal/model"
)

func TestClampPadsToThree(t *testing.T) {
	d := clamp(Dashboard{Insights: "summary"})
	require.Len(t, d.Visualizations, 3)
	require.Equal(t, VizBar, d.Visualizations[0].Type)
	require.Equal(t, VizLine, d.Visualizations[1].Type)
	require.Equal(t, VizPie, d.Visualizations[2].Type)

	d = clamp(Dashboard{Visualizations: []Visualization{
		{Type: VizPie, Title: "Regions"},
	}})
	require.Len(t, d.Visualizations, 3)
	require.Equal(t, "Regions", d.Visualizations[0].Title)
}

func TestClampTruncatesToSix(t *testing.T) {
	many := make([]Visualization, 9)
	for i := range many {
		many[i] = Visualization{Type: VizBar, Title: "t"}
	}
	d := clamp(Dashboard{Visualizations: many})
	require.Len(t, d.Visualizations, 6)
}

func TestClampCoercesUnknownTypes(t *testing.T) {
	d := clamp(Dashboard{Visualizations: []Visualization{
		{Type: "scatter", Title: "a"},
		{Type: VizLine, Title: "b"},
		{Type: "", Title: "c"},
	}})
	require.Equal(t, VizBar, d.Visualizations[0].Type)
	require.Equal(t, VizLine, d.Visualizations[1].Type)
	require.Equal(t, VizBar, d.Visualizations[2].Type)
}

func TestDecodeDashboardRepairsDamagedJSON(t *testing.T) {
	d, ok := decodeDashboard("```json\n{\"insights\": \"summary\", \"visualizations\": [{\"type\": \"bar\", \"title\": \"t\", \"description\": \"d\",}]}\n```")
	require.True(t, ok)
	require.Equal(t, "summary", d.Insights)
	require.Len(t, d.Visualizations, 1)

	_, ok = decodeDashboard("no braces here")
	require.False(t, ok)
}

func TestGenerateClampsBackendReply(t *testing.T) {
	provider := &stubProvider{client: &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return &llm.CompletionResponse{Content: `{
				"insights": "Awareness is trending up.",
				"visualizations": [
					{"type": "bar", "title": "By age", "description": "d"},
					{"type": "donut", "title": "By region", "description": "d"}
				]
			}`}, nil
		},
	}}
	s := NewService(provider)

	d, err := s.Generate(context.Background(), "Track awareness", insight.Context{ModelName: model.GPT4o}, transcript(7))
	require.NoError(t, err)
	require.Equal(t, "Awareness is trending up.", d.Insights)
	require.Len(t, d.Visualizations, 3)
	require.Equal(t, VizBar, d.Visualizations[0].Type)
	require.Equal(t, VizBar, d.Visualizations[1].Type, "unknown type coerced")
}

func TestGenerateSubstitutesParseFailSet(t *testing.T) {
	provider := &stubProvider{client: &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return &llm.CompletionResponse{Content: "complete garbage"}, nil
		},
	}}
	s := NewService(provider)

	d, err := s.Generate(context.Background(), "Track awareness", insight.Context{ModelName: model.GPT4o}, transcript(7))
	require.NoError(t, err)
	require.Equal(t, parseFailInsights, d.Insights)
	require.Len(t, d.Visualizations, 3)
}

func TestGenerateFallsBackOnBackendError(t *testing.T) {
	provider := &stubProvider{client: &llm.MockClient{
		CompleteFunc: func(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
			return nil, errors.New("down")
		},
	}}
	s := NewService(provider)

	d, err := s.Generate(context.Background(), "Track awareness", insight.Context{ModelName: model.GPT4o}, transcript(7))
	require.Error(t, err)
	require.Equal(t, generateFailInsights, d.Insights)
	require.Len(t, d.Visualizations, 3)
	for _, viz := range d.Visualizations {
		require.Contains(t, []VizType{VizBar, VizLine, VizPie}, viz.Type)
	}
}
