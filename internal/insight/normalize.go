package insight

import (
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"brandlens/internal/jsonx"
)

// The normalizer makes backend output safe to use regardless of backend
// quirks: near-JSON replies are repaired, known malformed shapes are mended,
// and anything still invalid is treated as a backend failure so the caller's
// fallback kicks in.

// unmarshalLenient decodes content into v, running the reply through a JSON
// repair pass when it is not valid JSON as delivered (unquoted keys, trailing
// commas, fenced code blocks and similar model output artifacts).
func unmarshalLenient(content string, v any) error {
	trimmed := strings.TrimSpace(content)
	if err := jsonx.Unmarshal([]byte(trimmed), v); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(trimmed)
	if err != nil {
		return fmt.Errorf("repair reply: %w", err)
	}
	if err := jsonx.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("decode repaired reply: %w", err)
	}
	return nil
}

// parseSuggestions extracts the suggestions list from a reply. One backend
// sometimes wraps each suggestion as {"phrase": "..."} instead of a plain
// string; both shapes are accepted, and extraction is idempotent on the
// target shape.
func parseSuggestions(content string) ([]string, error) {
	var reply struct {
		Suggestions []jsonx.RawMessage `json:"suggestions"`
	}
	if err := unmarshalLenient(content, &reply); err != nil {
		return nil, err
	}
	if len(reply.Suggestions) == 0 {
		return nil, fmt.Errorf("reply contained no suggestions")
	}

	out := make([]string, 0, len(reply.Suggestions))
	for _, raw := range reply.Suggestions {
		var s string
		if err := jsonx.Unmarshal(raw, &s); err == nil {
			out = append(out, s)
			continue
		}
		var wrapped struct {
			Phrase string `json:"phrase"`
		}
		if err := jsonx.Unmarshal(raw, &wrapped); err == nil && wrapped.Phrase != "" {
			out = append(out, wrapped.Phrase)
			continue
		}
		return nil, fmt.Errorf("suggestion entry is neither a string nor a phrase object")
	}
	return out, nil
}

// parseChartType extracts the classifier verdict and clamps it to the two
// permitted literals.
func parseChartType(content string) (string, error) {
	var reply struct {
		ChartType string `json:"chartType"`
	}
	if err := unmarshalLenient(content, &reply); err != nil {
		return "", err
	}
	switch reply.ChartType {
	case ChartTypeBar, ChartTypeTimeSeries:
		return reply.ChartType, nil
	case "":
		return "", fmt.Errorf("reply contained no chartType")
	default:
		// The backend was restricted to two values; anything else is
		// treated as a bar chart rather than an error.
		return ChartTypeBar, nil
	}
}

// parseTopic extracts the topic label from a classifier reply.
func parseTopic(content string) (string, error) {
	var reply struct {
		Topic string `json:"topic"`
	}
	if err := unmarshalLenient(content, &reply); err != nil {
		return "", err
	}
	if strings.TrimSpace(reply.Topic) == "" {
		return "", fmt.Errorf("reply contained no topic")
	}
	return reply.Topic, nil
}

// parseChartResult decodes a chart generation reply of the given kind. A
// reply missing content or chartData is a schema violation, equivalent to a
// backend failure: the caller substitutes the fallback rather than rendering
// a partial result.
func parseChartResult(content string, kind ChartKind) (*ChartResult, error) {
	var reply struct {
		Content   string           `json:"content"`
		ChartData jsonx.RawMessage `json:"chartData"`
	}
	if err := unmarshalLenient(content, &reply); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reply.Content) == "" || len(reply.ChartData) == 0 {
		return nil, fmt.Errorf("reply missing content or chartData")
	}

	payload := ChartPayload{Kind: kind}
	switch kind {
	case KindTimeSeries:
		var ts TimeSeries
		if err := jsonx.Unmarshal(reply.ChartData, &ts); err != nil {
			return nil, fmt.Errorf("decode chartData: %w", err)
		}
		payload.TimeSeries = &ts
	default:
		var bar BarChart
		if err := jsonx.Unmarshal(reply.ChartData, &bar); err != nil {
			return nil, fmt.Errorf("decode chartData: %w", err)
		}
		payload.Bar = &bar
	}

	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chart payload: %w", err)
	}

	return &ChartResult{Content: reply.Content, Chart: payload}, nil
}
