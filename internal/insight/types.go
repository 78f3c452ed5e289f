package insight

import (
	"fmt"
	"time"

	"brandlens/internal/jsonx"
)

// Context is the fixed bundle of selections attached to a chat session.
// It is immutable per request; the orchestrator reads it, never writes it.
type Context struct {
	Industry    string `json:"industry"`
	CompanyName string `json:"companyName"`
	Country     string `json:"country"`
	UserPersona string `json:"userPersona"`
	ModelName   string `json:"modelName"`
}

// DefaultCountry is applied when the caller leaves the country unset.
const DefaultCountry = "United States"

// WithDefaults returns a copy with empty fields replaced by their defaults.
func (c Context) WithDefaults() Context {
	if c.Country == "" {
		c.Country = DefaultCountry
	}
	return c
}

// Sender distinguishes the two sides of a transcript.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ConversationMessage is one turn in the chat transcript.
type ConversationMessage struct {
	ID                 string              `json:"id"`
	Content            string              `json:"content"`
	Sender             Sender              `json:"sender"`
	Timestamp          time.Time           `json:"timestamp"`
	Suggestions        []string            `json:"suggestions"`
	CompareSuggestions map[string][]string `json:"compareSuggestions,omitempty"`
	ChartData          *ChartPayload       `json:"chartData,omitempty"`
}

// ChartKind is the explicit discriminant of the chart payload union. It is
// decided once at generation time and carried through; render-side code never
// re-infers it from the shape of the color fields.
type ChartKind string

const (
	KindBar        ChartKind = "bar"
	KindTimeSeries ChartKind = "timeseries"
)

// ChartTypeBar and ChartTypeTimeSeries are the two literal values the
// chart-type classifier is restricted to.
const (
	ChartTypeBar        = "Bar chart"
	ChartTypeTimeSeries = "Time series chart"
)

// KindForChartType maps a classifier verdict onto a chart kind. Anything
// other than the time-series literal is a bar chart.
func KindForChartType(chartType string) ChartKind {
	if chartType == ChartTypeTimeSeries {
		return KindTimeSeries
	}
	return KindBar
}

// BarDataset holds one metric series for a bar chart. Color slices are
// per-bar: their length must equal the label count.
type BarDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     float64   `json:"borderWidth"`
}

// BarChart is the bar-chart variant of the payload union.
type BarChart struct {
	Labels      []string     `json:"labels"`
	Title       string       `json:"title"`
	DateRange   string       `json:"dateRange"`
	Demographic string       `json:"demographic"`
	Datasets    []BarDataset `json:"datasets"`
}

// TimeSeriesDataset holds one brand's series over time. Color fields are
// single scalars shared by the whole series.
type TimeSeriesDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor string    `json:"backgroundColor"`
	BorderColor     string    `json:"borderColor"`
	BorderWidth     float64   `json:"borderWidth"`
}

// TimeSeries is the time-series variant of the payload union.
type TimeSeries struct {
	Labels      []string            `json:"labels"`
	Title       string              `json:"title"`
	DateRange   string              `json:"dateRange"`
	Demographic string              `json:"demographic"`
	Datasets    []TimeSeriesDataset `json:"datasets"`
}

// ChartPayload is the tagged union carried on AI messages. Exactly one of
// Bar and TimeSeries is set, matching Kind.
type ChartPayload struct {
	Kind       ChartKind
	Bar        *BarChart
	TimeSeries *TimeSeries
}

// Validate enforces the structural invariants of each variant: per-bar color
// slices aligned with labels for bar charts, and percentage-range data for
// time series.
func (p *ChartPayload) Validate() error {
	switch p.Kind {
	case KindBar:
		if p.Bar == nil {
			return fmt.Errorf("bar payload missing data")
		}
		for _, ds := range p.Bar.Datasets {
			if len(ds.Data) != len(p.Bar.Labels) {
				return fmt.Errorf("dataset %q: %d data points for %d labels", ds.Label, len(ds.Data), len(p.Bar.Labels))
			}
			if len(ds.BackgroundColor) != len(p.Bar.Labels) || len(ds.BorderColor) != len(p.Bar.Labels) {
				return fmt.Errorf("dataset %q: color arrays must have one entry per bar", ds.Label)
			}
		}
	case KindTimeSeries:
		if p.TimeSeries == nil {
			return fmt.Errorf("time series payload missing data")
		}
		for _, ds := range p.TimeSeries.Datasets {
			if len(ds.Data) != len(p.TimeSeries.Labels) {
				return fmt.Errorf("dataset %q: %d data points for %d labels", ds.Label, len(ds.Data), len(p.TimeSeries.Labels))
			}
			for _, v := range ds.Data {
				if v < 0 || v > 100 {
					return fmt.Errorf("dataset %q: value %v outside [0,100]", ds.Label, v)
				}
			}
		}
	default:
		return fmt.Errorf("unknown chart kind %q", p.Kind)
	}
	return nil
}

// MarshalJSON renders the active variant in the wire shape chart renderers
// expect, with the kind carried as an explicit field.
func (p *ChartPayload) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case KindBar:
		return jsonx.Marshal(struct {
			Kind ChartKind `json:"kind"`
			*BarChart
		}{Kind: p.Kind, BarChart: p.Bar})
	case KindTimeSeries:
		return jsonx.Marshal(struct {
			Kind ChartKind `json:"kind"`
			*TimeSeries
		}{Kind: p.Kind, TimeSeries: p.TimeSeries})
	default:
		return nil, fmt.Errorf("unknown chart kind %q", p.Kind)
	}
}

// UnmarshalJSON accepts both tagged payloads produced by this service and
// untagged legacy payloads, falling back to the structural discriminator
// (array- vs scalar-valued backgroundColor) only for the latter.
func (p *ChartPayload) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind     ChartKind `json:"kind"`
		Datasets []struct {
			BackgroundColor jsonx.RawMessage `json:"backgroundColor"`
		} `json:"datasets"`
	}
	if err := jsonx.Unmarshal(data, &probe); err != nil {
		return err
	}

	kind := probe.Kind
	if kind == "" {
		kind = KindBar
		if len(probe.Datasets) > 0 {
			raw := probe.Datasets[0].BackgroundColor
			if len(raw) > 0 && raw[0] == '"' {
				kind = KindTimeSeries
			}
		}
	}

	switch kind {
	case KindBar:
		var bar BarChart
		if err := jsonx.Unmarshal(data, &bar); err != nil {
			return err
		}
		*p = ChartPayload{Kind: KindBar, Bar: &bar}
	case KindTimeSeries:
		var ts TimeSeries
		if err := jsonx.Unmarshal(data, &ts); err != nil {
			return err
		}
		*p = ChartPayload{Kind: KindTimeSeries, TimeSeries: &ts}
	default:
		return fmt.Errorf("unknown chart kind %q", kind)
	}
	return nil
}

// ChartResult pairs the chart introduction text with its payload.
type ChartResult struct {
	Content string
	Chart   ChartPayload
}
