package insight

// Static fallback content. Every generation operation substitutes its
// fallback wholesale whenever the backend call fails or returns an invalid
// shape; no partial results are ever surfaced.

// exampleSuggestions double as prompt examples and as the suggestion
// fallback.
var exampleSuggestions = []string{
	"Show me the top car brands by awareness.",
	"Which coffee shops are most popular with millennials?",
	"What are the most trusted smartphone brands?",
	"Which fitness app is preferred by Gen Z users?",
}

// FallbackSuggestions returns the fixed suggestion list used when suggestion
// generation fails.
func FallbackSuggestions() []string {
	out := make([]string, len(exampleSuggestions))
	copy(out, exampleSuggestions)
	return out
}

const (
	// FallbackTopic is returned when topic classification fails outright.
	FallbackTopic = "Brand Sentiment Analysis Chat"

	// DefaultTopic replaces an empty classifier verdict at the turn level.
	DefaultTopic = "Data Analysis"

	// ErrorTopic marks a turn where the AI subsystem was unreachable.
	ErrorTopic = "Error Processing Request"

	// DegradedReplyContent is the message body of a degraded chat turn.
	DegradedReplyContent = "I apologize, but I encountered an issue processing your request. Please try again or try a different query."
)

// DegradedSuggestions returns the two generic suggestions attached to a
// degraded chat reply.
func DegradedSuggestions() []string {
	return []string{
		"Show me the top car brands by awareness.",
		"Which retailers have the highest customer satisfaction?",
	}
}

// FallbackBarChart returns the documented static bar-chart result.
func FallbackBarChart() ChartResult {
	return ChartResult{
		Content: "Here's a default visualization (error occurred with AI service).",
		Chart: ChartPayload{
			Kind: KindBar,
			Bar: &BarChart{
				Labels:      []string{"Apple", "Samsung", "Google", "Microsoft", "Amazon"},
				Title:       "Brand Awareness Scores",
				DateRange:   "Last 12 months",
				Demographic: "All respondents",
				Datasets: []BarDataset{{
					Label: "Awareness Score",
					Data:  []float64{85, 82, 78, 75, 73},
					BackgroundColor: []string{
						"rgba(255, 99, 132, 0.5)",
						"rgba(54, 162, 235, 0.5)",
						"rgba(255, 206, 86, 0.5)",
						"rgba(75, 192, 192, 0.5)",
						"rgba(153, 102, 255, 0.5)",
					},
					BorderColor: []string{
						"rgba(255, 99, 132, 1)",
						"rgba(54, 162, 235, 1)",
						"rgba(255, 206, 86, 1)",
						"rgba(75, 192, 192, 1)",
						"rgba(153, 102, 255, 1)",
					},
					BorderWidth: 1,
				}},
			},
		},
	}
}

// FallbackTimeSeries returns the documented static time-series result.
func FallbackTimeSeries() ChartResult {
	return ChartResult{
		Content: "Here's a default time series visualization (error occurred with AI service).",
		Chart: ChartPayload{
			Kind: KindTimeSeries,
			TimeSeries: &TimeSeries{
				Labels:      []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
				Title:       "Brand Sentiment Trends",
				DateRange:   "Last 12 months",
				Demographic: "All respondents",
				Datasets: []TimeSeriesDataset{
					{
						Label:           "Apple",
						Data:            []float64{65, 67, 70, 72, 75, 78, 80, 82, 85, 87, 88, 90},
						BackgroundColor: "rgba(255, 99, 132, 0.2)",
						BorderColor:     "rgba(255, 99, 132, 1)",
						BorderWidth:     2,
					},
					{
						Label:           "Samsung",
						Data:            []float64{70, 72, 73, 75, 76, 77, 78, 80, 82, 83, 85, 86},
						BackgroundColor: "rgba(54, 162, 235, 0.2)",
						BorderColor:     "rgba(54, 162, 235, 1)",
						BorderWidth:     2,
					},
				},
			},
		},
	}
}

// FallbackChart returns the fallback matching the requested kind.
func FallbackChart(kind ChartKind) ChartResult {
	if kind == KindTimeSeries {
		return FallbackTimeSeries()
	}
	return FallbackBarChart()
}
