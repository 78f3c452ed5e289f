package insight

import (
	"fmt"
	"strings"

	"brandlens/internal/llm"
	"brandlens/internal/persona"
)

// mainSystemPrompt is the fixed domain description sent as the system-style
// instruction block on every chat operation. The field vocabulary must match
// the dataset the backends are asked to fabricate data for.
const mainSystemPrompt = `You are a helpful assistant in market research, an expert in brand sentiment analysis.
Your mission is to: Enable users to uncover non-obvious patterns in sentiment data through AI-guided exploration that adapts based on their context and previous discoveries.

Your Dataset is a collection of brand sentiment and audience data.
Your data ranges from 2010 to January 2025.

You have the following data about respondents:
age
gender
state_province
city
zip_postal_code
country
residence_type (urban/suburban/rural)
education_level
employment_status
occupation
marital_status
household_size
num_children
income_bracket
race_ethnicity
main_language
home_ownership (own/rent)
political_leaning
religion
social_media_use_freq
streaming_services_use_freq
purchase_behavior (online/in-store)
car_ownership
smoking_status
drinking_status
dietary_preference
fitness_activity
news_consumption_pref
tech_adoption_tendency (early/late)
credit_card_usage
payment_method_pref (cash/card/digital)
smartphone_usage_type (Android/iOS/etc.)
brand_preference_history (could store as text or JSON)
travel_frequency
banking_relationship
internet_speed_type
music_preference
pet_ownership
clothing_style_pref
grocery_spend (budget/premium)

You have the following data about brands:
brand_name
industry
country_of_origin

You have the following daily data about brand sentiment:
date (the day of data collection)
respondent_id (FK to Respondent)
brand_id (FK to Brand)
awareness_score (numeric) - have you ever heard of this brand?
buzz_score (numeric) - have you recently heard anything positive/negative about this brand?
current_customer (boolean) - are you currently a customer of this brand?
ever_customer (boolean) - have you ever been a customer of this brand?
consideration_score (numeric) - would you consider this brand for a future purchase?
intent_score (numeric) - do you intend to purchase from this brand in the near future?
word_of_mouth_score (numeric) - have you talked about this brand with friends/family?
advertising_score (numeric) - have you seen any advertising for this brand recently?
quality_score (good/bad/neutral) - how would you rate the quality of this brand's products/services?
value_score (good/bad/neutral) - how would you rate the value for money of this brand's products/services?
satisfaction_score (good/bad/neutral) - how satisfied are you with this brand overall?
recommendation_score (good/bad/neutral) - how likely are you to recommend this brand to others?
reputation_score (numeric) - would you be proud to work for this brand in the future?
impression (positive/negative/neutral) - what is your overall impression of this brand?
trust_score (numeric) - how much do you trust this brand?
loyalty_score (numeric) - how loyal are you to this brand?
engagement_score (numeric) - how engaged are you with this brand?`

// BuildContextText concatenates the present context fields into a
// natural-language preamble. Empty fields are omitted entirely; when a known
// persona is set its goals, motivations, challenges, and needs are expanded
// in full. Pure; no failure mode.
func BuildContextText(c Context) string {
	var b strings.Builder
	if c.Industry != "" {
		fmt.Fprintf(&b, "Industry: %q. ", c.Industry)
	}
	if c.CompanyName != "" {
		fmt.Fprintf(&b, "Company name: %q. ", c.CompanyName)
	}
	if c.Country != "" {
		fmt.Fprintf(&b, "Country: %q. ", c.Country)
	}

	if def, ok := persona.Lookup(c.UserPersona); ok {
		fmt.Fprintf(&b, "\n\nUSER PERSONA: %s\n", def.DisplayName)
		writePersonaSection(&b, "Role & Goals", def.RoleGoals)
		writePersonaSection(&b, "Motivation", def.Motivation)
		writePersonaSection(&b, "Challenges", def.Challenges)
		writePersonaSection(&b, "Key Needs", def.KeyNeeds)
	}

	return strings.TrimSpace(b.String())
}

func writePersonaSection(b *strings.Builder, heading string, items []string) {
	fmt.Fprintf(b, "\n%s:\n", heading)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// FormatQueryHistory renders the user-only side of the transcript plus the
// latest query as a numbered list ("Query 1: ...").
func FormatQueryHistory(previous []ConversationMessage, latest string) string {
	var lines []string
	n := 0
	for _, msg := range previous {
		if msg.Sender != SenderUser {
			continue
		}
		n++
		lines = append(lines, fmt.Sprintf("Query %d: %s", n, msg.Content))
	}
	lines = append(lines, fmt.Sprintf("Query %d: %s", n+1, latest))
	return strings.Join(lines, "\n")
}

// --------------------------------------------------------------------------
// Per-operation prompt builders
// --------------------------------------------------------------------------

func suggestionPromptOpenAI(query, contextText, history string) []llm.Message {
	return []llm.Message{
		{
			Role: "system",
			Content: mainSystemPrompt + `
The suggestions you give should be single-sentence strings that generate more graphs to analyze brand sentiment and audience data.
They must be possible to answer with either bar graphs or time series graphs.
Don't instruct the user on what to think, only suggest a short phrase they might say next.
Here are some example suggestions: ` + strings.Join(exampleSuggestions, ", ") + `.`,
		},
		{
			Role: "user",
			Content: fmt.Sprintf(`%s
Here is the entire user conversation (for context):
%s

The last user query is: %q.`, contextText, history, query),
		},
	}
}

func suggestionPromptOllama(query, contextText, history string) []llm.Message {
	return []llm.Message{
		{
			Role: "user",
			Content: mainSystemPrompt + `
The suggestions should be phrased as if the user was the one that is going to send that message.
Don't instruct the user on what to think about next, rather exactly suggest what phrase he may use as a response/follow up.
The suggestions should aim to generate more graphs to analyze brand sentiment and audience data and create visualizations.
They must be possible to answer with either bar graphs or time series graphs.
Here general example suggestions: ` + strings.Join(exampleSuggestions, ", ") + `.

` + fmt.Sprintf(`%s
Full conversation (for context):
%s

The last user query is: %q.
Respond using JSON.`, contextText, history, query),
		},
	}
}

var suggestionSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"suggestions": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
}

func chartTypePrompt(query, contextText string) []llm.Message {
	return []llm.Message{
		{
			Role: "system",
			Content: mainSystemPrompt + `
You will suggest a chart type based on the user query, industry, and company name.
The only options you have are "Bar chart" or "Time series chart".
Return a JSON object with a "chartType" property containing your suggestion.`,
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("%s\nThe last user query is: %q.", contextText, query),
		},
	}
}

func topicPrompt(allUserQueries, contextText string) []llm.Message {
	return []llm.Message{
		{
			Role: "system",
			Content: mainSystemPrompt + `
You will suggest a short topic of 5 words summarizing the entire user conversation so it can be displayed in the chat tab.
Return a JSON object with a "topic" property containing your suggestion.`,
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("%sUser conversation: %q.", contextText, allUserQueries),
		},
	}
}

func barChartPromptOpenAI(query, contextText string) []llm.Message {
	return []llm.Message{
		{
			Role: "system",
			Content: mainSystemPrompt + `
In the structure you return you must provide a "content" member introducing the chart.
Return a plausible bar-chart dataset with up to 10 labels reflecting the user query.
Each label's data field is a percentage (0-100).
Strongly prefer real brand names to generic ones.
Never make up brand names.
Never return "Brand A", "Brand B", etc.

The response must be a JSON object with this exact structure:
{
  "content": "Description of what the chart shows",
  "chartData": {
    "labels": ["Brand1", "Brand2", ...],
    "title": "Chart Title",
    "dateRange": "Time period covered",
    "demographic": "Target audience",
    "datasets": [{
      "label": "Metric name",
      "data": [number, number, ...],
      "backgroundColor": ["rgba(255,99,132,0.5)", ...],
      "borderColor": ["rgba(255,99,132,1)", ...],
      "borderWidth": 1
    }]
  }
}`,
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("%s\nThe last user query is: %q.", contextText, query),
		},
	}
}

func barChartPromptOllama(query, contextText string) []llm.Message {
	return []llm.Message{
		{
			Role: "user",
			Content: mainSystemPrompt + `
The "chartData" member must follow this exact structure for a bar chart:
- labels: array of brand names that corresponds to the data points
- title: descriptive chart title
- dateRange: time period of the data
- demographic: target population
- datasets: array containing one object with:
  - label: description of what the values represent
  - data: array of numeric values (percentages 0-100) corresponding to each label
  - backgroundColor: array of colors for all bars
  - borderColor: array of colors for all borders
  - borderWidth: number for border width

Please produce bar chart data with up to 10 labels each corresponding to a brand.
Important: The data array should contain direct numbers, not arrays of numbers.
Important: backgroundColor and borderColor should each be a single array for all bars.
Generate fictional but believable data.
Strongly prefer real brand names to generic ones.
Never make up brand names.
Never return "Brand A", "Brand B", etc.

` + fmt.Sprintf("%s\nThe last user query is: %q.\nRespond using JSON.", contextText, query),
		},
	}
}

var barChartSchema = map[string]any{
	"type":     "object",
	"required": []string{"content", "chartData"},
	"properties": map[string]any{
		"content": map[string]any{"type": "string"},
		"chartData": map[string]any{
			"type":     "object",
			"required": []string{"labels", "title", "dateRange", "demographic", "datasets"},
			"properties": map[string]any{
				"labels":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"title":       map[string]any{"type": "string"},
				"dateRange":   map[string]any{"type": "string"},
				"demographic": map[string]any{"type": "string"},
				"datasets": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []string{"label", "data", "backgroundColor", "borderColor", "borderWidth"},
						"properties": map[string]any{
							"label":           map[string]any{"type": "string"},
							"data":            map[string]any{"type": "array", "items": map[string]any{"type": "number"}},
							"backgroundColor": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"borderColor":     map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
							"borderWidth":     map[string]any{"type": "number"},
						},
					},
				},
			},
		},
	},
}

func timeSeriesPromptOpenAI(query, contextText string) []llm.Message {
	return []llm.Message{
		{
			Role: "system",
			Content: mainSystemPrompt + `
In the structure you return you must provide a "content" member introducing the chart.
Return a plausible time-series dataset.
Strongly prefer real brand names to generic ones.

The response must be a JSON object with this exact structure:
{
  "content": "Description of what the chart shows",
  "chartData": {
    "labels": ["Jan", "Feb", ...],
    "title": "Chart Title",
    "dateRange": "Time period covered",
    "demographic": "Target audience",
    "datasets": [{
      "label": "Brand name",
      "data": [number, number, ...],
      "backgroundColor": "rgba(255,99,132,0.2)",
      "borderColor": "rgba(255,99,132,1)",
      "borderWidth": 2
    }]
  }
}`,
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("%s\nThe last user query is: %q.", contextText, query),
		},
	}
}

func timeSeriesPromptOllama(query, contextText string) []llm.Message {
	return []llm.Message{
		{
			Role: "user",
			Content: mainSystemPrompt + `
The "chartData" member must follow this exact structure for a line chart:
- labels: array of dates or time periods
- title: descriptive chart title
- dateRange: human-readable time period covered by the data
- demographic: target population description
- datasets: array of objects, each representing a brand's data series with:
  - label: brand name
  - data: array of numeric values (percentages 0-100) corresponding to each time period
  - backgroundColor: single color string in rgba format for the area under the line
  - borderColor: single color string in rgba format for the line itself
  - borderWidth: number for line width

Please produce time series data tracking brand metrics over time.
Important: All percentage values must be between 0 and 100.
Important: Each dataset needs both backgroundColor and borderColor.
Important: Use proper RGBA color format (e.g. "rgba(255, 99, 132, 0.2)" for background, "rgba(255, 99, 132, 1)" for border).
Generate fictional but believable data.
Strongly prefer real brand names to generic ones.

` + fmt.Sprintf("%s\nThe last user query is: %q.\nRespond using JSON.", contextText, query),
		},
	}
}

var timeSeriesSchema = map[string]any{
	"type":     "object",
	"required": []string{"content", "chartData"},
	"properties": map[string]any{
		"content": map[string]any{"type": "string"},
		"chartData": map[string]any{
			"type":     "object",
			"required": []string{"labels", "title", "dateRange", "demographic", "datasets"},
			"properties": map[string]any{
				"labels":      map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"title":       map[string]any{"type": "string"},
				"dateRange":   map[string]any{"type": "string"},
				"demographic": map[string]any{"type": "string"},
				"datasets": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":     "object",
						"required": []string{"label", "data", "backgroundColor", "borderColor", "borderWidth"},
						"properties": map[string]any{
							"label":           map[string]any{"type": "string"},
							"data":            map[string]any{"type": "array", "items": map[string]any{"type": "number", "minimum": 0, "maximum": 100}},
							"backgroundColor": map[string]any{"type": "string"},
							"borderColor":     map[string]any{"type": "string"},
							"borderWidth":     map[string]any{"type": "number"},
						},
					},
				},
			},
		},
	},
}
