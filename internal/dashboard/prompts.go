package dashboard

import (
	"fmt"
	"strings"

	"brandlens/internal/insight"
	"brandlens/internal/llm"
)

const clarifyingSystemPrompt = `You are a strategic brand insights consultant helping users build effective dashboards.
Your goal is to ask essential clarifying questions about what the user wants to visualize in their dashboard.
The user has stated a high-level objective, but you need more specific information to create an effective dashboard.

Ask UP TO 5 questions, ONE AT A TIME, to gather necessary context for creating effective dashboard visualizations.
Focus on: time periods, geographic scope, specific metrics, demographic breakdowns, and any specific comparisons needed.

Examples of good clarifying questions:
- What specific time period would you like to analyze for brand awareness?
- Would you prefer to see global data or focus on specific regions?
- Which demographic segments are most important for your analysis?
- Are there specific competitors you'd like to compare against?
- What key metrics would best represent brand awareness for your company?

IMPORTANT INSTRUCTIONS:
1. Ask ONE question at a time and wait for the user's response.
2. Keep your questions concise and directly related to creating dashboard visualizations.
3. After the user has answered AT LEAST 3 questions, or if you believe you have enough information to create
   an effective dashboard with 3-6 visualizations, indicate completion by responding with:
   "Thank you for providing this information. I now have enough context to create your dashboard."
4. Track what information you've already gathered - don't ask for the same information twice.
5. If the user's initial prompt already contains specific details, don't ask for that information again.`

const generationSystemPrompt = `You are a strategic brand insights consultant specializing in creating data visualizations for brand awareness and sentiment analysis.

Your task is to generate 3-6 visualizations for a dashboard based on the user's requirements. The visualizations should provide meaningful insights about brand awareness, sentiment, or other metrics requested by the user.

For each visualization, you should specify:
1. The visualization type (bar, line, or pie)
2. A clear, concise title
3. A brief description explaining what insight this visualization provides
4. Placeholder data structure that would be needed for this visualization

The user has already provided context through a series of questions and answers. Use this context to create a cohesive dashboard that addresses their specific needs.

Your response should be in valid JSON format with the following structure:
{
  "insights": "Brief executive summary of what the dashboard shows",
  "visualizations": [
    {
      "type": "bar|line|pie",
      "title": "Visualization title",
      "description": "Brief description of what this visualization shows",
      "data": {}
    }
  ]
}

Ensure your response contains at least 3 visualizations and at most 6 visualizations.`

// FormatConversationHistory renders a clarification transcript the way the
// prompts expect it, one labeled line per turn.
func FormatConversationHistory(messages []insight.ConversationMessage) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		label := "AI"
		if msg.Sender == insight.SenderUser {
			label = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", label, msg.Content))
	}
	return strings.Join(lines, "\n\n")
}

func clarifyingPrompt(userPrompt, contextText, history string, pairs int) []llm.Message {
	enough := "the user has provided very detailed information"
	if pairs >= 3 {
		enough = "you have asked at least 3 questions"
	}
	user := fmt.Sprintf(`%s

User's dashboard request: "%s"

Current conversation history:
%s

Number of questions asked so far: %d

Based on the conversation so far, either:
1. Ask ONE more clarifying question to gather additional context for the dashboard, OR
2. If you have enough information (%s), reply with "%s"

Your response:`, contextText, userPrompt, history, pairs, enough, CompletionReply)

	return []llm.Message{
		{Role: "system", Content: clarifyingSystemPrompt},
		{Role: "user", Content: user},
	}
}

func generationPrompt(userPrompt, contextText, history string) []llm.Message {
	user := fmt.Sprintf(`%s

User's dashboard request: "%s"

Context conversation history:
%s

Generate a dashboard with 3-6 visualizations based on the context above.
Response must be in proper JSON format with "insights" and "visualizations" properties.`, contextText, userPrompt, history)

	return []llm.Message{
		{Role: "system", Content: generationSystemPrompt},
		{Role: "user", Content: user},
	}
}
