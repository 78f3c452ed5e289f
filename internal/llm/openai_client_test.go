package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAIClientComplete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"content": "{\"topic\": \"Awareness\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient("gpt-4o-2024-08-06", Config{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), CompletionRequest{
		Messages:   []Message{{Role: "system", Content: "sys"}, {Role: "user", Content: "hi"}},
		JSONObject: true,
	})
	require.NoError(t, err)
	require.Equal(t, `{"topic": "Awareness"}`, resp.Content)
	require.Equal(t, "stop", resp.StopReason)
	require.Equal(t, 15, resp.Usage.TotalTokens)

	require.Equal(t, "gpt-4o-2024-08-06", captured["model"])
	require.Equal(t, false, captured["stream"])
	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "json_object", format["type"])
}

func TestOpenAIClientSendsJSONSchema(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"choices": [{"message": {"content": "{}"}, "finish_reason": "stop"}]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient("gpt-4o-2024-08-06", Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{
		Messages:   []Message{{Role: "user", Content: "hi"}},
		JSONSchema: map[string]any{"type": "object"},
	})
	require.NoError(t, err)

	format := captured["response_format"].(map[string]any)
	require.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	require.Equal(t, "reply", schema["name"])
	require.Equal(t, true, schema["strict"])
}

func TestOpenAIClientErrorStatuses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"type": "rate_limit", "message": "slow down"}}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient("gpt-4o-2024-08-06", Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "hi"}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 429")
}

func TestOpenAIClientRejectsEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient("gpt-4o-2024-08-06", Config{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "hi"}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no choices")
}
