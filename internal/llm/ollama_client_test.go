package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOllamaClientComplete(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_, _ = w.Write([]byte(`{
			"model": "llama3.1",
			"message": {"role": "assistant", "content": "{\"suggestions\": [\"one\"]}"},
			"done": true,
			"done_reason": "stop",
			"prompt_eval_count": 12,
			"eval_count": 8
		}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient("llama3.1", Config{BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), CompletionRequest{
		Messages:   []Message{{Role: "user", Content: "hi"}},
		JSONObject: true,
	})
	require.NoError(t, err)
	require.Equal(t, `{"suggestions": ["one"]}`, resp.Content)
	require.Equal(t, "stop", resp.StopReason)
	require.Equal(t, 20, resp.Usage.TotalTokens)

	require.Equal(t, "llama3.1", captured["model"])
	require.Equal(t, "json", captured["format"])
}

func TestOllamaClientSendsSchemaAsFormat(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"message": {"role": "assistant", "content": "{}"}, "done": true}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient("llama3.1", Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{
		Messages:   []Message{{Role: "user", Content: "hi"}},
		JSONSchema: map[string]any{"type": "object"},
	})
	require.NoError(t, err)

	format, ok := captured["format"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "object", format["type"])
}

func TestOllamaClientDropsBlankMessages(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"message": {"role": "assistant", "content": "ok"}, "done": true}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient("llama3.1", Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{
		Messages: []Message{
			{Role: "user", Content: "hi"},
			{Role: "user", Content: "   "},
			{Role: "", Content: "ignored"},
		},
	})
	require.NoError(t, err)

	messages := captured["messages"].([]any)
	require.Len(t, messages, 1)
}

func TestOllamaClientSurfacesDaemonError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "model not found"}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient("llama3.1", Config{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "hi"}}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "model not found")
}

func TestOllamaClientDefaultsStopReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message": {"role": "assistant", "content": "ok"}, "done": true}`))
	}))
	defer srv.Close()

	client, err := NewOllamaClient("llama3.1", Config{BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := client.Complete(context.Background(), CompletionRequest{Messages: []Message{{Role: "user", Content: "hi"}}})
	require.NoError(t, err)
	require.Equal(t, "stop", resp.StopReason)
}

func TestPingOllama(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.True(t, PingOllama(context.Background(), srv.URL))
	require.False(t, PingOllama(context.Background(), ""))

	srv.Close()
	require.False(t, PingOllama(context.Background(), srv.URL))
}
