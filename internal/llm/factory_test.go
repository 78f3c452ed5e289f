package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFactoryCachesClientsPerProviderAndModel(t *testing.T) {
	f := NewFactory(Config{APIKey: "k"}, Config{BaseURL: "http://localhost:11434"})

	first, err := f.GetClient(ProviderOpenAI, "gpt-4o-2024-08-06")
	require.NoError(t, err)
	second, err := f.GetClient(ProviderOpenAI, "gpt-4o-2024-08-06")
	require.NoError(t, err)
	require.Same(t, first, second)

	other, err := f.GetClient(ProviderOpenAI, "o1-mini-2024-09-12")
	require.NoError(t, err)
	require.NotSame(t, first, other)

	ollama, err := f.GetClient(ProviderOllama, "llama3.1")
	require.NoError(t, err)
	require.Equal(t, "llama3.1", ollama.Model())
}

func TestFactoryExpiredEntriesAreRebuilt(t *testing.T) {
	f := NewFactory(Config{APIKey: "k"}, Config{})
	f.SetCacheOptions(8, time.Nanosecond)

	first, err := f.GetClient(ProviderOpenAI, "gpt-4o-2024-08-06")
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	second, err := f.GetClient(ProviderOpenAI, "gpt-4o-2024-08-06")
	require.NoError(t, err)
	require.NotSame(t, first, second)
}

func TestFactoryDisabledCache(t *testing.T) {
	f := NewFactory(Config{APIKey: "k"}, Config{})
	f.SetCacheOptions(0, 0)

	first, err := f.GetClient(ProviderOpenAI, "gpt-4o-2024-08-06")
	require.NoError(t, err)
	second, err := f.GetClient(ProviderOpenAI, "gpt-4o-2024-08-06")
	require.NoError(t, err)
	require.NotSame(t, first, second)
}

func TestFactoryRejectsUnknownProvider(t *testing.T) {
	f := NewFactory(Config{}, Config{})
	_, err := f.GetClient(Provider("anthropic"), "claude")
	require.Error(t, err)
}
