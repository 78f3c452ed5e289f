package llm

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultClientCacheSize = 32
	defaultClientCacheTTL  = 30 * time.Minute
)

// Factory creates and caches backend clients keyed by provider:model.
// Clients are stateless beyond their HTTP connection pool, so sharing one
// instance per model across requests is safe.
type Factory struct {
	mu        sync.RWMutex
	cache     *lru.Cache[string, cacheEntry]
	cacheTTL  time.Duration
	openaiCfg Config
	ollamaCfg Config
}

type cacheEntry struct {
	client    Client
	expiresAt time.Time
}

// NewFactory constructs a Factory with per-provider connection settings.
func NewFactory(openaiCfg, ollamaCfg Config) *Factory {
	return &Factory{
		cache:     newClientCache(defaultClientCacheSize),
		cacheTTL:  defaultClientCacheTTL,
		openaiCfg: openaiCfg,
		ollamaCfg: ollamaCfg,
	}
}

// SetCacheOptions configures the client cache. A size <= 0 disables caching;
// a TTL <= 0 disables expiration.
func (f *Factory) SetCacheOptions(size int, ttl time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache = newClientCache(size)
	f.cacheTTL = ttl
}

func newClientCache(size int) *lru.Cache[string, cacheEntry] {
	if size <= 0 {
		return nil
	}
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil
	}
	return cache
}

// GetClient returns a cached or freshly constructed client for the given
// provider and concrete model identifier.
func (f *Factory) GetClient(provider Provider, model string) (Client, error) {
	cacheKey := fmt.Sprintf("%s:%s", provider, model)
	now := time.Now()

	f.mu.RLock()
	if f.cache != nil {
		if entry, ok := f.cache.Get(cacheKey); ok {
			if entry.expiresAt.IsZero() || now.Before(entry.expiresAt) {
				f.mu.RUnlock()
				return entry.client, nil
			}
		}
	}
	f.mu.RUnlock()

	client, err := f.newClient(provider, model)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	if f.cache != nil {
		expiresAt := time.Time{}
		if f.cacheTTL > 0 {
			expiresAt = now.Add(f.cacheTTL)
		}
		f.cache.Add(cacheKey, cacheEntry{client: client, expiresAt: expiresAt})
	}
	f.mu.Unlock()

	return client, nil
}

func (f *Factory) newClient(provider Provider, model string) (Client, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(model, f.openaiCfg)
	case ProviderOllama:
		return NewOllamaClient(model, f.ollamaCfg)
	default:
		return nil, fmt.Errorf("unknown provider: %s", provider)
	}
}
