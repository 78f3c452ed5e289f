package llm

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// PingOllama reports whether an Ollama daemon answers at the given endpoint.
// The endpoint is probed at its root, the same check the capability probe
// surface exposes to callers.
func PingOllama(ctx context.Context, endpoint string) bool {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
