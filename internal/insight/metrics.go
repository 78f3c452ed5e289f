package insight

import "time"

// Metrics receives instrumentation events from backend call paths.
// *metrics.Registry satisfies it; the default sink discards everything.
type Metrics interface {
	ObserveBackendCall(provider, operation string, elapsed time.Duration, err error)
	CountFallback(operation string)
}

type nopMetrics struct{}

func (nopMetrics) ObserveBackendCall(string, string, time.Duration, error) {}
func (nopMetrics) CountFallback(string)                                    {}

// NopMetrics returns a sink that discards all events.
func NopMetrics() Metrics { return nopMetrics{} }
