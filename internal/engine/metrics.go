package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests     atomic.Int64
	LLMCalls           atomic.Int64
	LLMErrors          atomic.Int64
	FetchRequests      atomic.Int64
	FetchErrors        atomic.Int64
	TeamPageRequests   atomic.Int64
	Discoveries        atomic.Int64
	DiscoveryFallbacks atomic.Int64
	ValidationRejects  atomic.Int64
	HistoryWrites      atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := cfg.Cache.Stats()
	return map[string]int64{
		"search_requests":     metrics.SearchRequests.Load(),
		"llm_calls":           metrics.LLMCalls.Load(),
		"llm_errors":          metrics.LLMErrors.Load(),
		"fetch_requests":      metrics.FetchRequests.Load(),
		"fetch_errors":        metrics.FetchErrors.Load(),
		"teampage_requests":   metrics.TeamPageRequests.Load(),
		"discoveries":         metrics.Discoveries.Load(),
		"discovery_fallbacks": metrics.DiscoveryFallbacks.Load(),
		"validation_rejects":  metrics.ValidationRejects.Load(),
		"history_writes":      metrics.HistoryWrites.Load(),
		"cache_hits":          hits,
		"cache_misses":        misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "llm_calls", "llm_errors",
		"fetch_requests", "fetch_errors",
		"teampage_requests",
		"discoveries", "discovery_fallbacks", "validation_rejects",
		"history_writes",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the network sub-package.
func IncrTeamPageRequests()   { metrics.TeamPageRequests.Add(1) }
func IncrDiscoveries()        { metrics.Discoveries.Add(1) }
func IncrDiscoveryFallbacks() { metrics.DiscoveryFallbacks.Add(1) }
func IncrValidationRejects()  { metrics.ValidationRejects.Add(1) }
func IncrHistoryWrites()      { metrics.HistoryWrites.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
