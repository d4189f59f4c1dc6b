package engine

import (
	"context"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	"golang.org/x/time/rate"
)

// LLMClient is the text-generation capability consumed by the engine.
// go-kit/llm.Client satisfies it; tests inject deterministic fakes.
type LLMClient interface {
	Complete(ctx context.Context, system, prompt string, opts ...llm.ChatOption) (string, error)
}

// Config holds all engine configuration, injected from main.
type Config struct {
	SearxngURL           string
	LLMAPIKey            string
	LLMAPIKeyFallbacks   []string
	LLMAPIBase           string
	LLMModel             string
	LLMTemperature       float64
	LLMMaxTokens         int
	LLMRateLimitRPS      float64 // global limit on generation calls (<=0 disables)
	MaxContentChars      int
	FetchTimeout         time.Duration
	MineTeamPages        bool // fetch and parse company team pages during gathering
	CacheTTL             time.Duration
	CacheMaxEntries      int
	CacheCleanupInterval time.Duration
	HTTPClient           *http.Client
	LLMClient            LLMClient
	Searcher             Searcher // nil = evidence search disabled
	Cache                *Cache   // nil = caching disabled
}

var (
	cfg        Config
	llmLimiter *rate.Limiter
)

// Cfg exposes the engine configuration for sub-packages (network).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
	if c.LLMRateLimitRPS > 0 {
		llmLimiter = rate.NewLimiter(rate.Limit(c.LLMRateLimitRPS), 1)
	} else {
		llmLimiter = nil
	}
}
