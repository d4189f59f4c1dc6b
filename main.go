// go_network — Professional Network Discovery MCP server.
//
// Discovers valuable connections in a contact's professional network from
// public web evidence and scores them against the user's career goals.
// Exposes network_discover, connection_align, intro_templates,
// opportunity_analysis, an introduction tracker, and discovery_history.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
	"github.com/anatolykoptev/go_network/internal/netserver"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_network",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_network",
		Version: version,
	}, nil)

	netserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 10))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_network",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		SearxngURL:           env.Str("SEARXNG_URL", "http://127.0.0.1:8888"),
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.1),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 16384),
		LLMRateLimitRPS:      env.Float("LLM_RATE_LIMIT_RPS", 0),
		MaxContentChars:      env.Int("MAX_CONTENT_CHARS", 6000),
		FetchTimeout:         env.Duration("FETCH_TIMEOUT", 10*time.Second),
		MineTeamPages:        env.Str("MINE_TEAM_PAGES", "true") == "true",
		CacheTTL:             env.Duration("CACHE_TTL", 30*time.Minute),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
		llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
		llm.WithMaxTokens(c.LLMMaxTokens),
		llm.WithTemperature(c.LLMTemperature),
		llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
	)
	c.Searcher = engine.NewSearxSearcher(c.SearxngURL, c.HTTPClient)
	c.Cache = engine.NewCache(env.Str("REDIS_URL", ""), c.CacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	engine.Init(c)

	// Discovery history (PostgreSQL, optional)
	if dbURL := env.Str("DATABASE_URL", ""); dbURL != "" {
		hdb, err := network.ConnectHistoryDB(context.Background(), dbURL)
		if err != nil {
			slog.Warn("history DB init failed", slog.Any("error", err))
		} else {
			network.SetHistoryDB(hdb)
		}
	}
}
