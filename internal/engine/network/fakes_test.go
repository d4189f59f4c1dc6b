package network

import (
	"context"
	"sync"
	"testing"

	"github.com/anatolykoptev/go-kit/llm"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// fakeLLM is a deterministic LLMClient. fn receives the system and user
// prompts so tests can dispatch per pipeline stage.
type fakeLLM struct {
	mu    sync.Mutex
	calls int
	fn    func(system, prompt string) (string, error)
}

func (f *fakeLLM) Complete(_ context.Context, system, prompt string, _ ...llm.ChatOption) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fn == nil {
		return "{}", nil
	}
	return f.fn(system, prompt)
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeSearcher is a deterministic Searcher recording every query.
type fakeSearcher struct {
	mu      sync.Mutex
	calls   int
	queries []string
	maxes   []int
	fn      func(query string, maxResults int) ([]engine.EvidenceItem, error)
}

func (f *fakeSearcher) Search(_ context.Context, query string, maxResults int) ([]engine.EvidenceItem, error) {
	f.mu.Lock()
	f.calls++
	f.queries = append(f.queries, query)
	f.maxes = append(f.maxes, maxResults)
	f.mu.Unlock()
	if f.fn == nil {
		return nil, nil
	}
	return f.fn(query, maxResults)
}

func (f *fakeSearcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func setupEngine(t *testing.T, l engine.LLMClient, s engine.Searcher, cache *engine.Cache) {
	t.Helper()
	engine.Init(engine.Config{LLMClient: l, Searcher: s, Cache: cache})
}

func evItem(url, title, category, confidence string) engine.EvidenceItem {
	return engine.EvidenceItem{
		Title:      title,
		URL:        url,
		Snippet:    title,
		Domain:     "example.com",
		Category:   category,
		Confidence: confidence,
	}
}
