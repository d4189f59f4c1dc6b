package network

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_network/internal/engine"
)

func topicOf(query string) string {
	switch {
	case strings.Contains(query, "professional"):
		return "general"
	case strings.Contains(query, "press release announcement"):
		return "press"
	case strings.Contains(query, "team leadership executives"):
		return "team"
	case strings.Contains(query, "conference speaker event"):
		return "events"
	default:
		return "news"
	}
}

func TestGatherMergeOrderFixed(t *testing.T) {
	searcher := &fakeSearcher{fn: func(query string, _ int) ([]engine.EvidenceItem, error) {
		switch topicOf(query) {
		case "general":
			return []engine.EvidenceItem{evItem("https://g.example.com", "general result", engine.ContentUnknown, engine.TierLow)}, nil
		case "news":
			return []engine.EvidenceItem{evItem("https://n.example.com", "news result", engine.ContentNews, engine.TierHigh)}, nil
		case "press":
			return []engine.EvidenceItem{evItem("https://p.example.com", "press result", engine.ContentPress, engine.TierHigh)}, nil
		case "team":
			return []engine.EvidenceItem{evItem("https://t.example.com", "team result", engine.ContentCompany, engine.TierHigh)}, nil
		default:
			return []engine.EvidenceItem{evItem("https://e.example.com", "conference speaker", engine.ContentUnknown, engine.TierLow)}, nil
		}
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	contact := Contact{Name: "Alice Johnson", Company: "Acme"}
	for range 5 {
		items, failed := Gather(context.Background(), contact, DepthMedium)
		if failed != 0 {
			t.Fatalf("failed queries = %d, want 0", failed)
		}
		want := []string{
			"https://g.example.com",
			"https://n.example.com",
			"https://p.example.com",
			"https://t.example.com",
			"https://e.example.com",
		}
		if len(items) != len(want) {
			t.Fatalf("got %d items, want %d", len(items), len(want))
		}
		for i, it := range items {
			if it.URL != want[i] {
				t.Errorf("item %d URL = %q, want %q", i, it.URL, want[i])
			}
		}
	}
}

func TestGatherDedupAcrossQueries(t *testing.T) {
	shared := evItem("https://shared.example.com", "Acme announces partnership", engine.ContentNews, engine.TierHigh)
	searcher := &fakeSearcher{fn: func(query string, _ int) ([]engine.EvidenceItem, error) {
		switch topicOf(query) {
		case "general", "news":
			return []engine.EvidenceItem{shared}, nil
		default:
			return nil, nil
		}
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	items, _ := Gather(context.Background(), Contact{Name: "Alice", Company: "Acme"}, DepthMedium)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 after dedup", len(items))
	}
}

func TestGatherDepthCaps(t *testing.T) {
	for _, tc := range []struct {
		depth string
		want  map[string]int
	}{
		{DepthShallow, map[string]int{"general": 5, "news": 3, "press": 3, "team": 5, "events": 3}},
		{DepthMedium, map[string]int{"general": 10, "news": 6, "press": 6, "team": 8, "events": 5}},
		{DepthDeep, map[string]int{"general": 15, "news": 10, "press": 10, "team": 12, "events": 8}},
		{"bogus", map[string]int{"general": 10, "news": 6, "press": 6, "team": 8, "events": 5}},
	} {
		searcher := &fakeSearcher{}
		setupEngine(t, &fakeLLM{}, searcher, nil)
		Gather(context.Background(), Contact{Name: "Alice", Company: "Acme"}, tc.depth)

		got := make(map[string]int, len(searcher.queries))
		for i, q := range searcher.queries {
			got[topicOf(q)] = searcher.maxes[i]
		}
		for topic, want := range tc.want {
			if got[topic] != want {
				t.Errorf("depth %s topic %s: max = %d, want %d", tc.depth, topic, got[topic], want)
			}
		}
	}
}

func TestGatherQueryFailures(t *testing.T) {
	searcher := &fakeSearcher{fn: func(query string, _ int) ([]engine.EvidenceItem, error) {
		if topicOf(query) == "news" {
			return nil, errors.New("searxng unavailable")
		}
		return []engine.EvidenceItem{evItem("https://ok.example.com/"+topicOf(query), "team result", engine.ContentCompany, engine.TierHigh)}, nil
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	items, failed := Gather(context.Background(), Contact{Name: "Alice", Company: "Acme"}, DepthMedium)
	if failed != 1 {
		t.Errorf("failed = %d, want 1", failed)
	}
	if len(items) == 0 {
		t.Error("expected items from surviving queries")
	}
}

func TestGatherAllQueriesFail(t *testing.T) {
	searcher := &fakeSearcher{fn: func(string, int) ([]engine.EvidenceItem, error) {
		return nil, errors.New("searxng down")
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	items, failed := Gather(context.Background(), Contact{Name: "Alice", Company: "Acme"}, DepthDeep)
	if failed != gatherQueryCount {
		t.Errorf("failed = %d, want %d", failed, gatherQueryCount)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestTopicFilters(t *testing.T) {
	for _, tc := range []struct {
		name string
		item engine.EvidenceItem
		keep func(engine.EvidenceItem) bool
		want bool
	}{
		{"news by category", evItem("u", "x", engine.ContentNews, engine.TierHigh), isNewsItem, true},
		{"news by domain", engine.EvidenceItem{URL: "u", Domain: "techcrunch.com"}, isNewsItem, true},
		{"news rejects company page", evItem("u", "About us", engine.ContentCompany, engine.TierHigh), isNewsItem, false},
		{"press by announces", evItem("u", "Acme Announces Series B", engine.ContentUnknown, engine.TierLow), isPressItem, true},
		{"press rejects plain", evItem("u", "plain blog post", engine.ContentUnknown, engine.TierLow), isPressItem, false},
		{"team by title", evItem("u", "Leadership Team", engine.ContentUnknown, engine.TierLow), isTeamItem, true},
		{"events by snippet", engine.EvidenceItem{URL: "u", Snippet: "keynote speaker at summit"}, isEventItem, true},
		{"events rejects plain", evItem("u", "quarterly report", engine.ContentUnknown, engine.TierLow), isEventItem, false},
	} {
		if got := tc.keep(tc.item); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}
