package network

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// gatherQueryCount is the number of topic queries issued per run.
const gatherQueryCount = 5

// depthCaps holds per-topic result caps for one search depth.
type depthCaps struct {
	general, news, press, team, events int
}

var capsByDepth = map[string]depthCaps{
	DepthShallow: {general: 5, news: 3, press: 3, team: 5, events: 3},
	DepthMedium:  {general: 10, news: 6, press: 6, team: 8, events: 5},
	DepthDeep:    {general: 15, news: 10, press: 10, team: 12, events: 8},
}

func capsFor(depth string) depthCaps {
	if c, ok := capsByDepth[depth]; ok {
		return c
	}
	return capsByDepth[DepthMedium]
}

// topicQuery is one of the five independent gatherer queries.
type topicQuery struct {
	topic  string
	query  string
	max    int
	filter func(engine.EvidenceItem) bool
}

func buildTopicQueries(contact Contact, caps depthCaps) []topicQuery {
	return []topicQuery{
		{
			topic: "general",
			query: fmt.Sprintf("%q %q professional", contact.Name, contact.Company),
			max:   caps.general,
		},
		{
			topic:  "news",
			query:  fmt.Sprintf("%q %q news", contact.Name, contact.Company),
			max:    caps.news,
			filter: isNewsItem,
		},
		{
			topic:  "press",
			query:  fmt.Sprintf("%q press release announcement %q", contact.Company, contact.Name),
			max:    caps.press,
			filter: isPressItem,
		},
		{
			topic:  "team",
			query:  fmt.Sprintf("%q team leadership executives", contact.Company),
			max:    caps.team,
			filter: isTeamItem,
		},
		{
			topic:  "events",
			query:  fmt.Sprintf("%q conference speaker event", contact.Name),
			max:    caps.events,
			filter: isEventItem,
		},
	}
}

// Gather runs the five topic queries concurrently and merges their results
// in fixed query order (not completion order), deduplicated by URL with
// first-seen order preserved. A failed query contributes zero items; Gather
// never returns an error. The second return value counts failed queries so
// the pipeline can tell "nothing found" apart from "search is down".
func Gather(ctx context.Context, contact Contact, depth string) ([]engine.EvidenceItem, int) {
	queries := buildTopicQueries(contact, capsFor(depth))

	perQuery := make([][]engine.EvidenceItem, len(queries))
	failures := make([]bool, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		wg.Add(1)
		go func(i int, q topicQuery) {
			defer wg.Done()
			items, err := engine.Cfg.Searcher.Search(ctx, q.query, q.max)
			if err != nil {
				slog.Warn("gather: query failed",
					slog.String("topic", q.topic),
					slog.String("contact", contact.Name),
					slog.Any("error", err))
				failures[i] = true
				return
			}
			if q.filter != nil {
				items = filterItems(items, q.filter)
			}
			perQuery[i] = items
		}(i, q)
	}
	wg.Wait()

	var merged []engine.EvidenceItem
	for _, items := range perQuery {
		merged = append(merged, items...)
	}
	deduped := engine.DedupByURL(merged)

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}

	slog.Info("gather: complete",
		slog.String("contact", contact.Name),
		slog.String("depth", depth),
		slog.Int("raw", len(merged)),
		slog.Int("deduped", len(deduped)),
		slog.Int("failed_queries", failed))
	return deduped, failed
}

func filterItems(items []engine.EvidenceItem, keep func(engine.EvidenceItem) bool) []engine.EvidenceItem {
	out := items[:0:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func isNewsItem(it engine.EvidenceItem) bool {
	return it.Category == engine.ContentNews || it.Category == engine.ContentArticle ||
		containsAny(it.Domain, "techcrunch", "bloomberg", "reuters", "wsj", "fortune", "forbes")
}

func isPressItem(it engine.EvidenceItem) bool {
	title := strings.ToLower(it.Title)
	return it.Category == engine.ContentPress ||
		containsAny(it.Domain, "prnewswire", "businesswire", "globenewswire", "marketwatch") ||
		strings.Contains(title, "press release") ||
		strings.Contains(title, "announces") ||
		strings.Contains(strings.ToLower(it.Snippet), "announced")
}

func isTeamItem(it engine.EvidenceItem) bool {
	title := strings.ToLower(it.Title)
	snippet := strings.ToLower(it.Snippet)
	return it.Category == engine.ContentCompany ||
		strings.Contains(title, "team") || strings.Contains(title, "leadership") ||
		strings.Contains(title, "about") ||
		strings.Contains(snippet, "team") || strings.Contains(snippet, "executive")
}

func isEventItem(it engine.EvidenceItem) bool {
	title := strings.ToLower(it.Title)
	snippet := strings.ToLower(it.Snippet)
	return strings.Contains(title, "speaker") || strings.Contains(title, "conference") ||
		strings.Contains(title, "event") ||
		strings.Contains(snippet, "speaker") || strings.Contains(snippet, "conference") ||
		strings.Contains(snippet, "speaking")
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
