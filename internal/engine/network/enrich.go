package network

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// enrichPageCount caps how many evidence pages get a full content fetch.
const enrichPageCount = 3

// EnrichEvidence upgrades the snippets of the top evidence items with
// extracted page content. Runs only at deep depth; a fetch failure leaves
// the original search snippet in place.
func EnrichEvidence(ctx context.Context, items []engine.EvidenceItem, depth string) []engine.EvidenceItem {
	if depth != DepthDeep {
		return items
	}

	n := min(enrichPageCount, len(items))
	for i := 0; i < n; i++ {
		title, content, err := engine.FetchURLContent(ctx, items[i].URL)
		if err != nil || content == "" {
			slog.Debug("enrich: page fetch skipped", slog.String("url", items[i].URL), slog.Any("error", err))
			continue
		}
		items[i].Snippet = engine.TruncateRunes(content, snippetRuneLimit, "...")
		if items[i].Title == "" && title != "" {
			items[i].Title = title
		}
	}
	return items
}
