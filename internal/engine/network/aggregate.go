package network

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// Aggregate strengthens a connection's evidence. Connections that already
// carry high strength with at least two sources pass through unchanged.
// Otherwise one targeted search runs for (name, company); its non-low
// confidence source URLs are unioned with the existing list and strength is
// recomputed by count (>=3 high, >=2 medium, else low). A failed search
// leaves the input untouched. The source list never shrinks.
func Aggregate(ctx context.Context, c Connection) Connection {
	if c.EvidenceStrength == engine.TierHigh && len(c.EvidenceSources) >= 2 {
		return c
	}

	query := fmt.Sprintf("%q %q", c.Name, c.Company)
	items, err := engine.Cfg.Searcher.Search(ctx, query, 3)
	if err != nil {
		slog.Debug("aggregate: search failed", slog.String("name", c.Name), slog.Any("error", err))
		return c
	}

	seen := make(map[string]bool, len(c.EvidenceSources))
	merged := make([]string, 0, len(c.EvidenceSources)+len(items))
	for _, s := range c.EvidenceSources {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, it := range items {
		if it.Confidence == engine.TierLow || it.URL == "" || seen[it.URL] {
			continue
		}
		seen[it.URL] = true
		merged = append(merged, it.URL)
	}

	c.EvidenceSources = merged
	switch {
	case len(merged) >= 3:
		c.EvidenceStrength = engine.TierHigh
	case len(merged) >= 2:
		c.EvidenceStrength = engine.TierMedium
	default:
		c.EvidenceStrength = engine.TierLow
	}
	return c
}

// InferContactMethod picks a contact-method category from the fields the
// pipeline has collected so far.
func InferContactMethod(c Connection) string {
	switch {
	case c.ProfileURL != "":
		return MethodLinkedIn
	case c.Email != "":
		return MethodEmail
	case c.EvidenceStrength == engine.TierHigh:
		return MethodMutualContact
	default:
		return MethodUnknown
	}
}

// Enhance runs validation, evidence aggregation, and contact-method
// inference over the extracted candidates.
func Enhance(ctx context.Context, candidates []Connection) []Connection {
	valid := Validate(candidates)
	out := make([]Connection, 0, len(valid))
	for _, c := range valid {
		c = Aggregate(ctx, c)
		c.ContactMethod = InferContactMethod(c)
		out = append(out, c)
	}
	return out
}
