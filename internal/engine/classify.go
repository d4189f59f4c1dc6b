package engine

import "strings"

// Domain lists used for deterministic content classification. The original
// heuristics lived in prompt text; keeping them in code makes them testable.
var (
	newsDomains = []string{
		"techcrunch", "bloomberg", "reuters", "wsj.com", "fortune",
		"forbes", "businessinsider", "cnbc", "ft.com", "theverge",
	}
	pressDomains = []string{
		"prnewswire", "businesswire", "globenewswire", "marketwatch",
	}
	bioDomains = []string{
		"linkedin.com", "crunchbase.com", "about.me", "github.com",
	}
)

// ClassifyContent assigns a content category and confidence tier to one
// search result based on its domain, title, and snippet.
//
// Confidence follows source credibility: recognized news outlets, wire
// services, and official company pages rate high; categorized content from
// other domains rates medium; everything else rates low.
func ClassifyContent(domain, title, snippet string) (category, confidence string) {
	d := strings.ToLower(domain)
	t := strings.ToLower(title)
	s := strings.ToLower(snippet)

	switch {
	case matchesAny(d, pressDomains),
		strings.Contains(t, "press release"),
		strings.Contains(t, "announces"),
		strings.Contains(s, "announced"):
		category = ContentPress
	case matchesAny(d, newsDomains):
		category = ContentNews
	case matchesAny(d, bioDomains):
		category = ContentBio
	case strings.Contains(t, "team") || strings.Contains(t, "leadership") ||
		strings.Contains(t, "about us") ||
		strings.Contains(s, "executive team"):
		category = ContentCompany
	case strings.Contains(t, "blog") || strings.Contains(d, "medium.com") ||
		strings.Contains(d, "substack"):
		category = ContentArticle
	default:
		category = ContentUnknown
	}

	switch {
	case matchesAny(d, newsDomains), matchesAny(d, pressDomains):
		confidence = TierHigh
	case category == ContentCompany, category == ContentBio:
		confidence = TierHigh
	case category != ContentUnknown:
		confidence = TierMedium
	default:
		confidence = TierLow
	}
	return category, confidence
}

func matchesAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
