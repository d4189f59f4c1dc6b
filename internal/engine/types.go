package engine

// Content categories for gathered evidence.
const (
	ContentNews    = "news"
	ContentPress   = "press_release"
	ContentCompany = "company_page"
	ContentBio     = "professional_bio"
	ContentArticle = "article"
	ContentUnknown = "unknown"
)

// Confidence tiers shared by evidence items and discovered connections.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// EvidenceItem is one piece of retrieved text suggesting a professional
// relationship. Produced by the Searcher, consumed within one pipeline run.
type EvidenceItem struct {
	Title      string `json:"title"`
	URL        string `json:"url"`
	Snippet    string `json:"snippet"`
	Domain     string `json:"domain"`
	Category   string `json:"contentType"` // one of the Content* constants
	Confidence string `json:"confidence"`  // one of the Tier* constants
}

// DedupByURL removes duplicate evidence items, preserving first-seen order.
func DedupByURL(items []EvidenceItem) []EvidenceItem {
	seen := make(map[string]bool, len(items))
	var out []EvidenceItem
	for _, it := range items {
		if it.URL == "" || seen[it.URL] {
			continue
		}
		seen[it.URL] = true
		out = append(out, it)
	}
	return out
}

// --- Internal SearXNG wire types ---

type searxngResult struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	URL     string  `json:"url"`
	Score   float64 `json:"score"`
}

type searxngResponse struct {
	Results []searxngResult `json:"results"`
}
