package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Searcher is the evidence-search capability consumed by the discovery
// pipeline. Implementations may fail per call; callers treat a failed query
// as contributing zero items.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]EvidenceItem, error)
}

// SearxSearcher queries a SearXNG instance and maps raw results into
// classified evidence items.
type SearxSearcher struct {
	BaseURL string
	Client  *http.Client
}

// NewSearxSearcher returns a Searcher backed by the SearXNG JSON API.
func NewSearxSearcher(baseURL string, client *http.Client) *SearxSearcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &SearxSearcher{BaseURL: baseURL, Client: client}
}

// Search runs one query and returns at most maxResults classified items.
func (s *SearxSearcher) Search(ctx context.Context, query string, maxResults int) ([]EvidenceItem, error) {
	u, err := url.Parse(s.BaseURL + "/search")
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	metrics.SearchRequests.Add(1)

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", UserAgentBot)
		return s.Client.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httpStatusError{StatusCode: resp.StatusCode}
	}

	var data searxngResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	results := data.Results
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}

	items := make([]EvidenceItem, 0, len(results))
	for _, r := range results {
		domain := hostnameOf(r.URL)
		category, confidence := ClassifyContent(domain, r.Title, r.Content)
		items = append(items, EvidenceItem{
			Title:      r.Title,
			URL:        r.URL,
			Snippet:    r.Content,
			Domain:     domain,
			Category:   category,
			Confidence: confidence,
		})
	}
	return items, nil
}

func hostnameOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return u.Hostname()
}
