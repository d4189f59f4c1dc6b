package engine

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// newFetchClient creates an HTTP client with proper settings for page fetching.
func newFetchClient() *http.Client {
	if cfg.HTTPClient != nil {
		return cfg.HTTPClient
	}
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// FetchURLContent extracts main text content from a URL. Parses with goquery
// and converts the content region to markdown; falls back to regex-based
// stripping when parsing fails.
func FetchURLContent(ctx context.Context, rawURL string) (title, content string, err error) {
	metrics.FetchRequests.Add(1)
	defer func() {
		if err != nil {
			metrics.FetchErrors.Add(1)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	body, err := fetchBody(ctx, rawURL)
	if err != nil {
		return "", "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		title, content = extractWithRegex(string(body))
		return title, content, nil
	}

	title = doc.Find("title").First().Text()
	if title == "" {
		title, _ = doc.Find("meta[property=og:title]").First().Attr("content")
	}

	removeSelectors := []string{
		"script", "style", "noscript", "iframe", "svg",
		"header", "footer", "nav", "aside",
		".advertisement", ".ad", ".sidebar", ".comments",
		"[role=navigation]", "[role=banner]", "[role=contentinfo]",
	}
	doc.Find(strings.Join(removeSelectors, ", ")).Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	contentSel := doc.Find("article, main, .content, .post-content, .article-content, #content").First()
	if contentSel.Length() == 0 {
		contentSel = doc.Find("body")
	}

	contentHTML, err := goquery.OuterHtml(contentSel)
	if err == nil {
		if md, mdErr := htmltomarkdown.ConvertString(contentHTML); mdErr == nil {
			content = strings.TrimSpace(md)
		}
	}
	if content == "" {
		content = NormalizeWhitespace(contentSel.Text())
	}

	content = TruncateRunes(content, cfg.MaxContentChars, "...")
	return strings.TrimSpace(title), content, nil
}

// FetchHTML returns the raw page body for callers that do their own parsing.
func FetchHTML(ctx context.Context, rawURL string) ([]byte, error) {
	metrics.FetchRequests.Add(1)
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()
	body, err := fetchBody(ctx, rawURL)
	if err != nil {
		metrics.FetchErrors.Add(1)
	}
	return body, err
}

// fetchBody performs a GET with retry and returns the decompressed body.
func fetchBody(ctx context.Context, fetchURL string) ([]byte, error) {
	client := newFetchClient()

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", UserAgentChrome)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		return client.Do(req)
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httpStatusError{StatusCode: resp.StatusCode}
	}
	return readResponseBody(resp)
}

// readResponseBody reads the body, handling gzip encoding.
func readResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return io.ReadAll(resp.Body)
}

var (
	titleRe  = regexp.MustCompile(`(?i)<title[^>]*>([^<]+)</title>`)
	blockRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`),
		regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`),
		regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`),
		regexp.MustCompile(`(?is)<header[^>]*>.*?</header>`),
		regexp.MustCompile(`(?is)<footer[^>]*>.*?</footer>`),
		regexp.MustCompile(`(?is)<nav[^>]*>.*?</nav>`),
		regexp.MustCompile(`(?is)<aside[^>]*>.*?</aside>`),
	}
)

// extractWithRegex strips tags from raw HTML when structured parsing fails.
func extractWithRegex(html string) (title, content string) {
	if m := titleRe.FindStringSubmatch(html); len(m) > 1 {
		title = strings.TrimSpace(m[1])
	}
	for _, re := range blockRes {
		html = re.ReplaceAllString(html, "")
	}
	content = TruncateRunes(NormalizeWhitespace(CleanHTML(html)), cfg.MaxContentChars, "...")
	return title, content
}
