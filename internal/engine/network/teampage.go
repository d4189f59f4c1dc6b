package network

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// TeamMember is a person/title pair mined from a company team page.
type TeamMember struct {
	Name  string
	Title string
}

// roleWords mark a text fragment as a plausible job title.
var roleWords = []string{
	"ceo", "cto", "cfo", "coo", "chief", "president", "founder",
	"vp", "vice president", "director", "head of", "manager",
	"partner", "principal", "lead", "engineer", "officer", "advisor",
}

var personNameRe = regexp.MustCompile(`^[A-Z][a-z'’-]+(?: [A-Z][a-z'’.-]+){1,2}$`)

// MineTeamPage fetches a company page and extracts person/title pairs from
// its heading structure. Best effort: any failure returns nil.
func MineTeamPage(ctx context.Context, pageURL string) []TeamMember {
	engine.IncrTeamPageRequests()

	body, err := engine.FetchHTML(ctx, pageURL)
	if err != nil {
		slog.Debug("teampage: fetch failed", slog.String("url", pageURL), slog.Any("error", err))
		return nil
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil
	}
	return extractTeamMembers(doc)
}

// extractTeamMembers walks the tree looking for heading-like elements whose
// text is a person name, pairing each with the nearest following role text.
func extractTeamMembers(doc *html.Node) []TeamMember {
	var members []TeamMember
	seen := make(map[string]bool)

	nodes := findHeadingNodes(doc)
	for _, n := range nodes {
		name := strings.TrimSpace(textOf(n))
		if !looksLikePersonName(name) || seen[name] {
			continue
		}
		title := followingRoleText(n)
		if title == "" {
			continue
		}
		seen[name] = true
		members = append(members, TeamMember{Name: name, Title: title})
	}
	return members
}

// findHeadingNodes returns heading and emphasis elements in document order.
func findHeadingNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode {
		switch n.Data {
		case "h2", "h3", "h4", "h5", "strong", "b":
			out = append(out, n)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findHeadingNodes(c)...)
	}
	return out
}

// followingRoleText scans siblings after a name node for role-like text.
func followingRoleText(n *html.Node) string {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		text := strings.TrimSpace(textOf(s))
		if text == "" {
			continue
		}
		if looksLikeRole(text) {
			return text
		}
		return "" // first non-empty sibling is not a role, give up
	}
	return ""
}

func looksLikePersonName(s string) bool {
	return s != "" && len(s) <= 60 && personNameRe.MatchString(s)
}

func looksLikeRole(s string) bool {
	if len(s) > 80 {
		return false
	}
	lower := strings.ToLower(s)
	for _, w := range roleWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func textOf(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textOf(c))
	}
	return sb.String()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return u.Hostname()
}

// teamPageEvidence converts mined members into evidence items attributed to
// the page, with fragment URLs so dedup keeps each member distinct.
func teamPageEvidence(pageURL, company string, members []TeamMember) []engine.EvidenceItem {
	items := make([]engine.EvidenceItem, 0, len(members))
	for _, m := range members {
		slug := strings.ToLower(strings.ReplaceAll(m.Name, " ", "-"))
		items = append(items, engine.EvidenceItem{
			Title:      fmt.Sprintf("%s - %s", m.Name, m.Title),
			URL:        pageURL + "#" + slug,
			Snippet:    fmt.Sprintf("%s is listed as %s on the %s team page.", m.Name, m.Title, company),
			Domain:     hostOf(pageURL),
			Category:   engine.ContentCompany,
			Confidence: engine.TierMedium,
		})
	}
	return items
}

// MineTeamEvidence finds the first company-page item in the gathered
// evidence, mines it for team members, and returns their evidence items.
// Enabled by config; returns nil when mining is off or nothing is found.
func MineTeamEvidence(ctx context.Context, contact Contact, evidence []engine.EvidenceItem) []engine.EvidenceItem {
	if !engine.Cfg.MineTeamPages {
		return nil
	}
	for _, it := range evidence {
		if it.Category != engine.ContentCompany || it.URL == "" {
			continue
		}
		members := MineTeamPage(ctx, it.URL)
		if len(members) == 0 {
			return nil
		}
		slog.Info("teampage: mined members",
			slog.String("url", it.URL),
			slog.Int("count", len(members)))
		return teamPageEvidence(it.URL, contact.Company, members)
	}
	return nil
}
