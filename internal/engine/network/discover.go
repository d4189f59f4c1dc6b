package network

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// Pipeline states. Transitions are strictly ordered; error is reachable
// only when even the fallback construction fails, which the hardcoded
// ultimate fallback makes unreachable in practice.
const (
	StateIdle      = "idle"
	StateSearching = "searching"
	StateAnalyzing = "analyzing"
	StateAligning  = "aligning"
	StateComplete  = "complete"
	StateError     = "error"
)

// DiscoverRequest carries all request-shaping inputs for one pipeline run.
type DiscoverRequest struct {
	Contact        Contact
	Profile        Profile
	Objective      string
	Depth          string
	MaxConnections int
}

func (r DiscoverRequest) depth() string {
	if r.Depth == "" {
		return DepthMedium
	}
	return r.Depth
}

func (r DiscoverRequest) maxConnections() int {
	if r.MaxConnections <= 0 {
		return 10
	}
	return r.MaxConnections
}

// Fingerprint derives the cache key from every request-shaping input. Two
// requests differing in any of these fields never hit each other's entry.
func (r DiscoverRequest) Fingerprint() string {
	return engine.CacheKey("discover",
		r.Contact.Name, r.Contact.Company, r.Contact.Position,
		r.Profile.Name, r.Profile.Title,
		r.Objective, r.depth(), strconv.Itoa(r.maxConnections()))
}

// Discover runs the full pipeline for one request. The boolean reports
// whether the result came from the cache. Discover never returns an error:
// every stage degrades internally, and total gathering failure produces the
// low-confidence fallback result.
func Discover(ctx context.Context, req DiscoverRequest) (*Discovery, bool) {
	fingerprint := req.Fingerprint()
	if cached, ok := engine.CacheLoadJSON[Discovery](ctx, engine.Cfg.Cache, fingerprint); ok {
		slog.Info("discover: cache hit", slog.String("contact", req.Contact.Name))
		return &cached, true
	}

	state := StateIdle
	advance := func(next string) {
		slog.Debug("discover: state", slog.String("from", state), slog.String("to", next))
		state = next
	}

	advance(StateSearching)
	evidence, failedQueries := Gather(ctx, req.Contact, req.depth())
	if extra := MineTeamEvidence(ctx, req.Contact, evidence); len(extra) > 0 {
		evidence = engine.DedupByURL(append(evidence, extra...))
	}

	if failedQueries == gatherQueryCount {
		engine.IncrDiscoveryFallbacks()
		slog.Warn("discover: all queries failed, using fallback", slog.String("contact", req.Contact.Name))
		return FallbackDiscovery(req.Contact), false
	}

	if len(evidence) == 0 {
		// Nothing found is a real (empty) answer, reported as such. Scoring
		// and synthesis are skipped; the result is not cached. The summary
		// still reports every attempted query.
		advance(StateComplete)
		result := emptyDiscovery()
		result.SearchSummary = summarize(nil, nil)
		return result, false
	}

	advance(StateAnalyzing)
	evidence = EnrichEvidence(ctx, evidence, req.depth())
	candidates := Extract(ctx, req.Contact, evidence, req.Profile, req.Objective, req.maxConnections())
	connections := Enhance(ctx, candidates)

	if len(connections) == 0 {
		advance(StateComplete)
		result := emptyDiscovery()
		result.SearchSummary = summarize(evidence, nil)
		return result, false
	}

	advance(StateAligning)
	scored := Score(ctx, connections, req.Profile, req.Objective)
	portfolio := Synthesize(ctx, scored, req.Profile, req.Objective)

	advance(StateComplete)
	result := &Discovery{
		Connections:      scored,
		SearchSummary:    summarize(evidence, scored),
		ResearchInsights: researchInsights(scored),
		Portfolio:        portfolio,
	}

	engine.IncrDiscoveries()
	engine.CacheStoreJSON(ctx, engine.Cfg.Cache, fingerprint, *result)
	return result, false
}

// FallbackDiscovery builds the degraded result used when gathering fails
// outright: up to three generic colleague placeholders derived from the
// company type, with a fixed low confidence.
func FallbackDiscovery(contact Contact) *Discovery {
	roles := commonRolesForCompany(contact.Company)
	if len(roles) > 3 {
		roles = roles[:3]
	}

	connections := make([]Connection, 0, len(roles))
	for i, role := range roles {
		connections = append(connections, Connection{
			Name:             contact.Company + " " + role,
			Title:            role,
			Company:          contact.Company,
			Relationship:     "Colleague",
			EvidenceStrength: engine.TierLow,
			EvidenceSources:  []string{contact.Company + " team directory"},
			CareerRelevance:  role + " at " + contact.Company + " could provide industry insights",
			NetworkingValue:  max(1, 5-i),
			ContactMethod:    MethodUnknown,
		})
	}

	return &Discovery{
		Connections: connections,
		SearchSummary: SearchSummary{
			TotalSearches:   1,
			SourcesAnalyzed: 1,
			ConfidenceScore: 0.3,
		},
		ResearchInsights: ResearchInsights{
			NetworkSizeCategory: "small",
			IndustryConnections: []string{contact.Company},
			RelationshipTypes:   []string{"colleagues"},
		},
		Portfolio: nil,
	}
}

// emptyDiscovery is the hardcoded ultimate fallback structure.
func emptyDiscovery() *Discovery {
	return &Discovery{
		Connections:   []Connection{},
		SearchSummary: SearchSummary{},
		ResearchInsights: ResearchInsights{
			NetworkSizeCategory: "small",
			IndustryConnections: []string{},
			RelationshipTypes:   []string{},
		},
		Portfolio: nil,
	}
}

// commonRolesForCompany guesses plausible roles from the company name.
func commonRolesForCompany(company string) []string {
	name := strings.ToLower(company)
	switch {
	case strings.Contains(name, "tech") || strings.Contains(name, "software") || strings.Contains(name, "ai"):
		return []string{"Engineering Manager", "Product Manager", "Head of Engineering", "CTO", "VP of Product"}
	case strings.Contains(name, "finance") || strings.Contains(name, "bank") || strings.Contains(name, "capital"):
		return []string{"VP of Finance", "Investment Director", "Senior Analyst", "Portfolio Manager", "Managing Director"}
	case strings.Contains(name, "consulting"):
		return []string{"Principal", "Senior Manager", "Director", "Partner", "Practice Lead"}
	default:
		return []string{"VP of Operations", "Head of Strategy", "Director of Business Development", "Senior Manager", "Team Lead"}
	}
}

// summarize computes the search summary. Confidence is the mean of the
// normalized evidence confidence and the normalized connection evidence
// strength, rounded to two decimals.
func summarize(evidence []engine.EvidenceItem, connections []Connection) SearchSummary {
	return SearchSummary{
		TotalSearches:   gatherQueryCount,
		SourcesAnalyzed: len(evidence),
		ConfidenceScore: confidenceScore(evidence, connections),
	}
}

func confidenceScore(evidence []engine.EvidenceItem, connections []Connection) float64 {
	if len(evidence) == 0 {
		return 0
	}

	searchSum := 0.0
	for _, it := range evidence {
		searchSum += tierScore(it.Confidence)
	}
	avgSearch := searchSum / float64(len(evidence)) / 3

	strengthSum := 0.0
	for _, c := range connections {
		strengthSum += tierScore(c.EvidenceStrength)
	}
	n := len(connections)
	if n == 0 {
		n = 1
	}
	avgStrength := strengthSum / float64(n) / 3

	return math.Round((avgSearch+avgStrength)/2*100) / 100
}

func tierScore(tier string) float64 {
	switch tier {
	case engine.TierHigh:
		return 3
	case engine.TierMedium:
		return 2
	default:
		return 1
	}
}

// researchInsights summarizes the shape of the discovered network: size
// bucket at 4 and 8 connections, top 5 companies, top 3 relationship types.
func researchInsights(connections []Connection) ResearchInsights {
	companies := uniqueStrings(connections, func(c Connection) string { return c.Company })
	relationships := uniqueStrings(connections, func(c Connection) string { return c.Relationship })

	size := "small"
	switch {
	case len(connections) >= 8:
		size = "large"
	case len(connections) >= 4:
		size = "medium"
	}

	if len(companies) > 5 {
		companies = companies[:5]
	}
	if len(relationships) > 3 {
		relationships = relationships[:3]
	}

	return ResearchInsights{
		NetworkSizeCategory: size,
		IndustryConnections: companies,
		RelationshipTypes:   relationships,
	}
}

func uniqueStrings(connections []Connection, key func(Connection) string) []string {
	seen := make(map[string]bool, len(connections))
	out := []string{}
	for _, c := range connections {
		k := key(c)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}
