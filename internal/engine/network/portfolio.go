package network

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// Synthesize produces the portfolio-level strategy for a set of scored
// connections via one generation call. Tier membership is requested by
// index into the submitted list; name strings are accepted as a
// compatibility fallback and resolved by case-insensitive substring match.
// An entry that resolves to nothing is dropped, never guessed. Candidates
// the model left unassigned are swept into tiers by score so every
// connection lands in exactly one tier. On total failure the result is the
// deterministic score bucketing.
func Synthesize(ctx context.Context, connections []Connection, profile Profile, objective string) *PortfolioInsight {
	if len(connections) == 0 {
		return nil
	}

	prompt := fmt.Sprintf(portfolioPromptTemplate,
		profile.Name, profile.Title, profile.Summary, strings.Join(profile.Skills, ", "),
		objectiveLine(objective),
		portfolioOverview(connections),
	)

	parsed, _, err := engine.GenerateJSON[portfolioResponse](ctx, portfolioSystemPrompt, prompt)
	if err != nil {
		slog.Warn("portfolio: generation failed", slog.Any("error", err))
		return scoreBuckets(connections)
	}
	if parsed == nil {
		slog.Warn("portfolio: unparseable response, using score buckets")
		return scoreBuckets(connections)
	}

	assigned := make([]int, len(connections)) // 0 = unassigned, else tier number
	resolveTier(parsed.PriorityTiers.Tier1, connections, assigned, 1)
	resolveTier(parsed.PriorityTiers.Tier2, connections, assigned, 2)
	resolveTier(parsed.PriorityTiers.Tier3, connections, assigned, 3)

	// Sweep unassigned candidates into tiers by score: tier assignment
	// must be total.
	for i, tier := range assigned {
		if tier == 0 {
			assigned[i] = tierByScore(connections[i])
		}
	}

	var tiers PriorityTiers
	for i, tier := range assigned {
		switch tier {
		case 1:
			tiers.Tier1 = append(tiers.Tier1, connections[i])
		case 2:
			tiers.Tier2 = append(tiers.Tier2, connections[i])
		default:
			tiers.Tier3 = append(tiers.Tier3, connections[i])
		}
	}

	strategy := parsed.OverallNetworkingStrategy
	if strategy == "" {
		strategy = "Focus on building strategic relationships"
	}
	gap := parsed.GapAnalysis
	if gap == nil {
		gap = []string{}
	}
	focus := parsed.RecommendedFocusAreas
	if focus == nil {
		focus = []string{}
	}

	return &PortfolioInsight{
		OverallNetworkingStrategy: strategy,
		PriorityTiers:             tiers,
		GapAnalysis:               gap,
		RecommendedFocusAreas:     focus,
	}
}

// portfolioResponse is the shape expected back from the synthesis call.
// Tier entries are indices or name strings, so they arrive raw.
type portfolioResponse struct {
	OverallNetworkingStrategy string `json:"overallNetworkingStrategy"`
	PriorityTiers             struct {
		Tier1 []json.RawMessage `json:"tier1"`
		Tier2 []json.RawMessage `json:"tier2"`
		Tier3 []json.RawMessage `json:"tier3"`
	} `json:"priorityTiers"`
	GapAnalysis           []string `json:"gapAnalysis"`
	RecommendedFocusAreas []string `json:"recommendedFocusAreas"`
}

// resolveTier marks connections referenced by tier entries. Entries are
// indices (preferred) or name strings; first assignment wins.
func resolveTier(entries []json.RawMessage, connections []Connection, assigned []int, tier int) {
	for _, entry := range entries {
		var idx int
		if err := json.Unmarshal(entry, &idx); err == nil {
			if idx >= 0 && idx < len(connections) && assigned[idx] == 0 {
				assigned[idx] = tier
			}
			continue
		}
		var name string
		if err := json.Unmarshal(entry, &name); err != nil {
			continue
		}
		if i := findByName(name, connections); i >= 0 && assigned[i] == 0 {
			assigned[i] = tier
		}
	}
}

// findByName resolves a possibly abbreviated name to a connection index by
// case-insensitive substring match in either direction. Returns -1 when
// nothing matches.
func findByName(name string, connections []Connection) int {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return -1
	}
	for i, c := range connections {
		have := strings.ToLower(c.Name)
		if strings.Contains(have, needle) || strings.Contains(needle, have) {
			return i
		}
	}
	return -1
}

func tierByScore(c Connection) int {
	score := 0
	if c.Alignment != nil {
		score = c.Alignment.OverallScore
	}
	switch {
	case score >= 80:
		return 1
	case score >= 60:
		return 2
	default:
		return 3
	}
}

// scoreBuckets is the deterministic fallback portfolio.
func scoreBuckets(connections []Connection) *PortfolioInsight {
	var tiers PriorityTiers
	for _, c := range connections {
		switch tierByScore(c) {
		case 1:
			tiers.Tier1 = append(tiers.Tier1, c)
		case 2:
			tiers.Tier2 = append(tiers.Tier2, c)
		default:
			tiers.Tier3 = append(tiers.Tier3, c)
		}
	}
	return &PortfolioInsight{
		OverallNetworkingStrategy: "Focus on highest-scoring connections first",
		PriorityTiers:             tiers,
		GapAnalysis:               []string{},
		RecommendedFocusAreas:     []string{},
	}
}

// portfolioOverview renders the indexed candidate list for the prompt.
func portfolioOverview(connections []Connection) string {
	type overview struct {
		Index        int    `json:"index"`
		Name         string `json:"name"`
		Company      string `json:"company"`
		Title        string `json:"title"`
		OverallScore int    `json:"overallScore"`
		Timeline     string `json:"timelineRecommendation,omitempty"`
	}
	rows := make([]overview, 0, len(connections))
	for i, c := range connections {
		row := overview{Index: i, Name: c.Name, Company: c.Company, Title: c.Title}
		if c.Alignment != nil {
			row.OverallScore = c.Alignment.OverallScore
			row.Timeline = c.Alignment.ActionableInsights.TimelineRecommendation
		}
		rows = append(rows, row)
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
