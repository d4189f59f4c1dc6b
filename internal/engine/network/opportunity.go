package network

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// Opportunity is one concrete, actionable opportunity with a connection.
type Opportunity struct {
	ConnectionName  string   `json:"connectionName"`
	OpportunityType string   `json:"opportunityType"` // mentorship|collaboration|job_opportunity|industry_insight|skill_development
	Description     string   `json:"description"`
	ActionSteps     []string `json:"actionSteps"`
	Timeframe       string   `json:"timeframe"`
	SuccessMetrics  []string `json:"successMetrics"`
}

// StrategicInsights is the portfolio-level positioning analysis.
type StrategicInsights struct {
	PortfolioStrengths    []string `json:"portfolioStrengths"`
	MarketPositioning     string   `json:"marketPositioning"`
	CompetitiveAdvantages []string `json:"competitiveAdvantages"`
	DevelopmentAreas      []string `json:"developmentAreas"`
}

// OpportunityAnalysis pairs specific opportunities with strategic insights.
type OpportunityAnalysis struct {
	SpecificOpportunities []Opportunity     `json:"specificOpportunities"`
	StrategicInsights     StrategicInsights `json:"strategicInsights"`
}

// AnalyzeOpportunities runs one generation call identifying concrete
// opportunities across the connection portfolio. On failure the analysis
// degrades to an empty structure, never an error.
func AnalyzeOpportunities(ctx context.Context, connections []Connection, profile Profile, objective string) OpportunityAnalysis {
	empty := OpportunityAnalysis{
		SpecificOpportunities: []Opportunity{},
		StrategicInsights: StrategicInsights{
			PortfolioStrengths:    []string{},
			MarketPositioning:     "Analysis unavailable",
			CompetitiveAdvantages: []string{},
			DevelopmentAreas:      []string{},
		},
	}
	if len(connections) == 0 {
		return empty
	}

	var sb strings.Builder
	for _, c := range connections {
		fmt.Fprintf(&sb, "- %s (%s at %s)\n  Career Relevance: %s\n  Relationship Evidence: %s\n",
			c.Name, c.Title, c.Company, c.CareerRelevance, c.Relationship)
	}

	prompt := fmt.Sprintf(opportunityPromptTemplate,
		profile.Name, profile.Title, profile.Summary, strings.Join(profile.Skills, ", "),
		objectiveLine(objective),
		sb.String(),
	)

	parsed, _, err := engine.GenerateJSON[OpportunityAnalysis](ctx, opportunitySystemPrompt, prompt)
	if err != nil {
		slog.Warn("opportunity: generation failed", slog.Any("error", err))
		return empty
	}
	if parsed == nil {
		return empty
	}

	out := *parsed
	if out.SpecificOpportunities == nil {
		out.SpecificOpportunities = []Opportunity{}
	}
	return out
}
