// Package network implements multi-stage discovery of professional
// connections in a contact's network: evidence gathering, AI extraction,
// validation, evidence aggregation, career-alignment scoring, and portfolio
// synthesis, with caching and degraded fallbacks at every stage.
package network

// Contact is the person whose network is being explored.
// Identity is the (name, company) pair; there is no global identifier.
type Contact struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	ProfileLink string `json:"profileLink,omitempty"`
}

// Profile describes the requester. Read-only input to scoring.
type Profile struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary,omitempty"`
	Skills     []string `json:"skills,omitempty"`
	Experience []string `json:"experience,omitempty"`
}

// Search depth levels controlling per-query result caps.
const (
	DepthShallow = "shallow"
	DepthMedium  = "medium"
	DepthDeep    = "deep"
)

// Contact-method categories inferred during evidence aggregation.
const (
	MethodLinkedIn      = "linkedin"
	MethodEmail         = "email"
	MethodMutualContact = "mutual_contact"
	MethodUnknown       = "unknown"
)

// Timeline buckets for actionable insights.
const (
	TimelineImmediate = "immediate"
	TimelineNearTerm  = "near_term"
	TimelineFuture    = "future"
)

// Connection is a candidate person discovered in the contact's network.
// Created by the extractor, filtered by the validator, enriched by the
// aggregator, and scored by the alignment analyzer.
type Connection struct {
	Name             string     `json:"name"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	ProfileURL       string     `json:"profileUrl,omitempty"`
	Email            string     `json:"email,omitempty"`
	Relationship     string     `json:"relationshipToContact"`
	EvidenceStrength string     `json:"evidenceStrength"`
	EvidenceSources  []string   `json:"evidenceSources"`
	CareerRelevance  string     `json:"careerRelevance"`
	NetworkingValue  int        `json:"networkingValue"` // 1-10
	ContactMethod    string     `json:"contactMethod"`
	Alignment        *Alignment `json:"careerAlignment,omitempty"`
}

// AlignmentFactors are the five 1-10 sub-scores behind an overall score.
type AlignmentFactors struct {
	IndustryMatch        int `json:"industryMatch"`
	RoleRelevance        int `json:"roleRelevance"`
	SkillsOverlap        int `json:"skillsOverlap"`
	CareerStageAlignment int `json:"careerStageAlignment"`
	NetworkingPotential  int `json:"networkingPotential"`
}

// StrategicValue holds the qualitative value narrative for one connection.
type StrategicValue struct {
	ShortTermBenefit    string   `json:"shortTermBenefit"`
	LongTermBenefit     string   `json:"longTermBenefit"`
	KeyOpportunities    []string `json:"keyOpportunities"`
	PotentialChallenges []string `json:"potentialChallenges"`
}

// ActionableInsights holds concrete next steps for one connection.
type ActionableInsights struct {
	ApproachStrategy       string   `json:"approachStrategy"`
	ConversationStarters   []string `json:"conversationStarters"`
	ValueProposition       string   `json:"valueProposition"`
	TimelineRecommendation string   `json:"timelineRecommendation"`
}

// Alignment is the computed fit between a connection and the requester's
// career goals. Attached 1:1 to a Connection, never standalone.
type Alignment struct {
	OverallScore       int                `json:"overallScore"` // 1-100
	AlignmentFactors   AlignmentFactors   `json:"alignmentFactors"`
	StrategicValue     StrategicValue     `json:"strategicValue"`
	ActionableInsights ActionableInsights `json:"actionableInsights"`
	ConfidenceLevel    string             `json:"confidenceLevel"`
}

// DefaultAlignment is the fixed alignment used when scoring cannot produce
// a real one. Every field is deterministic.
func DefaultAlignment() *Alignment {
	return &Alignment{
		OverallScore: 50,
		AlignmentFactors: AlignmentFactors{
			IndustryMatch:        5,
			RoleRelevance:        5,
			SkillsOverlap:        5,
			CareerStageAlignment: 5,
			NetworkingPotential:  5,
		},
		StrategicValue: StrategicValue{
			ShortTermBenefit:    "Potential networking opportunity",
			LongTermBenefit:     "May provide future career value",
			KeyOpportunities:    []string{"Expand professional network"},
			PotentialChallenges: []string{"Unknown relationship strength"},
		},
		ActionableInsights: ActionableInsights{
			ApproachStrategy:       "Standard professional introduction",
			ConversationStarters:   []string{"Discuss industry trends", "Share professional experiences"},
			ValueProposition:       "Mutual professional networking",
			TimelineRecommendation: TimelineNearTerm,
		},
		ConfidenceLevel: "medium",
	}
}

// PriorityTiers buckets scored connections by strategic priority.
type PriorityTiers struct {
	Tier1 []Connection `json:"tier1"` // immediate priority
	Tier2 []Connection `json:"tier2"` // medium term
	Tier3 []Connection `json:"tier3"` // future consideration
}

// PortfolioInsight is the cross-candidate strategic summary. Recomputed each
// run; persisted only via the cache.
type PortfolioInsight struct {
	OverallNetworkingStrategy string        `json:"overallNetworkingStrategy"`
	PriorityTiers             PriorityTiers `json:"priorityTiers"`
	GapAnalysis               []string      `json:"gapAnalysis"`
	RecommendedFocusAreas     []string      `json:"recommendedFocusAreas"`
}

// SearchSummary reports gathering volume and overall confidence for one run.
type SearchSummary struct {
	TotalSearches   int     `json:"totalSearches"`
	SourcesAnalyzed int     `json:"sourcesAnalyzed"`
	ConfidenceScore float64 `json:"confidenceScore"` // 0-1
}

// ResearchInsights summarizes the shape of the discovered network.
type ResearchInsights struct {
	NetworkSizeCategory string   `json:"networkSizeCategory"` // small|medium|large
	IndustryConnections []string `json:"industryConnections"`
	RelationshipTypes   []string `json:"relationshipTypes"`
}

// Discovery is the full pipeline output for one run.
type Discovery struct {
	Connections      []Connection      `json:"discoveredConnections"`
	SearchSummary    SearchSummary     `json:"searchSummary"`
	ResearchInsights ResearchInsights  `json:"researchInsights"`
	Portfolio        *PortfolioInsight `json:"portfolioInsight"`
}
