package netserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
)

// DiscoverInput is the request for network_discover.
type DiscoverInput struct {
	Contact        network.Contact `json:"contact"`
	Profile        network.Profile `json:"userProfile"`
	Objective      string          `json:"careerObjective,omitempty"`
	SearchDepth    string          `json:"searchDepth,omitempty"`
	MaxConnections int             `json:"maxConnections,omitempty"`
}

// ConnectionResult is one discovered connection as returned to clients,
// with presentation fields layered on top of the pipeline output.
type ConnectionResult struct {
	network.Connection
	NetworkingPriority    int               `json:"networkingPriority"`
	IntroductionTemplates map[string]string `json:"introductionTemplates"`
}

// DiscoverOutput is the response for network_discover.
type DiscoverOutput struct {
	RequestID             string                    `json:"requestId"`
	Code                  string                    `json:"code,omitempty"`
	Message               string                    `json:"message"`
	DiscoveredConnections []ConnectionResult        `json:"discoveredConnections"`
	SearchSummary         network.SearchSummary     `json:"searchSummary"`
	ResearchInsights      network.ResearchInsights  `json:"researchInsights"`
	PortfolioInsight      *network.PortfolioInsight `json:"portfolioInsight"`
	Cached                bool                      `json:"cached"`
	ProcessingTimeMs      int64                     `json:"processingTimeMs"`
	Timestamp             string                    `json:"timestamp"`
}

const codeNoConnections = "NO_CONNECTIONS_FOUND"

func registerNetworkDiscover(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_discover",
		Description: "Discover valuable professional connections in a contact's network from public web evidence. Takes the contact (name, company, position), the user's profile, and an optional career objective. Returns scored connections with career-alignment analysis, a portfolio strategy, and introduction openers. searchDepth: shallow, medium (default), deep.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input DiscoverInput) (*mcp.CallToolResult, DiscoverOutput, error) {
		if violations := ValidateDiscoverInput(input); len(violations) > 0 {
			return nil, DiscoverOutput{}, fmt.Errorf("invalid request: %s", strings.Join(violations, "; "))
		}

		start := time.Now()
		requestID := uuid.NewString()

		req := network.DiscoverRequest{
			Contact:        input.Contact,
			Profile:        input.Profile,
			Objective:      input.Objective,
			Depth:          input.SearchDepth,
			MaxConnections: input.MaxConnections,
		}

		var disc *network.Discovery
		var cached bool
		_ = engine.TrackOperation(ctx, "network_discover", func(ctx context.Context) error {
			disc, cached = network.Discover(ctx, req)
			return nil
		})

		out := buildDiscoverOutput(requestID, disc, cached, time.Since(start))

		if db := network.GetHistoryDB(); db != nil {
			db.RecordDiscovery(ctx, requestID, req, disc, cached)
		}

		slog.Info("network_discover: done",
			slog.String("request_id", requestID),
			slog.String("contact", input.Contact.Name),
			slog.Int("connections", len(out.DiscoveredConnections)),
			slog.Bool("cached", cached))
		return nil, out, nil
	})
}

func buildDiscoverOutput(requestID string, disc *network.Discovery, cached bool, elapsed time.Duration) DiscoverOutput {
	out := DiscoverOutput{
		RequestID:             requestID,
		Message:               fmt.Sprintf("Discovered %d connections", len(disc.Connections)),
		DiscoveredConnections: make([]ConnectionResult, 0, len(disc.Connections)),
		SearchSummary:         disc.SearchSummary,
		ResearchInsights:      disc.ResearchInsights,
		PortfolioInsight:      disc.Portfolio,
		Cached:                cached,
		ProcessingTimeMs:      elapsed.Milliseconds(),
		Timestamp:             time.Now().UTC().Format(time.RFC3339),
	}

	if len(disc.Connections) == 0 {
		out.Code = codeNoConnections
		out.Message = "No connections could be discovered from available public sources"
		return out
	}

	for _, c := range disc.Connections {
		out.DiscoveredConnections = append(out.DiscoveredConnections, ConnectionResult{
			Connection:         c,
			NetworkingPriority: networkingPriority(c),
			IntroductionTemplates: map[string]string{
				"direct": network.DefaultDirectIntro(c),
			},
		})
	}
	return out
}

// networkingPriority is the 1-100 ranking clients sort by: the alignment
// score when scoring ran, otherwise the extractor's 1-10 value.
func networkingPriority(c network.Connection) int {
	if c.Alignment != nil && c.Alignment.OverallScore > 0 {
		return c.Alignment.OverallScore
	}
	if c.NetworkingValue > 0 {
		return c.NetworkingValue
	}
	return 5
}
