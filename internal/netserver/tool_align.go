package netserver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
)

// AlignInput is the request for connection_align.
type AlignInput struct {
	Connection network.Connection `json:"connection"`
	Profile    network.Profile    `json:"userProfile"`
	Objective  string             `json:"careerObjective,omitempty"`
}

// AlignOutput is the response for connection_align.
type AlignOutput struct {
	Connection network.Connection `json:"connection"`
	Timestamp  string             `json:"timestamp"`
}

func registerConnectionAlign(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "connection_align",
		Description: "Score a single connection for career alignment with the user's profile and goals. Returns the connection with a careerAlignment analysis attached: 1-100 overall score, alignment factors, strategic value, and actionable insights.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input AlignInput) (*mcp.CallToolResult, AlignOutput, error) {
		var violations []string
		if strings.TrimSpace(input.Connection.Name) == "" {
			violations = append(violations, "connection.name is required and must be a non-empty string")
		}
		if strings.TrimSpace(input.Profile.Name) == "" {
			violations = append(violations, "userProfile.name is required and must be a non-empty string")
		}
		if len(violations) > 0 {
			return nil, AlignOutput{}, errors.New("invalid request: " + strings.Join(violations, "; "))
		}

		cacheKey := engine.CacheKey("connection_align",
			input.Connection.Name, input.Connection.Company, input.Connection.Title,
			input.Profile.Name, input.Profile.Title, input.Objective)
		if out, ok := engine.CacheLoadJSON[AlignOutput](ctx, engine.Cfg.Cache, cacheKey); ok {
			return nil, out, nil
		}

		conn := input.Connection
		conn.Alignment = network.AlignOne(ctx, conn, input.Profile, input.Objective)
		if conn.ContactMethod == "" {
			conn.ContactMethod = network.InferContactMethod(conn)
		}

		out := AlignOutput{
			Connection: conn,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}
		engine.CacheStoreJSON(ctx, engine.Cfg.Cache, cacheKey, out)
		return nil, out, nil
	})
}

// OpportunityInput is the request for opportunity_analysis.
type OpportunityInput struct {
	Connections []network.Connection `json:"connections"`
	Profile     network.Profile      `json:"userProfile"`
	Objective   string               `json:"careerObjective,omitempty"`
}

func registerOpportunityAnalysis(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "opportunity_analysis",
		Description: "Analyze a portfolio of discovered connections for concrete opportunities (mentorship, collaboration, job opportunities, industry insight, skill development) and strategic positioning insights.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input OpportunityInput) (*mcp.CallToolResult, network.OpportunityAnalysis, error) {
		if len(input.Connections) == 0 {
			return nil, network.OpportunityAnalysis{}, errors.New("connections is required and must be a non-empty array")
		}
		if strings.TrimSpace(input.Profile.Name) == "" {
			return nil, network.OpportunityAnalysis{}, errors.New("userProfile.name is required and must be a non-empty string")
		}

		names := make([]string, 0, len(input.Connections))
		for _, c := range input.Connections {
			names = append(names, fmt.Sprintf("%s@%s", c.Name, c.Company))
		}
		cacheKey := engine.CacheKey(append([]string{"opportunity_analysis", input.Profile.Name, input.Objective}, names...)...)
		if out, ok := engine.CacheLoadJSON[network.OpportunityAnalysis](ctx, engine.Cfg.Cache, cacheKey); ok {
			return nil, out, nil
		}

		out := network.AnalyzeOpportunities(ctx, input.Connections, input.Profile, input.Objective)
		engine.CacheStoreJSON(ctx, engine.Cfg.Cache, cacheKey, out)
		return nil, out, nil
	})
}
