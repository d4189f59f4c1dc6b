package netserver

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
)

// IntroInput is the request for intro_templates.
type IntroInput struct {
	Connection network.Connection `json:"connection"`
	Contact    network.Contact    `json:"contact"`
	Profile    network.Profile    `json:"userProfile"`
	Objective  string             `json:"careerObjective,omitempty"`
}

// IntroOutput is the response for intro_templates.
type IntroOutput struct {
	ConnectionName string                 `json:"connectionName"`
	Templates      network.IntroTemplates `json:"templates"`
	DirectIntro    string                 `json:"directIntro"`
}

func registerIntroTemplates(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "intro_templates",
		Description: "Generate personalized outreach templates for one discovered connection: an introduction request to the mutual contact, a follow-up message, a LinkedIn connection request, and an email subject line. Always returns complete templates; generation failures fall back to deterministic defaults.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input IntroInput) (*mcp.CallToolResult, IntroOutput, error) {
		var violations []string
		if strings.TrimSpace(input.Connection.Name) == "" {
			violations = append(violations, "connection.name is required and must be a non-empty string")
		}
		if strings.TrimSpace(input.Contact.Name) == "" {
			violations = append(violations, "contact.name is required and must be a non-empty string")
		}
		if strings.TrimSpace(input.Profile.Name) == "" {
			violations = append(violations, "userProfile.name is required and must be a non-empty string")
		}
		if len(violations) > 0 {
			return nil, IntroOutput{}, errors.New("invalid request: " + strings.Join(violations, "; "))
		}

		cacheKey := engine.CacheKey("intro_templates",
			input.Connection.Name, input.Connection.Company,
			input.Contact.Name, input.Profile.Name, input.Objective)
		if out, ok := engine.CacheLoadJSON[IntroOutput](ctx, engine.Cfg.Cache, cacheKey); ok {
			return nil, out, nil
		}

		out := IntroOutput{
			ConnectionName: input.Connection.Name,
			Templates:      network.GenerateIntroTemplates(ctx, input.Connection, input.Contact, input.Profile, input.Objective),
			DirectIntro:    network.DefaultDirectIntro(input.Connection),
		}
		engine.CacheStoreJSON(ctx, engine.Cfg.Cache, cacheKey, out)
		return nil, out, nil
	})
}
