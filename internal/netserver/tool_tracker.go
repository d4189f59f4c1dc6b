package netserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_network/internal/engine/network"
)

func registerIntroTrackerAdd(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "intro_tracker_add",
		Description: "Save an introduction you are pursuing to the local tracker. Requires connectionName and company; status defaults to 'requested' (valid: requested, sent, accepted, declined).",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input network.IntroTrackerAddInput) (*mcp.CallToolResult, network.IntroTrackerResult, error) {
		if input.ConnectionName == "" {
			return nil, network.IntroTrackerResult{}, errors.New("connectionName is required")
		}
		if input.Company == "" {
			return nil, network.IntroTrackerResult{}, errors.New("company is required")
		}
		res, err := network.AddTrackedIntro(ctx, input)
		if err != nil {
			return nil, network.IntroTrackerResult{}, err
		}
		return nil, *res, nil
	})
}

func registerIntroTrackerList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "intro_tracker_list",
		Description: "List tracked introductions, most recently updated first. Optionally filter by status (requested, sent, accepted, declined). Default limit 50, max 100.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input network.IntroTrackerListInput) (*mcp.CallToolResult, network.IntroTrackerListResult, error) {
		res, err := network.ListTrackedIntros(ctx, input)
		if err != nil {
			return nil, network.IntroTrackerListResult{}, err
		}
		return nil, *res, nil
	})
}

func registerIntroTrackerUpdate(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "intro_tracker_update",
		Description: "Update the status and/or notes of a tracked introduction by id.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input network.IntroTrackerUpdateInput) (*mcp.CallToolResult, network.IntroTrackerResult, error) {
		if input.ID <= 0 {
			return nil, network.IntroTrackerResult{}, errors.New("id is required")
		}
		res, err := network.UpdateTrackedIntro(ctx, input)
		if err != nil {
			return nil, network.IntroTrackerResult{}, err
		}
		return nil, *res, nil
	})
}
