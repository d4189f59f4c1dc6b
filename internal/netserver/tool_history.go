package netserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_network/internal/engine/network"
)

// HistoryInput is the request for discovery_history.
type HistoryInput struct {
	ContactName string `json:"contactName,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	ID          int64  `json:"id,omitempty"`
}

// HistoryOutput is the response for discovery_history.
type HistoryOutput struct {
	Records []network.HistoryRecord `json:"records,omitempty"`
	Result  *network.Discovery      `json:"result,omitempty"`
	Total   int                     `json:"total"`
}

func registerDiscoveryHistory(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "discovery_history",
		Description: "Browse past discovery runs stored in Postgres. Without arguments lists recent runs (limit default 20, max 100); contactName filters by case-insensitive substring; id fetches the full stored result for one run. Empty when DATABASE_URL is not configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input HistoryInput) (*mcp.CallToolResult, HistoryOutput, error) {
		db := network.GetHistoryDB()
		if db == nil {
			if input.ID > 0 {
				return nil, HistoryOutput{}, errors.New("discovery history is not configured (set DATABASE_URL)")
			}
			return nil, HistoryOutput{Records: []network.HistoryRecord{}}, nil
		}

		if input.ID > 0 {
			result, err := db.GetHistoryResult(ctx, input.ID)
			if err != nil {
				return nil, HistoryOutput{}, err
			}
			return nil, HistoryOutput{Result: result, Total: 1}, nil
		}

		records, err := db.ListHistory(ctx, input.ContactName, input.Limit)
		if err != nil {
			return nil, HistoryOutput{}, err
		}
		return nil, HistoryOutput{Records: records, Total: len(records)}, nil
	})
}
