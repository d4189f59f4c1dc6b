// Package netserver exposes the network-discovery pipeline as MCP tools.
package netserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all networking tools on the given MCP server:
// network_discover, connection_align, intro_templates, opportunity_analysis,
// the contact book, the intro tracker, and discovery_history.
func RegisterTools(server *mcp.Server) {
	registerNetworkDiscover(server)
	registerConnectionAlign(server)
	registerIntroTemplates(server)
	registerOpportunityAnalysis(server)
	registerContactsImport(server)
	registerContactsList(server)
	registerIntroTrackerAdd(server)
	registerIntroTrackerList(server)
	registerIntroTrackerUpdate(server)
	registerDiscoveryHistory(server)
}
