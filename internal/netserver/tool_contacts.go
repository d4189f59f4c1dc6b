package netserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_network/internal/engine/network"
)

func registerContactsImport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "contacts_import",
		Description: "Import contact rows (name, company, optional position and profileUrl) into the local contact book. Rows missing name or company and duplicates of an existing name+company pair are skipped.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input network.ContactsImportInput) (*mcp.CallToolResult, network.ContactsImportResult, error) {
		if len(input.Contacts) == 0 {
			return nil, network.ContactsImportResult{}, errors.New("contacts is required and must be a non-empty array")
		}
		res, err := network.ImportContacts(ctx, input)
		if err != nil {
			return nil, network.ContactsImportResult{}, err
		}
		return nil, *res, nil
	})
}

func registerContactsList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "contacts_list",
		Description: "List stored contacts sorted by name. Optionally filter by company (case-insensitive substring). Default limit 50, max 200.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input network.ContactsListInput) (*mcp.CallToolResult, network.ContactsListResult, error) {
		res, err := network.ListContacts(ctx, input)
		if err != nil {
			return nil, network.ContactsListResult{}, err
		}
		return nil, *res, nil
	})
}
