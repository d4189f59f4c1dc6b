package netserver

import (
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine/network"
)

const maxConnectionsLimit = 25

// ValidateDiscoverInput checks a discovery request and returns every
// violation found, not just the first, so a client can fix all fields in
// one round trip.
func ValidateDiscoverInput(in DiscoverInput) []string {
	var violations []string

	if strings.TrimSpace(in.Contact.Name) == "" {
		violations = append(violations, "contact.name is required and must be a non-empty string")
	}
	if strings.TrimSpace(in.Contact.Company) == "" {
		violations = append(violations, "contact.company is required and must be a non-empty string")
	}
	if strings.TrimSpace(in.Contact.Position) == "" {
		violations = append(violations, "contact.position is required and must be a non-empty string")
	}
	if strings.TrimSpace(in.Profile.Name) == "" {
		violations = append(violations, "userProfile.name is required and must be a non-empty string")
	}
	if strings.TrimSpace(in.Profile.Title) == "" {
		violations = append(violations, "userProfile.title is required and must be a non-empty string")
	}

	switch in.SearchDepth {
	case "", network.DepthShallow, network.DepthMedium, network.DepthDeep:
	default:
		violations = append(violations, "searchDepth must be one of: shallow, medium, deep")
	}

	if in.MaxConnections < 0 || in.MaxConnections > maxConnectionsLimit {
		violations = append(violations, "maxConnections must be between 1 and 25")
	}

	return violations
}
