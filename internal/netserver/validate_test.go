package netserver

import (
	"strings"
	"testing"

	"github.com/anatolykoptev/go_network/internal/engine/network"
)

func validInput() DiscoverInput {
	return DiscoverInput{
		Contact: network.Contact{
			Name:     "Sarah Chen",
			Company:  "Acme Corp",
			Position: "VP Engineering",
		},
		Profile: network.Profile{
			Name:  "Alice Johnson",
			Title: "Software Engineer",
		},
	}
}

func TestValidateDiscoverInputValid(t *testing.T) {
	if v := ValidateDiscoverInput(validInput()); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}

	in := validInput()
	in.SearchDepth = network.DepthDeep
	in.MaxConnections = 25
	if v := ValidateDiscoverInput(in); len(v) != 0 {
		t.Fatalf("expected no violations, got %v", v)
	}
}

func TestValidateDiscoverInputViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DiscoverInput)
		want   string
	}{
		{"missing contact name", func(in *DiscoverInput) { in.Contact.Name = "  " },
			"contact.name is required and must be a non-empty string"},
		{"missing company", func(in *DiscoverInput) { in.Contact.Company = "" },
			"contact.company is required and must be a non-empty string"},
		{"missing position", func(in *DiscoverInput) { in.Contact.Position = "" },
			"contact.position is required and must be a non-empty string"},
		{"missing profile name", func(in *DiscoverInput) { in.Profile.Name = "" },
			"userProfile.name is required and must be a non-empty string"},
		{"missing profile title", func(in *DiscoverInput) { in.Profile.Title = "" },
			"userProfile.title is required and must be a non-empty string"},
		{"bad depth", func(in *DiscoverInput) { in.SearchDepth = "exhaustive" },
			"searchDepth must be one of: shallow, medium, deep"},
		{"negative max", func(in *DiscoverInput) { in.MaxConnections = -1 },
			"maxConnections must be between 1 and 25"},
		{"max too large", func(in *DiscoverInput) { in.MaxConnections = 26 },
			"maxConnections must be between 1 and 25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			v := ValidateDiscoverInput(in)
			if len(v) != 1 || v[0] != tt.want {
				t.Errorf("got %v, want [%q]", v, tt.want)
			}
		})
	}
}

func TestValidateDiscoverInputCollectsAll(t *testing.T) {
	in := DiscoverInput{SearchDepth: "bogus", MaxConnections: 100}
	v := ValidateDiscoverInput(in)
	if len(v) != 7 {
		t.Fatalf("expected 7 violations, got %d: %v", len(v), v)
	}
	joined := strings.Join(v, "; ")
	for _, want := range []string{"contact.name", "contact.company", "contact.position",
		"userProfile.name", "userProfile.title", "searchDepth", "maxConnections"} {
		if !strings.Contains(joined, want) {
			t.Errorf("violations missing %q: %v", want, v)
		}
	}
}

func TestNetworkingPriority(t *testing.T) {
	al := network.DefaultAlignment()
	al.OverallScore = 85
	tests := []struct {
		name string
		conn network.Connection
		want int
	}{
		{"alignment wins", network.Connection{NetworkingValue: 7, Alignment: al}, 85},
		{"value fallback", network.Connection{NetworkingValue: 7}, 7},
		{"default", network.Connection{}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := networkingPriority(tt.conn); got != tt.want {
				t.Errorf("networkingPriority = %d, want %d", got, tt.want)
			}
		})
	}
}
