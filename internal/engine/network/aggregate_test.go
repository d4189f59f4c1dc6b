package network

import (
	"context"
	"errors"
	"testing"

	"github.com/anatolykoptev/go_network/internal/engine"
)

func TestAggregateSkipsStrongConnections(t *testing.T) {
	searcher := &fakeSearcher{}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	in := validConn("Sarah Chen", "Acme")
	in.EvidenceStrength = engine.TierHigh
	in.EvidenceSources = []string{"https://a.example.com", "https://b.example.com"}

	out := Aggregate(context.Background(), in)
	if searcher.callCount() != 0 {
		t.Errorf("search called %d times, want 0", searcher.callCount())
	}
	if len(out.EvidenceSources) != 2 || out.EvidenceStrength != engine.TierHigh {
		t.Errorf("strong connection modified: %+v", out)
	}
}

func TestAggregateFailureLeavesInputUntouched(t *testing.T) {
	searcher := &fakeSearcher{fn: func(string, int) ([]engine.EvidenceItem, error) {
		return nil, errors.New("searxng down")
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	in := validConn("Sarah Chen", "Acme")
	in.EvidenceStrength = engine.TierMedium
	in.EvidenceSources = []string{"https://a.example.com"}

	out := Aggregate(context.Background(), in)
	if out.EvidenceStrength != engine.TierMedium {
		t.Errorf("strength = %q, want untouched medium", out.EvidenceStrength)
	}
	if len(out.EvidenceSources) != 1 {
		t.Errorf("sources = %v, want untouched", out.EvidenceSources)
	}
}

func TestAggregateUnionsAndRecomputesStrength(t *testing.T) {
	searcher := &fakeSearcher{fn: func(query string, maxResults int) ([]engine.EvidenceItem, error) {
		if maxResults != 3 {
			t.Errorf("maxResults = %d, want 3", maxResults)
		}
		return []engine.EvidenceItem{
			evItem("https://b.example.com", "profile", engine.ContentBio, engine.TierHigh),
			evItem("https://a.example.com", "duplicate", engine.ContentBio, engine.TierHigh),
			evItem("https://low.example.com", "weak", engine.ContentUnknown, engine.TierLow),
			evItem("https://c.example.com", "news", engine.ContentNews, engine.TierMedium),
		}, nil
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	in := validConn("Sarah Chen", "Acme")
	in.EvidenceStrength = engine.TierLow
	in.EvidenceSources = []string{"https://a.example.com"}

	out := Aggregate(context.Background(), in)
	want := []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"}
	if len(out.EvidenceSources) != len(want) {
		t.Fatalf("sources = %v, want %v", out.EvidenceSources, want)
	}
	for i, u := range want {
		if out.EvidenceSources[i] != u {
			t.Errorf("source %d = %q, want %q (order must be preserved)", i, out.EvidenceSources[i], u)
		}
	}
	if out.EvidenceStrength != engine.TierHigh {
		t.Errorf("strength = %q, want high for 3 sources", out.EvidenceStrength)
	}
}

func TestAggregateNeverShrinks(t *testing.T) {
	searcher := &fakeSearcher{fn: func(string, int) ([]engine.EvidenceItem, error) {
		return nil, nil // successful search, zero results
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	in := validConn("Sarah Chen", "Acme")
	in.EvidenceSources = []string{"https://a.example.com", "https://b.example.com"}
	in.EvidenceStrength = engine.TierMedium

	out := Aggregate(context.Background(), in)
	if len(out.EvidenceSources) < 2 {
		t.Errorf("sources shrank: %v", out.EvidenceSources)
	}
	if out.EvidenceStrength != engine.TierMedium {
		t.Errorf("strength = %q, want medium for 2 sources", out.EvidenceStrength)
	}
}

func TestInferContactMethod(t *testing.T) {
	for _, tc := range []struct {
		name string
		conn Connection
		want string
	}{
		{"profile url", Connection{ProfileURL: "https://linkedin.com/in/x", Email: "x@y.com"}, MethodLinkedIn},
		{"email only", Connection{Email: "x@y.com"}, MethodEmail},
		{"high strength", Connection{EvidenceStrength: engine.TierHigh}, MethodMutualContact},
		{"nothing", Connection{EvidenceStrength: engine.TierLow}, MethodUnknown},
	} {
		if got := InferContactMethod(tc.conn); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestEnhanceValidatesAndEnriches(t *testing.T) {
	searcher := &fakeSearcher{fn: func(string, int) ([]engine.EvidenceItem, error) {
		return []engine.EvidenceItem{
			evItem("https://b.example.com", "profile", engine.ContentBio, engine.TierHigh),
		}, nil
	}}
	setupEngine(t, &fakeLLM{}, searcher, nil)

	in := []Connection{
		validConn("Sarah Chen", "Acme"),
		validConn("Unknown Person 1", "Acme"),
	}
	out := Enhance(context.Background(), in)
	if len(out) != 1 {
		t.Fatalf("got %d connections, want 1 after validation", len(out))
	}
	if out[0].ContactMethod == "" {
		t.Error("contactMethod not inferred")
	}
}
