package network

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// scoredConnection is the per-connection shape expected back from the
// alignment call: the original fields plus the analysis overlay.
type scoredConnection struct {
	NetworkingValue int        `json:"networkingValue"`
	Alignment       *Alignment `json:"careerAlignment"`
}

type scoredBatch struct {
	Connections []scoredConnection `json:"connections"`
}

// Score runs one batched alignment call for all connections and overlays
// the results positionally onto the input. Never returns an error: on call
// or parse failure every connection gets the default alignment.
//
// The input careerRelevance narrative is preserved verbatim for every
// connection, even when the model rewrites or omits it. That field was
// written by the extractor from real evidence; the scorer must not be able
// to replace it with invented text.
func Score(ctx context.Context, connections []Connection, profile Profile, objective string) []Connection {
	if len(connections) == 0 {
		return nil
	}

	out := make([]Connection, len(connections))
	copy(out, connections)

	payload, err := json.MarshalIndent(connections, "", "  ")
	if err != nil {
		return withDefaultAlignments(out)
	}

	prompt := fmt.Sprintf(alignPromptTemplate,
		profile.Name, profile.Title, profile.Summary, strings.Join(profile.Skills, ", "),
		objectiveLine(objective),
		string(payload),
	)

	parsed, _, err := engine.GenerateJSON[scoredBatch](ctx, alignSystemPrompt, prompt)
	if err != nil {
		slog.Warn("align: generation failed", slog.Any("error", err))
		return withDefaultAlignments(out)
	}
	if parsed == nil {
		slog.Warn("align: unparseable response, using defaults")
		return withDefaultAlignments(out)
	}

	for i := range out {
		if i >= len(parsed.Connections) {
			out[i].Alignment = DefaultAlignment()
			continue
		}
		sc := parsed.Connections[i]
		if sc.Alignment != nil {
			out[i].Alignment = sc.Alignment
		} else {
			out[i].Alignment = DefaultAlignment()
		}
		if sc.NetworkingValue >= 1 && sc.NetworkingValue <= 10 {
			out[i].NetworkingValue = sc.NetworkingValue
		}
	}
	return out
}

// AlignOne scores a single connection and returns its alignment overlay.
func AlignOne(ctx context.Context, conn Connection, profile Profile, objective string) *Alignment {
	scored := Score(ctx, []Connection{conn}, profile, objective)
	if len(scored) == 0 || scored[0].Alignment == nil {
		return DefaultAlignment()
	}
	return scored[0].Alignment
}

func withDefaultAlignments(connections []Connection) []Connection {
	for i := range connections {
		connections[i].Alignment = DefaultAlignment()
	}
	return connections
}
