package network

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// rawConnection accepts every known shape the generation capability has
// produced for a connection. The external contract is untyped; this is the
// single seam where alternate field names are tolerated before
// normalization into the canonical Connection.
type rawConnection struct {
	Name           string `json:"name"`
	ConnectionName string `json:"connection_name"`
	FullName       string `json:"fullName"`
	FullNameSnake  string `json:"full_name"`

	Title        string `json:"title"`
	Role         string `json:"role"`
	CurrentTitle string `json:"current_title"`
	JobTitle     string `json:"job_title"`
	Position     string `json:"position"`

	Company      string `json:"company"`
	Organization string `json:"organization"`
	Employer     string `json:"employer"`

	RelationshipToContact string `json:"relationshipToContact"`
	Relationship          string `json:"relationship"`
	ConnectionType        string `json:"connection_type"`
	RelationshipToTarget  string `json:"relationship_to_target"`

	EvidenceStrength      string `json:"evidenceStrength"`
	EvidenceStrengthSnake string `json:"evidence_strength"`

	EvidenceSources []string `json:"evidenceSources"`
	Sources         []string `json:"sources"`
	Evidence        []string `json:"evidence"`
	SourceURL       string   `json:"source_url"`

	CareerRelevance      string `json:"careerRelevance"`
	RelevanceToUser      string `json:"relevance_to_user"`
	ReasonForConnection  string `json:"reason_for_connection"`
	Relevance            string `json:"relevance"`
	CareerRelevanceSnake string `json:"career_relevance"`

	NetworkingValue      float64 `json:"networkingValue"`
	NetworkingValueSnake float64 `json:"networking_value"`
	Score                float64 `json:"score"`

	LinkedInURL string `json:"linkedinUrl"`
	Email       string `json:"email"`
}

var (
	parenTitleRe = regexp.MustCompile(`\(([^)]+)\)`)
	atCompanyRe  = regexp.MustCompile(`at\s+([^(]+)`)
)

// Extract sends the gathered evidence to the generation capability and
// parses candidate connections from its response. A response that is not
// parseable JSON yields an empty list, never an error. Output is capped at
// maxConnections, in model order.
func Extract(ctx context.Context, contact Contact, evidence []engine.EvidenceItem, profile Profile, objective string, maxConnections int) []Connection {
	if len(evidence) == 0 {
		return nil
	}
	if maxConnections <= 0 {
		maxConnections = 10
	}

	prompt := fmt.Sprintf(extractPromptTemplate,
		profile.Name, profile.Title, profile.Summary, strings.Join(profile.Skills, ", "),
		objectiveLine(objective),
		contact.Name, contact.Company, contact.Position,
		evidenceText(evidence),
		maxConnections, contact.Name, profile.Name,
	)

	root, leftover, err := engine.GenerateJSON[rawConnectionList](ctx, extractSystemPrompt, prompt)
	if err != nil {
		slog.Warn("extract: generation failed", slog.String("contact", contact.Name), slog.Any("error", err))
		return nil
	}

	var raws []rawConnection
	if root != nil {
		raws = root.items()
	}
	if len(raws) == 0 && leftover != "" {
		// Responses that are a bare array (or an array buried in prose)
		// don't fit the root object shape; salvage them here.
		raws = parseBareArray(leftover)
	}
	if len(raws) == 0 {
		return nil
	}
	if len(raws) > maxConnections {
		raws = raws[:maxConnections]
	}

	out := make([]Connection, 0, len(raws))
	for i, rc := range raws {
		out = append(out, normalizeConnection(rc, i))
	}
	slog.Info("extract: connections parsed", slog.String("contact", contact.Name), slog.Int("count", len(out)))
	return out
}

// rawConnectionList accepts the known root keys of an extraction response.
type rawConnectionList struct {
	Connections []rawConnection `json:"connections"`
	Valuable    []rawConnection `json:"valuable_connections"`
	Results     []rawConnection `json:"results"`
}

func (r rawConnectionList) items() []rawConnection {
	switch {
	case len(r.Connections) > 0:
		return r.Connections
	case len(r.Valuable) > 0:
		return r.Valuable
	default:
		return r.Results
	}
}

// parseBareArray parses a bare JSON array, directly or from surrounding
// prose.
func parseBareArray(raw string) []rawConnection {
	var arr []rawConnection
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return arr
	}
	if block := engine.ExtractJSONBlock(raw); block != "" {
		if err := json.Unmarshal([]byte(block), &arr); err == nil {
			return arr
		}
	}
	return nil
}

// normalizeConnection maps any accepted raw shape into the canonical form.
// Fields still missing afterward get deterministic placeholders.
func normalizeConnection(rc rawConnection, index int) Connection {
	title := firstNonEmpty(rc.Title, rc.Role, rc.CurrentTitle, rc.JobTitle, rc.Position)
	company := firstNonEmpty(rc.Company, rc.Organization, rc.Employer)
	relationship := firstNonEmpty(rc.RelationshipToContact, rc.Relationship, rc.ConnectionType)

	// A combined relationship field like "Colleague at Acme Ventures
	// (Managing Director)" can stand in for title, company, and relationship.
	if rc.RelationshipToTarget != "" && title == "" && company == "" {
		text := rc.RelationshipToTarget
		if m := parenTitleRe.FindStringSubmatch(text); m != nil {
			title = m[1]
		}
		if m := atCompanyRe.FindStringSubmatch(text); m != nil {
			company = strings.TrimSpace(m[1])
		}
		if idx := strings.Index(text, " at "); idx > 0 && relationship == "" {
			relationship = strings.TrimSpace(text[:idx])
		}
	}

	name := firstNonEmpty(rc.Name, rc.ConnectionName, rc.FullName, rc.FullNameSnake)
	if name == "" {
		name = fmt.Sprintf("Unknown Person %d", index+1)
	}
	if title == "" {
		title = "Unknown Position"
	}
	if company == "" {
		company = "Unknown Company"
	}
	if relationship == "" {
		relationship = firstNonEmpty(rc.RelationshipToTarget, "Colleague")
	}

	strength := firstNonEmpty(rc.EvidenceStrength, rc.EvidenceStrengthSnake, engine.TierMedium)
	sources := rc.EvidenceSources
	if len(sources) == 0 {
		sources = rc.Sources
	}
	if len(sources) == 0 {
		sources = rc.Evidence
	}
	if len(sources) == 0 {
		if rc.SourceURL != "" {
			sources = []string{rc.SourceURL}
		} else {
			sources = []string{"Team directory"}
		}
	}

	relevance := firstNonEmpty(rc.CareerRelevance, rc.RelevanceToUser, rc.ReasonForConnection,
		rc.Relevance, rc.CareerRelevanceSnake, "Potential networking opportunity")

	value := int(rc.NetworkingValue)
	if value == 0 {
		value = int(rc.NetworkingValueSnake)
	}
	if value == 0 {
		value = int(rc.Score)
	}
	if value <= 0 || value > 10 {
		value = 5
	}

	return Connection{
		Name:             name,
		Title:            title,
		Company:          company,
		ProfileURL:       rc.LinkedInURL,
		Email:            rc.Email,
		Relationship:     relationship,
		EvidenceStrength: strength,
		EvidenceSources:  sources,
		CareerRelevance:  relevance,
		NetworkingValue:  value,
		ContactMethod:    MethodUnknown,
	}
}

// snippetRuneLimit caps evidence snippets in prompts so one long page
// cannot crowd out the rest of the evidence.
const snippetRuneLimit = 1200

// evidenceText formats evidence items for embedding in a prompt.
func evidenceText(items []engine.EvidenceItem) string {
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "\nSource: %s\nTitle: %s\nContent: %s\nURL: %s\nContent Type: %s\nConfidence: %s\n---",
			it.Domain, it.Title, engine.TruncateRunes(it.Snippet, snippetRuneLimit, "..."), it.URL, it.Category, it.Confidence)
	}
	return sb.String()
}

func objectiveLine(objective string) string {
	if objective == "" {
		return ""
	}
	return fmt.Sprintf("- Career Goal: %s\n", objective)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
