package network

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
)

var (
	lowercaseNameRe = regexp.MustCompile(`^[a-z]+$`)
	digitRe         = regexp.MustCompile(`\d`)
	initialsOnlyRe  = regexp.MustCompile(`^[A-Z]\.\s?[A-Z]\.$`)
)

// groupWords mark a name as a collective label, not a person.
var groupWords = []string{"Attendees", "Speakers", "Various"}

// IsValid reports whether a candidate connection is plausibly a real
// professional. Pure and deterministic. Intentionally lenient: it rejects
// only obvious placeholders and non-person labels, since downstream scoring
// can still deprioritize weak candidates.
func IsValid(c Connection) bool {
	if c.Name == "" || strings.Contains(c.Name, "Unknown Person") {
		return false
	}
	if c.Company == "" || c.Company == "Unknown Company" {
		return false
	}
	if lowercaseNameRe.MatchString(c.Name) || digitRe.MatchString(c.Name) {
		return false
	}
	if initialsOnlyRe.MatchString(c.Name) {
		return false
	}
	for _, w := range groupWords {
		if strings.Contains(c.Name, w) {
			return false
		}
	}
	return true
}

// Validate filters a candidate list, keeping input order.
func Validate(candidates []Connection) []Connection {
	out := candidates[:0:0]
	for _, c := range candidates {
		if !IsValid(c) {
			engine.IncrValidationRejects()
			slog.Debug("validate: rejected candidate",
				slog.String("name", c.Name),
				slog.String("company", c.Company))
			continue
		}
		out = append(out, c)
	}
	return out
}
