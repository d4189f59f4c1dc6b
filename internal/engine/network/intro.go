package network

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
)

// IntroTemplates are the outreach messages for one connection.
type IntroTemplates struct {
	IntroductionRequest string `json:"introductionRequest"`
	FollowUpMessage     string `json:"followUpMessage"`
	LinkedInMessage     string `json:"linkedInMessage"`
	EmailSubject        string `json:"emailSubject"`
}

// GenerateIntroTemplates produces personalized outreach templates via one
// generation call. Each field that comes back empty or unparseable is
// replaced with its deterministic default, so the result is always complete.
func GenerateIntroTemplates(ctx context.Context, conn Connection, contact Contact, profile Profile, objective string) IntroTemplates {
	prompt := fmt.Sprintf(introPromptTemplate,
		profile.Name, profile.Title, profile.Summary, strings.Join(profile.Skills, ", "),
		objectiveLine(objective),
		conn.Name, conn.Title, conn.Company, conn.Relationship, conn.CareerRelevance,
		contact.Name, contact.Company,
	)

	defaults := defaultIntroTemplates(conn, contact, profile)

	parsed, _, err := engine.GenerateJSON[IntroTemplates](ctx, introSystemPrompt, prompt)
	if err != nil {
		slog.Warn("intro: generation failed", slog.String("connection", conn.Name), slog.Any("error", err))
		return defaults
	}
	if parsed == nil {
		return defaults
	}

	out := *parsed
	if out.IntroductionRequest == "" {
		out.IntroductionRequest = defaults.IntroductionRequest
	}
	if out.FollowUpMessage == "" {
		out.FollowUpMessage = defaults.FollowUpMessage
	}
	if out.LinkedInMessage == "" {
		out.LinkedInMessage = defaults.LinkedInMessage
	}
	if out.EmailSubject == "" {
		out.EmailSubject = defaults.EmailSubject
	}
	return out
}

// DefaultDirectIntro is the one-line opener attached to every discovered
// connection in the response.
func DefaultDirectIntro(c Connection) string {
	return fmt.Sprintf("Hi %s, I'd love to connect and learn more about your work at %s.", c.Name, c.Company)
}

func defaultIntroTemplates(conn Connection, contact Contact, profile Profile) IntroTemplates {
	relevance := strings.ToLower(conn.CareerRelevance)
	return IntroTemplates{
		IntroductionRequest: fmt.Sprintf(`Hi %s,

I hope you're doing well! I've been following your work at %s and came across %s in my research. Given their role as %s at %s, I think there could be great mutual value in connecting.

As %s, I'm particularly interested in %s. Would you be comfortable making an introduction?

Best regards,
%s`, contact.Name, contact.Company, conn.Name, conn.Title, conn.Company, profile.Title, relevance, profile.Name),
		FollowUpMessage: fmt.Sprintf(`Hi %s,

Thank you for connecting! I'm %s and was introduced by our mutual connection. I'm particularly interested in your experience with %s.

Would you be open to a brief coffee chat or call in the coming weeks?

Best regards,
%s`, conn.Name, profile.Title, relevance, profile.Name),
		LinkedInMessage: fmt.Sprintf("Hi %s, I'm %s and came across your profile through our shared connection. Your experience at %s really caught my attention. I'd love to connect and exchange insights about the industry!",
			conn.Name, profile.Title, conn.Company),
		EmailSubject: fmt.Sprintf("Introduction to %s", conn.Name),
	}
}
