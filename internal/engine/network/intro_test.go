package network

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func introFixtures() (Connection, Contact, Profile) {
	conn := validConn("Sarah Chen", "Acme")
	conn.Title = "VP of Engineering"
	conn.CareerRelevance = "Leads the platform org"
	contact := Contact{Name: "Alice Johnson", Company: "TechCorp"}
	profile := Profile{Name: "Bob Smith", Title: "Senior Engineer"}
	return conn, contact, profile
}

func TestGenerateIntroTemplatesParsed(t *testing.T) {
	setupEngine(t, &fakeLLM{fn: func(string, string) (string, error) {
		return `{
			"introductionRequest": "custom intro",
			"followUpMessage": "custom follow-up",
			"linkedInMessage": "custom linkedin",
			"emailSubject": "custom subject"
		}`, nil
	}}, &fakeSearcher{}, nil)

	conn, contact, profile := introFixtures()
	got := GenerateIntroTemplates(context.Background(), conn, contact, profile, "grow")
	if got.IntroductionRequest != "custom intro" || got.EmailSubject != "custom subject" {
		t.Errorf("parsed templates not used: %+v", got)
	}
}

func TestGenerateIntroTemplatesFallsBackOnError(t *testing.T) {
	setupEngine(t, &fakeLLM{fn: func(string, string) (string, error) {
		return "", errors.New("provider down")
	}}, &fakeSearcher{}, nil)

	conn, contact, profile := introFixtures()
	got := GenerateIntroTemplates(context.Background(), conn, contact, profile, "")
	if !strings.Contains(got.IntroductionRequest, "Alice Johnson") {
		t.Errorf("default intro should address the mutual contact: %q", got.IntroductionRequest)
	}
	if !strings.Contains(got.FollowUpMessage, "Sarah Chen") {
		t.Errorf("default follow-up should address the connection: %q", got.FollowUpMessage)
	}
	if got.EmailSubject != "Introduction to Sarah Chen" {
		t.Errorf("emailSubject = %q", got.EmailSubject)
	}
}

func TestGenerateIntroTemplatesFillsEmptyFields(t *testing.T) {
	setupEngine(t, &fakeLLM{fn: func(string, string) (string, error) {
		return `{"linkedInMessage": "only this one"}`, nil
	}}, &fakeSearcher{}, nil)

	conn, contact, profile := introFixtures()
	got := GenerateIntroTemplates(context.Background(), conn, contact, profile, "")
	if got.LinkedInMessage != "only this one" {
		t.Errorf("parsed field lost: %q", got.LinkedInMessage)
	}
	if got.IntroductionRequest == "" || got.FollowUpMessage == "" || got.EmailSubject == "" {
		t.Errorf("empty fields not defaulted: %+v", got)
	}
}

func TestDefaultDirectIntro(t *testing.T) {
	c := Connection{Name: "Sarah Chen", Company: "Acme"}
	want := "Hi Sarah Chen, I'd love to connect and learn more about your work at Acme."
	if got := DefaultDirectIntro(c); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnalyzeOpportunitiesEmptyFallback(t *testing.T) {
	setupEngine(t, &fakeLLM{fn: func(string, string) (string, error) {
		return "not json at all", nil
	}}, &fakeSearcher{}, nil)

	got := AnalyzeOpportunities(context.Background(), []Connection{validConn("Sarah Chen", "Acme")}, Profile{}, "")
	if got.SpecificOpportunities == nil || len(got.SpecificOpportunities) != 0 {
		t.Errorf("opportunities = %v, want empty non-nil", got.SpecificOpportunities)
	}
	if got.StrategicInsights.MarketPositioning != "Analysis unavailable" {
		t.Errorf("marketPositioning = %q", got.StrategicInsights.MarketPositioning)
	}
}

func TestAnalyzeOpportunitiesParsed(t *testing.T) {
	setupEngine(t, &fakeLLM{fn: func(string, string) (string, error) {
		return `{
			"specificOpportunities": [{
				"connectionName": "Sarah Chen",
				"opportunityType": "mentorship",
				"description": "platform mentorship",
				"actionSteps": ["reach out"],
				"timeframe": "1 month",
				"successMetrics": ["first call"]
			}],
			"strategicInsights": {
				"portfolioStrengths": ["engineering depth"],
				"marketPositioning": "strong",
				"competitiveAdvantages": [],
				"developmentAreas": ["finance contacts"]
			}
		}`, nil
	}}, &fakeSearcher{}, nil)

	got := AnalyzeOpportunities(context.Background(), []Connection{validConn("Sarah Chen", "Acme")}, Profile{}, "")
	if len(got.SpecificOpportunities) != 1 || got.SpecificOpportunities[0].OpportunityType != "mentorship" {
		t.Errorf("opportunities = %+v", got.SpecificOpportunities)
	}
	if got.StrategicInsights.MarketPositioning != "strong" {
		t.Errorf("insights = %+v", got.StrategicInsights)
	}
}
