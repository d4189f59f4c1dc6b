package engine

import "testing"

func TestClassifyContent(t *testing.T) {
	tests := []struct {
		name           string
		domain         string
		title          string
		snippet        string
		wantCategory   string
		wantConfidence string
	}{
		{"news outlet", "techcrunch.com", "Acme raises $50M", "funding round", ContentNews, TierHigh},
		{"press wire", "prnewswire.com", "Acme Corp Q3 results", "quarterly report", ContentPress, TierHigh},
		{"announces in title", "example.com", "Acme announces new CTO", "", ContentPress, TierMedium},
		{"linkedin bio", "linkedin.com", "Jane Doe - VP Engineering", "profile", ContentBio, TierHigh},
		{"team page", "acme.com", "Our Leadership Team", "meet the team", ContentCompany, TierHigh},
		{"blog post", "medium.com", "Scaling at Acme", "engineering blog", ContentArticle, TierMedium},
		{"unknown", "random.xyz", "something", "something else", ContentUnknown, TierLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, confidence := ClassifyContent(tt.domain, tt.title, tt.snippet)
			if category != tt.wantCategory {
				t.Errorf("category = %q, want %q", category, tt.wantCategory)
			}
			if confidence != tt.wantConfidence {
				t.Errorf("confidence = %q, want %q", confidence, tt.wantConfidence)
			}
		})
	}
}
