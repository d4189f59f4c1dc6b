package network

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
)

// resetTracker resets the singleton so each test gets a fresh DB.
func resetTracker(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	trackerDB = nil
	trackerErr = nil
	trackerOnce = sync.Once{}
	return filepath.Join(dir, ".go_network", "tracker.db")
}

func TestAddTrackedIntro_Basic(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	result, err := AddTrackedIntro(ctx, IntroTrackerAddInput{
		ConnectionName: "Sarah Chen",
		Company:        "Acme",
		ViaContact:     "Alice Johnson",
		Status:         "sent",
		Notes:          "Asked Alice on Tuesday",
		ProfileURL:     "https://linkedin.com/in/sarahchen",
	})
	if err != nil {
		t.Fatalf("AddTrackedIntro error: %v", err)
	}
	if result.ID <= 0 {
		t.Errorf("expected positive ID, got %d", result.ID)
	}
	if result.Message == "" {
		t.Error("expected non-empty message")
	}
}

func TestAddTrackedIntro_DefaultStatus(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	result, err := AddTrackedIntro(ctx, IntroTrackerAddInput{
		ConnectionName: "Marcus Webb",
		Company:        "Acme",
	})
	if err != nil {
		t.Fatalf("AddTrackedIntro error: %v", err)
	}

	list, err := ListTrackedIntros(ctx, IntroTrackerListInput{Status: "requested"})
	if err != nil {
		t.Fatalf("ListTrackedIntros error: %v", err)
	}
	if list.Total != 1 || list.Intros[0].ID != result.ID {
		t.Errorf("default status should be requested, got %+v", list)
	}
}

func TestAddTrackedIntro_MissingRequired(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	if _, err := AddTrackedIntro(ctx, IntroTrackerAddInput{ConnectionName: "Only Name"}); err == nil {
		t.Error("expected error when company is missing")
	}
	if _, err := AddTrackedIntro(ctx, IntroTrackerAddInput{Company: "Only Company"}); err == nil {
		t.Error("expected error when connectionName is missing")
	}
}

func TestAddTrackedIntro_InvalidStatus(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	_, err := AddTrackedIntro(ctx, IntroTrackerAddInput{
		ConnectionName: "Sarah Chen",
		Company:        "Acme",
		Status:         "ghosted",
	})
	if err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestListTrackedIntros_FilterAndOrder(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name, company, status string
	}{
		{"Sarah Chen", "Acme", "sent"},
		{"Marcus Webb", "Acme", "accepted"},
		{"Dana Fox", "OtherCorp", "requested"},
	} {
		if _, err := AddTrackedIntro(ctx, IntroTrackerAddInput{
			ConnectionName: tc.name, Company: tc.company, Status: tc.status,
		}); err != nil {
			t.Fatalf("AddTrackedIntro error: %v", err)
		}
	}

	all, err := ListTrackedIntros(ctx, IntroTrackerListInput{})
	if err != nil {
		t.Fatalf("ListTrackedIntros error: %v", err)
	}
	if all.Total != 3 {
		t.Errorf("total = %d, want 3", all.Total)
	}

	sent, err := ListTrackedIntros(ctx, IntroTrackerListInput{Status: "sent"})
	if err != nil {
		t.Fatalf("ListTrackedIntros filter error: %v", err)
	}
	if sent.Total != 1 || sent.Intros[0].ConnectionName != "Sarah Chen" {
		t.Errorf("sent filter = %+v", sent)
	}

	if _, err := ListTrackedIntros(ctx, IntroTrackerListInput{Status: "bogus"}); err == nil {
		t.Error("expected error for invalid status filter")
	}
}

func TestListTrackedIntros_Empty(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	result, err := ListTrackedIntros(ctx, IntroTrackerListInput{})
	if err != nil {
		t.Fatalf("ListTrackedIntros error: %v", err)
	}
	if result.Total != 0 || len(result.Intros) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if result.Intros == nil {
		t.Error("intros should not be nil")
	}
}

func TestUpdateTrackedIntro(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	added, err := AddTrackedIntro(ctx, IntroTrackerAddInput{
		ConnectionName: "Sarah Chen", Company: "Acme",
	})
	if err != nil {
		t.Fatalf("AddTrackedIntro error: %v", err)
	}

	if _, err := UpdateTrackedIntro(ctx, IntroTrackerUpdateInput{
		ID: added.ID, Status: "accepted", Notes: "Call booked for Friday",
	}); err != nil {
		t.Fatalf("UpdateTrackedIntro error: %v", err)
	}

	list, _ := ListTrackedIntros(ctx, IntroTrackerListInput{Status: "accepted"})
	if list.Total != 1 {
		t.Errorf("expected 1 accepted intro after update, got %d", list.Total)
	}
	if list.Intros[0].Notes != "Call booked for Friday" {
		t.Errorf("notes = %q", list.Intros[0].Notes)
	}
}

func TestUpdateTrackedIntro_Invalid(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	if _, err := UpdateTrackedIntro(ctx, IntroTrackerUpdateInput{ID: 0, Status: "sent"}); err == nil {
		t.Error("expected error for ID=0")
	}
	if _, err := UpdateTrackedIntro(ctx, IntroTrackerUpdateInput{ID: 1}); err == nil {
		t.Error("expected error when neither status nor notes provided")
	}

	added, _ := AddTrackedIntro(ctx, IntroTrackerAddInput{ConnectionName: "Sarah Chen", Company: "Acme"})
	if _, err := UpdateTrackedIntro(ctx, IntroTrackerUpdateInput{ID: added.ID, Status: "bad"}); err == nil {
		t.Error("expected error for invalid status in update")
	}
}

func TestImportContacts(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	result, err := ImportContacts(ctx, ContactsImportInput{Contacts: []Contact{
		{Name: "Sarah Chen", Company: "Acme", Position: "VP Engineering", ProfileLink: "https://linkedin.com/in/sarahchen"},
		{Name: "Marcus Webb", Company: "Acme"},
		{Name: "", Company: "Acme"},
		{Name: "No Company", Company: "  "},
	}})
	if err != nil {
		t.Fatalf("ImportContacts error: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 2 {
		t.Errorf("imported/skipped = %d/%d, want 2/2", result.Imported, result.Skipped)
	}

	// Re-importing the same rows counts as skipped, not duplicated.
	again, err := ImportContacts(ctx, ContactsImportInput{Contacts: []Contact{
		{Name: "Sarah Chen", Company: "Acme"},
	}})
	if err != nil {
		t.Fatalf("ImportContacts error: %v", err)
	}
	if again.Imported != 0 || again.Skipped != 1 {
		t.Errorf("re-import = %+v, want 0 imported 1 skipped", again)
	}
}

func TestImportContacts_Empty(t *testing.T) {
	resetTracker(t)
	if _, err := ImportContacts(context.Background(), ContactsImportInput{}); err == nil {
		t.Error("expected error for empty contacts")
	}
}

func TestListContacts(t *testing.T) {
	resetTracker(t)
	ctx := context.Background()

	if _, err := ImportContacts(ctx, ContactsImportInput{Contacts: []Contact{
		{Name: "Sarah Chen", Company: "Acme Corp"},
		{Name: "Marcus Webb", Company: "Acme Corp"},
		{Name: "Dana Fox", Company: "OtherCorp"},
	}}); err != nil {
		t.Fatalf("ImportContacts error: %v", err)
	}

	all, err := ListContacts(ctx, ContactsListInput{})
	if err != nil {
		t.Fatalf("ListContacts error: %v", err)
	}
	if all.Total != 3 {
		t.Errorf("total = %d, want 3", all.Total)
	}
	if all.Contacts[0].Name != "Dana Fox" {
		t.Errorf("expected name ordering, got first = %q", all.Contacts[0].Name)
	}

	acme, err := ListContacts(ctx, ContactsListInput{Company: "acme"})
	if err != nil {
		t.Fatalf("ListContacts filter error: %v", err)
	}
	if acme.Total != 2 {
		t.Errorf("acme total = %d, want 2", acme.Total)
	}
}

func TestListContacts_Empty(t *testing.T) {
	resetTracker(t)

	result, err := ListContacts(context.Background(), ContactsListInput{})
	if err != nil {
		t.Fatalf("ListContacts error: %v", err)
	}
	if result.Total != 0 || result.Contacts == nil || len(result.Contacts) != 0 {
		t.Errorf("expected empty non-nil result, got %+v", result)
	}
}

func TestValidIntroStatus(t *testing.T) {
	for _, s := range []string{"requested", "sent", "accepted", "declined"} {
		if !validIntroStatus(s) {
			t.Errorf("validIntroStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "SENT", "done"} {
		if validIntroStatus(s) {
			t.Errorf("validIntroStatus(%q) = true, want false", s)
		}
	}
}
