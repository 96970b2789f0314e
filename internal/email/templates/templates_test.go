package templates

import (
	"strings"
	"testing"
)

func TestRenderWelcomeEmailNamesSelectedCategories(t *testing.T) {
	body, err := RenderWelcomeEmail(WelcomeData{
		FirstName:  "Sita",
		LastName:   "Sharma",
		Categories: []string{"trainings", "garbage"},
		Year:       2026,
	})
	if err != nil {
		t.Fatalf("RenderWelcomeEmail failed: %v", err)
	}
	for _, want := range []string{"Sita", "Sharma", "trainings, garbage", "2026"} {
		if !strings.Contains(body, want) {
			t.Errorf("Welcome email missing %q:\n%s", want, body)
		}
	}
	for _, absent := range []string{"campaign", "sanitation"} {
		if strings.Contains(body, absent) {
			t.Errorf("Welcome email names unselected category %q", absent)
		}
	}
}

func TestRenderWelcomeEmailWithNoCategories(t *testing.T) {
	body, err := RenderWelcomeEmail(WelcomeData{FirstName: "Hari", LastName: "KC"})
	if err != nil {
		t.Fatalf("RenderWelcomeEmail failed: %v", err)
	}
	if !strings.Contains(body, "none yet") {
		t.Errorf("Empty category list must render as \"none yet\":\n%s", body)
	}
}

func TestRenderDonationEmails(t *testing.T) {
	data := DonationData{FirstName: "Kiran", LastName: "Basnet", Amount: "110.50"}

	thanks, err := RenderDonationThanksEmail(data)
	if err != nil {
		t.Fatalf("RenderDonationThanksEmail failed: %v", err)
	}
	if !strings.Contains(thanks, "110.50") || !strings.Contains(thanks, "Kiran") {
		t.Errorf("Thanks email missing donor data:\n%s", thanks)
	}

	welcome, err := RenderDonationWelcomeEmail(data)
	if err != nil {
		t.Fatalf("RenderDonationWelcomeEmail failed: %v", err)
	}
	if !strings.Contains(welcome, "110.50") {
		t.Errorf("Donation welcome email missing amount:\n%s", welcome)
	}
	if welcome == thanks {
		t.Errorf("First-time and returning donor emails must differ")
	}
}

func TestRenderBroadcastEmail(t *testing.T) {
	body, err := RenderBroadcastEmail(BroadcastData{
		FirstName: "Maya",
		LastName:  "Gurung",
		Category:  "sanitation",
	})
	if err != nil {
		t.Fatalf("RenderBroadcastEmail failed: %v", err)
	}
	for _, want := range []string{"Maya", "Gurung", "sanitation"} {
		if !strings.Contains(body, want) {
			t.Errorf("Broadcast email missing %q:\n%s", want, body)
		}
	}
}
